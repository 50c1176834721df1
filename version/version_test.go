package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v0.3.0", CommitHash: "0123456789abcdef", BuildTime: "2026-10-01"}
	assert.Equal(t, "rome v0.3.0 (commit 0123456, built 2026-10-01)", info.String())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestIsRelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v1.2.0", true},
		{"1.2.0", true},
		{"v0.3", true},
		{"v1.2.0-rc.1", false},
		{"dev", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRelease(tt.version), tt.version)
	}
	assert.False(t, Get().Release, "unstamped builds are dev builds")
}
