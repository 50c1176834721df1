package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevLogger, prevJSON := Output, Logger, JSONOutput
	Output = &buf
	t.Cleanup(func() {
		Output, Logger, JSONOutput = prevOut, prevLogger, prevJSON
	})
	return &buf
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "Console output mode", jsonOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t)
			Logger = nil

			require.NoError(t, Initialize(tt.jsonOutput, VerbosityUser))
			assert.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
		})
	}
}

func TestInitializeJSONFields(t *testing.T) {
	buf := captureOutput(t)
	require.NoError(t, Initialize(true, VerbosityInfo))

	Infow("converted", FieldInput, "XIV", FieldValue, 14)
	Cleanup()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, "XIV", entry[FieldInput])
	assert.EqualValues(t, 14, entry[FieldValue])
}

func TestVerbosityFiltersLevels(t *testing.T) {
	buf := captureOutput(t)
	require.NoError(t, Initialize(false, VerbosityUser))

	Infow("hidden info")
	Debugw("hidden debug")
	Warnw("visible warning")
	Errorw("visible error", FieldError, "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warning")
	assert.Contains(t, out, "visible error")
	assert.Contains(t, out, "boom")
}

func TestNamed(t *testing.T) {
	buf := captureOutput(t)
	require.NoError(t, Initialize(false, VerbosityDebug))

	Named("watch").Debugw("file changed", FieldFile, "numbers.txt")
	assert.Contains(t, buf.String(), "watch")
	assert.Contains(t, buf.String(), "numbers.txt")
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{10, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.Equal(t, "Trace (-vvv)", LevelName(5))
	assert.Equal(t, "Unknown", LevelName(-1))
}

func TestShouldOutput(t *testing.T) {
	assert.True(t, ShouldOutput(VerbosityUser, OutputResults))
	assert.True(t, ShouldOutput(VerbosityUser, OutputErrors))
	assert.False(t, ShouldOutput(VerbosityUser, OutputConfig))
	assert.True(t, ShouldOutput(VerbosityInfo, OutputWatchEvent))
	assert.False(t, ShouldOutput(VerbosityInfo, OutputConversion))
	assert.True(t, ShouldOutput(VerbosityDebug, OutputConversion))
	assert.False(t, ShouldOutput(VerbosityDebug, OutputNormalized))
	assert.True(t, ShouldOutput(VerbosityTrace, OutputDataDump))
	assert.False(t, ShouldOutput(VerbosityDebug, OutputCategory(99)))
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "watch", CategoryName(OutputWatchEvent))
	assert.Equal(t, "unknown", CategoryName(OutputCategory(99)))
}
