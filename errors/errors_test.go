package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesIdentity(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "parsing %q", "XIIII")

	assert.Contains(t, wrapped.Error(), `parsing "XIIII"`)
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestMarkInvalidInputKeepsSentinelIdentity(t *testing.T) {
	errEmpty := New("empty input")
	errRange := New("out of range")

	err := MarkInvalidInput(Wrapf(errEmpty, "%q", ""))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "empty input")
	assert.True(t, Is(err, errEmpty))
	assert.False(t, Is(err, errRange))
	assert.True(t, IsInvalidInputError(err))
	assert.True(t, IsInvalidInputError(Wrap(err, "layer")))

	// the sentinels themselves stay distinct and unmarked
	assert.False(t, Is(errEmpty, errRange))
	assert.False(t, IsInvalidInputError(errEmpty))

	assert.Nil(t, MarkInvalidInput(nil))
}

func TestIsInvalidInputError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", New("boom"), false},
		{"the mark itself", ErrInvalidInput, true},
		{"marked and hinted", WithHint(MarkInvalidInput(New("bad")), "try again"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInvalidInputError(tt.err))
		})
	}
}

func TestHint(t *testing.T) {
	assert.Equal(t, "", Hint(nil))
	assert.Equal(t, "", Hint(New("no hint")))

	err := WithHint(New("error"), "try this fix")
	err = Wrap(err, "context")
	assert.Equal(t, "try this fix", Hint(err))
}

func TestAssertionFailure(t *testing.T) {
	err := AssertionFailedf("value %d exceeds %d", 5, 4)
	assert.True(t, HasAssertionFailure(err))
	assert.False(t, HasAssertionFailure(New("ordinary")))
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

func ExampleWithHint() {
	err := MarkInvalidInput(New("malformed roman numeral"))
	err = WithHint(err, "symbols must appear in descending order")

	fmt.Println(GetAllHints(err)[0])
	// Output: symbols must appear in descending order
}
