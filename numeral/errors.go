package numeral

import "github.com/teranos/rome/errors"

// Conversion failures. Errors returned by this package wrap exactly one of
// these and are marked with errors.ErrInvalidInput.
var (
	// ErrEmptyInput means nothing was left after normalization.
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformedNumeral means the text is not a canonical Roman numeral.
	ErrMalformedNumeral = errors.New("malformed roman numeral")

	// ErrNotInteger means a value could not be coerced to an integer.
	ErrNotInteger = errors.New("not an integer")

	// ErrOutOfRange means an integer lies outside [MinValue, MaxValue].
	ErrOutOfRange = errors.New("value out of range")
)
