package numeral

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/teranos/rome/errors"
)

// Format converts n to its canonical Roman numeral.
func Format(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		err := errors.MarkInvalidInput(errors.Wrapf(ErrOutOfRange, "%d", n))
		return "", errors.WithHintf(err, "values must be between %d and %d", MinValue, MaxValue)
	}
	return encode(n), nil
}

// FormatValue coerces v to an integer and formats it.
//
// Integers of every kind are accepted as-is. Floats are truncated toward
// zero. Strings and fmt.Stringers are read like a lenient integer prefix:
// leading whitespace, an optional sign, then decimal digits, ignoring
// anything after the digits ("12px" is 12).
func FormatValue(v any) (string, error) {
	n, err := ToInt(v)
	if err != nil {
		return "", err
	}
	return Format(n)
}

// ToInt performs the coercion used by FormatValue.
func ToInt(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, errors.MarkInvalidInput(errors.Wrap(ErrNotInteger, "nil"))
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return clampInt64(x), nil
	case uint:
		return clampUint64(uint64(x)), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return clampUint64(uint64(x)), nil
	case uint64:
		return clampUint64(x), nil
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case string:
		return leadingInt(x)
	case fmt.Stringer:
		return leadingInt(x.String())
	default:
		return 0, errors.MarkInvalidInput(errors.Wrapf(ErrNotInteger, "unsupported type %T", v))
	}
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.MarkInvalidInput(errors.Wrapf(ErrNotInteger, "%v", f))
	}
	t := math.Trunc(f)
	if t > math.MaxInt32 || t < math.MinInt32 {
		// Far outside the numeral range either way; keep the sign.
		if t > 0 {
			return math.MaxInt32, nil
		}
		return math.MinInt32, nil
	}
	return int(t), nil
}

func leadingInt(s string) (int, error) {
	n, err := LeadingInt(s)
	if err != nil {
		return 0, err
	}
	return clampInt64(n), nil
}

// LeadingInt reads the integer prefix of s: leading whitespace, an optional
// sign, then decimal digits. Anything after the digits is ignored. Unlike
// ToInt the value is not narrowed to the numeral window; prefixes beyond
// int64 saturate at its bounds.
func LeadingInt(s string) (int64, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		err := errors.MarkInvalidInput(errors.Wrapf(ErrNotInteger, "%q", s))
		return 0, errors.WithHint(err, "enter a whole number such as 42")
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Only range errors remain once the digits are validated.
		if s[0] == '-' {
			return math.MinInt64, nil
		}
		return math.MaxInt64, nil
	}
	return n, nil
}

// clampInt64 squeezes values that cannot be numerals anyway into an int32
// window so that Format reports them as out of range on every platform.
func clampInt64(n int64) int {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int(n)
}

func clampUint64(n uint64) int {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// encode emits symbols greedily, largest first. n must be in range.
func encode(n int) string {
	var b strings.Builder
	for _, sym := range symbols {
		for n >= sym.Value {
			b.WriteString(sym.Numeral)
			n -= sym.Value
		}
	}
	return b.String()
}
