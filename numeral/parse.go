package numeral

import (
	"strings"
	"unicode"

	"github.com/teranos/rome/errors"
)

// Parse converts a Roman numeral to its integer value.
//
// Input is case-insensitive. Whitespace, punctuation and other non-letters
// are discarded first, so "x i v" parses like "XIV". Letters outside the
// Roman alphabet are kept and make the input malformed. The remainder must be
// a canonical numeral: symbols in descending order, at most three repeats,
// and only the standard subtractive pairs.
func Parse(text string) (int, error) {
	s := Normalize(text)
	if s == "" {
		err := errors.MarkInvalidInput(errors.WithStack(ErrEmptyInput))
		return 0, errors.WithHint(err, "enter at least one of I, V, X, L, C, D or M")
	}
	if !wellFormed(s) {
		return 0, malformed(text)
	}

	total, rest := reduce(s)
	if rest != "" {
		return 0, malformed(text)
	}
	if total > MaxValue {
		return 0, errors.AssertionFailedf("numeral %q reduced to %d, above maximum %d", s, total, MaxValue)
	}
	return total, nil
}

// Normalize uppercases text and drops every rune that is neither a letter
// nor the overline.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		if r == Overline || unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// reduce consumes symbols greedily in table order and returns the total
// together with whatever could not be consumed.
func reduce(s string) (int, string) {
	total := 0
	for _, sym := range symbols {
		for hasSymbol(s, sym.Numeral) {
			total += sym.Value
			s = s[len(sym.Numeral):]
		}
	}
	return total, s
}

func malformed(text string) error {
	err := errors.MarkInvalidInput(errors.Wrapf(ErrMalformedNumeral, "%q", text))
	return errors.WithHint(err,
		"symbols must descend in value, repeat at most three times, and only I, X, C, M (and their overlined forms) may be subtracted")
}
