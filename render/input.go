package render

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/teranos/rome/numeral"
)

const romanLetters = "IVXLCDMivxlcdm"

// Direction of a Step
type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
)

// String returns "up" or "down"
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// CleanInput trims s and removes everything except Roman letters (either
// case), ASCII digits and the overline.
func CleanInput(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == numeral.Overline:
			return r
		case r <= unicode.MaxASCII && strings.ContainsRune(romanLetters, r):
			return r
		}
		return -1
	}, strings.TrimSpace(s))
}

// Step moves input one unit in direction d, keeping its notation. The value
// never leaves numeral.Range(); at a bound, and for input that cannot be
// parsed, input is returned unchanged.
func Step(input string, d Direction) string {
	lo, hi := numeral.Range()

	switch numeral.Classify(input) {
	case numeral.Roman:
		n, err := numeral.Parse(input)
		if err != nil {
			return input
		}
		next := n + int(d)
		if next < lo || next > hi {
			return input
		}
		s, err := numeral.Format(next)
		if err != nil {
			return input
		}
		return s

	case numeral.Arabic:
		n, err := strconv.Atoi(input)
		if err != nil {
			return input
		}
		next := n + int(d)
		if next < lo || next > hi {
			return input
		}
		return strconv.Itoa(next)
	}
	return input
}

// Describe returns the status line for an interactive input: the converted
// value for Roman or Arabic input, or a prompt/fallback message.
func Describe(input, locale string) string {
	if input == "" {
		return EnterANumber
	}
	switch numeral.Classify(input) {
	case numeral.Roman:
		n, err := numeral.Parse(input)
		if err != nil {
			return "Arabic: " + NotANumber
		}
		return "Arabic: " + FormatNumber(n, locale)
	case numeral.Arabic:
		n, err := numeral.ToInt(input)
		if err != nil {
			return "Roman: " + NotANumber
		}
		return "Roman: " + romanText(&n)
	default:
		return InvalidFormat
	}
}
