// Package render turns numeral values into display text.
//
// It is the glue between the numeral package and a front end: it resolves
// element-style attributes (an Arabic or Roman source value plus a render
// mode), formats integers for a locale, steps values up and down within the
// supported range, and produces the status line of an interactive input.
package render

import (
	"strings"

	"github.com/teranos/rome/numeral"
)

// Fallback texts shown instead of a value.
const (
	NotANumber     = "Not a number"
	InvalidFormat  = "Invalid format"
	EnterANumber   = "Please enter a number"
	keywordMinimum = "min"
	keywordMaximum = "max"
)

// Mode selects the notation a value is rendered in
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeRoman  Mode = "roman"
	ModeArabic Mode = "arabic"
)

// ParseMode reads a mode name; anything unrecognised is ModeAuto.
func ParseMode(s string) Mode {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeRoman, ModeArabic:
		return m
	default:
		return ModeAuto
	}
}

// Element carries the attributes of one rendered number. At most one of
// ArabicNumber and RomanNumber is consulted; ArabicNumber wins when both
// are set. Either may hold the keywords "min" or "max".
type Element struct {
	ArabicNumber string `json:"arabic_number,omitempty" yaml:"arabic_number,omitempty" toml:"arabic_number,omitempty"`
	RomanNumber  string `json:"roman_number,omitempty" yaml:"roman_number,omitempty" toml:"roman_number,omitempty"`
	RenderNumber string `json:"render_number,omitempty" yaml:"render_number,omitempty" toml:"render_number,omitempty"`
}

// Result is the outcome of rendering an Element
type Result struct {
	Text  string `json:"text" yaml:"text" toml:"text"`
	Mode  Mode   `json:"mode" yaml:"mode" toml:"mode"`
	Value *int   `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

// Render resolves e and returns its display text. ok is false when e has
// neither source attribute, in which case there is nothing to render.
func Render(e Element, locale string) (Result, bool) {
	mode := ParseMode(e.RenderNumber)

	var value *int
	switch {
	case e.ArabicNumber != "":
		value = resolve(e.ArabicNumber, parseArabic)
		if mode == ModeAuto {
			mode = ModeRoman
		}
	case e.RomanNumber != "":
		value = resolve(e.RomanNumber, numeral.Parse)
		if mode == ModeAuto {
			mode = ModeArabic
		}
	default:
		return Result{}, false
	}

	res := Result{Mode: mode, Value: value}
	switch mode {
	case ModeRoman:
		res.Text = romanText(value)
	case ModeArabic:
		res.Text = arabicText(value, locale)
	}
	return res, true
}

// resolve handles the min/max keywords before delegating to parse.
func resolve(raw string, parse func(string) (int, error)) *int {
	lo, hi := numeral.Range()
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case keywordMinimum:
		return &lo
	case keywordMaximum:
		return &hi
	default:
		n, err := parse(s)
		if err != nil {
			return nil
		}
		return &n
	}
}

// parseArabic keeps the full value so arabic mode can show numbers far
// outside the numeral range; only Format rejects them.
func parseArabic(s string) (int, error) {
	n, err := numeral.LeadingInt(s)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func romanText(value *int) string {
	if value == nil {
		return NotANumber
	}
	s, err := numeral.Format(*value)
	if err != nil {
		return NotANumber
	}
	return s
}

func arabicText(value *int, locale string) string {
	if value == nil {
		return NotANumber
	}
	return FormatNumber(*value, locale)
}
