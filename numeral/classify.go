package numeral

// Notation is the lexical shape of a piece of text.
type Notation int

const (
	Invalid Notation = iota
	Roman
	Arabic
)

// String returns the lowercase tag used on the command line and in JSON.
func (f Notation) String() string {
	switch f {
	case Roman:
		return "roman"
	case Arabic:
		return "arabic"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Notation) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Classify reports whether text looks like a Roman numeral, a decimal
// integer, or neither. The check is purely lexical: "IIII" is Roman even
// though Parse rejects it.
func Classify(text string) Notation {
	if text == "" {
		return Invalid
	}
	if allRunes(text, isRomanRune) {
		return Roman
	}
	if allRunes(text, isDigit) {
		return Arabic
	}
	return Invalid
}

func allRunes(s string, ok func(rune) bool) bool {
	for _, r := range s {
		if !ok(r) {
			return false
		}
	}
	return true
}

// isRomanRune accepts the seven letters in either case and the overline.
func isRomanRune(r rune) bool {
	switch r {
	case 'I', 'V', 'X', 'L', 'C', 'D', 'M',
		'i', 'v', 'x', 'l', 'c', 'd', 'm',
		Overline:
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
