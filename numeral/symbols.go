package numeral

// Overline is the combining overline (U+0305) that turns a letter into its
// vinculum form.
const Overline = '\u0305'

// Range bounds.
const (
	MinValue = 1
	MaxValue = 3999999
)

// Symbol is one entry of the conversion table.
type Symbol struct {
	Value   int
	Numeral string
}

// symbols is ordered by strictly descending value. Parse and Format both
// walk it front to back. The 4,000 and 9,000 entries keep their historical
// MV̅ and MX̅ spellings.
var symbols = [...]Symbol{
	{1000000, "M̅"},
	{900000, "C̅M̅"},
	{500000, "D̅"},
	{400000, "C̅D̅"},
	{100000, "C̅"},
	{90000, "X̅C̅"},
	{50000, "L̅"},
	{40000, "X̅L̅"},
	{10000, "X̅"},
	{9000, "MX̅"},
	{5000, "V̅"},
	{4000, "MV̅"},
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Symbols returns a copy of the conversion table in descending value order.
func Symbols() []Symbol {
	out := make([]Symbol, len(symbols))
	copy(out, symbols[:])
	return out
}

// Range returns the smallest and largest convertible values.
func Range() (lo, hi int) {
	return MinValue, MaxValue
}

// MinNumeral returns MinValue written as a Roman numeral.
func MinNumeral() string {
	return encode(MinValue)
}

// MaxNumeral returns MaxValue written as a Roman numeral.
func MaxNumeral() string {
	return encode(MaxValue)
}

// hasSymbol reports whether s starts with sym as a whole symbol. A bare
// letter does not match the first half of its own overlined form.
func hasSymbol(s, sym string) bool {
	if len(s) < len(sym) || s[:len(sym)] != sym {
		return false
	}
	rest := s[len(sym):]
	return !startsWithOverline(rest)
}

func startsWithOverline(s string) bool {
	// U+0305 encodes as 0xCC 0x85.
	return len(s) >= 2 && s[0] == 0xCC && s[1] == 0x85
}
