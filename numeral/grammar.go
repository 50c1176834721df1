package numeral

// tier is one order of magnitude of the numeral grammar. A tier matches
// one of: one+ten (nine), one+five (four), or an optional five followed by
// up to three ones. Tiers without five and ten only allow the repeated one.
type tier struct {
	one, five, ten string
}

// tiers run from the largest magnitude down. Together they accept
//
//	M̅{0,3} (C̅M̅|C̅D̅|D̅?C̅{0,3}) (X̅C̅|X̅L̅|L̅?X̅{0,3}) (MX̅|MV̅|V̅?M{0,3})
//	(CM|CD|D?C{0,3}) (XC|XL|L?X{0,3}) (IX|IV|V?I{0,3})
var tiers = [...]tier{
	{one: "M̅"},
	{one: "C̅", five: "D̅", ten: "M̅"},
	{one: "X̅", five: "L̅", ten: "C̅"},
	{one: "M", five: "V̅", ten: "X̅"},
	{one: "C", five: "D", ten: "M"},
	{one: "X", five: "L", ten: "C"},
	{one: "I", five: "V", ten: "X"},
}

const maxRepeat = 3

// wellFormed reports whether s is accepted by the tiered grammar. s must
// already be normalized.
func wellFormed(s string) bool {
	for _, t := range tiers {
		s = t.consume(s)
	}
	return s == ""
}

// consume strips the longest prefix of s that this tier accepts. No later
// tier begins with a symbol of an earlier one, so taking the first matching
// alternative never has to be undone.
func (t tier) consume(s string) string {
	if t.ten != "" && hasSymbol(s, t.one+t.ten) {
		return s[len(t.one)+len(t.ten):]
	}
	if t.five != "" && hasSymbol(s, t.one+t.five) {
		return s[len(t.one)+len(t.five):]
	}
	if t.five != "" && hasSymbol(s, t.five) {
		s = s[len(t.five):]
	}
	for i := 0; i < maxRepeat && hasSymbol(s, t.one); i++ {
		s = s[len(t.one):]
	}
	return s
}
