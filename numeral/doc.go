// Package numeral converts between Roman numerals and integers.
//
// Besides the classical symbols I, V, X, L, C, D and M the package accepts the
// vinculum notation for large values: a combining overline (U+0305) after a
// letter multiplies it by 1000, so "V̅" is 5,000 and "M̅" is 1,000,000. The
// supported range is [1, 3,999,999].
//
// One immutable symbol table drives both directions. Parse validates input
// against a tiered grammar before reducing it greedily over the table; Format
// emits the greedy largest-first encoding, which is the canonical form.
//
// Every function is pure and safe for concurrent use.
//
// Usage:
//
//	n, err := numeral.Parse("x̅iv")   // 10,004
//	s, err := numeral.Format(1994)    // "MCMXCIV"
//	switch numeral.Classify(input) {
//	case numeral.Roman:
//	    ...
//	}
package numeral
