package numeral

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/rome/errors"
)

const maxNumeral = "M̅M̅M̅C̅M̅X̅C̅MX̅CMXCIX"

var knownValues = []struct {
	n     int
	roman string
}{
	{1, "I"},
	{4, "IV"},
	{9, "IX"},
	{14, "XIV"},
	{40, "XL"},
	{90, "XC"},
	{400, "CD"},
	{900, "CM"},
	{1994, "MCMXCIV"},
	{3999, "MMMCMXCIX"},
	{4000, "MV̅"},
	{4999, "MV̅CMXCIX"},
	{5000, "V̅"},
	{6000, "V̅M"},
	{9000, "MX̅"},
	{9999, "MX̅CMXCIX"},
	{10000, "X̅"},
	{10004, "X̅IV"},
	{20000, "X̅X̅"},
	{40000, "X̅L̅"},
	{1010000, "M̅X̅"},
	{1234567, "M̅C̅C̅X̅X̅X̅MV̅DLXVII"},
	{3000000, "M̅M̅M̅"},
	{3999999, maxNumeral},
}

func TestFormat(t *testing.T) {
	for _, tt := range knownValues {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			got, err := Format(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.roman, got)
		})
	}
}

func TestFormatBounds(t *testing.T) {
	lo, hi := Range()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3999999, hi)

	assert.Equal(t, "I", MinNumeral())
	assert.Equal(t, maxNumeral, MaxNumeral())

	for _, n := range []int{0, -1, 4000000, math.MaxInt32} {
		_, err := Format(n)
		require.Error(t, err, "Format(%d)", n)
		assert.True(t, errors.Is(err, ErrOutOfRange), "Format(%d) = %v", n, err)
		assertOnlySentinel(t, err, ErrOutOfRange)
		assert.True(t, errors.IsInvalidInputError(err))
		assert.Contains(t, errors.Hint(err), "between 1 and 3999999")
	}
}

// assertOnlySentinel checks that err matches want and none of the other
// conversion sentinels.
func assertOnlySentinel(t *testing.T, err, want error) {
	t.Helper()
	for _, other := range []error{ErrEmptyInput, ErrMalformedNumeral, ErrNotInteger, ErrOutOfRange} {
		if other == want {
			continue
		}
		assert.False(t, errors.Is(err, other), "%v must not match %v", err, other)
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrEmptyInput, ErrMalformedNumeral, ErrNotInteger, ErrOutOfRange}
	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, errors.Is(a, b), "Is(%v, %v)", a, b)
		}
	}

	_, err := Parse("")
	assertOnlySentinel(t, err, ErrEmptyInput)
	_, err = Parse("IIII")
	assertOnlySentinel(t, err, ErrMalformedNumeral)
	_, err = Format(0)
	assertOnlySentinel(t, err, ErrOutOfRange)
	_, err = FormatValue("abc")
	assertOnlySentinel(t, err, ErrNotInteger)
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"42", 42},
		{"  -7px", -7},
		{"99999999999", 99999999999},
		{"99999999999999999999", math.MaxInt64},
		{"-99999999999999999999", math.MinInt64},
	}
	for _, tt := range tests {
		got, err := LeadingInt(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := LeadingInt("px")
	assertOnlySentinel(t, err, ErrNotInteger)
	assert.True(t, errors.IsInvalidInputError(err))
}

type label string

func (l label) String() string { return string(l) }

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    string
		wantErr error
	}{
		{"int", 14, "XIV", nil},
		{"int64", int64(1994), "MCMXCIV", nil},
		{"uint8", uint8(9), "IX", nil},
		{"uint64 huge", uint64(math.MaxUint64), "", ErrOutOfRange},
		{"float truncates", 3.7, "III", nil},
		{"negative float", -0.5, "", ErrOutOfRange},
		{"float32", float32(40), "XL", nil},
		{"huge float", 1e20, "", ErrOutOfRange},
		{"NaN", math.NaN(), "", ErrNotInteger},
		{"infinity", math.Inf(1), "", ErrNotInteger},
		{"string", "42", "XLII", nil},
		{"padded string", "  42", "XLII", nil},
		{"trailing garbage", "12px", "XII", nil},
		{"plus sign", "+5", "V", nil},
		{"minus sign", "-5", "", ErrOutOfRange},
		{"too many digits", "99999999999999999999", "", ErrOutOfRange},
		{"no digits", "abc", "", ErrNotInteger},
		{"sign only", "-", "", ErrNotInteger},
		{"empty string", "", "", ErrNotInteger},
		{"stringer", label("7"), "VII", nil},
		{"nil", nil, "", ErrNotInteger},
		{"struct", struct{}{}, "", ErrNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(tt.value)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assertOnlySentinel(t, err, tt.wantErr)
				assert.True(t, errors.IsInvalidInputError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	for _, tt := range knownValues {
		t.Run(tt.roman, func(t *testing.T) {
			got, err := Parse(tt.roman)
			require.NoError(t, err)
			assert.Equal(t, tt.n, got)
		})
	}
}

func TestParseLenientInput(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"xiv", 14},
		{"XIV", 14},
		{"XiV", 14},
		{"X I V", 14},
		{" xiv\n", 14},
		{"M-C-M-X-C-I-V", 1994},
		{"x̅iv", 10004},
		{"X1V", 15},
		{"X-I-V", 14},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"four ones", "IIII", ErrMalformedNumeral},
		{"repeated five", "VV", ErrMalformedNumeral},
		{"repeated fifty", "LL", ErrMalformedNumeral},
		{"repeated five hundred", "DD", ErrMalformedNumeral},
		{"bad subtraction IL", "IL", ErrMalformedNumeral},
		{"bad subtraction XM", "XM", ErrMalformedNumeral},
		{"ascending", "IIV", ErrMalformedNumeral},
		{"four thousands", "MMMM", ErrMalformedNumeral},
		{"four millions", "M̅M̅M̅M̅", ErrMalformedNumeral},
		{"repeated vinculum five", "V̅V̅", ErrMalformedNumeral},
		{"foreign letters", "ABC", ErrMalformedNumeral},
		{"leading overline", "̅X", ErrMalformedNumeral},
		{"double overline", "X̅̅", ErrMalformedNumeral},
		{"overlined ten after C", "CM̅", ErrMalformedNumeral},
		{"overlined one", "I̅", ErrMalformedNumeral},
		{"empty", "", ErrEmptyInput},
		{"whitespace", "   ", ErrEmptyInput},
		{"digits only", "1234", ErrEmptyInput},
		{"punctuation only", "!?.", ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "Parse(%q) = %v", tt.input, err)
			assertOnlySentinel(t, err, tt.wantErr)
			assert.True(t, errors.IsInvalidInputError(err))
			assert.NotEmpty(t, errors.Hint(err))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 997
	}
	for n := MinValue; n <= MaxValue; n += step {
		s, err := Format(n)
		if err != nil {
			t.Fatalf("Format(%d): %v", n, err)
		}
		got, err := Parse(s)
		if err != nil || got != n {
			t.Fatalf("Parse(%q) = %d, %v; want %d", s, got, err, n)
		}
	}
}

func TestFormatIsCanonical(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 991
	}
	for n := MinValue; n <= MaxValue; n += step {
		s := encode(n)
		tokens := tokenize(s)
		run := 1
		for i := 1; i < len(tokens); i++ {
			if tokens[i] == tokens[i-1] {
				run++
			} else {
				run = 1
			}
			if run > 3 {
				t.Fatalf("%d encodes as %q: %s repeated %d times", n, s, tokens[i], run)
			}
			if run > 1 && strings.Contains("VLD", tokens[i][:1]) {
				t.Fatalf("%d encodes as %q: %s repeated", n, s, tokens[i])
			}
		}
	}
}

// tokenize splits a numeral into letters, each with its overline if any.
func tokenize(s string) []string {
	var out []string
	for len(s) > 0 {
		n := 1
		if startsWithOverline(s[1:]) {
			n += len(string(Overline))
		}
		out = append(out, s[:n])
		s = s[n:]
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Notation
	}{
		{"XIV", Roman},
		{"xiv", Roman},
		{"IIII", Roman},
		{"M̅CM", Roman},
		{"42", Arabic},
		{"0", Arabic},
		{"12a", Invalid},
		{"", Invalid},
		{"X IV", Invalid},
		{"-5", Invalid},
		{"٣", Invalid},
		{"XIV1", Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestNotationString(t *testing.T) {
	assert.Equal(t, "roman", Roman.String())
	assert.Equal(t, "arabic", Arabic.String())
	assert.Equal(t, "invalid", Invalid.String())

	text, err := Arabic.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "arabic", string(text))
}

func TestSymbolsTable(t *testing.T) {
	table := Symbols()
	require.Len(t, table, 25)
	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i-1].Value, table[i].Value, "table must strictly descend at %d", i)
	}

	table[0] = Symbol{Value: 1, Numeral: "Z"}
	assert.Equal(t, "M̅", Symbols()[0].Numeral, "Symbols must return a copy")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "XIV", Normalize(" x.i-v "))
	assert.Equal(t, "X̅", Normalize("x̅"))
	assert.Equal(t, "ABC", Normalize("a b c 1"))
	assert.Equal(t, "", Normalize("123 !"))
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for n := 1 + offset; n < 5000; n += 8 {
				s, err := Format(n)
				assert.NoError(t, err)
				got, err := Parse(strings.ToLower(s))
				assert.NoError(t, err)
				assert.Equal(t, n, got)
			}
		}(w)
	}
	wg.Wait()
}

func ExampleParse() {
	n, err := Parse("mcmxciv")
	fmt.Println(n, err)
	// Output: 1994 <nil>
}

func ExampleFormat() {
	s, _ := Format(4000)
	fmt.Println(s)
	// Output: MV̅
}
