package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

type color int

const (
	red color = iota
	green
)

func (c color) String() string {
	if c == red {
		return "RED"
	}
	return "GREEN"
}

func TestEmpty(t *testing.T) {
	tok := Empty()
	require.Equal(t, "", tok.Hint())

	_, ok := tok.Accept("")
	require.False(t, ok)
}

func TestText(t *testing.T) {
	v, ok := Text().Convert("anything at all")
	require.True(t, ok)
	require.Equal(t, "anything at all", v)
	require.Equal(t, "Text", Text().Hint())
}

func TestTextFunc(t *testing.T) {
	tok := TextFunc(func(s string) bool { return len(s) > 0 && s[0] == '#' })

	_, ok := tok.Convert("#general")
	require.True(t, ok)
	_, ok = tok.Convert("general")
	require.False(t, ok)
}

func TestTextLen(t *testing.T) {
	tok := TextLen(2, 4)

	require.Equal(t, "Text(Length: 2..4)", tok.Hint())

	tests := []struct {
		input string
		want  bool
	}{
		{"a", false},
		{"ab", true},
		{"abcd", true},
		{"abcde", false},
		{"ñññ", true},
	}
	for _, tt := range tests {
		_, ok := tok.Convert(tt.input)
		require.Equal(t, tt.want, ok, "input %q", tt.input)
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name       string
		ignoreCase bool
		input      string
		accept     bool
	}{
		{"exact", false, "locale", true},
		{"case differs, sensitive", false, "LOCALE", false},
		{"case differs, insensitive", true, "LOCALE", true},
		{"different word", true, "path", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Literal("locale", tt.ignoreCase).Convert(tt.input)
			require.Equal(t, tt.accept, ok)
		})
	}
}

func TestLiteral_Suggest(t *testing.T) {
	require.Equal(t, "locale", Literal("locale", true).Hint())
	require.Equal(t, []string{"locale"}, Literal("locale", true).Suggest(""))
	require.Equal(t, []string{"locale"}, Literal("locale", true).Suggest("LO"))
	require.Empty(t, Literal("locale", false).Suggest("LO"))
	require.Empty(t, Literal("locale", true).Suggest("pa"))
}

func TestOneOf(t *testing.T) {
	tok := OneOf(true, "debug", "info", "warn")

	require.Equal(t, "debug|info|warn", tok.Hint())
	require.Equal(t, []string{"debug", "info", "warn"}, tok.Suggest(""))
	require.Equal(t, []string{"warn"}, tok.Suggest("W"))

	v, ok := tok.Convert("INFO")
	require.True(t, ok)
	require.Equal(t, "info", v)

	_, ok = OneOf(false, "debug").Convert("DEBUG")
	require.False(t, ok)
}

func TestOneOfFunc_ReadsEntriesOnEveryUse(t *testing.T) {
	entries := []string{"a"}
	tok := OneOfFunc(true, func() []string { return entries })

	_, ok := tok.Convert("b")
	require.False(t, ok)

	entries = append(entries, "b")
	_, ok = tok.Convert("b")
	require.True(t, ok)
	require.Equal(t, "a|b", tok.Hint())
}

func TestEnum(t *testing.T) {
	tok := Enum(red, green)

	require.Equal(t, "RED|GREEN", tok.Hint())
	require.Equal(t, []string{"RED", "GREEN"}, tok.Suggest("g"))

	v, ok := tok.Convert("green")
	require.True(t, ok)
	require.Equal(t, green, v)

	_, ok = tok.Convert("blue")
	require.False(t, ok)
}

func TestBool(t *testing.T) {
	tests := []struct {
		input  string
		want   bool
		accept bool
	}{
		{"true", true, true},
		{"T", true, true},
		{"yes", true, true},
		{"On", true, true},
		{"false", false, true},
		{"f", false, true},
		{"NO", false, true},
		{"off", false, true},
		{"1", false, false},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		v, ok := Bool().Convert(tt.input)
		require.Equal(t, tt.accept, ok, "input %q", tt.input)
		if ok {
			require.Equal(t, tt.want, v, "input %q", tt.input)
		}
	}

	require.Equal(t, []string{"true", "false"}, Bool().Suggest("x"))
}

func TestInt(t *testing.T) {
	tests := []struct {
		name   string
		radix  int
		input  string
		want   int
		accept bool
	}{
		{"decimal", 10, "42", 42, true},
		{"negative", 10, "-7", -7, true},
		{"explicit plus", 10, "+7", 7, true},
		{"hex", 16, "ff", 255, true},
		{"hex upper", 16, "FF", 255, true},
		{"hex prefix rejected", 16, "0xff", 0, false},
		{"binary", 2, "101", 5, true},
		{"binary rejects 2", 2, "2", 0, false},
		{"not a number", 10, "abc", 0, false},
		{"float rejected", 10, "1.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Int(tt.radix).Convert(tt.input)
			require.Equal(t, tt.accept, ok)
			if ok {
				require.Equal(t, tt.want, v)
			}
		})
	}
}

func TestInt_Hint(t *testing.T) {
	require.Equal(t, "Int", Int(10).Hint())
	require.Equal(t, "Int(Hex)", Int(16).Hint())
	require.Equal(t, "Int(radix=8)", Int(8).Hint())
}

func TestInt_InvalidRadixPanics(t *testing.T) {
	require.Panics(t, func() { Int(1) })
	require.Panics(t, func() { IntRange(37, 0, 1) })
}

func TestIntRange(t *testing.T) {
	tok := IntRange(16, 16, 255)

	require.Equal(t, "Int(radix=16, 16..255)", tok.Hint())
	require.Equal(t, []string{"10", "ff"}, tok.Suggest(""))

	v, ok := tok.Convert("1f")
	require.True(t, ok)
	require.Equal(t, 31, v)

	_, ok = tok.Convert("f")
	require.False(t, ok, "below range")
	_, ok = tok.Convert("100")
	require.False(t, ok, "above range")
}

func TestFloat(t *testing.T) {
	v, ok := Float().Convert("2.5")
	require.True(t, ok)
	require.InDelta(t, 2.5, v, 1e-9)

	_, ok = Float().Convert("two")
	require.False(t, ok)
	require.Equal(t, "Float", Float().Hint())
}

func TestFloatRange(t *testing.T) {
	tok := FloatRange(0, 1.5)

	require.Equal(t, "Float(0..1.5)", tok.Hint())
	require.Equal(t, []string{"0", "1.5"}, tok.Suggest(""))

	_, ok := tok.Convert("1.5")
	require.True(t, ok)
	_, ok = tok.Convert("1.6")
	require.False(t, ok)
	_, ok = tok.Convert("NaN")
	require.False(t, ok)
	_, ok = tok.Convert("-0.1")
	require.False(t, ok)
}

func TestRegex(t *testing.T) {
	tok := Regex(regexp.MustCompile(`(\w+)@(\w+)`))

	require.Equal(t, `Regex((\w+)@(\w+))`, tok.Hint())

	m, ok := tok.Convert("mail: ada@example")
	require.True(t, ok)
	require.Equal(t, "ada@example", m.Text)
	require.Equal(t, []string{"ada@example", "ada", "example"}, m.Groups)
	require.Equal(t, 6, m.Start)
	require.Equal(t, 17, m.End)

	_, ok = tok.Convert("nobody")
	require.False(t, ok)
}

func TestRegex_UnmatchedOptionalGroupIsEmpty(t *testing.T) {
	m, ok := Regex(regexp.MustCompile(`a(b)?`)).Convert("a")
	require.True(t, ok)
	require.Equal(t, []string{"a", ""}, m.Groups)
}
