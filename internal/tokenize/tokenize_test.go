package tokenize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple command without quotes",
			input: "/set locale en_us",
			want:  []string{"/set", "locale", "en_us"},
		},
		{
			name:  "quoted argument",
			input: `/set path "my path"`,
			want:  []string{"/set", "path", "my path"},
		},
		{
			name:  "unclosed quote",
			input: `/set path "path`,
			want:  []string{"/set", "path", "path"},
		},
		{
			name:  "consecutive spaces",
			input: "/set   locale  en_us",
			want:  []string{"/set", "locale", "en_us"},
		},
		{
			name:  "single word",
			input: "/set",
			want:  []string{"/set"},
		},
		{
			name:  "escaped quote inside quotes",
			input: `/set message "He said: \"Hello!\""`,
			want:  []string{"/set", "message", `He said: "Hello!"`},
		},
		{
			name:  "escaped quote outside quotes",
			input: `say \"hi\" there`,
			want:  []string{"say", `"hi"`, "there"},
		},
		{
			name:  "quote glued to a word",
			input: `pre"fix"`,
			want:  []string{"prefix"},
		},
		{
			name:  "tabs and newlines separate tokens",
			input: "a\tb\nc",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "leading and trailing whitespace",
			input: "   /add 1 2   ",
			want:  []string{"/add", "1", "2"},
		},
		{
			name:  "unicode is preserved",
			input: `/echo "héllo wörld" ✓`,
			want:  []string{"/echo", "héllo wörld", "✓"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Split(tt.input))
		})
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	require.Empty(t, Split(""))
	require.Empty(t, Split("   "))
}

// An explicitly empty quoted argument is dropped: the accumulator is only
// flushed when it holds something. Kept as a known limitation.
func TestSplit_EmptyQuotedArgumentIsDropped(t *testing.T) {
	require.Empty(t, Split(`""`))
	require.Equal(t, []string{"a", "b"}, Split(`a "" b`))
}

func TestPartial(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantTokens  []string
		wantCurrent string
	}{
		{
			name:        "empty line",
			input:       "",
			wantTokens:  []string{""},
			wantCurrent: "",
		},
		{
			name:        "typing first word",
			input:       "/se",
			wantTokens:  []string{"/se"},
			wantCurrent: "/se",
		},
		{
			name:        "typing second word",
			input:       "/set lo",
			wantTokens:  []string{"/set", "lo"},
			wantCurrent: "lo",
		},
		{
			name:        "trailing space opens a new slot",
			input:       "/set ",
			wantTokens:  []string{"/set", ""},
			wantCurrent: "",
		},
		{
			name:        "space inside an open quote stays in the word",
			input:       `/set path "my `,
			wantTokens:  []string{"/set", "path", "my "},
			wantCurrent: "my ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, current := Partial(tt.input)
			require.Equal(t, tt.wantTokens, tokens)
			require.Equal(t, tt.wantCurrent, current)
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"locale", "locale"},
		{"my path", `"my path"`},
		{`say "hi"`, `"say \"hi\""`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Quote(tt.in)
			require.Equal(t, tt.want, got)
			if tt.in != "" {
				require.Equal(t, []string{tt.in}, Split(got), "quoted word splits back to itself")
			}
		})
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name string
		line string
		word string
		want string
	}{
		{"empty line", "", "/set", "/set "},
		{"partial name", "/se", "/set", "/set "},
		{"fresh slot", "/set ", "locale", "/set locale "},
		{"partial argument", "/set lo", "locale", "/set locale "},
		{"keeps inner spacing", "/set   lo", "locale", "/set   locale "},
		{"open quote", `/set path "my d`, "my docs", `/set path "my docs" `},
		{"closed quote", `/set path "my d"`, "my docs", `/set path "my docs" `},
		{"quoted word after space", `/echo "a b" c`, "cat", `/echo "a b" cat `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Complete(tt.line, tt.word))
		})
	}
}
