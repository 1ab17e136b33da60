package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "identical strings",
			a:    "track",
			b:    "track",
			want: 0,
		},
		{
			name: "one character difference",
			a:    "track",
			b:    "tracky",
			want: 1,
		},
		{
			name: "typo - transposition",
			a:    "track",
			b:    "tarck",
			want: 2,
		},
		{
			name: "typo - substitution",
			a:    "status",
			b:    "stauts",
			want: 2,
		},
		{
			name: "completely different",
			a:    "track",
			b:    "xyz123",
			want: 6,
		},
		{
			name: "empty string a",
			a:    "",
			b:    "track",
			want: 5,
		},
		{
			name: "empty string b",
			a:    "track",
			b:    "",
			want: 5,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "case insensitive",
			a:    "TRACK",
			b:    "track",
			want: 0,
		},
		{
			name: "missing letter",
			a:    "config",
			b:    "confg",
			want: 1,
		},
		{
			name: "extra letter",
			a:    "config",
			b:    "confiig",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levenshtein(tt.a, tt.b)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLevenshtein_CountsRunesNotBytes(t *testing.T) {
	require.Equal(t, 1, levenshtein("ñu", "nu"))
}

func TestFindSimilarCommands(t *testing.T) {
	names := []string{"track", "status", "config", "version", "check", "list", "help"}

	tests := []struct {
		name       string
		input      string
		maxResults int
		want       []string
	}{
		{
			name:       "typo tracky suggests track",
			input:      "tracky",
			maxResults: 3,
			want:       []string{"track"},
		},
		{
			name:       "typo stauts suggests status",
			input:      "stauts",
			maxResults: 3,
			want:       []string{"status"},
		},
		{
			name:       "typo confg suggests config",
			input:      "confg",
			maxResults: 3,
			want:       []string{"config"},
		},
		{
			name:       "typo chek suggests check",
			input:      "chek",
			maxResults: 3,
			want:       []string{"check", "help"}, // both are within distance 3
		},
		{
			name:       "completely different returns nothing",
			input:      "xyz123",
			maxResults: 3,
			want:       []string{},
		},
		{
			name:       "exact match is skipped",
			input:      "track",
			maxResults: 3,
			want:       []string{"check"}, // "check" is within distance 3 of "track"
		},
		{
			name:       "very short input returns nothing",
			input:      "c",
			maxResults: 3,
			want:       []string{},
		},
		{
			name:       "results are capped",
			input:      "chek",
			maxResults: 1,
			want:       []string{"check"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSimilarCommands(tt.input, names, tt.maxResults)

			if len(tt.want) == 0 {
				require.Empty(t, got)
			} else {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFindSimilarCommands_SortedByDistance(t *testing.T) {
	// trak -> track (distance 1)
	// trak -> task (distance 2)
	got := FindSimilarCommands("trak", []string{"version", "task", "track"}, 3)

	require.Equal(t, []string{"track", "task"}, got)
}

func TestFindSimilarCommands_DuplicateNamesReportedOnce(t *testing.T) {
	got := FindSimilarCommands("/sett", []string{"/set", "/set", "/get"}, 3)

	require.Equal(t, []string{"/set", "/get"}, got)
}

func TestFindSimilarCommands_NoNames(t *testing.T) {
	require.Empty(t, FindSimilarCommands("track", nil, 3))
}
