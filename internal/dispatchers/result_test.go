package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcceptResult_Score(t *testing.T) {
	tests := []struct {
		name   string
		result AcceptResult
		want   int
	}{
		{"ok", Ok{}, 1},
		{"matched", Matched{}, 1},
		{"self matched", NotMatched{SelfMatches: true}, -1},
		{"rejected", NotMatched{SelfMatches: false}, -2},
		{"inapplicable", Inapplicable{}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.result.Score())
		})
	}
}

func TestIsSuccess(t *testing.T) {
	require.True(t, IsSuccess(Ok{}))
	require.True(t, IsSuccess(Matched{}))
	require.False(t, IsSuccess(NotMatched{SelfMatches: true}))
	require.False(t, IsSuccess(Inapplicable{}))
}

func TestBetter(t *testing.T) {
	deep := NotMatched{SelfMatches: true, Current: "deep"}
	shallow := NotMatched{SelfMatches: true, Current: "shallow"}
	rejected := NotMatched{Current: "rejected"}

	require.Equal(t, Ok{Value: 1}, Better(rejected, Ok{Value: 1}))
	require.Equal(t, deep, Better(rejected, deep))
	require.Equal(t, deep, Better(deep, rejected))
	require.Equal(t, deep, Better(deep, shallow), "ties keep the first result")
	require.Equal(t, Inapplicable{}, Better(Inapplicable{}, rejected), "ties keep the first result")
	require.Equal(t, rejected, Better(rejected, Inapplicable{}))
}
