package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func single(side Side, x, y int) *Position {
	p := &Position{}
	p.set(side, x, y)
	return p
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		side  Side
		x, y  int
		score int
	}{
		{"black corner", Black, 0, 0, 10},
		{"white corner", White, 7, 7, 3},
		{"black C-square", Black, 1, 0, -3},
		{"white C-square", White, 0, 6, -4},
		{"black edge", Black, 3, 0, 3},
		{"white edge", White, 7, 3, 2},
		{"black X-square", Black, 1, 1, -10},
		{"white X-square", White, 6, 6, -10},
		{"black interior", Black, 4, 2, 1},
		{"white interior", White, 4, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := single(tt.side, tt.x, tt.y)
			require.Equal(t, tt.score, p.Score(tt.side))
			require.Equal(t, tt.score, PositionalScore(p, tt.side))
			require.Equal(t, 0, p.Score(tt.side.Opponent()), "Opponent owns nothing")
		})
	}
}

func TestUnifiedScore(t *testing.T) {
	t.Run("white is scored with black's weights", func(t *testing.T) {
		require.Equal(t, 10, UnifiedScore(single(White, 0, 0), White))
		require.Equal(t, -3, UnifiedScore(single(White, 1, 0), White))
		require.Equal(t, 3, UnifiedScore(single(White, 3, 0), White))
	})

	t.Run("black is unchanged", func(t *testing.T) {
		p := MustParsePosition(`
			b.......
			.b......
			..b.....
			...b....
			....b...
			.....b..
			......b.
			.......b`)
		require.Equal(t, p.Score(Black), UnifiedScore(p, Black))
	})
}

func TestStoneCount(t *testing.T) {
	p := NewPosition()
	require.Equal(t, 2, StoneCount(p, Black))
	require.Equal(t, 2, StoneCount(p, White))
	require.Equal(t, 2, p.Score(Black), "Center stones carry no positional weight")
}

func TestEvaluationByName(t *testing.T) {
	p := single(White, 0, 0)
	for name, want := range map[string]int{"positional": 3, "unified": 10, "count": 1} {
		evaluate, err := EvaluationByName(name)
		require.NoError(t, err)
		require.Equal(t, want, evaluate(p, White), "Evaluation %s", name)
	}

	_, err := EvaluationByName("mobility")
	require.Error(t, err)
}
