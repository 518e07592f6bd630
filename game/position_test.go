package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	require.Equal(t, 2, p.CountBlack(), "Black should start with two stones")
	require.Equal(t, 2, p.CountWhite(), "White should start with two stones")
	require.Equal(t, 60, p.Empty(), "Only the center should be occupied")
	require.True(t, p.Get(Black, 4, 3))
	require.True(t, p.Get(Black, 3, 4))
	require.True(t, p.Get(White, 3, 3))
	require.True(t, p.Get(White, 4, 4))
	require.False(t, p.IsDone(), "Game should not be over at the start")
}

func TestGet(t *testing.T) {
	p := NewPosition()

	require.False(t, p.Get(Black, 0, 0), "Empty cell is owned by nobody")
	require.False(t, p.Get(White, 0, 0), "Empty cell is owned by nobody")
	require.False(t, p.Get(White, 4, 3), "Black stone is not white")
	require.False(t, p.Occupied(-1, 0), "Off-board cells are never occupied")
	require.False(t, p.Occupied(8, 8), "Off-board cells are never occupied")
}

func TestLegalMoves(t *testing.T) {
	t.Run("initial position has four moves next to the center", func(t *testing.T) {
		p := NewPosition()

		require.Equal(t, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, p.LegalMoves(Black))
		require.Len(t, p.LegalMoves(White), 4)
	})

	t.Run("occupied and off-board cells are illegal", func(t *testing.T) {
		p := NewPosition()

		require.False(t, p.IsLegal(NewMove(3, 3), Black), "Occupied cell")
		require.False(t, p.IsLegal(NewMove(-1, 3), Black), "Off the board")
		require.False(t, p.IsLegal(&Sentinel, Black), "Sentinel is not a pass")
		require.False(t, p.IsLegal(NewMove(0, 0), Black), "No capture from a far cell")
	})

	t.Run("run into an empty cell or off the board does not capture", func(t *testing.T) {
		p := MustParsePosition(`
			.ww.b...
			........
			........
			........
			........
			........
			........
			........`)

		require.False(t, p.IsLegal(NewMove(0, 0), Black), "Run ends on an empty cell")
		require.False(t, p.IsLegal(NewMove(3, 0), Black), "Run westward ends on an empty cell")
		require.Empty(t, p.LegalMoves(Black))
	})

	t.Run("forced pass", func(t *testing.T) {
		p := MustParsePosition(`
			wb......
			........
			........
			........
			........
			........
			........
			........`)

		require.False(t, p.HasMoves(Black), "Black should have no move")
		require.True(t, p.IsLegal(nil, Black), "Passing is legal without moves")
		require.True(t, p.HasMoves(White), "White can capture at (2, 0)")
		require.False(t, p.IsLegal(nil, White), "Passing is illegal with moves")
		require.Equal(t, []Move{{2, 0}}, p.LegalMoves(White))
		require.False(t, p.IsDone(), "Game continues while white can move")
	})
}

func TestApply(t *testing.T) {
	t.Run("single empty cell flips exactly one run", func(t *testing.T) {
		p := MustParsePosition(`
			.wwwbbbb
			bbbbbbbb
			bbbbbbbb
			bbbbbbbb
			bbbbbbbb
			bbbbbbbb
			bbwbbbbb
			wwwwwwww`)
		require.Equal(t, 51, p.CountBlack())
		require.Equal(t, 12, p.CountWhite())

		p.Apply(NewMove(0, 0), Black)

		require.Equal(t, 55, p.CountBlack(), "Move and three captured stones")
		require.Equal(t, 9, p.CountWhite(), "Exactly three stones flipped")
		for x := 0; x < 4; x++ {
			require.True(t, p.Get(Black, x, 0), "Top row run should be black")
		}
		require.True(t, p.Get(White, 2, 6), "Unrelated white stone stays")
		require.True(t, p.IsDone(), "Board is full")
	})

	t.Run("flips in several directions", func(t *testing.T) {
		p := NewPosition()
		p.Apply(NewMove(2, 3), Black)
		p.Apply(NewMove(2, 2), White)
		p.Apply(NewMove(3, 2), Black)

		require.Equal(t, `........
........
..wb....
..bbb...
...bw...
........
........
........
`, p.String())
	})

	t.Run("pass and illegal moves are no-ops", func(t *testing.T) {
		p := NewPosition()
		before := *p

		p.Apply(nil, Black)
		require.Equal(t, before, *p, "Pass should not change the position")

		p.Apply(NewMove(0, 0), Black)
		require.Equal(t, before, *p, "Illegal move should not change the position")

		p.Apply(NewMove(3, 3), Black)
		require.Equal(t, before, *p, "Occupied cell should not change the position")
	})
}

func TestCopy(t *testing.T) {
	p := NewPosition()
	c := p.Copy()

	c.Apply(NewMove(2, 3), Black)
	c.set(White, 0, 0)

	require.Equal(t, 2, p.CountBlack(), "Original black count should not change")
	require.Equal(t, 2, p.CountWhite(), "Original white count should not change")
	require.False(t, p.Occupied(2, 3), "Original should not see the copy's move")
	require.False(t, p.Occupied(0, 0), "Original should not see the copy's stone")
	require.Equal(t, NewPosition().String(), p.String())
}

func TestWinner(t *testing.T) {
	p := MustParsePosition("bbw" + repeat('.', 61))
	side, ok := p.Winner()
	require.True(t, ok)
	require.Equal(t, Black, side)

	p = MustParsePosition("bw" + repeat('.', 62))
	_, ok = p.Winner()
	require.False(t, ok, "Equal counts are a draw")
}

// Random playouts check properties that must hold in every reachable position.
func TestRandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for game := 0; game < 50; game++ {
		p := NewPosition()
		side := Black
		plies := 0
		for !p.IsDone() {
			require.LessOrEqual(t, plies, 60, "A game places at most 60 stones")

			for x := 0; x < Size; x++ {
				for y := 0; y < Size; y++ {
					m := NewMove(x, y)
					c := p.Copy()
					c.Apply(m, side)
					captured := c.Count(side.Opponent()) < p.Count(side.Opponent())
					require.Equal(t, p.IsLegal(m, side), captured,
						"Move %v should be legal iff it captures", m)
				}
			}

			moves := p.LegalMoves(side)
			if len(moves) == 0 {
				require.True(t, p.IsLegal(nil, side))
				before := *p
				p.Apply(nil, side)
				require.Equal(t, before, *p)
				side = side.Opponent()
				continue
			}

			total := p.CountBlack() + p.CountWhite()
			m := moves[rng.Intn(len(moves))]
			p.Apply(&m, side)
			require.Equal(t, total+1, p.CountBlack()+p.CountWhite(), "Each move adds exactly one stone")
			require.Zero(t, p.black&^p.taken, "Black stones must be occupied cells")

			side = side.Opponent()
			plies++
		}
		require.False(t, p.HasMoves(Black))
		require.False(t, p.HasMoves(White))
	}
}

func repeat(r byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = r
	}
	return string(b)
}
