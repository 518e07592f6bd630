package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns side's move on pos, or nil to pass, with the search metrics (if collected)
	FindMove(pos *game.Position, side game.Side) (*game.Move, metrics.SearchMetric, error)
}

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's choice.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(pos *game.Position, side game.Side) (*game.Move, metrics.SearchMetric, error) {
	choice, metric, err := a.searcher.FindMove(pos, side)
	if err != nil {
		return nil, metric, err
	}
	return choice.Move, metric, nil
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(pos *game.Position, side game.Side) (*game.Move, metrics.SearchMetric, error) {
	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, nil
	}
	move := moves[a.rng.Intn(len(moves))]
	return &move, metrics.SearchMetric{}, nil
}
