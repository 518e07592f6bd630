package searcher

import (
	"errors"
	"othello/experiments/metrics"
	"othello/game"
)

var ErrInvalidDepth = errors.New("search depth must be at least 1")

// Choice is the outcome of a search. A nil Move means the side must pass; a
// nil Reply means the opponent is expected to pass.
type Choice struct {
	Move  *game.Move
	Reply *game.Move
}

func (c Choice) String() string {
	return moveString(c.Move) + " expecting " + moveString(c.Reply)
}

func moveString(m *game.Move) string {
	if m == nil {
		return "pass"
	}
	return m.String()
}

type Option func(s *Searcher)

type Searcher struct {
	depth    int
	evaluate game.Evaluate
	observer Observer
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		s.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(s *Searcher) {
		if observer != nil {
			s.observer = observer
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:    1,
		evaluate: game.PositionalScore,
		observer: NopObserver{},
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.depth < 1 {
		panic(ErrInvalidDepth)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// FindMove searches pos for side at the configured depth.
func (s *Searcher) FindMove(pos *game.Position, side game.Side) (Choice, metrics.SearchMetric, error) {
	return s.FindMoveAt(pos, side, s.depth)
}

// FindMoveAt searches pos for side at the given depth instead of the
// configured one.
func (s *Searcher) FindMoveAt(pos *game.Position, side game.Side, depth int) (Choice, metrics.SearchMetric, error) {
	s.metrics.Start(depth)
	choice, err := s.choose(pos, side, depth)
	metric := s.metrics.Complete()
	if err != nil {
		return Choice{}, metric, err
	}
	s.observer.OnChoice(side, choice)
	return choice, metric, nil
}

// ChooseMove searches pos for side with the positional score and no observer.
func ChooseMove(pos *game.Position, side game.Side, depth int) (Choice, error) {
	s := &Searcher{
		depth:    depth,
		evaluate: game.PositionalScore,
		observer: NopObserver{},
		metrics:  metrics.NewDummyCollector(),
	}
	return s.choose(pos, side, depth)
}
