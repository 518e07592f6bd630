package player

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

var ErrIllegalMove = errors.New("illegal move")

type Option func(p *Player)

// Player keeps its own copy of the board and answers each opponent move with
// one of its own.
type Player struct {
	board     *game.Position
	us        game.Side
	them      game.Side
	depth     int
	lowTimeMs int
	lowDepth  int
	options   []searcher.Option
	searcher  *searcher.Searcher
}

func WithDepth(depth int) Option {
	return func(p *Player) {
		p.depth = depth
	}
}

// WithLowTimeDepth searches at depth instead once less than thresholdMs remain.
func WithLowTimeDepth(thresholdMs, depth int) Option {
	return func(p *Player) {
		p.lowTimeMs = thresholdMs
		p.lowDepth = depth
	}
}

// WithPosition starts from p instead of the standard opening. The player keeps
// its own copy.
func WithPosition(pos *game.Position) Option {
	return func(p *Player) {
		p.board = pos.Copy()
	}
}

// WithSearcherOptions passes extra options, such as an observer, to the searcher.
func WithSearcherOptions(options ...searcher.Option) Option {
	return func(p *Player) {
		p.options = append(p.options, options...)
	}
}

// NewPlayer creates a player for side. It panics if a configured depth is below 1.
func NewPlayer(side game.Side, options ...Option) *Player {
	p := &Player{
		board:     game.NewPosition(),
		us:        side,
		them:      side.Opponent(),
		depth:     meta.DEFAULT_DEPTH,
		lowTimeMs: meta.LOW_TIME_MS,
		lowDepth:  meta.LOW_TIME_DEPTH,
	}
	for _, option := range options {
		option(p)
	}
	if p.lowDepth < 1 {
		panic(fmt.Errorf("%w: low time depth %d", searcher.ErrInvalidDepth, p.lowDepth))
	}
	p.searcher = searcher.NewSearcher(append([]searcher.Option{searcher.WithDepth(p.depth)}, p.options...)...)
	return p
}

func (p *Player) Side() game.Side {
	return p.us
}

// Position returns a copy of the player's board.
func (p *Player) Position() *game.Position {
	return p.board.Copy()
}

// ReportOpponentMove records the opponent's move. nil means the opponent
// passed or that this is the first move of the game.
func (p *Player) ReportOpponentMove(m *game.Move) error {
	if m == nil {
		return nil
	}
	if !p.board.IsLegal(m, p.them) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, p.them)
	}
	p.board.Apply(m, p.them)
	log.Debug().Stringer("move", m).Msg("opponent made a move")
	return nil
}

// ChooseOwnMove searches the board, plays the chosen move and returns it, or
// nil to pass. msLeft is the time left for the whole game; -1 means no limit.
func (p *Player) ChooseOwnMove(msLeft int) (*game.Move, error) {
	depth := p.depthFor(msLeft)
	choice, _, err := p.searcher.FindMoveAt(p.board, p.us, depth)
	if err != nil {
		return nil, err
	}
	if choice.Move == nil {
		log.Debug().Stringer("side", p.us).Msg("no valid move, passing")
		return nil, nil
	}
	p.board.Apply(choice.Move, p.us)
	log.Debug().Stringer("move", choice.Move).Int("depth", depth).Msg("doing move")
	return choice.Move, nil
}

// DoMove reports the opponent's move, then chooses and plays our own.
func (p *Player) DoMove(opponentsMove *game.Move, msLeft int) (*game.Move, error) {
	if err := p.ReportOpponentMove(opponentsMove); err != nil {
		return nil, err
	}
	return p.ChooseOwnMove(msLeft)
}

func (p *Player) depthFor(msLeft int) int {
	if msLeft >= 0 && msLeft < p.lowTimeMs {
		return p.lowDepth
	}
	return p.depth
}
