package searcher

import (
	"othello/game"

	"github.com/rs/zerolog"
)

// Observer receives the search's intermediate decisions. Calls arrive from
// the searching goroutine in evaluation order.
type Observer interface {
	OnReply(depth int, reply game.Move, score int)
	OnCandidate(depth int, move game.Move, reply *game.Move, score int)
	OnChoice(side game.Side, choice Choice)
}

type NopObserver struct{}

func (NopObserver) OnReply(int, game.Move, int)                 {}
func (NopObserver) OnCandidate(int, game.Move, *game.Move, int) {}
func (NopObserver) OnChoice(game.Side, Choice)                  {}

// LogObserver writes every decision to a zerolog logger at debug level.
type LogObserver struct {
	logger zerolog.Logger
}

func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnReply(depth int, reply game.Move, score int) {
	o.logger.Debug().
		Int("depth", depth).
		Stringer("reply", reply).
		Int("score", score).
		Msg("opponent could try")
}

func (o *LogObserver) OnCandidate(depth int, move game.Move, reply *game.Move, score int) {
	o.logger.Debug().
		Int("depth", depth).
		Stringer("move", move).
		Str("reply", moveString(reply)).
		Int("score", score).
		Msg("considered move")
}

func (o *LogObserver) OnChoice(side game.Side, choice Choice) {
	o.logger.Debug().
		Stringer("side", side).
		Str("move", moveString(choice.Move)).
		Str("reply", moveString(choice.Reply)).
		Msg("chose move")
}
