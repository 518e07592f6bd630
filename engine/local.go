package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Local struct {
	State    *game.Position
	Agents   [2]agent.Agent // indexed by game.Side
	MaxTurns int
}

var _ Engine = (*Local)(nil)

// LocalEngine sets up a game from the standard opening with black to move.
func LocalEngine(black, white agent.Agent) *Local {
	if black == nil || white == nil {
		panic("need an agent for both sides")
	}
	return &Local{
		State:    game.NewPosition(),
		Agents:   [2]agent.Agent{black, white},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop. The winner is "black", "white" or "" for a draw.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	side := game.Black
	gameMetric := metrics.GameMetric{
		StartingPlayer: side.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", side)

	for turn := 1; !e.State.IsDone() && turn <= e.MaxTurns; turn++ {
		move, metric := e.findMove(side)
		e.State.Apply(move, side)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side.String(),
			Pass:         move == nil,
			SearchMetric: metric,
		})
		if move == nil {
			gameMetric.Passes++
		} else {
			gameMetric.TotalMoves++
		}
		side = side.Opponent()
	}

	winner := ""
	if won, ok := e.State.Winner(); ok {
		winner = won.String()
	}
	if !e.State.IsDone() {
		log.Warn().Msgf("stopped after %d turns (game not over)", e.MaxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.BlackStones = e.State.CountBlack()
	gameMetric.WhiteStones = e.State.CountWhite()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	return winner, gameMetric, moveMetrics
}

// findMove asks side's agent for a move on a copy of the board. Errors and
// illegal moves fall back to the first legal move.
func (e *Local) findMove(side game.Side) (*game.Move, metrics.SearchMetric) {
	move, metric, err := e.Agents[side].FindMove(e.State.Copy(), side)
	if err == nil && e.State.IsLegal(move, side) {
		return move, metric
	}

	if err != nil {
		log.Warn().Err(err).Msgf("%s agent failed, forcing a fallback move", side)
	} else {
		log.Warn().Msgf("%s agent returned an illegal move, forcing a fallback move", side)
	}
	moves := e.State.LegalMoves(side)
	if len(moves) == 0 {
		return nil, metric
	}
	return &moves[0], metric
}
