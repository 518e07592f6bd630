package searcher

import (
	"fmt"
	"math"
	"othello/game"
)

// choose returns side's move that maximizes its score once the opponent has
// answered with the reply that minimizes that same score. The opponent does
// not optimize its own evaluation. Each extra unit of depth extends the
// position every reply is judged on by one more own move and expected reply.
//
// Ties keep the first candidate in (x, y) scan order. pos is never modified.
func (s *Searcher) choose(pos *game.Position, side game.Side, depth int) (Choice, error) {
	if depth < 1 {
		return Choice{}, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}

	candidates := pos.LegalMoves(side)
	if len(candidates) == 0 {
		return Choice{}, nil
	}

	var best Choice
	maxScore := math.MinInt
	for i := range candidates {
		move := &candidates[i]
		s.metrics.AddNode()

		board := s.copy(pos)
		board.Apply(move, side)

		reply, err := s.worstReply(board, side, depth)
		if err != nil {
			return Choice{}, err
		}
		board.Apply(reply, side.Opponent())

		score := s.score(board, side)
		s.observer.OnCandidate(depth, *move, reply, score)
		if score > maxScore {
			maxScore = score
			best = Choice{Move: move, Reply: reply}
		}
	}
	return best, nil
}

// worstReply returns the opponent reply on board that leaves side with the
// lowest score, or nil when the opponent has to pass.
func (s *Searcher) worstReply(board *game.Position, side game.Side, depth int) (*game.Move, error) {
	other := side.Opponent()
	replies := board.LegalMoves(other)

	var worst *game.Move
	minScore := math.MaxInt
	for i := range replies {
		reply := &replies[i]

		next := s.copy(board)
		next.Apply(reply, other)
		if depth > 1 {
			cont, err := s.choose(next, side, depth-1)
			if err != nil {
				return nil, err
			}
			next.Apply(cont.Move, side)
			next.Apply(cont.Reply, other)
		}

		score := s.score(next, side)
		s.observer.OnReply(depth, *reply, score)
		if score < minScore {
			minScore = score
			worst = reply
		}
	}
	return worst, nil
}

func (s *Searcher) copy(pos *game.Position) *game.Position {
	s.metrics.AddCopy()
	return pos.Copy()
}

func (s *Searcher) score(pos *game.Position, side game.Side) int {
	s.metrics.AddLeaf()
	return s.evaluate(pos, side)
}
