package game

import (
	"fmt"
	"math/bits"
)

// Evaluate scores a position from side's point of view; higher is better for side.
type Evaluate func(p *Position, side Side) int

// Weights adjust the raw stone count by where the stones sit.
type Weights struct {
	Corner  int // bonus per corner
	Edge    int // bonus per non-corner edge cell, C-squares included
	CSquare int // penalty per edge cell next to a corner
	XSquare int // penalty per cell diagonal to a corner
}

const (
	cornerMask  uint64 = 1<<0 | 1<<7 | 1<<56 | 1<<63
	xSquareMask uint64 = 1<<9 | 1<<14 | 1<<49 | 1<<54
	cSquareMask uint64 = 1<<1 | 1<<6 | 1<<57 | 1<<62 | 1<<8 | 1<<15 | 1<<48 | 1<<55
	edgeMask    uint64 = 0x7e | 0x7e<<56 | 0x0001010101010100 | 0x0080808080808000
)

var (
	blackWeights = Weights{Corner: 9, Edge: 2, CSquare: 6, XSquare: 11}
	whiteWeights = Weights{Corner: 2, Edge: 1, CSquare: 6, XSquare: 11}
)

// LegacyWeights returns the weights each side has always been scored with.
// Black values corners and edges far more than white does.
func LegacyWeights(side Side) Weights {
	if side == Black {
		return blackWeights
	}
	return whiteWeights
}

// UnifiedWeights scores both sides with black's table.
func UnifiedWeights(Side) Weights {
	return blackWeights
}

// Score is the positional score of side under LegacyWeights.
func (p *Position) Score(side Side) int {
	return p.ScoreWith(side, LegacyWeights(side))
}

func (p *Position) ScoreWith(side Side, w Weights) int {
	own := p.stones(side)
	score := bits.OnesCount64(own)
	score += w.Corner * bits.OnesCount64(own&cornerMask)
	score += w.Edge * bits.OnesCount64(own&edgeMask)
	score -= w.CSquare * bits.OnesCount64(own&cSquareMask)
	score -= w.XSquare * bits.OnesCount64(own&xSquareMask)
	return score
}

// PositionalScore evaluates with the legacy per-side weights.
func PositionalScore(p *Position, side Side) int {
	return p.Score(side)
}

// UnifiedScore evaluates both sides with the same weights.
func UnifiedScore(p *Position, side Side) int {
	return p.ScoreWith(side, UnifiedWeights(side))
}

// StoneCount evaluates by disc count alone.
func StoneCount(p *Position, side Side) int {
	return p.Count(side)
}

var evaluations = map[string]Evaluate{
	"positional": PositionalScore,
	"unified":    UnifiedScore,
	"count":      StoneCount,
}

// EvaluationByName looks up an evaluation by its command-line name.
func EvaluationByName(name string) (Evaluate, error) {
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation %q", name)
	}
	return evaluate, nil
}
