package game

import "math/bits"

// Size is the width and height of the board.
const Size = 8

var directions = [8]struct{ dx, dy int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Position is an 8x8 board stored as two membership sets indexed by x + 8*y.
// black is always a subset of taken; a taken cell outside black is white.
type Position struct {
	taken uint64
	black uint64
}

// NewPosition returns the standard starting position with black to move.
func NewPosition() *Position {
	p := &Position{}
	p.set(White, 3, 3)
	p.set(Black, 4, 3)
	p.set(Black, 3, 4)
	p.set(White, 4, 4)
	return p
}

// Copy returns a fully independent position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

func onBoard(x, y int) bool {
	return 0 <= x && x < Size && 0 <= y && y < Size
}

func bit(x, y int) uint64 {
	return 1 << uint(x+Size*y)
}

func (p *Position) Occupied(x, y int) bool {
	return onBoard(x, y) && p.taken&bit(x, y) != 0
}

// Get reports whether (x, y) holds a stone owned by side.
func (p *Position) Get(side Side, x, y int) bool {
	if !p.Occupied(x, y) {
		return false
	}
	return (p.black&bit(x, y) != 0) == (side == Black)
}

func (p *Position) set(side Side, x, y int) {
	p.setMask(side, bit(x, y))
}

func (p *Position) setMask(side Side, mask uint64) {
	p.taken |= mask
	if side == Black {
		p.black |= mask
	} else {
		p.black &^= mask
	}
}

// Flips returns the set of opponent stones that playing m would capture for
// side. It is empty when m is off the board, on an occupied cell, or captures
// nothing.
func (p *Position) Flips(m Move, side Side) uint64 {
	if !m.OnBoard() || p.Occupied(m.X, m.Y) {
		return 0
	}

	other := side.Opponent()
	var flips uint64
	for _, d := range directions {
		var run uint64
		x, y := m.X+d.dx, m.Y+d.dy
		for onBoard(x, y) && p.Get(other, x, y) {
			run |= bit(x, y)
			x += d.dx
			y += d.dy
		}
		if run != 0 && onBoard(x, y) && p.Get(side, x, y) {
			flips |= run
		}
	}
	return flips
}

// IsLegal reports whether side may play m. A pass (nil) is legal only when
// side has no concrete move.
func (p *Position) IsLegal(m *Move, side Side) bool {
	if m == nil {
		return !p.HasMoves(side)
	}
	return p.Flips(*m, side) != 0
}

func (p *Position) HasMoves(side Side) bool {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if p.Flips(Move{X: x, Y: y}, side) != 0 {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists the concrete moves for side in increasing (x, y) order.
func (p *Position) LegalMoves(side Side) []Move {
	var moves []Move
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			m := Move{X: x, Y: y}
			if p.Flips(m, side) != 0 {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// IsDone reports whether neither side has a legal move.
func (p *Position) IsDone() bool {
	return !(p.HasMoves(Black) || p.HasMoves(White))
}

// Apply plays m for side. Passes and illegal moves leave the position untouched.
func (p *Position) Apply(m *Move, side Side) {
	if m == nil {
		return
	}
	flips := p.Flips(*m, side)
	if flips == 0 {
		return
	}
	p.setMask(side, flips|bit(m.X, m.Y))
}

// Count returns the number of stones owned by side.
func (p *Position) Count(side Side) int {
	if side == Black {
		return p.CountBlack()
	}
	return p.CountWhite()
}

func (p *Position) CountBlack() int {
	return bits.OnesCount64(p.black)
}

func (p *Position) CountWhite() int {
	return bits.OnesCount64(p.taken &^ p.black)
}

// Empty returns the number of unoccupied cells.
func (p *Position) Empty() int {
	return Size*Size - bits.OnesCount64(p.taken)
}

func (p *Position) stones(side Side) uint64 {
	if side == Black {
		return p.black
	}
	return p.taken &^ p.black
}

// Winner returns the side with more stones, or false on a tie.
func (p *Position) Winner() (Side, bool) {
	black, white := p.CountBlack(), p.CountWhite()
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return Black, false
	}
}
