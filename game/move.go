package game

import "fmt"

// Move places a stone at (X, Y). A nil *Move is a pass.
type Move struct {
	X int
	Y int
}

// Sentinel is the "no coordinate" move. It is never legal, and it is not a pass.
var Sentinel = Move{X: -1, Y: -1}

func NewMove(x, y int) *Move {
	return &Move{X: x, Y: y}
}

func (m Move) OnBoard() bool {
	return onBoard(m.X, m.Y)
}

func (m Move) IsSentinel() bool {
	return m.X == -1
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.X, m.Y)
}

// Equal compares two optional moves; two passes are equal.
func Equal(a, b *Move) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
