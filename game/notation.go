package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrBadNotation = errors.New("bad position notation")

// ParsePosition reads 64 cells in row order (y = 0 first, x = 0 first within a
// row): 'b' for black, 'w' for white, '.', '-' or '_' for empty. Whitespace is
// ignored.
func ParsePosition(s string) (*Position, error) {
	p := &Position{}
	i := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if i >= Size*Size {
			return nil, fmt.Errorf("%w: more than %d cells", ErrBadNotation, Size*Size)
		}
		x, y := i%Size, i/Size
		switch r {
		case 'b', 'B':
			p.set(Black, x, y)
		case 'w', 'W':
			p.set(White, x, y)
		case '.', '-', '_':
		default:
			return nil, fmt.Errorf("%w: unexpected %q at cell %d", ErrBadNotation, r, i)
		}
		i++
	}
	if i != Size*Size {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrBadNotation, i, Size*Size)
	}
	return p, nil
}

// MustParsePosition is ParsePosition for fixed fixtures; it panics on error.
func MustParsePosition(s string) *Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Position) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch {
			case p.Get(Black, x, y):
				sb.WriteByte('b')
			case p.Get(White, x, y):
				sb.WriteByte('w')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
