package game

import (
	"fmt"
	"strings"
)

// Side is one of the two players. First moves first and is historically black.
type Side int

const (
	First Side = iota
	Second
)

const (
	Black = First
	White = Second
)

func (s Side) Opponent() Side {
	if s == First {
		return Second
	}
	return First
}

func (s Side) String() string {
	if s == First {
		return "black"
	}
	return "white"
}

// ParseSide reads a side name as given on the command line.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "black", "first", "b":
		return First, nil
	case "white", "second", "w":
		return Second, nil
	default:
		return First, fmt.Errorf("unknown side %q", name)
	}
}
