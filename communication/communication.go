package communication

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"othello/game"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// InitDone is written once the player is ready for its first turn.
const InitDone = "Init done"

var ErrMalformedTurn = errors.New("malformed turn")

// Turn is one line from the referee: the opponent's last move (nil for a pass
// or the first move of the game) and the time left in milliseconds (-1 for no
// limit).
type Turn struct {
	Opponent *game.Move
	MsLeft   int
}

// Mover is implemented by player.Player.
type Mover interface {
	DoMove(opponentsMove *game.Move, msLeft int) (*game.Move, error)
}

// ParseTurn reads "x y msLeft". "-1 -1" is a pass. msLeft may be omitted.
func ParseTurn(line string) (Turn, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		return Turn{}, fmt.Errorf("%w: %q", ErrMalformedTurn, line)
	}

	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Turn{}, fmt.Errorf("%w: %q: %v", ErrMalformedTurn, line, err)
		}
		nums[i] = n
	}

	turn := Turn{MsLeft: -1}
	if len(nums) == 3 {
		turn.MsLeft = nums[2]
	}
	move := game.Move{X: nums[0], Y: nums[1]}
	switch {
	case move == game.Sentinel:
	case move.OnBoard():
		turn.Opponent = &move
	default:
		return Turn{}, fmt.Errorf("%w: %q: move off the board", ErrMalformedTurn, line)
	}
	return turn, nil
}

// FormatMove writes m as "x y", or "-1 -1" for a pass.
func FormatMove(m *game.Move) string {
	if m == nil {
		m = &game.Sentinel
	}
	return fmt.Sprintf("%d %d", m.X, m.Y)
}

// Serve plays one game against the referee on r and w until r is exhausted.
func Serve(ctx context.Context, r io.Reader, w io.Writer, p Mover) error {
	out := bufio.NewWriter(w)
	if err := writeLine(out, InitDone); err != nil {
		return err
	}

	in := bufio.NewScanner(r)
	for in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		turn, err := ParseTurn(line)
		if err != nil {
			return err
		}
		move, err := p.DoMove(turn.Opponent, turn.MsLeft)
		if err != nil {
			return fmt.Errorf("failed to play turn %q: %w", line, err)
		}
		log.Debug().Str("turn", line).Str("move", FormatMove(move)).Msg("answered referee")

		if err := writeLine(out, FormatMove(move)); err != nil {
			return err
		}
	}
	if err := in.Err(); err != nil {
		return fmt.Errorf("failed to read from referee: %w", err)
	}
	return nil
}

func writeLine(w *bufio.Writer, line string) error {
	if _, err := w.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write to referee: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write to referee: %w", err)
	}
	return nil
}
