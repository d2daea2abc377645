package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/Tic-Tac-Toe-Console/internal/game"
)

// Human reads moves from a console reader, re-prompting until the
// input names an empty cell. Malformed input never escapes NextMove;
// only read failures (EOF, closed input) do.
type Human struct {
	mark game.PlayerMark
	in   *bufio.Reader
	out  io.Writer
}

// NewHuman creates a console-backed player. The reader is shared with
// the rest of the UI, so it is taken pre-buffered.
func NewHuman(mark game.PlayerMark, in *bufio.Reader, out io.Writer) *Human {
	return &Human{mark: mark, in: in, out: out}
}

func (h *Human) Mark() game.PlayerMark {
	return h.mark
}

// NextMove prompts until the human enters a free position 1-9 and
// returns it zero-based.
func (h *Human) NextMove(ctx context.Context, g *game.Game) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprint(h.out, "Choose a position (1-9): ")

		line, err := h.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil && line == "" {
			return 0, fmt.Errorf("read move: %w", err)
		}

		pos, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(h.out, "Please type a number 1-9.")
			continue
		}

		cell := pos - 1
		if cell < 0 || cell > 8 {
			fmt.Fprintln(h.out, "Out of range. Use 1-9.")
			continue
		}
		if g.Board[cell] != game.None {
			fmt.Fprintln(h.out, "That spot is taken.")
			continue
		}
		return cell, nil
	}
}
