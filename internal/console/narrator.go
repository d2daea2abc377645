package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/Tic-Tac-Toe-Console/internal/events"
	"ctchen222/Tic-Tac-Toe-Console/internal/game"
)

// Narrator renders selector and match events as console lines for the
// human player. Cells are shown 1-based to match the prompt range.
type Narrator struct {
	out io.Writer
}

// NewNarrator creates a narrator writing to out.
func NewNarrator(out io.Writer) *Narrator {
	return &Narrator{out: out}
}

// Publish implements events.Observer.
func (n *Narrator) Publish(_ context.Context, e events.Event) {
	switch p := e.Payload.(type) {
	case events.ThreatDetectedPayload:
		fmt.Fprintf(n.out, "\n⚠ HUMAN threatens to win at: %s\n", positions(p.Cells))

	case events.SearchStartedPayload:
		fmt.Fprintln(n.out, "\nAI is thinking...")

	case events.MoveConsideredPayload:
		if p.ImmediateWin {
			fmt.Fprintf(n.out, "Move %d → ✅ immediate win\n", p.Cell+1)
			return
		}

		var flags []string
		if p.BlocksThreat {
			flags = append(flags, "✅ blocks threat")
		}
		if len(p.OpensThreats) > 0 {
			flags = append(flags, fmt.Sprintf("⚠ allows HUMAN win next at: %s", positions(p.OpensThreats)))
		}

		if len(flags) > 0 {
			fmt.Fprintf(n.out, "Move %d → score %d  %s\n", p.Cell+1, p.Score, strings.Join(flags, " | "))
		} else {
			fmt.Fprintf(n.out, "Move %d → score %d\n", p.Cell+1, p.Score)
		}

	case events.MoveChosenPayload:
		fmt.Fprintf(n.out, "Chosen move: %d\n\n", p.Cell+1)

	case events.BestMovePlayedPayload:
		fmt.Fprintf(n.out, "AI (%s) chooses the BEST move.\n\n", p.Difficulty)

	case events.MistakeMadePayload:
		fmt.Fprintf(n.out, "AI (%s) makes a mistake and chooses %d instead of %d.\n\n",
			p.Difficulty, p.Cell+1, p.BestCell+1)

	case events.MovePlayedPayload:
		if p.Mark == game.PlayerX {
			fmt.Fprintf(n.out, "\nAI plays at %d\n\n", p.Cell+1)
		}

	case events.MatchFinishedPayload:
		switch {
		case p.Draw:
			fmt.Fprintln(n.out, "\nResult: Draw.")
		case p.Winner == game.PlayerX:
			fmt.Fprintln(n.out, "\nResult: AI wins.")
		default:
			fmt.Fprintln(n.out, "\nResult: You win!")
		}
	}
}

func positions(cells []int) string {
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		parts = append(parts, strconv.Itoa(c+1))
	}
	return strings.Join(parts, ", ")
}
