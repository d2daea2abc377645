package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ctchen222/Tic-Tac-Toe-Console/internal/bot"
	"ctchen222/Tic-Tac-Toe-Console/internal/game"
)

// Render writes the board as a 3x3 grid. Empty cells show their
// 1-based position so the prompt range is visible on the board.
func Render(w io.Writer, b game.Board) {
	cell := func(i int) string {
		if b[i] != game.None {
			return string(b[i])
		}
		return fmt.Sprintf("%d", i+1)
	}

	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		rows = append(rows, fmt.Sprintf(" %s | %s | %s ", cell(r*3), cell(r*3+1), cell(r*3+2)))
	}
	fmt.Fprintln(w, strings.Join(rows, "\n---+---+---\n"))
}

// Console owns the interactive prompts and board rendering. The reader
// is shared with the human player so buffered input is not lost
// between prompts.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a console over the given streams.
func New(in *bufio.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Render implements match.Renderer.
func (c *Console) Render(b game.Board) {
	Render(c.out, b)
}

// ChooseStartingPlayer asks who moves first, re-prompting on anything
// but H or A.
func (c *Console) ChooseStartingPlayer() (game.PlayerMark, error) {
	for {
		answer, err := c.ask("Who starts? (H)uman / (A)I: ")
		if err != nil {
			return game.None, err
		}
		switch answer {
		case "h", "human":
			return game.PlayerO, nil
		case "a", "ai":
			return game.PlayerX, nil
		}
		fmt.Fprintln(c.out, "Please type H or A.")
	}
}

// ChooseDifficulty asks for the bot difficulty, re-prompting on
// anything but E, M or H.
func (c *Console) ChooseDifficulty() (string, error) {
	for {
		answer, err := c.ask("Choose difficulty: (E)asy / (M)edium / (H)ard: ")
		if err != nil {
			return "", err
		}
		switch answer {
		case "e", "easy":
			return bot.DifficultyEasy, nil
		case "m", "medium":
			return bot.DifficultyMedium, nil
		case "h", "hard":
			return bot.DifficultyHard, nil
		}
		fmt.Fprintln(c.out, "Please type E, M, or H.")
	}
}

// AskPlayAgain asks whether to start a rematch.
func (c *Console) AskPlayAgain() (bool, error) {
	for {
		answer, err := c.ask("Play again? (Y)es / (N)o: ")
		if err != nil {
			return false, err
		}
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please type Y or N.")
	}
}

func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	if err != nil && line == "" {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return line, nil
}
