package console

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/Tic-Tac-Toe-Console/internal/bot"
	"ctchen222/Tic-Tac-Toe-Console/internal/game"
)

func newConsoleWithInput(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(bufio.NewReader(strings.NewReader(input)), out), out
}

func TestRenderEmptyBoard(t *testing.T) {
	out := &bytes.Buffer{}
	Render(out, game.Board{})

	want := " 1 | 2 | 3 \n" +
		"---+---+---\n" +
		" 4 | 5 | 6 \n" +
		"---+---+---\n" +
		" 7 | 8 | 9 \n"
	assert.Equal(t, want, out.String())
}

func TestRenderMixedBoard(t *testing.T) {
	out := &bytes.Buffer{}
	Render(out, game.Board{
		game.PlayerX, game.None, game.PlayerO,
		game.None, game.PlayerX, game.None,
		game.None, game.None, game.PlayerO,
	})

	want := " X | 2 | O \n" +
		"---+---+---\n" +
		" 4 | X | 6 \n" +
		"---+---+---\n" +
		" 7 | 8 | O \n"
	assert.Equal(t, want, out.String())
}

func TestChooseStartingPlayer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  game.PlayerMark
	}{
		{"short human answer", "h\n", game.PlayerO},
		{"long human answer", "Human\n", game.PlayerO},
		{"short ai answer", "a\n", game.PlayerX},
		{"long ai answer", "AI\n", game.PlayerX},
		{"reprompts until valid", "what\n\nA\n", game.PlayerX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newConsoleWithInput(tt.input)
			got, err := c.ChooseStartingPlayer()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChooseStartingPlayerReprompt(t *testing.T) {
	c, out := newConsoleWithInput("x\nH\n")
	got, err := c.ChooseStartingPlayer()
	require.NoError(t, err)
	assert.Equal(t, game.PlayerO, got)
	assert.Contains(t, out.String(), "Please type H or A.")
}

func TestChooseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"e\n", bot.DifficultyEasy},
		{"medium\n", bot.DifficultyMedium},
		{"H\n", bot.DifficultyHard},
		{"9\nhard\n", bot.DifficultyHard},
	}

	for _, tt := range tests {
		c, _ := newConsoleWithInput(tt.input)
		got, err := c.ChooseDifficulty()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestAskPlayAgain(t *testing.T) {
	c, _ := newConsoleWithInput("y\n")
	again, err := c.AskPlayAgain()
	require.NoError(t, err)
	assert.True(t, again)

	c, _ = newConsoleWithInput("maybe\nno\n")
	again, err = c.AskPlayAgain()
	require.NoError(t, err)
	assert.False(t, again)
}

func TestPromptEOF(t *testing.T) {
	c, _ := newConsoleWithInput("")
	_, err := c.ChooseDifficulty()
	require.Error(t, err)
}
