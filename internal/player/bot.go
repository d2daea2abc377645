package player

import (
	"context"

	"ctchen222/Tic-Tac-Toe-Console/internal/bot"
	"ctchen222/Tic-Tac-Toe-Console/internal/game"
)

// Bot plays moves picked by a bot.Selector at a fixed difficulty.
type Bot struct {
	selector   *bot.Selector
	difficulty string
}

// NewBot wraps selector as a match player.
func NewBot(selector *bot.Selector, difficulty string) *Bot {
	return &Bot{selector: selector, difficulty: difficulty}
}

func (b *Bot) Mark() game.PlayerMark {
	return b.selector.Mark()
}

// NextMove computes the bot's move. Calling it on a finished or full
// game is a caller bug and is rejected rather than searched.
func (b *Bot) NextMove(ctx context.Context, g *game.Game) (int, error) {
	if g.IsFinished() {
		return 0, game.ErrGameFinished
	}
	return b.selector.SelectMove(ctx, &g.Board, b.difficulty), nil
}
