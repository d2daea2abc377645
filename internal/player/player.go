package player

import (
	"context"

	"ctchen222/Tic-Tac-Toe-Console/internal/game"
)

// Player supplies moves for one side of a match.
type Player interface {
	// Mark returns the mark the player places.
	Mark() game.PlayerMark
	// NextMove returns the cell (0-8) to play on g. The returned cell
	// must be empty; the match loop applies it.
	NextMove(ctx context.Context, g *game.Game) (int, error)
}
