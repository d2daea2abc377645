package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/Tic-Tac-Toe-Console/internal/events"
	"ctchen222/Tic-Tac-Toe-Console/internal/game"
	"ctchen222/Tic-Tac-Toe-Console/internal/player"
)

var tracer = otel.Tracer("match")

// Renderer draws the board between plies.
type Renderer interface {
	Render(b game.Board)
}

// Match runs one game between two players: turn sequencing, move
// application and terminal-state detection. Only the player whose turn
// it is ever mutates the board.
type Match struct {
	ID         string
	game       *game.Game
	players    map[game.PlayerMark]player.Player
	observer   events.Observer
	renderer   Renderer
	difficulty string
}

// New creates a match between two players holding opposite marks.
// A nil observer discards events.
func New(firstTurn game.PlayerMark, a, b player.Player, difficulty string, observer events.Observer, renderer Renderer) *Match {
	if observer == nil {
		observer = events.NopObserver{}
	}
	return &Match{
		ID:   uuid.NewString(),
		game: game.NewGame(firstTurn),
		players: map[game.PlayerMark]player.Player{
			a.Mark(): a,
			b.Mark(): b,
		},
		observer:   observer,
		renderer:   renderer,
		difficulty: difficulty,
	}
}

// Game exposes the underlying game state for inspection.
func (m *Match) Game() *game.Game {
	return m.game
}

// Run plays the match to a terminal state and returns the winning mark,
// or game.None on a draw. Errors come from the players' input only.
func (m *Match) Run(ctx context.Context) (game.PlayerMark, error) {
	m.observer.Publish(ctx, events.Event{
		Type: events.TypeMatchStarted,
		Payload: events.MatchStartedPayload{
			MatchID:    m.ID,
			FirstTurn:  m.game.CurrentTurn,
			Difficulty: m.difficulty,
		},
	})
	slog.Info("match started", "match.id", m.ID, "first_turn", m.game.CurrentTurn, "difficulty", m.difficulty)

	m.renderer.Render(m.game.Board)

	for {
		if err := ctx.Err(); err != nil {
			return game.None, err
		}

		current := m.players[m.game.CurrentTurn]
		if err := m.playTurn(ctx, current); err != nil {
			return game.None, err
		}

		m.renderer.Render(m.game.Board)

		if w := m.game.Winner; w != game.None {
			m.finish(ctx, events.MatchFinishedPayload{MatchID: m.ID, Winner: w})
			return w, nil
		}
		if m.game.Board.IsDraw() {
			m.finish(ctx, events.MatchFinishedPayload{MatchID: m.ID, Draw: true})
			return game.None, nil
		}
	}
}

func (m *Match) playTurn(ctx context.Context, p player.Player) error {
	ctx, span := tracer.Start(ctx, "match.playTurn", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("player.mark", string(p.Mark())),
	))
	defer span.End()

	cell, err := p.NextMove(ctx, m.game)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("player %s: %w", p.Mark(), err)
	}

	if err := m.game.Move(cell); err != nil {
		span.RecordError(err)
		return fmt.Errorf("apply move %d for %s: %w", cell, p.Mark(), err)
	}
	span.SetAttributes(attribute.Int("move.cell", cell))

	m.observer.Publish(ctx, events.Event{
		Type:    events.TypeMovePlayed,
		Payload: events.MovePlayedPayload{MatchID: m.ID, Mark: p.Mark(), Cell: cell},
	})
	return nil
}

func (m *Match) finish(ctx context.Context, payload events.MatchFinishedPayload) {
	m.observer.Publish(ctx, events.Event{Type: events.TypeMatchFinished, Payload: payload})
	slog.Info("match finished", "match.id", m.ID, "winner", payload.Winner, "draw", payload.Draw)
}
