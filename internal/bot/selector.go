package bot

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/Tic-Tac-Toe-Console/internal/events"
	"ctchen222/Tic-Tac-Toe-Console/internal/game"
)

var tracer = otel.Tracer("bot")

// Difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// perfectPlayProbability is the chance the bot keeps the perfect move
// at each difficulty. Hard is not listed: it never rolls.
var perfectPlayProbability = map[string]float64{
	DifficultyEasy:   0.35,
	DifficultyMedium: 0.7,
}

// Selector picks the bot's moves: exhaustive minimax for the perfect
// move, then a difficulty roll that may deliberately discard it.
type Selector struct {
	mark     game.PlayerMark
	rng      *rand.Rand
	observer events.Observer
	moves    metric.Int64Counter
	mistakes metric.Int64Counter
}

// NewSelector creates a selector playing mark. rng drives the
// difficulty roll and the mistake pick; pass a seeded source in tests
// for deterministic branches. A nil observer discards narration.
func NewSelector(mark game.PlayerMark, rng *rand.Rand, observer events.Observer) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if observer == nil {
		observer = events.NopObserver{}
	}

	meter := otel.Meter("bot")
	moves, err := meter.Int64Counter("bot.moves.selected",
		metric.WithDescription("Moves selected by the bot."))
	if err != nil {
		slog.Warn("failed to create moves counter", "error", err)
	}
	mistakes, err := meter.Int64Counter("bot.moves.mistakes",
		metric.WithDescription("Deliberately sub-optimal moves played at lower difficulties."))
	if err != nil {
		slog.Warn("failed to create mistakes counter", "error", err)
	}

	return &Selector{
		mark:     mark,
		rng:      rng,
		observer: observer,
		moves:    moves,
		mistakes: mistakes,
	}
}

// Mark returns the mark the selector plays.
func (s *Selector) Mark() game.PlayerMark {
	return s.mark
}

// BestMove returns the perfect move for the current position, emitting
// a narration event per candidate. An immediate win short-circuits the
// search; otherwise the strictly greatest minimax score wins, and the
// ascending candidate order breaks ties toward the lowest index.
// The caller must guarantee at least one empty cell.
func (s *Selector) BestMove(ctx context.Context, b *game.Board) int {
	opponent := s.mark.Opponent()

	threats := b.WinningMoves(opponent)
	if len(threats) > 0 {
		s.observer.Publish(ctx, events.Event{
			Type:    events.TypeThreatDetected,
			Payload: events.ThreatDetectedPayload{Mark: opponent, Cells: threats},
		})
	}

	s.observer.Publish(ctx, events.Event{
		Type:    events.TypeSearchStarted,
		Payload: events.SearchStartedPayload{Mark: s.mark},
	})

	memo := NewMemo()
	bestScore := -2
	bestMove := -1

	for _, cell := range b.AvailableMoves() {
		b[cell] = s.mark

		if b.Winner() == s.mark {
			b[cell] = game.None
			s.observer.Publish(ctx, events.Event{
				Type:    events.TypeMoveConsidered,
				Payload: events.MoveConsideredPayload{Cell: cell, Score: 1, ImmediateWin: true},
			})
			s.observer.Publish(ctx, events.Event{
				Type:    events.TypeMoveChosen,
				Payload: events.MoveChosenPayload{Cell: cell, Score: 1},
			})
			return cell
		}

		// Diagnostic only: does this move leave the opponent a win?
		opensThreats := b.WinningMoves(opponent)
		score := Evaluate(b, s.mark, opponent, memo)
		b[cell] = game.None

		s.observer.Publish(ctx, events.Event{
			Type: events.TypeMoveConsidered,
			Payload: events.MoveConsideredPayload{
				Cell:         cell,
				Score:        score,
				BlocksThreat: slices.Contains(threats, cell),
				OpensThreats: opensThreats,
			},
		})

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	s.observer.Publish(ctx, events.Event{
		Type:    events.TypeMoveChosen,
		Payload: events.MoveChosenPayload{Cell: bestMove, Score: bestScore},
	})
	return bestMove
}

// SelectMove returns the move to play at the given difficulty. The
// perfect move is always computed and narrated; lower difficulties then
// roll against their perfect-play probability and may swap in a random
// other legal move. An unknown difficulty plays perfectly.
func (s *Selector) SelectMove(ctx context.Context, b *game.Board, difficulty string) int {
	ctx, span := tracer.Start(ctx, "bot.SelectMove", trace.WithAttributes(
		attribute.String("bot.difficulty", difficulty),
		attribute.String("bot.mark", string(s.mark)),
	))
	defer span.End()

	best := s.BestMove(ctx, b)
	chosen := best

	moves := b.AvailableMoves()
	p, degradable := perfectPlayProbability[difficulty]

	if degradable && len(moves) > 1 {
		if s.rng.Float64() < p {
			s.observer.Publish(ctx, events.Event{
				Type:    events.TypeBestMovePlayed,
				Payload: events.BestMovePlayedPayload{Difficulty: difficulty, Cell: best},
			})
		} else {
			others := make([]int, 0, len(moves)-1)
			for _, m := range moves {
				if m != best {
					others = append(others, m)
				}
			}
			chosen = others[s.rng.IntN(len(others))]

			s.observer.Publish(ctx, events.Event{
				Type:    events.TypeMistakeMade,
				Payload: events.MistakeMadePayload{Difficulty: difficulty, Cell: chosen, BestCell: best},
			})
			s.mistakes.Add(ctx, 1, metric.WithAttributes(
				attribute.String("bot.difficulty", difficulty),
			))
		}
	}

	span.SetAttributes(
		attribute.Int("bot.move", chosen),
		attribute.Bool("bot.mistake", chosen != best),
	)
	s.moves.Add(ctx, 1, metric.WithAttributes(
		attribute.String("bot.difficulty", difficulty),
	))
	return chosen
}
