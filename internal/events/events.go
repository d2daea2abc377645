package events

import (
	"context"

	"ctchen222/Tic-Tac-Toe-Console/internal/game"
)

// Event type constants.
const (
	TypeThreatDetected = "threat_detected"
	TypeSearchStarted  = "search_started"
	TypeMoveConsidered = "move_considered"
	TypeMoveChosen     = "move_chosen"
	TypeBestMovePlayed = "best_move_played"
	TypeMistakeMade    = "mistake_made"
	TypeMatchStarted   = "match_started"
	TypeMovePlayed     = "move_played"
	TypeMatchFinished  = "match_finished"
)

// Event is a structured narration record emitted by the move selector
// and the match loop. Payload holds one of the payload structs below.
type Event struct {
	Type    string `json:"event"`
	Payload any    `json:"payload"`
}

// Observer consumes narration events. Implementations must not retain
// the event past the call.
type Observer interface {
	Publish(ctx context.Context, event Event)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) Publish(context.Context, Event) {}

// ThreatDetectedPayload reports cells where mark wins on its next turn.
type ThreatDetectedPayload struct {
	Mark  game.PlayerMark `json:"mark"`
	Cells []int           `json:"cells"`
}

// SearchStartedPayload is emitted when the selector begins scoring moves.
type SearchStartedPayload struct {
	Mark game.PlayerMark `json:"mark"`
}

// MoveConsideredPayload is the per-candidate score line.
type MoveConsideredPayload struct {
	Cell         int   `json:"cell"`
	Score        int   `json:"score"`
	ImmediateWin bool  `json:"immediate_win,omitempty"`
	BlocksThreat bool  `json:"blocks_threat,omitempty"`
	OpensThreats []int `json:"opens_threats,omitempty"`
}

// MoveChosenPayload reports the perfect move the search settled on.
type MoveChosenPayload struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

// BestMovePlayedPayload is emitted when the difficulty roll keeps the
// perfect move.
type BestMovePlayedPayload struct {
	Difficulty string `json:"difficulty"`
	Cell       int    `json:"cell"`
}

// MistakeMadePayload is emitted when the difficulty roll discards the
// perfect move for a deliberately weaker one.
type MistakeMadePayload struct {
	Difficulty string `json:"difficulty"`
	Cell       int    `json:"cell"`
	BestCell   int    `json:"best_cell"`
}

// MatchStartedPayload announces a new match.
type MatchStartedPayload struct {
	MatchID    string          `json:"match_id"`
	FirstTurn  game.PlayerMark `json:"first_turn"`
	Difficulty string          `json:"difficulty,omitempty"`
}

// MovePlayedPayload reports a committed move.
type MovePlayedPayload struct {
	MatchID string          `json:"match_id"`
	Mark    game.PlayerMark `json:"mark"`
	Cell    int             `json:"cell"`
}

// MatchFinishedPayload reports the terminal state of a match.
type MatchFinishedPayload struct {
	MatchID string          `json:"match_id"`
	Winner  game.PlayerMark `json:"winner,omitempty"`
	Draw    bool            `json:"draw,omitempty"`
}
