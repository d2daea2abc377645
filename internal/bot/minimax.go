package bot

import "ctchen222/Tic-Tac-Toe-Console/internal/game"

// Memo caches minimax scores for positions already evaluated during one
// top-level search. It is created per selector call and discarded
// afterwards; the board differs on every turn so there is nothing to
// reuse across moves.
type Memo map[memoKey]int

type memoKey struct {
	board game.Board
	turn  game.PlayerMark
}

// NewMemo returns an empty score cache.
func NewMemo() Memo {
	return make(Memo)
}

// Evaluate returns the perfect-play score of the position from the
// point of view of me: +1 me wins, -1 the opponent wins, 0 draw.
// turn is the side to move. Candidate moves are placed on the board and
// reverted before returning, so the board is unchanged after the call.
func Evaluate(b *game.Board, me, turn game.PlayerMark, memo Memo) int {
	if w := b.Winner(); w != game.None {
		if w == me {
			return 1
		}
		return -1
	}
	if b.IsFull() {
		return 0
	}

	// The key must include the side to move: the same configuration
	// scores differently depending on whose turn it is.
	key := memoKey{board: *b, turn: turn}
	if score, ok := memo[key]; ok {
		return score
	}

	best := 2
	if turn == me {
		best = -2
	}
	for _, cell := range b.AvailableMoves() {
		b[cell] = turn
		score := Evaluate(b, me, turn.Opponent(), memo)
		b[cell] = game.None

		if turn == me {
			if score > best {
				best = score
			}
		} else if score < best {
			best = score
		}
	}

	memo[key] = best
	return best
}
