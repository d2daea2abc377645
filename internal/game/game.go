package game

import "errors"

// PlayerMark represents the mark of a player (X, O) or an empty cell.
// It doubles as the turn identifier during search.
type PlayerMark string

const (
	None    PlayerMark = ""
	PlayerX PlayerMark = "X" // the bot
	PlayerO PlayerMark = "O" // the human
)

// Opponent returns the mark of the other player.
func (m PlayerMark) Opponent() PlayerMark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// WinLines are the 8 index triples that complete a game:
// 3 rows, 3 columns and 2 diagonals. Read-only.
var WinLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is the 3x3 grid as a flat array. Index i maps to row i/3, column i%3.
type Board [9]PlayerMark

// Winner scans the win lines and returns the mark occupying a completed
// line, or None when no line is complete.
func (b Board) Winner() PlayerMark {
	for _, line := range WinLines {
		first := b[line[0]]
		if first != None && first == b[line[1]] && first == b[line[2]] {
			return first
		}
	}
	return None
}

// IsFull reports whether every cell is occupied.
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// IsDraw reports whether the game ended without a winner.
func (b Board) IsDraw() bool {
	return b.Winner() == None && b.IsFull()
}

// AvailableMoves returns the empty cell indices in ascending order.
// The ordering fixes both search iteration order and tie-breaking,
// so callers must not rely on any other order.
func (b Board) AvailableMoves() []int {
	moves := make([]int, 0, len(b))
	for i, cell := range b {
		if cell == None {
			moves = append(moves, i)
		}
	}
	return moves
}

// WinningMoves returns every empty cell where placing mark completes a
// line. Each candidate is placed, tested and reverted, so the board is
// unchanged when the call returns.
func (b *Board) WinningMoves(mark PlayerMark) []int {
	var wins []int
	for _, cell := range b.AvailableMoves() {
		b[cell] = mark
		if b.Winner() == mark {
			wins = append(wins, cell)
		}
		b[cell] = None
	}
	return wins
}

var (
	ErrGameFinished = errors.New("game already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Game tracks one match in progress: the board, whose turn it is and
// the winner once a line is completed.
type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Winner      PlayerMark
}

// NewGame creates a game with an empty board and the given side to move.
func NewGame(firstTurn PlayerMark) *Game {
	return &Game{
		Board:       Board{},
		CurrentTurn: firstTurn,
		Winner:      None,
	}
}

// Move places the current player's mark on cell and advances the turn.
func (g *Game) Move(cell int) error {
	if g.IsFinished() {
		return ErrGameFinished
	}
	if cell < 0 || cell >= len(g.Board) {
		return ErrInvalidCell
	}
	if g.Board[cell] != None {
		return ErrCellOccupied
	}

	g.Board[cell] = g.CurrentTurn
	g.Winner = g.Board.Winner()
	g.CurrentTurn = g.CurrentTurn.Opponent()
	return nil
}

// IsFinished reports whether the game reached a terminal state.
func (g *Game) IsFinished() bool {
	return g.Winner != None || g.Board.IsFull()
}
