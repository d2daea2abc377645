package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/Tic-Tac-Toe-Console/internal/bot"
	"ctchen222/Tic-Tac-Toe-Console/internal/events"
	"ctchen222/Tic-Tac-Toe-Console/internal/game"
	"ctchen222/Tic-Tac-Toe-Console/internal/player"
)

// countingRenderer records how often the board was drawn.
type countingRenderer struct {
	renders int
}

func (r *countingRenderer) Render(game.Board) {
	r.renders++
}

// lowestCellPlayer always plays the lowest free cell.
type lowestCellPlayer struct {
	mark game.PlayerMark
}

func (p *lowestCellPlayer) Mark() game.PlayerMark { return p.mark }

func (p *lowestCellPlayer) NextMove(_ context.Context, g *game.Game) (int, error) {
	moves := g.Board.AvailableMoves()
	if len(moves) == 0 {
		return 0, game.ErrGameFinished
	}
	return moves[0], nil
}

// failingPlayer simulates a broken input source.
type failingPlayer struct {
	mark game.PlayerMark
	err  error
}

func (p *failingPlayer) Mark() game.PlayerMark { return p.mark }

func (p *failingPlayer) NextMove(context.Context, *game.Game) (int, error) {
	return 0, p.err
}

// recordingObserver collects every published event in order.
type recordingObserver struct {
	got []events.Event
}

func (o *recordingObserver) Publish(_ context.Context, e events.Event) {
	o.got = append(o.got, e)
}

func newBotPlayer(mark game.PlayerMark) *player.Bot {
	return player.NewBot(bot.NewSelector(mark, nil, nil), bot.DifficultyHard)
}

func TestPerfectSelfPlayAlwaysDraws(t *testing.T) {
	for _, firstTurn := range []game.PlayerMark{game.PlayerX, game.PlayerO} {
		x := newBotPlayer(game.PlayerX)
		o := newBotPlayer(game.PlayerO)

		m := New(firstTurn, x, o, bot.DifficultyHard, nil, &countingRenderer{})
		winner, err := m.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, game.None, winner, "perfect play must end in a draw (first turn %s)", firstTurn)
		assert.True(t, m.Game().Board.IsDraw())
	}
}

func TestPerfectBotNeverLosesToLowestCellPlayer(t *testing.T) {
	for _, firstTurn := range []game.PlayerMark{game.PlayerX, game.PlayerO} {
		ai := newBotPlayer(game.PlayerX)
		human := &lowestCellPlayer{mark: game.PlayerO}

		m := New(firstTurn, ai, human, bot.DifficultyHard, nil, &countingRenderer{})
		winner, err := m.Run(context.Background())

		require.NoError(t, err)
		assert.NotEqual(t, game.PlayerO, winner, "perfect bot lost (first turn %s)", firstTurn)
		assert.True(t, m.Game().IsFinished())
	}
}

func TestMatchRendersAfterEveryPly(t *testing.T) {
	renderer := &countingRenderer{}
	m := New(game.PlayerX, newBotPlayer(game.PlayerX), &lowestCellPlayer{mark: game.PlayerO}, bot.DifficultyHard, nil, renderer)

	_, err := m.Run(context.Background())
	require.NoError(t, err)

	plies := 0
	for _, cell := range m.Game().Board {
		if cell != game.None {
			plies++
		}
	}
	// Initial render plus one per ply.
	assert.Equal(t, plies+1, renderer.renders)
}

func TestMatchPublishesLifecycleEvents(t *testing.T) {
	obs := &recordingObserver{}
	m := New(game.PlayerO, &lowestCellPlayer{mark: game.PlayerO}, &lowestCellPlayer{mark: game.PlayerX}, "", obs, &countingRenderer{})

	winner, err := m.Run(context.Background())
	require.NoError(t, err)
	// Lowest-cell vs lowest-cell with O first: O takes 0, 2, 4, 6 and
	// completes the anti-diagonal.
	assert.Equal(t, game.PlayerO, winner)

	require.NotEmpty(t, obs.got)
	assert.Equal(t, events.TypeMatchStarted, obs.got[0].Type)
	assert.Equal(t, events.TypeMatchFinished, obs.got[len(obs.got)-1].Type)

	moves := 0
	for _, e := range obs.got {
		if e.Type == events.TypeMovePlayed {
			moves++
		}
	}
	plies := 0
	for _, cell := range m.Game().Board {
		if cell != game.None {
			plies++
		}
	}
	assert.Equal(t, plies, moves)
}

func TestMatchSurfacesPlayerErrors(t *testing.T) {
	readErr := errors.New("input closed")
	m := New(game.PlayerO, &failingPlayer{mark: game.PlayerO, err: readErr}, &lowestCellPlayer{mark: game.PlayerX}, "", nil, &countingRenderer{})

	_, err := m.Run(context.Background())
	assert.ErrorIs(t, err, readErr)
}

func TestMatchStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(game.PlayerO, &lowestCellPlayer{mark: game.PlayerO}, &lowestCellPlayer{mark: game.PlayerX}, "", nil, &countingRenderer{})
	_, err := m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
