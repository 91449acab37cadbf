package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"checkers_exe/internal/bootstrap"
	"checkers_exe/internal/domain/checkers"
	errs "checkers_exe/internal/errors"
	"checkers_exe/internal/statuses"
)

func newTestUseCase(mutate func(*bootstrap.Config)) *UseCase {
	cfg := bootstrap.Default()
	cfg.SearchDepth = 2
	cfg.AssistDepth = 3
	if mutate != nil {
		mutate(cfg)
	}
	return NewUseCase(cfg, zap.NewNop().Sugar())
}

func TestCurrentWithoutGame(t *testing.T) {
	u := newTestUseCase(nil)
	_, err := u.Current()
	assert.ErrorIs(t, err, errs.ErrGameNotFound)
}

func TestNewGameStartsActive(t *testing.T) {
	u := newTestUseCase(nil)
	g := u.NewGame()

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, statuses.StatusActive, g.Status)
	assert.Equal(t, checkers.Red, g.Board.Turn())
	assert.Empty(t, g.History)
}

func TestPlayMoveValidation(t *testing.T) {
	u := newTestUseCase(nil)
	u.NewGame()

	// black cannot move first
	err := u.PlayMove(checkers.Black, checkers.Move{})
	assert.ErrorIs(t, err, errs.ErrNotYourTurn)

	// a fabricated move is rejected without touching the board
	err = u.PlayMove(checkers.Red, checkers.Move{
		From: checkers.Square{Row: 5, Col: 0},
		Path: []checkers.Square{{Row: 3, Col: 2}},
	})
	assert.ErrorIs(t, err, errs.ErrInvalidMove)

	g, _ := u.Current()
	assert.Empty(t, g.History)
	assert.Equal(t, checkers.Red, g.Board.Turn())
}

func TestPlayMoveRecordsHistory(t *testing.T) {
	u := newTestUseCase(nil)
	u.NewGame()

	legal, err := u.LegalMoves()
	require.NoError(t, err)
	require.NoError(t, u.PlayMove(checkers.Red, legal[0]))

	g, _ := u.Current()
	require.Len(t, g.History, 1)
	rec := g.History[0]
	assert.Equal(t, 1, rec.Number)
	assert.Equal(t, checkers.Red, rec.Player)
	assert.NotEmpty(t, rec.ID)
	assert.NotEmpty(t, rec.Notation)
	assert.False(t, rec.ByAI)
	assert.Equal(t, checkers.Black, g.Board.Turn())
}

func TestStaleMoveAfterBoardChanged(t *testing.T) {
	u := newTestUseCase(nil)
	u.NewGame()

	legal, err := u.LegalMoves()
	require.NoError(t, err)
	stale := legal[0]
	require.NoError(t, u.PlayMove(checkers.Red, legal[1]))

	_, err = u.PlayAI(checkers.Black)
	require.NoError(t, err)

	// The piece that produced the stale move may have moved on; whatever the
	// reason, a move outside the current legal set must be rejected.
	if err := u.PlayMove(checkers.Red, stale); err != nil {
		assert.ErrorIs(t, err, errs.ErrInvalidMove)
	}
}

func TestPlayAIRecordsSearchData(t *testing.T) {
	u := newTestUseCase(nil)
	u.NewGame()

	res, err := u.PlayAI(checkers.Red)
	require.NoError(t, err)
	assert.Positive(t, res.Stats.Nodes)

	g, _ := u.Current()
	require.Len(t, g.History, 1)
	assert.True(t, g.History[0].ByAI)
	assert.Equal(t, res.Stats.Nodes, g.History[0].Nodes)
}

func TestHintDoesNotPlay(t *testing.T) {
	u := newTestUseCase(nil)
	u.NewGame()

	m, err := u.Hint(checkers.Red)
	require.NoError(t, err)
	assert.NotEmpty(t, m.Path)

	g, _ := u.Current()
	assert.Empty(t, g.History)
	assert.Equal(t, checkers.Red, g.Board.Turn())
}

func TestResign(t *testing.T) {
	u := newTestUseCase(nil)
	u.NewGame()

	require.NoError(t, u.Resign(checkers.Red))
	g, _ := u.Current()
	assert.Equal(t, statuses.StatusResigned, g.Status)
	assert.Equal(t, checkers.Black, g.Winner)

	assert.ErrorIs(t, u.Resign(checkers.Black), errs.ErrGameOver)
	assert.ErrorIs(t, u.PlayMove(checkers.Black, checkers.Move{}), errs.ErrGameOver)
}

func TestQuietPlyCapDrawsTheGame(t *testing.T) {
	u := newTestUseCase(func(cfg *bootstrap.Config) {
		cfg.MaxQuietPlies = 2
	})
	u.NewGame()

	// Two opening steps are always quiet: no captures exist yet.
	legal, err := u.LegalMoves()
	require.NoError(t, err)
	require.NoError(t, u.PlayMove(checkers.Red, legal[0]))

	legal, err = u.LegalMoves()
	require.NoError(t, err)
	require.NoError(t, u.PlayMove(checkers.Black, legal[0]))

	g, _ := u.Current()
	assert.Equal(t, statuses.StatusDrawn, g.Status)
}

func TestAIvsAIGameFinishes(t *testing.T) {
	u := newTestUseCase(func(cfg *bootstrap.Config) {
		cfg.MaxQuietPlies = 30
	})
	u.NewGame()

	for i := 0; i < 300; i++ {
		g, err := u.Current()
		require.NoError(t, err)
		if g.Status != statuses.StatusActive {
			break
		}
		_, err = u.PlayAI(g.Board.Turn())
		require.NoError(t, err)
	}

	g, _ := u.Current()
	assert.NotEqual(t, statuses.StatusActive, g.Status, "game should resolve within 300 plies")
	if g.Status == statuses.StatusFinished {
		assert.NotEmpty(t, g.Winner)
	}
}
