package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "checkers_exe/internal/errors"
)

func TestStartingPosition(t *testing.T) {
	b := New()

	require.Equal(t, Red, b.Turn())
	assert.Equal(t, 12, b.Count(Red))
	assert.Equal(t, 12, b.Count(Black))

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := Square{row, col}
			p := b.PieceAt(sq)
			if p == nil {
				continue
			}
			assert.True(t, sq.Dark(), "piece on light square %s", sq)
			assert.False(t, p.King, "no kings in the starting position")
			if row < 3 {
				assert.Equal(t, Black, p.Color)
			} else {
				assert.GreaterOrEqual(t, row, 5)
				assert.Equal(t, Red, p.Color)
			}
		}
	}
}

func TestApplyStepFlipsTurn(t *testing.T) {
	b := New()
	moves, err := b.LegalMoves(Red)
	require.NoError(t, err)
	require.NotEmpty(t, moves)

	next, err := b.Apply(moves[0])
	require.NoError(t, err)

	assert.Equal(t, Black, next.Turn())
	assert.Nil(t, next.PieceAt(moves[0].From))
	assert.NotNil(t, next.PieceAt(moves[0].To()))
	// исходная доска не изменилась
	assert.Equal(t, Red, b.Turn())
	assert.NotNil(t, b.PieceAt(moves[0].From))
}

func TestApplyCaptureRemovesVictims(t *testing.T) {
	b := Empty(Red, Rules{})
	require.NoError(t, b.Place(Square{4, 3}, Piece{Color: Red}))
	require.NoError(t, b.Place(Square{3, 2}, Piece{Color: Black}))

	moves, err := b.LegalMoves(Red)
	require.NoError(t, err)
	require.Len(t, moves, 1)

	next, err := b.Apply(moves[0])
	require.NoError(t, err)
	assert.Nil(t, next.PieceAt(Square{3, 2}))
	assert.Equal(t, 0, next.Count(Black))
	assert.NotNil(t, next.PieceAt(Square{2, 1}))
}

func TestApplyPromotesOnFarRow(t *testing.T) {
	b := Empty(Red, Rules{})
	require.NoError(t, b.Place(Square{1, 2}, Piece{Color: Red}))
	require.NoError(t, b.Place(Square{5, 2}, Piece{Color: Black}))

	moves, err := b.LegalMoves(Red)
	require.NoError(t, err)

	var promo *Move
	for i := range moves {
		if moves[i].To().Row == 0 {
			promo = &moves[i]
			break
		}
	}
	require.NotNil(t, promo)
	assert.True(t, promo.Promotes)

	next, err := b.Apply(*promo)
	require.NoError(t, err)
	p := next.PieceAt(promo.To())
	require.NotNil(t, p)
	assert.True(t, p.King)
}

func TestApplyRejectsMalformedMoves(t *testing.T) {
	b := New()

	// empty origin
	_, err := b.Apply(Move{From: Square{4, 1}, Path: []Square{{3, 0}}})
	assert.ErrorIs(t, err, errs.ErrInvalidMove)

	// opponent's piece
	_, err = b.Apply(Move{From: Square{2, 1}, Path: []Square{{3, 0}}})
	assert.ErrorIs(t, err, errs.ErrInvalidMove)

	// occupied destination
	_, err = b.Apply(Move{From: Square{6, 1}, Path: []Square{{5, 0}}})
	require.NoError(t, err) // sanity: this one is fine
	_, err = b.Apply(Move{From: Square{7, 0}, Path: []Square{{6, 1}}})
	assert.ErrorIs(t, err, errs.ErrInvalidMove)

	// capture without a victim
	_, err = b.Apply(Move{From: Square{5, 0}, Path: []Square{{3, 2}}, Captured: []Square{{4, 1}}})
	assert.ErrorIs(t, err, errs.ErrInvalidMove)
}

func TestTerminalWhenOpponentHasNoPieces(t *testing.T) {
	b := Empty(Black, Rules{})
	require.NoError(t, b.Place(Square{5, 2}, Piece{Color: Red}))

	assert.True(t, b.IsTerminal())
	winner, over := b.Winner()
	require.True(t, over)
	assert.Equal(t, Red, winner)
}

func TestTerminalWhenBlocked(t *testing.T) {
	// Black king in the corner, both its step and its jump landing blocked.
	b := Empty(Black, Rules{})
	require.NoError(t, b.Place(Square{7, 0}, Piece{Color: Black, King: true}))
	require.NoError(t, b.Place(Square{6, 1}, Piece{Color: Red}))
	require.NoError(t, b.Place(Square{5, 2}, Piece{Color: Red}))

	moves, err := b.LegalMoves(Black)
	require.NoError(t, err)
	assert.Empty(t, moves)
	assert.True(t, b.IsTerminal())
	winner, over := b.Winner()
	require.True(t, over)
	assert.Equal(t, Red, winner)
}

func TestNotTerminalAtStart(t *testing.T) {
	assert.False(t, New().IsTerminal())
	_, over := New().Winner()
	assert.False(t, over)
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("b6")
	require.NoError(t, err)
	assert.Equal(t, Square{2, 1}, sq)
	assert.Equal(t, "b6", sq.String())

	_, err = ParseSquare("a1")
	assert.NoError(t, err)

	for _, bad := range []string{"", "z9", "a0", "a9", "aa", "b6x", "a2"} {
		_, err := ParseSquare(bad)
		assert.ErrorIs(t, err, errs.ErrBadCoordinate, "input %q", bad)
	}
}

func TestMoveNotation(t *testing.T) {
	step := Move{From: Square{5, 0}, Path: []Square{{4, 1}}}
	assert.Equal(t, "a3-b4", step.String())

	chain := Move{
		From:     Square{2, 1},
		Path:     []Square{{4, 3}, {6, 5}},
		Captured: []Square{{3, 2}, {5, 4}},
	}
	assert.Equal(t, "b6xd4xf2", chain.String())
}
