package checkers

import (
	"strings"

	errs "checkers_exe/internal/errors"
)

// Rules carries the variant choices that change move generation.
// FlyingPromotion controls what happens when a man is promoted in the middle
// of a jump chain: with the flag off (English draughts, the default) the
// chain ends on the promotion square; with it on, the new king keeps jumping
// within the same chain using king directions.
type Rules struct {
	FlyingPromotion bool
}

// Board owns piece placement. Apply returns a fresh Board, so search frames
// never observe a partially applied position.
type Board struct {
	cells [8][8]*Piece
	turn  Color
	rules Rules
}

// New returns the standard starting position, Red to move.
func New() *Board {
	return NewWithRules(Rules{})
}

func NewWithRules(rules Rules) *Board {
	b := &Board{turn: Red, rules: rules}
	for row := 0; row < 3; row++ {
		for col := 0; col < 8; col++ {
			if (Square{row, col}).Dark() {
				b.cells[row][col] = &Piece{Color: Black}
			}
		}
	}
	for row := 5; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if (Square{row, col}).Dark() {
				b.cells[row][col] = &Piece{Color: Red}
			}
		}
	}
	return b
}

// Empty returns a board with no pieces, for building positions move by move.
func Empty(turn Color, rules Rules) *Board {
	return &Board{turn: turn, rules: rules}
}

func (b *Board) Turn() Color {
	return b.turn
}

func (b *Board) Rules() Rules {
	return b.rules
}

func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.OnBoard() {
		return nil
	}
	return b.cells[sq.Row][sq.Col]
}

// Place puts a piece on a dark square. Intended for setting up positions.
func (b *Board) Place(sq Square, p Piece) error {
	if !sq.OnBoard() || !sq.Dark() {
		return errs.ErrBadCoordinate
	}
	b.cells[sq.Row][sq.Col] = &p
	return nil
}

func (b *Board) Count(c Color) int {
	n := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil && p.Color == c {
				n++
			}
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Apply plays the move and returns the resulting board with the turn
// flipped. It checks the move's shape against the position (occupied origin,
// empty landings, enemy pieces on captured squares) and promotes a man that
// touches the far row, but it does not re-run full generation: callers are
// expected to pass moves taken from LegalMoves.
func (b *Board) Apply(m Move) (*Board, error) {
	p := b.PieceAt(m.From)
	if p == nil || p.Color != b.turn || len(m.Path) == 0 {
		return nil, errs.ErrInvalidMove
	}
	if m.IsCapture() && len(m.Captured) != len(m.Path) {
		return nil, errs.ErrInvalidMove
	}

	nb := b.Clone()
	nb.cells[m.From.Row][m.From.Col] = nil
	for _, sq := range m.Captured {
		victim := nb.PieceAt(sq)
		if victim == nil || victim.Color != p.Color.Opponent() {
			return nil, errs.ErrInvalidMove
		}
		nb.cells[sq.Row][sq.Col] = nil
	}

	placed := *p
	for _, sq := range m.Path {
		if !sq.OnBoard() || !sq.Dark() || nb.PieceAt(sq) != nil {
			return nil, errs.ErrInvalidMove
		}
		// Promotion happens the moment a man lands on the far row, even when
		// a flying chain carries it away again.
		if !placed.King && sq.Row == placed.Color.PromotionRow() {
			placed.King = true
		}
	}
	dst := m.To()
	nb.cells[dst.Row][dst.Col] = &placed
	nb.turn = b.turn.Opponent()
	return nb, nil
}

// IsTerminal reports whether the side to move has no legal moves, which
// loses the game in draughts.
func (b *Board) IsTerminal() bool {
	moves, err := b.LegalMoves(b.turn)
	return err == nil && len(moves) == 0
}

// Winner returns the winning color when the position is terminal.
func (b *Board) Winner() (Color, bool) {
	if !b.IsTerminal() {
		return "", false
	}
	return b.turn.Opponent(), true
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('0' + 8 - row))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			switch {
			case p == nil:
				sb.WriteByte('.')
			case p.King:
				sb.WriteString(strings.ToUpper(string(p.Color[0])))
			default:
				sb.WriteString(strings.ToLower(string(p.Color[0])))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + 8 - row))
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
