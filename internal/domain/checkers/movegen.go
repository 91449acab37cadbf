package checkers

import errs "checkers_exe/internal/errors"

// LegalMoves generates the complete legal move set for side under the
// mandatory capture rule: if any jump exists, only jumps are returned, and
// every returned jump chain is maximal (it cannot be extended by one more
// jump from its final square). Without captures the result is all single
// diagonal steps onto empty squares.
func (b *Board) LegalMoves(side Color) ([]Move, error) {
	if side != b.turn {
		return nil, errs.ErrInvalidState
	}
	if captures := b.captureMoves(side); len(captures) > 0 {
		return captures, nil
	}
	return b.stepMoves(side), nil
}

func (b *Board) stepMoves(side Color) []Move {
	var moves []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == nil || p.Color != side {
				continue
			}
			from := Square{row, col}
			for _, d := range p.directions() {
				to := Square{row + d[0], col + d[1]}
				if !to.OnBoard() || b.PieceAt(to) != nil {
					continue
				}
				moves = append(moves, Move{
					From:     from,
					Path:     []Square{to},
					Promotes: !p.King && to.Row == p.Color.PromotionRow(),
				})
			}
		}
	}
	return moves
}

func (b *Board) captureMoves(side Color) []Move {
	var moves []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == nil || p.Color != side {
				continue
			}
			b.extendChain(Square{row, col}, *p, Move{From: Square{row, col}}, &moves)
		}
	}
	return moves
}

// extendChain explores every continuation jump from a landing square and
// emits only chains that have no further jump. Captured pieces come off the
// board immediately, so a chain can never jump the same piece twice.
func (b *Board) extendChain(from Square, p Piece, prefix Move, out *[]Move) {
	extended := false
	for _, d := range p.directions() {
		over := Square{from.Row + d[0], from.Col + d[1]}
		land := Square{from.Row + 2*d[0], from.Col + 2*d[1]}
		if !land.OnBoard() || b.PieceAt(land) != nil {
			continue
		}
		victim := b.PieceAt(over)
		if victim == nil || victim.Color == p.Color {
			continue
		}
		extended = true

		next := Move{
			From:     prefix.From,
			Path:     append(append([]Square(nil), prefix.Path...), land),
			Captured: append(append([]Square(nil), prefix.Captured...), over),
			Promotes: prefix.Promotes,
		}

		nb := b.Clone()
		nb.cells[from.Row][from.Col] = nil
		nb.cells[over.Row][over.Col] = nil
		np := p
		promoted := false
		if !np.King && land.Row == np.Color.PromotionRow() {
			np.King = true
			promoted = true
			next.Promotes = true
		}
		nb.cells[land.Row][land.Col] = &np

		if promoted && !b.rules.FlyingPromotion {
			// Promotion ends the chain in the default variant.
			*out = append(*out, next)
			continue
		}
		nb.extendChain(land, np, next, out)
	}
	if !extended && prefix.IsCapture() {
		*out = append(*out, prefix)
	}
}
