package ai

import (
	"checkers_exe/internal/bootstrap"
	"checkers_exe/internal/domain/checkers"
)

// Weights are the evaluation tunables. Man is the unit everything else is
// scaled against.
type Weights struct {
	Man      int
	King     int
	Center   int
	BackRank int
	Advance  int
	Side     int
}

func DefaultWeights() Weights {
	return Weights{
		Man:      100,
		King:     300,
		Center:   10,
		BackRank: 20,
		Advance:  2,
		Side:     5,
	}
}

func WeightsFromConfig(cfg *bootstrap.Config) Weights {
	w := DefaultWeights()
	if cfg.KingWeight > 0 {
		w.King = cfg.KingWeight
	}
	w.Center = cfg.CenterBonus
	w.BackRank = cfg.BackRankBonus
	w.Advance = cfg.AdvanceBonus
	w.Side = cfg.SideBonus
	return w
}

type Evaluator struct {
	w Weights
}

func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{w: w}
}

// Evaluate scores the position from the given perspective. Every piece
// contributes a value that depends only on the piece and its position
// relative to its own side, added for the perspective's pieces and
// subtracted for the opponent's, so Evaluate(b, Red) == -Evaluate(b, Black)
// holds for every board.
func (e *Evaluator) Evaluate(b *checkers.Board, perspective checkers.Color) int {
	score := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := checkers.Square{Row: row, Col: col}
			p := b.PieceAt(sq)
			if p == nil {
				continue
			}
			v := e.pieceScore(*p, sq)
			if p.Color == perspective {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

func (e *Evaluator) pieceScore(p checkers.Piece, sq checkers.Square) int {
	v := e.w.Man
	if p.King {
		v = e.w.King
	}
	if sq.Row >= 2 && sq.Row <= 5 && sq.Col >= 2 && sq.Col <= 5 {
		v += e.w.Center
	}
	if sq.Row == p.Color.BackRow() {
		v += e.w.BackRank
	}
	if sq.Col == 0 || sq.Col == 7 {
		v += e.w.Side
	}
	if !p.King {
		v += e.advancement(p.Color, sq.Row) * e.w.Advance
	}
	return v
}

// advancement counts rows travelled from the owner's back row.
func (e *Evaluator) advancement(c checkers.Color, row int) int {
	if c == checkers.Red {
		return 7 - row
	}
	return row
}
