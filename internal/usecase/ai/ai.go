package ai

import (
	"sort"

	"checkers_exe/internal/domain/checkers"
	errs "checkers_exe/internal/errors"
)

const (
	// winScore dominates any sum the evaluator can produce, so a forced win
	// or loss found in the tree outranks every heuristic score.
	winScore = 100000
	infScore = winScore * 10
)

// Stats is the observable side channel of a search. It never influences
// which move gets chosen.
type Stats struct {
	Nodes    int
	Cutoffs  int
	MaxDepth int
}

type Result struct {
	Move  checkers.Move
	Score int
	Stats Stats
}

type MoveEval struct {
	Move  checkers.Move
	Score int
}

// AI picks moves with depth-limited negamax and alpha-beta pruning. For any
// fixed depth the chosen move and backed-up value match plain minimax; the
// pruning and the capture-first move ordering only cut the work.
type AI struct {
	depth      int
	nodeBudget int
	eval       *Evaluator
}

func New(depth int, eval *Evaluator) *AI {
	if depth < 1 {
		depth = 1
	}
	return &AI{depth: depth, eval: eval}
}

// SetNodeBudget caps the number of visited nodes. Zero means unlimited.
// The budget is checked at node entry only, so a capped search still backs
// up values from fully explored subtrees.
func (a *AI) SetNodeBudget(n int) {
	a.nodeBudget = n
}

func (a *AI) Depth() int {
	return a.depth
}

// GetBestMove returns the best move for player on the given board.
func (a *AI) GetBestMove(b *checkers.Board, player checkers.Color) (checkers.Move, error) {
	res, err := a.Search(b, player)
	if err != nil {
		return checkers.Move{}, err
	}
	return res.Move, nil
}

// Search runs the full search and also returns the root score and stats.
// It fails with ErrNoLegalMove when the position is already lost for player.
func (a *AI) Search(b *checkers.Board, player checkers.Color) (Result, error) {
	moves, err := b.LegalMoves(player)
	if err != nil {
		return Result{}, err
	}
	if len(moves) == 0 {
		return Result{}, errs.ErrNoLegalMove
	}
	orderMoves(moves)

	var st Stats
	best := moves[0]
	bestScore := -infScore
	alpha, beta := -infScore, infScore
	for _, m := range moves {
		child, err := b.Apply(m)
		if err != nil {
			return Result{}, err
		}
		score := -a.negamax(child, a.depth-1, 1, -beta, -alpha, &st)
		// Strictly greater keeps the first move in ordering on ties.
		if score > bestScore {
			bestScore, best = score, m
		}
		if score > alpha {
			alpha = score
		}
	}
	return Result{Move: best, Score: bestScore, Stats: st}, nil
}

// EvaluateMoves scores every legal root move with a full-window search one
// ply shallower than the configured depth, best first. Feeds the analyzer
// and the hint command.
func (a *AI) EvaluateMoves(b *checkers.Board, player checkers.Color) ([]MoveEval, error) {
	moves, err := b.LegalMoves(player)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return nil, errs.ErrNoLegalMove
	}
	orderMoves(moves)

	depth := a.depth - 1
	var st Stats
	out := make([]MoveEval, 0, len(moves))
	for _, m := range moves {
		child, err := b.Apply(m)
		if err != nil {
			return nil, err
		}
		score := -a.negamax(child, depth, 1, -infScore, infScore, &st)
		out = append(out, MoveEval{Move: m, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

// negamax returns the value of the position from the side to move's
// perspective. A side left without moves has lost; the ply offset makes the
// search prefer the faster win and the slower loss.
func (a *AI) negamax(b *checkers.Board, depth, ply int, alpha, beta int, st *Stats) int {
	st.Nodes++
	if ply > st.MaxDepth {
		st.MaxDepth = ply
	}
	if a.nodeBudget > 0 && st.Nodes >= a.nodeBudget {
		return a.eval.Evaluate(b, b.Turn())
	}

	moves, err := b.LegalMoves(b.Turn())
	if err != nil || len(moves) == 0 {
		return -(winScore - ply)
	}
	if depth <= 0 {
		return a.eval.Evaluate(b, b.Turn())
	}
	orderMoves(moves)

	best := -infScore
	for _, m := range moves {
		child, err := b.Apply(m)
		if err != nil {
			continue
		}
		score := -a.negamax(child, depth-1, ply+1, -beta, -alpha, st)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			st.Cutoffs++
			break
		}
	}
	return best
}

// orderMoves puts longer capture chains first and keeps generation order
// within equal lengths, so tie-breaking stays deterministic. Non-captures
// have chain length zero and naturally sort last.
func orderMoves(moves []checkers.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return len(moves[i].Captured) > len(moves[j].Captured)
	})
}
