package cli

import (
	"context"

	"checkers_exe/internal/statuses"
)

// RunSelfPlay lets the engine play both sides for up to maxPlies, prints the
// per-move analysis table and optionally writes the PDF report.
func (h *Handler) RunSelfPlay(ctx context.Context, maxPlies int, reportPath string) error {
	g := h.gameUC.NewGame()
	h.printf("Self-play game %s, depth %d.\n\n", g.ID, h.gameUC.Engine().Depth())

	for g.Status == statuses.StatusActive && len(g.History) < maxPlies {
		select {
		case <-ctx.Done():
			h.printf("\nInterrupted.\n")
			return ctx.Err()
		default:
		}
		res, err := h.gameUC.PlayAI(g.Board.Turn())
		if err != nil {
			return err
		}
		h.printf("%3d. %-6s %-16s score %6d  nodes %7d\n",
			len(g.History), g.Board.Turn().Opponent(), res.Move, res.Score, res.Stats.Nodes)
	}

	h.printf("\n%s\n\n", g.Board)
	switch g.Status {
	case statuses.StatusActive:
		h.printf("Stopped after %d plies.\n", len(g.History))
	case statuses.StatusDrawn:
		h.printf("Drawn after %d plies.\n", len(g.History))
	default:
		h.printf("%s wins after %d plies.\n", g.Winner, len(g.History))
	}

	moves, err := h.analyzer.AnalyzeGame(g)
	if err != nil {
		return err
	}
	h.printf("\nAnalysis:\n")
	for _, ma := range moves {
		h.printf("%3d. %-6s %-16s %-10s %s\n",
			ma.Record.Number, ma.Record.Player, ma.Record.Notation, ma.Classification, ma.Description)
	}

	if reportPath != "" {
		if err := h.reporter.Generate(g, moves, reportPath); err != nil {
			return err
		}
		h.printf("\nReport written to %s\n", reportPath)
	}
	return nil
}
