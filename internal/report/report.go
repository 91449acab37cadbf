package report

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"checkers_exe/internal/bootstrap"
	"checkers_exe/internal/domain/checkers"
	"checkers_exe/internal/usecase/analysis"
	"checkers_exe/internal/usecase/game"
)

// Generator renders a finished game into a PDF match report: header with the
// players and the result, a per-move table with classifications, and an
// accuracy summary.
type Generator struct {
	cfg *bootstrap.Config
	log *zap.SugaredLogger
}

func New(cfg *bootstrap.Config, log *zap.SugaredLogger) *Generator {
	return &Generator{cfg: cfg, log: log}
}

func (g *Generator) Generate(match *game.Game, moves []analysis.MoveAnalysis, output string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Checkers Match Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Checkers Match Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Game %s", match.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, time.Now().Format("2 January 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5,
		fmt.Sprintf("%s (red) vs %s (black) - %s", g.cfg.PlayerName, g.cfg.BotName, resultLine(match)),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.moveTable(pdf, moves)
	g.summary(pdf, moves)

	if err := pdf.OutputFileAndClose(output); err != nil {
		return err
	}
	g.log.Infow("report written", "path", output, "moves", len(moves))
	return nil
}

func (g *Generator) moveTable(pdf *gofpdf.Fpdf, moves []analysis.MoveAnalysis) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Moves", "", 1, "L", false, 0, "")

	widths := []float64{12, 22, 40, 30, 22, 22, 42}
	headers := []string{"#", "Player", "Move", "Quality", "Score", "Best", "Note"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(236, 240, 241)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, ma := range moves {
		if pdf.GetY() > 270 {
			pdf.AddPage()
		}
		r, gr, b := classificationColor(ma.Classification)
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", ma.Record.Number), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, string(ma.Record.Player), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, ma.Record.Notation, "1", 0, "C", false, 0, "")
		pdf.SetTextColor(r, gr, b)
		pdf.CellFormat(widths[3], 6, string(ma.Classification), "1", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%d", ma.PlayedScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprintf("%d", ma.BestScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, ma.Description, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func (g *Generator) summary(pdf *gofpdf.Fpdf, moves []analysis.MoveAnalysis) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	totalNodes := 0
	for _, ma := range moves {
		totalNodes += ma.Record.Nodes
	}

	summaries := analysis.Summarize(moves)
	for _, color := range []checkers.Color{checkers.Red, checkers.Black} {
		s, ok := summaries[color]
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s: %d moves, accuracy %.0f%% (best %d, good %d, inaccuracies %d, blunders %d)",
			color, s.Moves, s.Accuracy*100,
			s.Counts[analysis.Best], s.Counts[analysis.Good],
			s.Counts[analysis.Inaccuracy], s.Counts[analysis.Blunder])
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	if totalNodes > 0 {
		pdf.MultiCell(0, 5, fmt.Sprintf("Engine searched %d nodes in total.", totalNodes), "", "L", false)
	}
}

func resultLine(match *game.Game) string {
	if match.Winner != "" {
		return fmt.Sprintf("%s wins", match.Winner)
	}
	return "draw"
}

func classificationColor(c analysis.Classification) (int, int, int) {
	switch c {
	case analysis.Best:
		return 39, 174, 96
	case analysis.Good:
		return 52, 152, 219
	case analysis.Inaccuracy:
		return 243, 156, 18
	case analysis.Blunder:
		return 231, 76, 60
	}
	return 0, 0, 0
}
