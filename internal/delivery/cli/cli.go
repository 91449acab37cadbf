package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"checkers_exe/internal/bootstrap"
	"checkers_exe/internal/domain/checkers"
	errs "checkers_exe/internal/errors"
	"checkers_exe/internal/statuses"
	"checkers_exe/internal/usecase/ai"
	"checkers_exe/internal/usecase/analysis"
	"checkers_exe/internal/usecase/game"
)

// Handler is the terminal front end: it prints the board, reads commands
// from the human and lets the engine answer. The same role the HTTP
// delivery layer plays in a served game, with stdin/stdout as transport.
type Handler struct {
	cfg       *bootstrap.Config
	log       *zap.SugaredLogger
	gameUC    *game.UseCase
	analyzer  *analysis.Analyzer
	reporter  Reporter
	evaluator *ai.Evaluator
	in        *bufio.Scanner
	out       io.Writer
}

// Reporter writes the post-game PDF. Kept as an interface so the handler
// does not depend on the report package directly.
type Reporter interface {
	Generate(match *game.Game, moves []analysis.MoveAnalysis, output string) error
}

func NewHandler(cfg *bootstrap.Config, log *zap.SugaredLogger, gameUC *game.UseCase, reporter Reporter, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		cfg:       cfg,
		log:       log,
		gameUC:    gameUC,
		analyzer:  analysis.NewAnalyzer(gameUC.Engine(), log),
		reporter:  reporter,
		evaluator: ai.NewEvaluator(ai.WeightsFromConfig(cfg)),
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run plays one interactive game with the human holding humanColor.
// reportPath, when non-empty, gets the PDF report after the game.
func (h *Handler) Run(ctx context.Context, humanColor checkers.Color, reportPath string) error {
	g := h.gameUC.NewGame()
	h.printf("Game %s. You play %s, type 'help' for commands.\n\n", g.ID, humanColor)

	for g.Status == statuses.StatusActive {
		select {
		case <-ctx.Done():
			h.printf("\nInterrupted.\n")
			return ctx.Err()
		default:
		}

		h.printf("%s\n\n", g.Board)
		if g.Board.Turn() == humanColor {
			if err := h.humanTurn(humanColor); err != nil {
				return err
			}
		} else {
			h.aiTurn(humanColor.Opponent())
		}
	}

	h.printResult(g)
	if reportPath != "" {
		return h.writeReport(g, reportPath)
	}
	return nil
}

func (h *Handler) humanTurn(player checkers.Color) error {
	for {
		h.printf("%s> ", player)
		if !h.in.Scan() {
			return io.EOF
		}
		fields := strings.Fields(strings.ToLower(h.in.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "move", "m":
			if err := h.playHuman(player, fields[1:]); err != nil {
				h.printf("%v\n", err)
				continue
			}
			return nil
		case "moves":
			h.showMoves()
		case "hint":
			h.showHint(player)
		case "board":
			g, _ := h.gameUC.Current()
			h.printf("%s\n", g.Board)
		case "eval":
			g, _ := h.gameUC.Current()
			h.printf("static evaluation for %s: %d\n", player, h.evaluator.Evaluate(g.Board, player))
		case "resign":
			return h.gameUC.Resign(player)
		case "help":
			h.printf("commands: move <from> <to> [<to>...], moves, hint, board, eval, resign, quit\n")
		case "quit", "exit":
			return h.gameUC.Resign(player)
		default:
			h.printf("unknown command %q, type 'help'\n", fields[0])
		}
	}
}

func (h *Handler) aiTurn(player checkers.Color) {
	started := time.Now()
	res, err := h.gameUC.PlayAI(player)
	if err != nil {
		h.log.Errorw("engine failed to move", "error", err)
		return
	}
	h.printf("%s plays %s (%.2fs, %d nodes, %d cutoffs)\n\n",
		h.cfg.BotName, res.Move, time.Since(started).Seconds(), res.Stats.Nodes, res.Stats.Cutoffs)
}

func (h *Handler) playHuman(player checkers.Color, args []string) error {
	m, err := h.parseMove(args)
	if err != nil {
		return err
	}
	return h.gameUC.PlayMove(player, m)
}

// parseMove reads "b6 a5" style input: the origin followed by every landing
// square of the move. For a jump chain the shorthand "from final" is also
// accepted when only one legal chain connects the two squares.
func (h *Handler) parseMove(args []string) (checkers.Move, error) {
	if len(args) < 2 {
		return checkers.Move{}, errs.ErrBadCoordinate
	}
	squares := make([]checkers.Square, 0, len(args))
	for _, a := range args {
		sq, err := checkers.ParseSquare(a)
		if err != nil {
			return checkers.Move{}, err
		}
		squares = append(squares, sq)
	}
	m := checkers.Move{From: squares[0], Path: squares[1:]}

	if len(m.Path) == 1 {
		legal, err := h.gameUC.LegalMoves()
		if err != nil {
			return checkers.Move{}, err
		}
		var matches []checkers.Move
		for _, c := range legal {
			if c.From == m.From && c.To() == m.Path[0] {
				matches = append(matches, c)
			}
		}
		if len(matches) == 1 {
			return matches[0], nil
		}
	}
	return m, nil
}

func (h *Handler) showMoves() {
	legal, err := h.gameUC.LegalMoves()
	if err != nil {
		h.printf("%v\n", err)
		return
	}
	parts := make([]string, 0, len(legal))
	for _, m := range legal {
		parts = append(parts, m.String())
	}
	h.printf("legal moves: %s\n", strings.Join(parts, ", "))
}

func (h *Handler) showHint(player checkers.Color) {
	m, err := h.gameUC.Hint(player)
	if err != nil {
		h.printf("%v\n", err)
		return
	}
	h.printf("suggestion: %s\n", m)
}

func (h *Handler) printResult(g *game.Game) {
	h.printf("%s\n\n", g.Board)
	switch g.Status {
	case statuses.StatusDrawn:
		h.printf("Game drawn after %d moves.\n", len(g.History))
	default:
		h.printf("Game over: %s wins after %d moves.\n", g.Winner, len(g.History))
	}
}

func (h *Handler) writeReport(g *game.Game, path string) error {
	h.printf("Analyzing the game...\n")
	moves, err := h.analyzer.AnalyzeGame(g)
	if err != nil {
		return err
	}
	if err := h.reporter.Generate(g, moves, path); err != nil {
		return err
	}
	h.printf("Report written to %s\n", path)
	return nil
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}
