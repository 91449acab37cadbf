package analysis

import (
	"fmt"

	"go.uber.org/zap"

	"checkers_exe/internal/domain/checkers"
	"checkers_exe/internal/usecase/ai"
	"checkers_exe/internal/usecase/game"
)

type Classification string

const (
	Best       Classification = "Best"
	Good       Classification = "Good"
	Inaccuracy Classification = "Inaccuracy"
	Blunder    Classification = "Blunder"
)

// Thresholds are score losses against the engine's best move, in evaluator
// units (a man is 100).
const (
	bestThreshold       = 20
	goodThreshold       = 80
	inaccuracyThreshold = 150
)

type MoveAnalysis struct {
	Record         game.MoveRecord
	Classification Classification
	ScoreDiff      int
	BestScore      int
	PlayedScore    int
	BestMove       checkers.Move
	Description    string
}

type PlayerSummary struct {
	Moves    int
	Counts   map[Classification]int
	Accuracy float64
}

type Analyzer struct {
	engine *ai.AI
	log    *zap.SugaredLogger
}

func NewAnalyzer(engine *ai.AI, log *zap.SugaredLogger) *Analyzer {
	return &Analyzer{engine: engine, log: log}
}

// AnalyzeGame replays the recorded moves from the starting position and
// classifies each one against the engine's evaluation of every root move
// at that point.
func (a *Analyzer) AnalyzeGame(g *game.Game) ([]MoveAnalysis, error) {
	board := checkers.NewWithRules(g.Rules)
	out := make([]MoveAnalysis, 0, len(g.History))
	for _, rec := range g.History {
		ma, err := a.analyzeOne(board, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, ma)
		next, err := board.Apply(rec.Move)
		if err != nil {
			return nil, err
		}
		board = next
	}
	a.log.Debugw("game analyzed", "id", g.ID, "moves", len(out))
	return out, nil
}

func (a *Analyzer) analyzeOne(board *checkers.Board, rec game.MoveRecord) (MoveAnalysis, error) {
	evals, err := a.engine.EvaluateMoves(board, rec.Player)
	if err != nil {
		return MoveAnalysis{}, err
	}
	ma := MoveAnalysis{Record: rec, BestMove: evals[0].Move, BestScore: evals[0].Score}

	if len(evals) == 1 {
		ma.Classification = Best
		ma.PlayedScore = evals[0].Score
		ma.Description = "Only move available"
		return ma, nil
	}

	for i, ev := range evals {
		if ev.Move.Equal(rec.Move) {
			ma.PlayedScore = ev.Score
			if i == 0 {
				ma.Classification = Best
				ma.Description = "Best move"
				return ma, nil
			}
			ma.ScoreDiff = ma.BestScore - ma.PlayedScore
			ma.Classification = classify(ma.ScoreDiff)
			ma.Description = fmt.Sprintf("%s: loses %d compared to %s",
				ma.Classification, ma.ScoreDiff, ma.BestMove.String())
			return ma, nil
		}
	}
	// A recorded move absent from the legal set means the history is corrupt.
	ma.Classification = Blunder
	ma.Description = "Move not found in the legal set"
	return ma, nil
}

func classify(diff int) Classification {
	switch {
	case diff <= bestThreshold:
		return Best
	case diff <= goodThreshold:
		return Good
	case diff <= inaccuracyThreshold:
		return Inaccuracy
	default:
		return Blunder
	}
}

// Summarize aggregates per-player counts and accuracy, where accuracy is the
// share of moves classified Best or Good.
func Summarize(list []MoveAnalysis) map[checkers.Color]PlayerSummary {
	out := make(map[checkers.Color]PlayerSummary)
	for _, ma := range list {
		s, ok := out[ma.Record.Player]
		if !ok {
			s = PlayerSummary{Counts: make(map[Classification]int)}
		}
		s.Moves++
		s.Counts[ma.Classification]++
		out[ma.Record.Player] = s
	}
	for color, s := range out {
		if s.Moves > 0 {
			s.Accuracy = float64(s.Counts[Best]+s.Counts[Good]) / float64(s.Moves)
		}
		out[color] = s
	}
	return out
}
