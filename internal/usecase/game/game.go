package game

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"checkers_exe/internal/bootstrap"
	"checkers_exe/internal/domain/checkers"
	errs "checkers_exe/internal/errors"
	"checkers_exe/internal/statuses"
	"checkers_exe/internal/usecase/ai"
)

type MoveRecord struct {
	ID       string
	Number   int
	Player   checkers.Color
	Move     checkers.Move
	Notation string
	Score    int
	Nodes    int
	ByAI     bool
	PlayedAt time.Time
}

type Game struct {
	ID      string
	Rules   checkers.Rules
	Board   *checkers.Board
	History []MoveRecord
	Status  string
	Winner  checkers.Color

	quietPlies int // plies since the last capture or promotion
}

// UseCase drives one game at a time: it validates incoming moves against the
// legal set, asks the engine for replies and keeps the move history that the
// analyzer and the report consume.
type UseCase struct {
	cfg    *bootstrap.Config
	log    *zap.SugaredLogger
	engine *ai.AI
	assist *ai.AI
	game   *Game
}

func NewUseCase(cfg *bootstrap.Config, log *zap.SugaredLogger) *UseCase {
	ev := ai.NewEvaluator(ai.WeightsFromConfig(cfg))
	return &UseCase{
		cfg:    cfg,
		log:    log,
		engine: ai.New(cfg.SearchDepth, ev),
		assist: ai.New(cfg.AssistDepth, ev),
	}
}

// Engine exposes the playing engine for analysis over finished games.
func (u *UseCase) Engine() *ai.AI {
	return u.engine
}

func (u *UseCase) NewGame() *Game {
	rules := checkers.Rules{FlyingPromotion: u.cfg.FlyingPromotion}
	g := &Game{
		ID:     uuid.NewString(),
		Rules:  rules,
		Board:  checkers.NewWithRules(rules),
		Status: statuses.StatusActive,
	}
	u.game = g
	u.log.Infow("new game", "id", g.ID, "flying_promotion", rules.FlyingPromotion)
	return g
}

func (u *UseCase) Current() (*Game, error) {
	if u.game == nil {
		return nil, errs.ErrGameNotFound
	}
	return u.game, nil
}

func (u *UseCase) LegalMoves() ([]checkers.Move, error) {
	g, err := u.Current()
	if err != nil {
		return nil, err
	}
	return g.Board.LegalMoves(g.Board.Turn())
}

// PlayMove applies a move on behalf of player. The move must match one of
// the currently legal moves; a stale or fabricated move fails with
// ErrInvalidMove without touching the board.
func (u *UseCase) PlayMove(player checkers.Color, m checkers.Move) error {
	g, err := u.Current()
	if err != nil {
		return err
	}
	if g.Status != statuses.StatusActive {
		return errs.ErrGameOver
	}
	if player != g.Board.Turn() {
		return errs.ErrNotYourTurn
	}
	legal, err := g.Board.LegalMoves(player)
	if err != nil {
		return err
	}
	for _, candidate := range legal {
		if candidate.Equal(m) {
			return u.commit(g, player, candidate, 0, 0, false)
		}
	}
	return errs.ErrInvalidMove
}

// PlayAI lets the engine move for player and returns the search result.
func (u *UseCase) PlayAI(player checkers.Color) (ai.Result, error) {
	g, err := u.Current()
	if err != nil {
		return ai.Result{}, err
	}
	if g.Status != statuses.StatusActive {
		return ai.Result{}, errs.ErrGameOver
	}
	if player != g.Board.Turn() {
		return ai.Result{}, errs.ErrNotYourTurn
	}
	started := time.Now()
	res, err := u.engine.Search(g.Board, player)
	if err != nil {
		return ai.Result{}, err
	}
	u.log.Debugw("engine move",
		"move", res.Move.String(),
		"score", res.Score,
		"nodes", res.Stats.Nodes,
		"cutoffs", res.Stats.Cutoffs,
		"elapsed", time.Since(started),
	)
	if err := u.commit(g, player, res.Move, res.Score, res.Stats.Nodes, true); err != nil {
		return ai.Result{}, err
	}
	return res, nil
}

// Hint asks the stronger assist engine for a suggestion without playing it.
func (u *UseCase) Hint(player checkers.Color) (checkers.Move, error) {
	g, err := u.Current()
	if err != nil {
		return checkers.Move{}, err
	}
	if g.Status != statuses.StatusActive {
		return checkers.Move{}, errs.ErrGameOver
	}
	return u.assist.GetBestMove(g.Board, player)
}

func (u *UseCase) Resign(player checkers.Color) error {
	g, err := u.Current()
	if err != nil {
		return err
	}
	if g.Status != statuses.StatusActive {
		return errs.ErrGameOver
	}
	g.Status = statuses.StatusResigned
	g.Winner = player.Opponent()
	u.log.Infow("resignation", "id", g.ID, "winner", g.Winner)
	return nil
}

func (u *UseCase) commit(g *Game, player checkers.Color, m checkers.Move, score, nodes int, byAI bool) error {
	next, err := g.Board.Apply(m)
	if err != nil {
		return err
	}
	g.Board = next
	g.History = append(g.History, MoveRecord{
		ID:       uuid.NewString(),
		Number:   len(g.History) + 1,
		Player:   player,
		Move:     m,
		Notation: m.String(),
		Score:    score,
		Nodes:    nodes,
		ByAI:     byAI,
		PlayedAt: time.Now(),
	})

	if m.IsCapture() || m.Promotes {
		g.quietPlies = 0
	} else {
		g.quietPlies++
	}
	u.settle(g)
	return nil
}

// settle recomputes the derived game state after a move. The draw cap on
// quiet plies lives here, not in the board.
func (u *UseCase) settle(g *Game) {
	if winner, over := g.Board.Winner(); over {
		g.Status = statuses.StatusFinished
		g.Winner = winner
		u.log.Infow("game over", "id", g.ID, "winner", winner, "moves", len(g.History))
		return
	}
	if u.cfg.MaxQuietPlies > 0 && g.quietPlies >= u.cfg.MaxQuietPlies {
		g.Status = statuses.StatusDrawn
		u.log.Infow("game drawn", "id", g.ID, "quiet_plies", g.quietPlies)
	}
}
