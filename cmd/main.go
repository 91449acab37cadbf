package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"checkers_exe/internal/bootstrap"
	deliverycli "checkers_exe/internal/delivery/cli"
	"checkers_exe/internal/domain/checkers"
	"checkers_exe/internal/report"
	gameuc "checkers_exe/internal/usecase/game"
)

func main() {
	app := &cli.App{
		Name:  "checkers",
		Usage: "checkers against a minimax engine, with move analysis and PDF reports",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: ".env", Usage: "path to the config file"},
			&cli.BoolFlag{Name: "debug", Usage: "verbose logging"},
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play an interactive game against the engine",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "depth", Usage: "override search depth"},
					&cli.StringFlag{Name: "color", Value: "red", Usage: "your color, red moves first"},
					&cli.StringFlag{Name: "report", Usage: "write a PDF report to this path after the game"},
				},
				Action: runPlay,
			},
			{
				Name:  "selfplay",
				Usage: "watch the engine play itself and print the analysis",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "depth", Usage: "override search depth"},
					&cli.IntFlag{Name: "plies", Value: 120, Usage: "stop after this many plies"},
					&cli.StringFlag{Name: "report", Usage: "write a PDF report to this path"},
				},
				Action: runSelfPlay,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlay(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	color := checkers.Red
	switch strings.ToLower(c.String("color")) {
	case "red", "r":
	case "black", "b":
		color = checkers.Black
	default:
		return fmt.Errorf("unknown color %q", c.String("color"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleShutdown(cancel, logger)

	handler := newHandler(cfg, logger)
	return handler.Run(ctx, color, reportPath(c, cfg))
}

func runSelfPlay(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleShutdown(cancel, logger)

	handler := newHandler(cfg, logger)
	return handler.RunSelfPlay(ctx, c.Int("plies"), reportPath(c, cfg))
}

func newHandler(cfg *bootstrap.Config, logger *zap.SugaredLogger) *deliverycli.Handler {
	uc := gameuc.NewUseCase(cfg, logger)
	reporter := report.New(cfg, logger)
	return deliverycli.NewHandler(cfg, logger, uc, reporter, os.Stdin, os.Stdout)
}

func setup(c *cli.Context) (*bootstrap.Config, *zap.SugaredLogger, error) {
	cfg, err := bootstrap.Setup(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup configuration: %w", err)
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("depth") {
		cfg.SearchDepth = c.Int("depth")
	}
	return cfg, newLogger(cfg.Debug), nil
}

func reportPath(c *cli.Context, cfg *bootstrap.Config) string {
	if c.IsSet("report") {
		return c.String("report")
	}
	if c.Command.Name == "play" {
		// Interactive games always get a report, like the original match review.
		return cfg.ReportPath
	}
	return ""
}

func newLogger(debug bool) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"checkers.log"}
		logger, err = cfg.Build()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
