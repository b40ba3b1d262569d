package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/ChesseGo/internal/arena"
	"github.com/ChizhovVadim/ChesseGo/internal/evalbuilder"
	"github.com/ChizhovVadim/ChesseGo/internal/logging"
	"github.com/ChizhovVadim/ChesseGo/pkg/engine"
)

type Config struct {
	arena.Config
	EvalA string
	EvalB string
	Debug bool
}

func main() {
	var config Config
	flag.IntVar(&config.Games, "games", 0, "number of games, 0 plays every opening twice")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "number of games played at once")
	flag.IntVar(&config.DepthA, "depth-a", int(engine.Medium), "search depth of engine A")
	flag.IntVar(&config.DepthB, "depth-b", int(engine.Medium), "search depth of engine B")
	flag.DurationVar(&config.MoveTime, "movetime", time.Second, "time limit per move")
	flag.IntVar(&config.MaxPlies, "maxplies", 200, "adjudicate a draw after this many plies")
	flag.StringVar(&config.EvalA, "eval-a", "full", "evaluation of engine A")
	flag.StringVar(&config.EvalB, "eval-b", "material", "evaluation of engine B")
	flag.BoolVar(&config.Debug, "debug", false, "debug logging")
	flag.Parse()

	var logger, err = logging.New(config.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(config, logger); err != nil {
		logger.Error("arena failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(config Config, logger *zap.Logger) error {
	for _, key := range []string{config.EvalA, config.EvalB} {
		if err := evalbuilder.Validate(key); err != nil {
			return err
		}
	}
	logger.Info("config", zap.Any("config", config))

	var newEngine = func(eval string) func() arena.IEngine {
		return func() arena.IEngine {
			var options = engine.NewOptions()
			options.Threads = 1
			var eng = engine.NewEngine(options, evalbuilder.Get(eval), nil)
			eng.Prepare()
			return eng
		}
	}

	var a = arena.New(config.Config, newEngine(config.EvalA), newEngine(config.EvalB), logger)
	var stats, err = a.Run(context.Background())
	if err != nil {
		return err
	}
	logger.Info("result",
		zap.Int("wins", stats.Wins),
		zap.Int("losses", stats.Losses),
		zap.Int("draws", stats.Draws),
		zap.Float64("elo", stats.EloDifference()),
		zap.Float64("los", stats.LOS()))
	return nil
}
