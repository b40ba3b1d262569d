package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/ChesseGo/internal/evalbuilder"
	"github.com/ChizhovVadim/ChesseGo/internal/logging"
	"github.com/ChizhovVadim/ChesseGo/internal/tactic"
	"github.com/ChizhovVadim/ChesseGo/pkg/common"
	"github.com/ChizhovVadim/ChesseGo/pkg/engine"
)

func main() {
	var args = NewCommandArgs(os.Args)
	var logger, err = logging.New(args.GetBool("debug", false))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(args, logger); err != nil {
		logger.Error("tests failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(args *CommandArgs, logger *zap.Logger) error {
	var handler = NewCommandHandler()
	handler.Add("tactic", func() error {
		var moveTime = time.Duration(args.GetInt("movetime", 3)) * time.Second
		return runSolveTactic(mapPath(args.GetString("testpath", "")), args.GetString("eval", "full"),
			common.LimitsType{MoveTime: moveTime, Depth: args.GetInt("depth", 0)}, logger)
	})
	handler.Add("benchmark", func() error {
		return runBenchmark(mapPath(args.GetString("testpath", "")), args.GetString("eval", "full"),
			args.GetInt("depth", int(engine.Hard)), logger)
	})
	return handler.Execute(args.CommandName())
}

func runSolveTactic(path, evalName string, limits common.LimitsType, logger *zap.Logger) error {
	var tests, eng, err = prepare(path, evalName, logger)
	if err != nil {
		return err
	}
	tactic.SolveTactic(context.Background(), tests, eng, limits, logger)
	return nil
}

func runBenchmark(path, evalName string, depth int, logger *zap.Logger) error {
	var tests, eng, err = prepare(path, evalName, logger)
	if err != nil {
		return err
	}
	tactic.Benchmark(context.Background(), tests, eng, depth, logger)
	return nil
}

func prepare(path, evalName string, logger *zap.Logger) ([]tactic.EpdItem, *engine.Engine, error) {
	if err := evalbuilder.Validate(evalName); err != nil {
		return nil, nil, err
	}
	logger.Info("load tests", zap.String("path", path), zap.String("eval", evalName))
	var tests, err = tactic.LoadEpd(path, logger)
	if err != nil {
		return nil, nil, err
	}
	var eng = engine.NewEngine(engine.NewOptions(), evalbuilder.Get(evalName), nil)
	eng.Prepare()
	return tests, eng, nil
}

// mapPath expands a leading "~/" to the home directory.
func mapPath(path string) string {
	var rest, found = strings.CutPrefix(path, "~/")
	if !found {
		return path
	}
	var home, err = os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
