package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/ChesseGo/internal/evalbuilder"
	"github.com/ChizhovVadim/ChesseGo/internal/logging"
	"github.com/ChizhovVadim/ChesseGo/internal/play"
	"github.com/ChizhovVadim/ChesseGo/pkg/common"
	"github.com/ChizhovVadim/ChesseGo/pkg/engine"
	"github.com/ChizhovVadim/ChesseGo/pkg/uci"
)

const (
	name   = "Chesse"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

type Config struct {
	Threads    int
	Hash       int
	Eval       string
	Debug      bool
	Play       bool
	Side       string
	Difficulty string
	Colors     bool
}

func main() {
	var config = Config{
		Threads: runtime.NumCPU(),
		Hash:    engine.NewOptions().TransTableSize,
	}
	flag.IntVar(&config.Threads, "threads", config.Threads, "number of search goroutines")
	flag.IntVar(&config.Hash, "hash", config.Hash, "transposition table entries")
	flag.StringVar(&config.Eval, "eval", "", "evaluation function: full or material")
	flag.BoolVar(&config.Debug, "debug", false, "debug logging")
	flag.BoolVar(&config.Play, "play", false, "play against the engine in the console")
	flag.StringVar(&config.Side, "side", "white", "human side in console play")
	flag.StringVar(&config.Difficulty, "difficulty", engine.Medium.String(), "easy, medium, hard or expert")
	flag.BoolVar(&config.Colors, "colors", true, "coloured board in console play")
	flag.Parse()

	var logger, err = logging.New(config.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(config, logger); err != nil {
		logger.Error("chesse failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(config Config, logger *zap.Logger) error {
	logger.Info(name,
		zap.String("versionName", versionName),
		zap.String("buildDate", buildDate),
		zap.String("gitRevision", gitRevision),
		zap.String("runtimeVersion", runtime.Version()),
		zap.String("goarch", runtime.GOARCH),
		zap.String("goos", runtime.GOOS),
		zap.Int("numCPU", runtime.NumCPU()))

	if err := evalbuilder.Validate(config.Eval); err != nil {
		return err
	}

	var options = engine.NewOptions()
	options.Threads = config.Threads
	options.TransTableSize = config.Hash
	var eng = engine.NewEngine(options, evalbuilder.Get(config.Eval), logger.Named("engine"))

	if config.Play {
		var difficulty, err = engine.ParseDifficulty(config.Difficulty)
		if err != nil {
			return err
		}
		var side = common.White
		if config.Side == "black" {
			side = common.Black
		} else if config.Side != "white" {
			return fmt.Errorf("bad side %q", config.Side)
		}
		return play.PlayCli(context.Background(), eng, play.Settings{
			HumanSide: side,
			Depth:     difficulty.Depth(),
			MoveTime:  engine.DefaultMoveTime,
			Colors:    config.Colors,
		}, os.Stdin, os.Stdout)
	}

	var evalName = config.Eval
	if evalName == "" {
		evalName = evalbuilder.Names[0]
	}
	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Threads", Min: 1, Max: runtime.NumCPU(), Value: &eng.Options.Threads},
			&uci.IntOption{Name: "TransTableSize", Min: 1 << 10, Max: 1 << 26, Value: &eng.Options.TransTableSize},
			&uci.IntOption{Name: "EvalCacheSize", Min: 0, Max: 1 << 26, Value: &eng.Options.EvalCacheSize},
			&uci.ComboOption{Name: "Eval", Vars: evalbuilder.Names, Value: &evalName,
				OnChange: func(v string) { eng.SetEvalBuilder(evalbuilder.Get(v)) }},
		},
		logger.Named("uci"),
	)
	protocol.Run(os.Stdin, os.Stdout)
	return nil
}
