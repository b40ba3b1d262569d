package arena

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Arena struct {
	config     Config
	newEngineA func() IEngine
	newEngineB func() IEngine
	openings   []string
	logger     *zap.Logger
}

func New(config Config, newEngineA, newEngineB func() IEngine, logger *zap.Logger) *Arena {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	return &Arena{
		config:     config,
		newEngineA: newEngineA,
		newEngineB: newEngineB,
		openings:   openings,
		logger:     logger,
	}
}

// Run plays the match and returns the score from engine A's point of view.
func (a *Arena) Run(ctx context.Context) (Stats, error) {
	a.logger.Info("arena started",
		zap.Int("numCPU", runtime.NumCPU()),
		zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)),
		zap.Int("concurrency", a.config.Concurrency),
		zap.Int("depthA", a.config.DepthA),
		zap.Int("depthB", a.config.DepthB),
		zap.Duration("movetime", a.config.MoveTime))
	defer a.logger.Info("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return a.loadOpenings(ctx, gameInfos)
	})

	g.Go(func() error {
		stats = showResults(gameResults, a.logger)
		return nil
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < a.config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return stats, err
}

func (a *Arena) loadOpenings(ctx context.Context, gameInfos chan<- gameInfo) error {
	var games = a.config.Games
	if games <= 0 {
		games = 2 * len(a.openings)
	}
	for i := 0; i < games; i++ {
		var info = gameInfo{
			id:             uuid.New(),
			opening:        a.openings[(i/2)%len(a.openings)],
			engineAIsWhite: i%2 == 0,
			gameNumber:     i + 1,
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- info:
		}
	}
	return nil
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = a.newEngineA()
	var engineB = a.newEngineB()
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, engineA, engineB, a.config, gameInfo, a.logger)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
