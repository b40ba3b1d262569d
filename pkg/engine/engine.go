package engine

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	. "github.com/ChizhovVadim/ChesseGo/pkg/common"
)

type Engine struct {
	Options     Options
	logger      *zap.Logger
	evalBuilder func() interface{}
	evaluator   Evaluator
	transTable  *transTable
	timeManager *simpleTimeManager
	progress    func(SearchInfo)
	mainLine    mainLine
	start       time.Time
	nodes       int64
	mu          sync.Mutex
}

type mainLine struct {
	moves []Move
	score int
	depth int
}

// Evaluator scores a position from side's point of view. Implementations
// must be safe for concurrent use.
type Evaluator interface {
	Evaluate(gs *GameState, side Side) int
}

// NewEngine builds an engine. evalBuilder must return an Evaluator; a nil
// logger disables logging.
func NewEngine(options Options, evalBuilder func() interface{}, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		Options:     options,
		logger:      logger,
		evalBuilder: evalBuilder,
	}
}

func (e *Engine) Prepare() {
	if e.Options.Threads < 1 {
		e.Options.Threads = 1
	}
	if e.transTable == nil || e.transTable.Capacity() != e.Options.TransTableSize {
		if e.transTable != nil {
			e.transTable = nil
			runtime.GC()
		}
		e.transTable = newTransTable(e.Options.TransTableSize)
	}
	if e.evaluator == nil || e.evaluatorCacheSize() != e.Options.EvalCacheSize {
		e.evaluator = e.buildEvaluator()
	}
}

// Search runs iterative deepening until the depth limit, the time limit or
// ctx cancellation. MainLine is empty when no depth completed.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.start = time.Now()
	e.Prepare()
	var gs = searchParams.Game.Copy()
	e.timeManager = newSimpleTimeManager(ctx, e.start, searchParams.Limits, gs.CurrentPlayer())
	defer e.timeManager.Close()
	e.transTable.Clear()
	e.nodes = 0
	e.mainLine = mainLine{}
	e.progress = searchParams.Progress

	e.logger.Debug("search started",
		zap.Stringer("side", gs.CurrentPlayer()),
		zap.Int("depth", searchParams.Limits.Depth),
		zap.Duration("movetime", searchParams.Limits.MoveTime),
		zap.Int("threads", e.Options.Threads))

	iterativeDeepening(e, gs, searchParams.Limits.Depth)

	var si = e.currentSearchResult()
	var best = "(none)"
	if len(si.MainLine) != 0 {
		best = si.MainLine[0].String()
	}
	e.logger.Info("search finished",
		zap.String("move", best),
		zap.Int("depth", si.Depth),
		zap.Int64("nodes", si.Nodes),
		zap.Duration("elapsed", si.Time),
		zap.Int("tt", e.transTable.Len()))
	return si
}

// ComputeBestMove searches gs for at most maxDepth plies and timeLimit.
// maxDepth <= 0 removes the depth limit and timeLimit <= 0 the deadline.
func (e *Engine) ComputeBestMove(gs *GameState, maxDepth int, timeLimit time.Duration) (Move, bool) {
	var si = e.Search(context.Background(), SearchParams{
		Game: gs,
		Limits: LimitsType{
			Depth:    maxDepth,
			MoveTime: timeLimit,
		},
	})
	if len(si.MainLine) == 0 {
		return MoveEmpty, false
	}
	return si.MainLine[0], true
}

// SetEvalBuilder replaces the evaluator; it waits for a running search.
func (e *Engine) SetEvalBuilder(evalBuilder func() interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.evalBuilder = evalBuilder
	e.evaluator = nil
}

func (e *Engine) Clear() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
	e.evaluator = nil
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Depth:    e.mainLine.depth,
		MainLine: e.mainLine.moves,
		Score:    newUciScore(e.mainLine.score),
		Nodes:    atomic.LoadInt64(&e.nodes),
		Time:     time.Since(e.start),
	}
}

func (e *Engine) onIterationComplete(line mainLine) {
	e.mainLine = line
	e.logger.Debug("depth complete",
		zap.Int("depth", line.depth),
		zap.Int("score", line.score),
		zap.Stringer("move", line.moves[0]),
		zap.Int64("nodes", atomic.LoadInt64(&e.nodes)))
	e.timeManager.OnIterationComplete(line)
	if e.progress != nil && atomic.LoadInt64(&e.nodes) >= int64(e.Options.ProgressMinNodes) {
		e.progress(e.currentSearchResult())
	}
}

func (e *Engine) evaluatorCacheSize() int {
	if ec, ok := e.evaluator.(*evalCache); ok {
		return ec.size
	}
	return 0
}

func (e *Engine) buildEvaluator() Evaluator {
	var evaluationService = e.evalBuilder()
	var evaluator, ok = evaluationService.(Evaluator)
	if !ok {
		panic(errors.New("bad eval builder"))
	}
	if e.Options.EvalCacheSize <= 0 {
		return evaluator
	}
	return newEvalCache(evaluator, e.Options.EvalCacheSize)
}
