package engine

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	. "github.com/ChizhovVadim/ChesseGo/pkg/common"
)

type rootBest struct {
	index int
	score int
}

func (e *Engine) genRootMoves(gs *GameState) []Move {
	return orderMoves(gs, gs.AllLegalMovesFor(gs.CurrentPlayer()))
}

func iterativeDeepening(e *Engine, gs *GameState, maxDepth int) {
	var ml = e.genRootMoves(gs)
	if len(ml) == 0 {
		return
	}
	if len(ml) == 1 {
		if !e.timeManager.IsDone() {
			e.mainLine = mainLine{moves: []Move{ml[0]}}
		}
		return
	}

	if maxDepth <= 0 || maxDepth > maxHeight {
		maxDepth = maxHeight
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if e.timeManager.IsDone() {
			e.logger.Debug("search stopped before depth", zap.Int("depth", depth))
			break
		}
		var line, err = searchRoot(e, gs, ml, depth)
		if err != nil {
			e.logger.Debug("depth aborted",
				zap.Int("depth", depth),
				zap.Error(err))
			break
		}
		e.onIterationComplete(line)
		moveToBegin(ml, findMoveIndex(ml, line.moves[0]))
	}
}

// searchRoot evaluates every root move in parallel. All tasks share the
// best score found so far and search with the window (best-1, +inf), so a
// later move that only ties the best still gets an exact score. Ties go to
// the move that comes first in ml.
func searchRoot(e *Engine, gs *GameState, ml []Move, depth int) (mainLine, error) {
	var mu sync.Mutex
	var best = rootBest{index: -1, score: -valueInfinity}

	var g errgroup.Group
	g.SetLimit(e.Options.Threads)
	for i := range ml {
		var index, move = i, ml[i]
		g.Go(func() error {
			var t = &thread{
				engine: e,
				game:   gs.Copy(),
				root:   gs.CurrentPlayer(),
			}
			defer func() {
				atomic.AddInt64(&e.nodes, t.nodes)
			}()

			mu.Lock()
			var alpha = -valueInfinity
			if best.index >= 0 {
				alpha = best.score - 1
			}
			mu.Unlock()

			t.game.MakeMove(move)
			var score, err = t.minimax(depth-1, alpha, valueInfinity, false, 1)
			if err != nil {
				return err
			}

			mu.Lock()
			if best.index < 0 ||
				score > best.score ||
				score == best.score && index < best.index {
				best = rootBest{index: index, score: score}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return mainLine{}, err
	}
	return mainLine{
		moves: []Move{ml[best.index]},
		score: best.score,
		depth: depth,
	}, nil
}
