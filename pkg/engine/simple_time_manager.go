package engine

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/ChizhovVadim/ChesseGo/pkg/common"
)

const (
	defaultMovesToGo = 40
	moveOverhead     = 300 * time.Millisecond
	minTimeLimit     = time.Millisecond
)

// simpleTimeManager turns search limits into a stop flag. The hard limit
// becomes a context deadline; the soft limit, the depth limit and a found
// mate are checked after every completed iteration.
type simpleTimeManager struct {
	start     time.Time
	limits    LimitsType
	softLimit time.Duration
	cancel    context.CancelFunc
	done      atomic.Bool
}

func newSimpleTimeManager(ctx context.Context, start time.Time,
	limits LimitsType, side Side) *simpleTimeManager {

	var tm = &simpleTimeManager{
		start:  start,
		limits: limits,
	}

	var hardLimit time.Duration
	if limits.MoveTime > 0 {
		hardLimit = limits.MoveTime
	} else if !limits.Infinite {
		var main, inc = clockFor(limits, side)
		if main > 0 {
			tm.softLimit, hardLimit = calcLimits(main, inc, limits.MovesToGo)
		}
	}

	if hardLimit > 0 {
		ctx, tm.cancel = context.WithDeadline(ctx, start.Add(hardLimit))
	} else {
		ctx, tm.cancel = context.WithCancel(ctx)
	}

	if ctx.Err() != nil {
		tm.done.Store(true)
	}
	go func() {
		<-ctx.Done()
		tm.done.Store(true)
	}()
	return tm
}

func clockFor(limits LimitsType, side Side) (main, inc time.Duration) {
	if side == White {
		return limits.WhiteTime, limits.WhiteIncrement
	}
	return limits.BlackTime, limits.BlackIncrement
}

func (tm *simpleTimeManager) IsDone() bool {
	return tm.done.Load()
}

func (tm *simpleTimeManager) OnIterationComplete(line mainLine) {
	if tm.limits.Infinite {
		return
	}
	var finished = tm.limits.Depth > 0 && line.depth >= tm.limits.Depth ||
		line.score >= winIn(line.depth) ||
		line.score <= lossIn(line.depth) ||
		tm.softLimit > 0 && time.Since(tm.start) >= tm.softLimit
	if finished {
		tm.stop()
	}
}

func (tm *simpleTimeManager) stop() {
	tm.done.Store(true)
	tm.cancel()
}

// Close releases the deadline goroutine.
func (tm *simpleTimeManager) Close() {
	tm.cancel()
}

func calcLimits(main, inc time.Duration, moves int) (soft, hard time.Duration) {
	main = Max(main-moveOverhead, minTimeLimit)

	var ideal time.Duration
	if moves == 0 {
		ideal = main/35 + inc/2
	} else {
		ideal = main/time.Duration(Min(moves, defaultMovesToGo)+1) + inc
	}

	soft = Min(Max(ideal*7/10, minTimeLimit), main)
	hard = Min(Max(ideal*21/10, minTimeLimit), main)
	return
}
