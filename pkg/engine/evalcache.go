package engine

import (
	"sync/atomic"

	. "github.com/ChizhovVadim/ChesseGo/pkg/common"
)

const (
	evalMask = uint64(0xFFFF)
	keyMask  = ^evalMask
	evalZero = 32768
)

// evalCache memoizes White-relative static scores by placement hash.
// Each slot packs the high key bits and the score in one uint64, so
// readers and writers never lock.
type evalCache struct {
	evaluator Evaluator
	size      int
	mask      uint64
	entries   []uint64
}

func newEvalCache(evaluator Evaluator, size int) *evalCache {
	var n = roundPowerOfTwo(size)
	return &evalCache{
		evaluator: evaluator,
		size:      size,
		mask:      uint64(n - 1),
		entries:   make([]uint64, n),
	}
}

func (ec *evalCache) Evaluate(gs *GameState, side Side) int {
	if gs.IsGameOver() {
		return ec.evaluator.Evaluate(gs, side)
	}
	var key = gs.Board().ZobristHash()
	var entry = &ec.entries[key&ec.mask]
	var data = atomic.LoadUint64(entry)
	var eval int
	if data != 0 && data&keyMask == key&keyMask {
		eval = int(data&evalMask) - evalZero
	} else {
		eval = ec.evaluator.Evaluate(gs, White)
		if eval > -evalZero && eval < evalZero {
			atomic.StoreUint64(entry, (key&keyMask)|uint64(eval+evalZero))
		}
	}
	if side == Black {
		return -eval
	}
	return eval
}

func roundPowerOfTwo(size int) int {
	var x = 1
	for x*2 <= size {
		x *= 2
	}
	return x
}
