package engine

import (
	"runtime"
)

type Options struct {
	Threads          int
	TransTableSize   int // entries
	EvalCacheSize    int // entries, rounded down to a power of two
	ProgressMinNodes int
}

func NewOptions() Options {
	return Options{
		Threads:          runtime.NumCPU(),
		TransTableSize:   1_000_000,
		EvalCacheSize:    1 << 20,
		ProgressMinNodes: 0,
	}
}
