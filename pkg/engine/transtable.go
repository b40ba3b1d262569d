package engine

import (
	"runtime"
	"sync"
	"sync/atomic"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

const transShardCount = 64

type transEntry struct {
	score int32
	depth int16
	bound uint8
}

type transShard struct {
	mu      sync.RWMutex
	entries map[uint64]transEntry
}

// transTable is a bounded cache with strict FIFO eviction by insertion
// event. A key is queued when it enters the table and keeps that place when
// it is stored again, so it can be evicted while its latest store is the
// newest in the table. Present keys and queued events correspond one to
// one, so the queue never outgrows the capacity.
//
// Reads and writes lock only the key's shard; the count and the event
// queue are lock-free. Clear must not run concurrently with Update.
type transTable struct {
	capacity int64
	shards   [transShardCount]transShard
	count    atomic.Int64
	events   eventQueue
}

func newTransTable(capacity int) *transTable {
	if capacity < 1 {
		capacity = 1
	}
	var tt = &transTable{
		capacity: int64(capacity),
	}
	for i := range tt.shards {
		tt.shards[i].entries = make(map[uint64]transEntry)
	}
	tt.events.init()
	return tt
}

func (tt *transTable) Capacity() int {
	return int(tt.capacity)
}

func (tt *transTable) Len() int {
	return int(tt.count.Load())
}

func (tt *transTable) Clear() {
	for i := range tt.shards {
		var shard = &tt.shards[i]
		shard.mu.Lock()
		shard.entries = make(map[uint64]transEntry)
		shard.mu.Unlock()
	}
	tt.events.init()
	tt.count.Store(0)
}

func (tt *transTable) shard(key uint64) *transShard {
	return &tt.shards[key%transShardCount]
}

func (tt *transTable) Read(key uint64) (depth, score, bound int, ok bool) {
	var shard = tt.shard(key)
	shard.mu.RLock()
	var entry, found = shard.entries[key]
	shard.mu.RUnlock()
	if !found {
		return
	}
	return int(entry.depth), int(entry.score), int(entry.bound), true
}

// Update stores the entry. The writer whose insert pushes the count past
// capacity evicts exactly one key, the one with the oldest queued event.
func (tt *transTable) Update(key uint64, depth, score, bound int) {
	var entry = transEntry{
		score: int32(score),
		depth: int16(depth),
		bound: uint8(bound),
	}
	if !tt.shard(key).store(key, entry) {
		return
	}
	var n = tt.count.Add(1)
	tt.events.push(key)
	if n > tt.capacity {
		tt.evictOldest()
	}
}

func (tt *transTable) evictOldest() {
	for {
		var key, ok = tt.events.pop()
		if !ok {
			// Another writer has stored its key but not queued it yet.
			runtime.Gosched()
			continue
		}
		if tt.shard(key).remove(key) {
			tt.count.Add(-1)
			return
		}
	}
}

func (shard *transShard) store(key uint64, entry transEntry) (added bool) {
	shard.mu.Lock()
	var _, found = shard.entries[key]
	shard.entries[key] = entry
	shard.mu.Unlock()
	return !found
}

func (shard *transShard) remove(key uint64) bool {
	shard.mu.Lock()
	var _, found = shard.entries[key]
	delete(shard.entries, key)
	shard.mu.Unlock()
	return found
}

type eventNode struct {
	key  uint64
	next atomic.Pointer[eventNode]
}

// eventQueue is a Michael-Scott lock-free FIFO of keys. head always points
// to a sentinel node.
type eventQueue struct {
	head atomic.Pointer[eventNode]
	tail atomic.Pointer[eventNode]
	size atomic.Int64
}

func (q *eventQueue) init() {
	var sentinel = &eventNode{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	q.size.Store(0)
}

func (q *eventQueue) len() int {
	return int(q.size.Load())
}

func (q *eventQueue) push(key uint64) {
	var node = &eventNode{key: key}
	for {
		var tail = q.tail.Load()
		var next = tail.next.Load()
		if tail != q.tail.Load() {
			continue
		}
		if next != nil {
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		if tail.next.CompareAndSwap(nil, node) {
			q.tail.CompareAndSwap(tail, node)
			q.size.Add(1)
			return
		}
	}
}

func (q *eventQueue) pop() (uint64, bool) {
	for {
		var head = q.head.Load()
		var tail = q.tail.Load()
		var next = head.next.Load()
		if head != q.head.Load() {
			continue
		}
		if next == nil {
			return 0, false
		}
		if head == tail {
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		if q.head.CompareAndSwap(head, next) {
			q.size.Add(-1)
			return next.key, true
		}
	}
}
