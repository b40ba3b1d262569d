package engine

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/ChizhovVadim/ChesseGo/internal/testutil"
	. "github.com/ChizhovVadim/ChesseGo/pkg/common"
	"github.com/ChizhovVadim/ChesseGo/pkg/eval"
)

func newTestEngine(threads int) *Engine {
	var options = NewOptions()
	options.Threads = threads
	options.TransTableSize = 100_000
	options.EvalCacheSize = 1 << 16
	return NewEngine(options, func() interface{} {
		return eval.NewEvaluationService()
	}, nil)
}

func mustFEN(t *testing.T, fen string) *GameState {
	t.Helper()
	var gs, err = NewGameStateFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return gs
}

func bestMove(t *testing.T, e *Engine, fen string, depth int) string {
	t.Helper()
	var move, ok = e.ComputeBestMove(mustFEN(t, fen), depth, 0)
	if !ok {
		t.Fatalf("no move for %v", fen)
	}
	return move.String()
}

func TestMateInOne(t *testing.T) {
	var tests = []struct {
		fen  string
		move string
	}{
		{"6k1/5ppp/8/8/8/8/8/R6K w - - 0 1", "a1a8"},
		{"r6k/8/8/8/8/8/5PPP/7K b - - 0 1", "a8a1"},
	}
	for _, threads := range []int{1, 4} {
		var e = newTestEngine(threads)
		for _, test := range tests {
			testutil.AssertEqual(t, bestMove(t, e, test.fen, 3), test.move, test.fen)
		}
	}
}

func TestMateScore(t *testing.T) {
	var e = newTestEngine(2)
	var si = e.Search(context.Background(), SearchParams{
		Game:   mustFEN(t, "6k1/5ppp/8/8/8/8/8/R6K w - - 0 1"),
		Limits: LimitsType{Depth: 4},
	})
	testutil.AssertEqual(t, si.Score, UciScore{Mate: 1})
	// A forced mate ends the iterations early.
	testutil.AssertEqual(t, si.Depth, 1)
}

func TestWinsHangingQueen(t *testing.T) {
	var e = newTestEngine(4)
	testutil.AssertEqual(t, bestMove(t, e, "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1", 2), "d2d5")
}

func TestSingleLegalMove(t *testing.T) {
	var e = newTestEngine(2)
	var si = e.Search(context.Background(), SearchParams{
		Game:   mustFEN(t, "k7/2K5/8/8/8/8/8/1R6 b - - 0 1"),
		Limits: LimitsType{Depth: 5},
	})
	testutil.AssertEqual(t, len(si.MainLine), 1)
	testutil.AssertEqual(t, si.MainLine[0].String(), "a8a7")
	testutil.AssertEqual(t, si.Depth, 0)
	testutil.AssertEqual(t, si.Nodes, int64(0))
}

func TestSingleLegalMoveAfterDeadline(t *testing.T) {
	var e = newTestEngine(1)
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var si = e.Search(ctx, SearchParams{
		Game:   mustFEN(t, "k7/2K5/8/8/8/8/8/1R6 b - - 0 1"),
		Limits: LimitsType{Depth: 5},
	})
	testutil.AssertEqual(t, len(si.MainLine), 0)
}

func TestNoMoveWhenGameIsOver(t *testing.T) {
	var e = newTestEngine(2)
	var gs = mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	var _, ok = e.ComputeBestMove(gs, 3, 0)
	testutil.AssertFalse(t, ok)
}

func TestNoMoveWhenTimeIsUp(t *testing.T) {
	var e = newTestEngine(2)
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var si = e.Search(ctx, SearchParams{
		Game:   NewInitialGameState(),
		Limits: LimitsType{Depth: 3},
	})
	testutil.AssertEqual(t, len(si.MainLine), 0)
	testutil.AssertEqual(t, si.Depth, 0)
}

func TestSearchDoesNotChangeGame(t *testing.T) {
	var e = newTestEngine(4)
	var gs = mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var fen = gs.FEN()
	var _, ok = e.ComputeBestMove(gs, 2, 0)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, gs.FEN(), fen)
	testutil.AssertEqual(t, len(gs.History()), 0)
}

func TestSearchIsDeterministic(t *testing.T) {
	const fen = "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	var search = func(threads, depth int) SearchInfo {
		var e = newTestEngine(threads)
		return e.Search(context.Background(), SearchParams{
			Game:   mustFEN(t, fen),
			Limits: LimitsType{Depth: depth},
		})
	}

	var single = search(1, 2)
	for i := 0; i < 3; i++ {
		var parallel = search(4, 2)
		testutil.AssertEqual(t, parallel.MainLine[0], single.MainLine[0])
		testutil.AssertEqual(t, parallel.Score, single.Score)
	}

	var first = search(1, 3)
	var second = search(1, 3)
	testutil.AssertEqual(t, second.MainLine[0], first.MainLine[0])
	testutil.AssertEqual(t, second.Score, first.Score)
	testutil.AssertEqual(t, second.Nodes, first.Nodes)
}

func TestProgressReportsEachDepth(t *testing.T) {
	var e = newTestEngine(2)
	var depths []int
	var si = e.Search(context.Background(), SearchParams{
		Game:   NewInitialGameState(),
		Limits: LimitsType{Depth: 3},
		Progress: func(si SearchInfo) {
			depths = append(depths, si.Depth)
		},
	})
	testutil.AssertEqual(t, depths, []int{1, 2, 3})
	testutil.AssertEqual(t, si.Depth, 3)
	testutil.AssertTrue(t, si.Nodes > 0)
}

func TestEngineReusesTables(t *testing.T) {
	var e = newTestEngine(2)
	e.Prepare()
	var tt = e.transTable
	var evaluator = e.evaluator
	e.ComputeBestMove(NewInitialGameState(), 1, 0)
	testutil.AssertTrue(t, tt == e.transTable)
	testutil.AssertTrue(t, evaluator == e.evaluator)

	e.Options.TransTableSize = 1000
	e.Prepare()
	testutil.AssertEqual(t, e.transTable.Capacity(), 1000)
}

type countingEvaluator struct {
	calls int64
}

func (ce *countingEvaluator) Evaluate(gs *GameState, side Side) int {
	atomic.AddInt64(&ce.calls, 1)
	if side == White {
		return 42
	}
	return -42
}

func TestEvalCache(t *testing.T) {
	var inner = &countingEvaluator{}
	var ec = newEvalCache(inner, 1000)
	testutil.AssertEqual(t, len(ec.entries), 512)

	var gs = NewInitialGameState()
	testutil.AssertEqual(t, ec.Evaluate(gs, White), 42)
	testutil.AssertEqual(t, ec.Evaluate(gs, White), 42)
	testutil.AssertEqual(t, ec.Evaluate(gs, Black), -42)
	testutil.AssertEqual(t, inner.calls, int64(1))

	var mate = mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	ec.Evaluate(mate, White)
	ec.Evaluate(mate, White)
	testutil.AssertEqual(t, inner.calls, int64(3))
}

func TestSetEvalBuilder(t *testing.T) {
	var first, second = &countingEvaluator{}, &countingEvaluator{}
	var options = NewOptions()
	options.Threads = 1
	options.EvalCacheSize = 0
	var e = NewEngine(options, func() interface{} { return first }, nil)
	e.ComputeBestMove(NewInitialGameState(), 2, 0)
	var firstCalls = atomic.LoadInt64(&first.calls)
	testutil.AssertTrue(t, firstCalls > 0, "first evaluator used")

	e.SetEvalBuilder(func() interface{} { return second })
	e.ComputeBestMove(NewInitialGameState(), 2, 0)
	testutil.AssertEqual(t, atomic.LoadInt64(&first.calls), firstCalls)
	testutil.AssertTrue(t, atomic.LoadInt64(&second.calls) > 0, "second evaluator used")
}

func TestOrderMoves(t *testing.T) {
	var gs = mustFEN(t, "4k3/8/8/3q1r2/4P3/8/8/4K3 w - - 0 1")
	var ml = orderMoves(gs, gs.AllLegalMovesFor(White))
	testutil.AssertEqual(t, ml[0].String(), "e4d5")
	testutil.AssertEqual(t, ml[1].String(), "e4f5")

	gs = mustFEN(t, "4k3/1P6/8/8/8/8/8/R3K3 w - - 0 1")
	ml = orderMoves(gs, gs.AllLegalMovesFor(White))
	// Queening gives check along the eighth rank.
	testutil.AssertEqual(t, ml[0].String(), "b7b8q")
	testutil.AssertEqual(t, ml[1].String(), "b7b8r")
	testutil.AssertEqual(t, ml[4].String(), "a1a8")
}

func TestScoreHelpers(t *testing.T) {
	testutil.AssertEqual(t, newUciScore(winIn(3)), UciScore{Mate: 2})
	testutil.AssertEqual(t, newUciScore(lossIn(2)), UciScore{Mate: -1})
	testutil.AssertEqual(t, newUciScore(35), UciScore{Centipawns: 35})
	for _, v := range []int{winIn(5), lossIn(4), 120, -300} {
		testutil.AssertEqual(t, valueFromTT(valueToTT(v, 3), 3), v)
	}
	testutil.AssertEqual(t, valueFromTT(valueToTT(winIn(5), 3), 1), winIn(3))
}

func TestMoveToBegin(t *testing.T) {
	var gs = NewInitialGameState()
	var ml = gs.AllLegalMovesFor(White)
	var target = ml[5]
	var second = ml[0]
	moveToBegin(ml, findMoveIndex(ml, target))
	testutil.AssertEqual(t, ml[0], target)
	testutil.AssertEqual(t, ml[1], second)
	testutil.AssertEqual(t, findMoveIndex(ml, MoveEmpty), -1)
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		var parsed, err = ParseDifficulty(d.String())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, parsed, d)
	}
	testutil.AssertEqual(t, Expert.Depth(), 7)
	var _, err = ParseDifficulty("grandmaster")
	testutil.AssertError(t, err)
}
