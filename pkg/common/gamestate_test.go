package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ChizhovVadim/ChesseGo/internal/testutil"
)

func TestFoolsMate(t *testing.T) {
	var gs = NewInitialGameState()
	playMoves(t, gs, "f2f3", "e7e5", "g2g4")
	testutil.AssertFalse(t, gs.IsGameOver())
	playMoves(t, gs, "d8h4")

	testutil.AssertTrue(t, gs.IsGameOver())
	var result, over = gs.Result()
	testutil.AssertTrue(t, over)
	testutil.AssertEqual(t, result, GameResult{Winner: Black, Reason: Checkmate})
	testutil.AssertTrue(t, gs.IsInCheck())
	testutil.AssertEqual(t, len(gs.AllLegalMovesFor(White)), 0)
	testutil.AssertEqual(t, result.String(), "0-1 {checkmate}")
}

func TestStalemate(t *testing.T) {
	var gs = mustFEN(t, "8/8/8/8/1q6/8/2k5/K7 b - - 0 1")
	testutil.AssertFalse(t, gs.IsGameOver())
	playMoves(t, gs, "b4b3")

	testutil.AssertTrue(t, gs.IsGameOver())
	testutil.AssertFalse(t, gs.IsInCheck())
	testutil.AssertEqual(t, len(gs.AllLegalMovesFor(White)), 0)
	var result, _ = gs.Result()
	testutil.AssertEqual(t, result, GameResult{Draw: true, Reason: Stalemate})
}

func TestGameStateDetectsTerminalOnCreation(t *testing.T) {
	var gs = mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	var result, over = gs.Result()
	testutil.AssertTrue(t, over)
	testutil.AssertEqual(t, result.Reason, Checkmate)
}

func TestUndoMove(t *testing.T) {
	var gs = mustFEN(t, "r3k2r/1P6/8/8/3p4/8/4P3/R3K2R w KQkq - 0 1")
	var startFEN = gs.FEN()
	var startBoard = *gs.Board()
	var startMoves = moveNames(gs.AllLegalMovesFor(White))

	playMoves(t, gs, "e1g1", "d4d3", "b7a8q", "e8e7", "e2d3")
	testutil.AssertEqual(t, len(gs.History()), 5)

	for gs.UndoMove() {
	}
	testutil.AssertEqual(t, gs.FEN(), startFEN)
	testutil.AssertTrue(t, *gs.Board() == startBoard, "board restored with HasMoved flags")
	testutil.AssertEqual(t, gs.CurrentPlayer(), White)
	testutil.AssertSameElements(t, moveNames(gs.AllLegalMovesFor(White)), startMoves)
	testutil.AssertFalse(t, gs.UndoMove(), "nothing left to undo")
}

func TestUndoRestoresResult(t *testing.T) {
	var gs = NewInitialGameState()
	playMoves(t, gs, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertTrue(t, gs.IsGameOver())
	testutil.AssertTrue(t, gs.UndoMove())
	testutil.AssertFalse(t, gs.IsGameOver())
	testutil.AssertEqual(t, gs.CurrentPlayer(), Black)
	var last, ok = gs.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last.String(), "g2g4")
}

func TestGameStateCopy(t *testing.T) {
	var gs = NewInitialGameState()
	playMoves(t, gs, "e2e4")
	var c = gs.Copy()
	playMoves(t, c, "e7e5", "g1f3")

	testutil.AssertEqual(t, len(gs.History()), 1)
	testutil.AssertEqual(t, gs.CurrentPlayer(), Black)
	testutil.AssertTrue(t, gs.Board().IsEmpty(mustParse(t, "e5")))
	testutil.AssertEqual(t, len(c.History()), 3)

	testutil.AssertTrue(t, c.UndoMove())
	testutil.AssertTrue(t, c.UndoMove())
	testutil.AssertEqual(t, c.FEN(), gs.FEN())
}

func TestParseMove(t *testing.T) {
	var gs = NewInitialGameState()
	var m, err = gs.ParseMove("g1f3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, Move{Type: Normal, From: mustParse(t, "g1"), To: mustParse(t, "f3")})

	for _, bad := range []string{"e2e5", "e7e5", "xx", ""} {
		_, err = gs.ParseMove(bad)
		testutil.AssertTrue(t, errors.Is(err, ErrIllegalMove), fmt.Sprintf("ParseMove(%q)", bad))
	}
	testutil.AssertError(t, gs.MakeMoveLAN("e1e2"))
	testutil.AssertEqual(t, len(gs.History()), 0)
}

func TestIsCapture(t *testing.T) {
	var gs = NewInitialGameState()
	playMoves(t, gs, "e2e4", "d7d5")
	var capture, _ = gs.ParseMove("e4d5")
	var push, _ = gs.ParseMove("e4e5")
	testutil.AssertTrue(t, gs.IsCapture(capture))
	testutil.AssertFalse(t, gs.IsCapture(push))
}
