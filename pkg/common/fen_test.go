package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ChizhovVadim/ChesseGo/internal/testutil"
)

func TestFENRoundTrip(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 8",
		"8/8/8/8/1q6/8/2k5/K7 b - - 0 1",
	}
	for _, fen := range fens {
		var gs, err = NewGameStateFromFEN(fen)
		testutil.AssertNoError(t, err, fen)
		testutil.AssertEqual(t, gs.FEN(), fen)
	}
}

func TestFENInitialPosition(t *testing.T) {
	var gs = mustFEN(t, InitialPositionFen)
	testutil.AssertTrue(t, *gs.Board() == *NewInitialBoard())
	testutil.AssertEqual(t, gs.CurrentPlayer(), White)
}

func TestFENHasMoved(t *testing.T) {
	var gs = mustFEN(t, "r3k2r/8/8/8/4P3/8/3P4/R3K2R w Kq - 0 1")
	var b = gs.Board()
	testutil.AssertFalse(t, b.At(mustParse(t, "e1")).HasMoved)
	testutil.AssertFalse(t, b.At(mustParse(t, "h1")).HasMoved)
	testutil.AssertTrue(t, b.At(mustParse(t, "a1")).HasMoved)
	testutil.AssertFalse(t, b.At(mustParse(t, "a8")).HasMoved)
	testutil.AssertTrue(t, b.At(mustParse(t, "h8")).HasMoved)
	testutil.AssertFalse(t, b.At(mustParse(t, "d2")).HasMoved)
	testutil.AssertTrue(t, b.At(mustParse(t, "e4")).HasMoved)
}

func TestFENFullMoveNumber(t *testing.T) {
	var gs = NewInitialGameState()
	playMoves(t, gs, "e2e4", "c7c5", "g1f3")
	testutil.AssertEqual(t, gs.FEN(), "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2")
}

func TestInvalidFEN(t *testing.T) {
	var fens = []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1",
	}
	for _, fen := range fens {
		var _, err = NewGameStateFromFEN(fen)
		testutil.AssertTrue(t, errors.Is(err, ErrInvalidFEN), fmt.Sprintf("%q: %v", fen, err))
	}
}
