package eval

import (
	"testing"

	"github.com/ChizhovVadim/ChesseGo/internal/testutil"
	"github.com/ChizhovVadim/ChesseGo/pkg/common"
)

func mustFEN(t *testing.T, fen string) *common.GameState {
	t.Helper()
	var gs, err = common.NewGameStateFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return gs
}

func TestEvaluateInitialPositionIsBalanced(t *testing.T) {
	var e = NewEvaluationService()
	var gs = common.NewInitialGameState()
	testutil.AssertEqual(t, e.Evaluate(gs, common.White), 0)
	testutil.AssertEqual(t, e.Evaluate(gs, common.Black), 0)
}

func TestEvaluateIsAntisymmetric(t *testing.T) {
	var e = NewEvaluationService()
	var fens = []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		var gs = mustFEN(t, fen)
		testutil.AssertEqual(t, e.Evaluate(gs, common.White), -e.Evaluate(gs, common.Black), fen)
	}
}

// Mirroring the board and swapping colours must not change the score of
// the side that owns the mirrored pieces.
func TestEvaluateColourSymmetry(t *testing.T) {
	var e = NewEvaluationService()
	var white = mustFEN(t, "4k3/8/8/8/4P3/2N5/8/4K3 w - - 0 1")
	var black = mustFEN(t, "4k3/8/2n5/4p3/8/8/8/4K3 b - - 0 1")
	testutil.AssertEqual(t, e.Evaluate(white, common.White), e.Evaluate(black, common.Black))
}

func TestEvaluateTerminal(t *testing.T) {
	var e = NewEvaluationService()
	var mate = mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	testutil.AssertEqual(t, e.Evaluate(mate, common.Black), WinScore)
	testutil.AssertEqual(t, e.Evaluate(mate, common.White), -WinScore)

	var stalemate = mustFEN(t, "8/8/8/8/8/1q6/2k5/K7 w - - 0 1")
	testutil.AssertEqual(t, e.Evaluate(stalemate, common.White), 0)
}

func TestMaterialAdvantage(t *testing.T) {
	var e = NewEvaluationService()
	var gs = mustFEN(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	testutil.AssertTrue(t, e.Evaluate(gs, common.White) > QueenValue-200)
}

func TestPawnStructure(t *testing.T) {
	var b = common.NewBoard()
	var put = func(s string, p common.Piece) common.Position {
		var pos, err = common.ParsePosition(s)
		if err != nil {
			t.Fatal(err)
		}
		b.Set(pos, p)
		return pos
	}
	var a2 = put("a2", common.NewPiece(common.Pawn, common.White))
	var d4 = put("d4", common.NewPiece(common.Pawn, common.White))
	var e4 = put("e4", common.NewPiece(common.Pawn, common.White))
	put("e6", common.NewPiece(common.Knight, common.Black))
	var h7 = put("h7", common.NewPiece(common.Pawn, common.Black))

	testutil.AssertTrue(t, isPassedPawn(b, a2, common.White))
	testutil.AssertTrue(t, isPassedPawn(b, d4, common.White))
	testutil.AssertFalse(t, isPassedPawn(b, e4, common.White), "blocked by any piece ahead")
	testutil.AssertTrue(t, isPassedPawn(b, h7, common.Black))

	testutil.AssertTrue(t, isIsolatedPawn(b, a2, common.White))
	testutil.AssertFalse(t, isIsolatedPawn(b, d4, common.White))
	testutil.AssertFalse(t, isIsolatedPawn(b, e4, common.White))
}

func TestExposedKing(t *testing.T) {
	var quiet = mustFEN(t, "4k3/8/8/r7/8/8/8/4K3 w - - 0 1")
	var check = mustFEN(t, "4k3/8/8/4r3/8/8/8/4K3 w - - 0 1")
	testutil.AssertFalse(t, quiet.IsInCheck())
	testutil.AssertTrue(t, check.IsInCheck())
	// The check also takes e2 away from the white king.
	var diff = sideScores(check)[common.White] - sideScores(quiet)[common.White]
	testutil.AssertEqual(t, diff, ExposedKingPenalty-MobilityWeight)
}

func TestCenterControl(t *testing.T) {
	var gs = mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	var withKnight = mustFEN(t, "4k3/8/8/8/8/5N2/8/4K3 w - - 0 1")
	// The knight on f3 covers d4 and e5.
	var base = sideScores(gs)[common.White]
	var score = sideScores(withKnight)[common.White]
	var knightMoves = len(withKnight.LegalMovesForPiece(common.Position{Row: 5, Column: 5}))
	var want = KnightValue + pieceSquareTables[common.Knight][5][5] +
		MobilityWeight*knightMoves + 2*CenterControlWeight
	testutil.AssertEqual(t, score-base, want)
}
