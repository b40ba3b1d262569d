package eval

import (
	"github.com/ChizhovVadim/ChesseGo/pkg/common"
)

const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 300
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000

	WinScore = 999999

	ExposedKingPenalty  = -50
	PassedPawnBonus     = 20
	IsolatedPawnPenalty = -10
	MobilityWeight      = 5
	CenterControlWeight = 10
)

var pieceValues = [...]int{
	common.Empty:  0,
	common.Pawn:   PawnValue,
	common.Knight: KnightValue,
	common.Bishop: BishopValue,
	common.Rook:   RookValue,
	common.Queen:  QueenValue,
	common.King:   KingValue,
}

var centerSquares = [...]common.Position{
	{Row: 3, Column: 3},
	{Row: 3, Column: 4},
	{Row: 4, Column: 3},
	{Row: 4, Column: 4},
}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate scores the position from side's point of view.
func (e *EvaluationService) Evaluate(gs *common.GameState, side common.Side) int {
	if result, over := gs.Result(); over {
		return terminalScore(result, side)
	}
	var score = sideScores(gs)
	return score[side] - score[side.Opponent()]
}

// sideScores returns the absolute score of each side, indexed by colour.
func sideScores(gs *common.GameState) (score [2]int) {
	var b = gs.Board()
	var attacks = [2][8][8]bool{
		common.White: b.AttackMap(common.White),
		common.Black: b.AttackMap(common.Black),
	}
	for row := 0; row < 8; row++ {
		for column := 0; column < 8; column++ {
			var pos = common.Position{Row: row, Column: column}
			var piece = b.At(pos)
			if piece.IsEmpty() {
				continue
			}
			var s = piece.Side
			score[s] += pieceValues[piece.Type] + pieceSquareValue(piece, pos)
			switch piece.Type {
			case common.Pawn:
				if isPassedPawn(b, pos, s) {
					score[s] += PassedPawnBonus
				}
				if isIsolatedPawn(b, pos, s) {
					score[s] += IsolatedPawnPenalty
				}
			case common.King:
				if attacks[s.Opponent()][row][column] {
					score[s] += ExposedKingPenalty
				}
			}
		}
	}

	for s := common.White; s <= common.Black; s++ {
		score[s] += MobilityWeight * gs.LegalMoveCount(s)
		for _, sq := range centerSquares {
			if attacks[s][sq.Row][sq.Column] {
				score[s] += CenterControlWeight
			}
		}
	}
	return score
}

func terminalScore(result common.GameResult, side common.Side) int {
	if result.Draw {
		return 0
	}
	if result.Winner == side {
		return WinScore
	}
	return -WinScore
}

// A pawn is passed when no piece of either colour stands ahead of it on
// its file.
func isPassedPawn(b *common.Board, pos common.Position, side common.Side) bool {
	var forward = common.North
	if side == common.Black {
		forward = common.South
	}
	for sq := pos.Add(forward); sq.IsInside(); sq = sq.Add(forward) {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func isIsolatedPawn(b *common.Board, pos common.Position, side common.Side) bool {
	for _, dir := range [...]common.Direction{common.East, common.West} {
		var neighbour = b.At(pos.Add(dir))
		if neighbour.Type == common.Pawn && neighbour.Side == side {
			return false
		}
	}
	return true
}
