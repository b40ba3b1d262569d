package eval

import (
	"github.com/ChizhovVadim/ChesseGo/pkg/common"
)

const winScore = 999999

var materialValues = [...]int{
	common.Pawn:   100,
	common.Knight: 400,
	common.Bishop: 400,
	common.Rook:   600,
	common.Queen:  1200,
	common.King:   0,
}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(gs *common.GameState, side common.Side) int {
	if result, over := gs.Result(); over {
		if result.Draw {
			return 0
		}
		if result.Winner == side {
			return winScore
		}
		return -winScore
	}
	var eval = 0
	var b = gs.Board()
	for _, pos := range b.PiecePositions(common.White) {
		eval += materialValues[b.At(pos).Type]
	}
	for _, pos := range b.PiecePositions(common.Black) {
		eval -= materialValues[b.At(pos).Type]
	}
	if side == common.Black {
		eval = -eval
	}
	return eval
}
