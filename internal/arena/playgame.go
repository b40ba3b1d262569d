package arena

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/ChesseGo/pkg/common"
)

func playGame(
	ctx context.Context,
	engineA, engineB IEngine,
	config Config,
	info gameInfo,
	logger *zap.Logger,
) (gameResult, error) {

	logger.Debug("started game",
		zap.Int("game", info.gameNumber),
		zap.Stringer("id", info.id))

	engineA.Clear()
	engineB.Clear()

	var gs, err = common.NewGameStateFromFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var keys = make(map[uint64]int)
	var finish = func(comment string, result int) (gameResult, error) {
		return gameResult{gameInfo: info, moves: gs.History(), comment: comment, result: result}, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		if result, over := gs.Result(); over {
			if result.Draw {
				return finish(result.Reason.String(), gameResultDraw)
			}
			if result.Winner == common.White {
				return finish(result.Reason.String(), gameResultWhiteWins)
			}
			return finish(result.Reason.String(), gameResultBlackWins)
		}
		if isLowMaterial(gs.Board()) {
			return finish("low material", gameResultDraw)
		}
		keys[gs.Key()] += 1
		if keys[gs.Key()] == 3 {
			return finish("3 fold repetition", gameResultDraw)
		}
		if config.MaxPlies > 0 && len(gs.History()) >= config.MaxPlies {
			return finish("move limit", gameResultDraw)
		}

		var eng IEngine
		var depth int
		if (gs.CurrentPlayer() == common.White) == info.engineAIsWhite {
			eng, depth = engineA, config.DepthA
		} else {
			eng, depth = engineB, config.DepthB
		}
		var searchResult = eng.Search(ctx, common.SearchParams{
			Game: gs,
			Limits: common.LimitsType{
				Depth:    depth,
				MoveTime: config.MoveTime,
			},
		})
		if len(searchResult.MainLine) == 0 {
			return gameResult{}, fmt.Errorf("game %v: no move in %v", info.gameNumber, gs.FEN())
		}
		var bestMove = searchResult.MainLine[0]
		if !containsMove(gs.AllLegalMovesFor(gs.CurrentPlayer()), bestMove) {
			return gameResult{}, fmt.Errorf("game %v: bad move %v in %v", info.gameNumber, bestMove, gs.FEN())
		}
		gs.MakeMove(bestMove)
	}
}

// isLowMaterial reports positions where neither side can mate: bare kings
// plus at most one minor piece.
func isLowMaterial(b *common.Board) bool {
	var minors = 0
	for _, side := range [...]common.Side{common.White, common.Black} {
		for _, pos := range b.PiecePositions(side) {
			switch b.At(pos).Type {
			case common.Pawn, common.Rook, common.Queen:
				return false
			case common.Knight, common.Bishop:
				minors++
			}
		}
	}
	return minors <= 1
}

func containsMove(ml []common.Move, move common.Move) bool {
	for i := range ml {
		if ml[i] == move {
			return true
		}
	}
	return false
}
