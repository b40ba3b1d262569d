package engine

import (
	"errors"

	. "github.com/ChizhovVadim/ChesseGo/pkg/common"
)

var errSearchTimeout = errors.New("search timeout")

// thread searches one root move on its own copy of the game.
type thread struct {
	engine *Engine
	game   *GameState
	root   Side
	nodes  int64
}

// minimax returns the value of the position from the root side's point of
// view. The root side maximizes and its opponent minimizes.
func (t *thread) minimax(depth, alpha, beta int, maximizing bool, height int) (int, error) {
	if err := t.incNodes(); err != nil {
		return 0, err
	}

	var gs = t.game
	if depth <= 0 || gs.IsGameOver() || height >= maxHeight {
		if maximizing {
			return t.quiescence(alpha, beta, height)
		}
		var score, err = t.quiescence(-beta, -alpha, height)
		return -score, err
	}

	var key = gs.Board().ZobristHash()
	var alphaOrig, betaOrig = alpha, beta
	if ttDepth, ttValue, ttBound, ok := t.engine.transTable.Read(key); ok && ttDepth >= depth {
		ttValue = valueFromTT(ttValue, height)
		if ttBound == boundExact ||
			ttBound == boundLower && ttValue >= beta ||
			ttBound == boundUpper && ttValue <= alpha {
			return ttValue, nil
		}
	}

	var ml = orderMoves(gs, gs.AllLegalMovesFor(gs.CurrentPlayer()))
	var value int
	if maximizing {
		value = -valueInfinity
		for _, move := range ml {
			gs.MakeMove(move)
			var score, err = t.minimax(depth-1, alpha, beta, false, height+1)
			gs.UndoMove()
			if err != nil {
				return 0, err
			}
			value = Max(value, score)
			alpha = Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
	} else {
		value = valueInfinity
		for _, move := range ml {
			gs.MakeMove(move)
			var score, err = t.minimax(depth-1, alpha, beta, true, height+1)
			gs.UndoMove()
			if err != nil {
				return 0, err
			}
			value = Min(value, score)
			beta = Min(beta, value)
			if alpha >= beta {
				break
			}
		}
	}

	var bound = boundExact
	if value <= alphaOrig {
		bound = boundUpper
	} else if value >= betaOrig {
		bound = boundLower
	}
	t.engine.transTable.Update(key, depth, valueToTT(value, height), bound)
	return value, nil
}

// quiescence is a negamax over captures. It returns the value from the
// point of view of the side to move.
func (t *thread) quiescence(alpha, beta, height int) (int, error) {
	if err := t.incNodes(); err != nil {
		return 0, err
	}

	var gs = t.game
	if result, over := gs.Result(); over {
		if result.Draw {
			return valueDraw, nil
		}
		return lossIn(height), nil
	}

	var standPat = t.engine.evaluator.Evaluate(gs, gs.CurrentPlayer())
	if height >= maxHeight {
		return standPat, nil
	}
	if standPat >= beta {
		return beta, nil
	}
	if standPat > alpha {
		alpha = standPat
	}

	for _, move := range captureMoves(gs) {
		gs.MakeMove(move)
		var score, err = t.quiescence(-beta, -alpha, height+1)
		gs.UndoMove()
		if err != nil {
			return 0, err
		}
		score = -score
		if score >= beta {
			return beta, nil
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha, nil
}

func (t *thread) incNodes() error {
	t.nodes++
	if t.engine.timeManager.IsDone() {
		return errSearchTimeout
	}
	return nil
}
