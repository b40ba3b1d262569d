package engine

import . "github.com/ChizhovVadim/ChesseGo/pkg/common"

const checkBonus = 50

var sortPieceValues = [...]int{
	Empty:  0,
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

type orderedMove struct {
	Move Move
	Key  int
}

// orderMoves sorts ml in place: captures by MVV-LVA, then promotions,
// then a bonus for moves that give check. Ties keep generation order.
func orderMoves(gs *GameState, ml []Move) []Move {
	if len(ml) <= 1 {
		return ml
	}
	var b = gs.Board()
	var opponent = gs.CurrentPlayer().Opponent()
	var buffer = make([]orderedMove, len(ml))
	for i, m := range ml {
		var key = mvvlva(b, m)
		if m.IsPromotion() {
			key += sortPieceValues[m.Promotion]
		}
		if givesCheck(b, m, opponent) {
			key += checkBonus
		}
		buffer[i] = orderedMove{Move: m, Key: key}
	}
	sortMoves(buffer)
	for i := range buffer {
		ml[i] = buffer[i].Move
	}
	return ml
}

func mvvlva(b *Board, m Move) int {
	if m.IsCastle() {
		return 0
	}
	var victim = b.At(m.To)
	if victim.IsEmpty() {
		return 0
	}
	return 10*sortPieceValues[victim.Type] - sortPieceValues[b.At(m.From).Type]
}

func givesCheck(b *Board, m Move, opponent Side) bool {
	var child = *b
	m.Execute(&child)
	return child.IsInCheck(opponent)
}

func captureMoves(gs *GameState) []Move {
	var ml = gs.AllLegalMovesFor(gs.CurrentPlayer())
	var n = 0
	for _, m := range ml {
		if gs.IsCapture(m) {
			ml[n] = m
			n++
		}
	}
	return orderMoves(gs, ml[:n])
}

func sortMoves(moves []orderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
