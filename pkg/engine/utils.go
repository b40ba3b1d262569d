package engine

import (
	"slices"

	. "github.com/ChizhovVadim/ChesseGo/pkg/common"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 999999
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

// valueToTT and valueFromTT convert mate scores between distance from the
// root and distance from the stored node.
func valueToTT(v, height int) int {
	switch {
	case v >= valueWin:
		return v + height
	case v <= valueLoss:
		return v - height
	default:
		return v
	}
}

func valueFromTT(v, height int) int {
	switch {
	case v >= valueWin:
		return v - height
	case v <= valueLoss:
		return v + height
	default:
		return v
	}
}

func newUciScore(v int) UciScore {
	switch {
	case v >= valueWin:
		return UciScore{Mate: (valueMate - v + 1) / 2}
	case v <= valueLoss:
		return UciScore{Mate: (-valueMate - v) / 2}
	default:
		return UciScore{Centipawns: v}
	}
}

func findMoveIndex(ml []Move, move Move) int {
	return slices.Index(ml, move)
}

// moveToBegin shifts ml[:index] right by one and puts ml[index] first.
func moveToBegin(ml []Move, index int) {
	if index <= 0 {
		return
	}
	var item = ml[index]
	copy(ml[1:index+1], ml[:index])
	ml[0] = item
}
