package common

// AttackedSquares returns the squares controlled by the piece on pos.
// Slider rays include the first occupied square. Pawns control both forward
// diagonals whether or not they are occupied.
func (b *Board) AttackedSquares(pos Position) []Position {
	var piece = b.At(pos)
	if piece.Type == Empty {
		return nil
	}
	return rulesFor(piece.Type).attacks(b, pos, piece, nil)
}

// IsAttacked reports whether any piece of side bySide could capture on pos.
func (b *Board) IsAttacked(pos Position, bySide Side) bool {
	if !pos.IsInside() {
		return false
	}
	for row := 0; row < 8; row++ {
		for column := 0; column < 8; column++ {
			var piece = b.squares[row][column]
			if piece.Type == Empty || piece.Side != bySide {
				continue
			}
			if rules[piece.Type].canCapture(b, Position{row, column}, piece, pos) {
				return true
			}
		}
	}
	return false
}

// IsInCheck is false when side has no king on the board.
func (b *Board) IsInCheck(side Side) bool {
	var king, found = b.KingPosition(side)
	if !found {
		return false
	}
	return b.IsAttacked(king, side.Opponent())
}

// AttackMap marks every square controlled by at least one piece of side.
func (b *Board) AttackMap(side Side) (result [8][8]bool) {
	var buffer [32]Position
	for row := 0; row < 8; row++ {
		for column := 0; column < 8; column++ {
			var piece = b.squares[row][column]
			if piece.Type == Empty || piece.Side != side {
				continue
			}
			for _, pos := range rules[piece.Type].attacks(b, Position{row, column}, piece, buffer[:0]) {
				result[pos.Row][pos.Column] = true
			}
		}
	}
	return
}
