package common

import "strings"

// Board is a value type: assigning or copying it yields an independent board.
type Board struct {
	squares [8][8]Piece
}

func NewBoard() *Board {
	return &Board{}
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewInitialBoard() *Board {
	var b = &Board{}
	for column := 0; column < 8; column++ {
		b.squares[0][column] = NewPiece(backRank[column], Black)
		b.squares[1][column] = NewPiece(Pawn, Black)
		b.squares[6][column] = NewPiece(Pawn, White)
		b.squares[7][column] = NewPiece(backRank[column], White)
	}
	return b
}

func (b *Board) IsInside(pos Position) bool {
	return pos.IsInside()
}

// At returns an empty piece for positions outside the board.
func (b *Board) At(pos Position) Piece {
	if !pos.IsInside() {
		return Piece{}
	}
	return b.squares[pos.Row][pos.Column]
}

func (b *Board) Set(pos Position, piece Piece) {
	if !pos.IsInside() {
		return
	}
	b.squares[pos.Row][pos.Column] = piece
}

func (b *Board) Remove(pos Position) {
	b.Set(pos, Piece{})
}

func (b *Board) IsEmpty(pos Position) bool {
	return pos.IsInside() && b.squares[pos.Row][pos.Column].Type == Empty
}

func (b *Board) Copy() *Board {
	var result = *b
	return &result
}

// PiecePositions lists the occupied squares of one side in row-major order.
func (b *Board) PiecePositions(side Side) []Position {
	var result = make([]Position, 0, 16)
	for row := 0; row < 8; row++ {
		for column := 0; column < 8; column++ {
			var piece = b.squares[row][column]
			if piece.Type != Empty && piece.Side == side {
				result = append(result, Position{row, column})
			}
		}
	}
	return result
}

func (b *Board) KingPosition(side Side) (Position, bool) {
	for row := 0; row < 8; row++ {
		for column := 0; column < 8; column++ {
			var piece = b.squares[row][column]
			if piece.Type == King && piece.Side == side {
				return Position{row, column}, true
			}
		}
	}
	return Position{}, false
}

func (b *Board) String() string {
	var sb = &strings.Builder{}
	for row := 0; row < 8; row++ {
		sb.WriteByte(rankNames[Rank8-row])
		sb.WriteByte(' ')
		for column := 0; column < 8; column++ {
			sb.WriteByte(b.squares[row][column].Char())
			if column < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
