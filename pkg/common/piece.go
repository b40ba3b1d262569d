package common

type Side int8

const (
	White Side = iota
	Black
)

func (s Side) Opponent() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

type PieceType int8

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeNames = [...]string{Empty: "empty", Pawn: "pawn", Knight: "knight",
	Bishop: "bishop", Rook: "rook", Queen: "queen", King: "king"}

func (pt PieceType) String() string {
	if pt < Empty || pt > King {
		return "unknown"
	}
	return pieceTypeNames[pt]
}

// Piece is stored by value in board cells. The zero value is an empty square.
type Piece struct {
	Type     PieceType
	Side     Side
	HasMoved bool
}

func NewPiece(pieceType PieceType, side Side) Piece {
	return Piece{Type: pieceType, Side: side}
}

func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Char returns the FEN letter of the piece, uppercase for White.
func (p Piece) Char() byte {
	if p.Type == Empty {
		return '.'
	}
	var ch = " pnbrqk"[p.Type]
	if p.Side == White {
		ch -= 'a' - 'A'
	}
	return ch
}
