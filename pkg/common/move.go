package common

type MoveType int8

const (
	Normal MoveType = iota
	CastleKingSide
	CastleQueenSide
	PawnPromotion
)

func (mt MoveType) String() string {
	switch mt {
	case Normal:
		return "normal"
	case CastleKingSide:
		return "castle kingside"
	case CastleQueenSide:
		return "castle queenside"
	case PawnPromotion:
		return "promotion"
	}
	return "unknown"
}

// Move is a tagged variant. Castling moves are encoded by the king's
// origin and destination; the rook squares are implied.
type Move struct {
	Type      MoveType
	From      Position
	To        Position
	Promotion PieceType
}

var MoveEmpty = Move{}

func (m Move) IsEmpty() bool {
	return m == MoveEmpty
}

func (m Move) IsPromotion() bool {
	return m.Type == PawnPromotion
}

func (m Move) IsCastle() bool {
	return m.Type == CastleKingSide || m.Type == CastleQueenSide
}

// promotionPiece falls back to a queen for types that cannot be promoted to.
func (m Move) promotionPiece() PieceType {
	switch m.Promotion {
	case Knight, Bishop, Rook, Queen:
		return m.Promotion
	}
	return Queen
}

func (m Move) rookSquares() (from, to Position) {
	if m.Type == CastleKingSide {
		return Position{m.From.Row, FileH}, Position{m.From.Row, FileF}
	}
	return Position{m.From.Row, FileA}, Position{m.From.Row, FileD}
}

// kingPath lists the squares the castling king crosses, landing included.
func (m Move) kingPath() []Position {
	if m.Type == CastleKingSide {
		return []Position{{m.From.Row, FileF}, {m.From.Row, FileG}}
	}
	return []Position{{m.From.Row, FileD}, {m.From.Row, FileC}}
}

// Execute applies the move to b without any legality check.
func (m Move) Execute(b *Board) {
	switch m.Type {
	case CastleKingSide, CastleQueenSide:
		relocate(b, m.From, m.To)
		var rookFrom, rookTo = m.rookSquares()
		relocate(b, rookFrom, rookTo)
	case PawnPromotion:
		var side = b.At(m.From).Side
		b.Remove(m.From)
		b.Set(m.To, Piece{Type: m.promotionPiece(), Side: side, HasMoved: true})
	default:
		relocate(b, m.From, m.To)
	}
}

func relocate(b *Board, from, to Position) {
	var piece = b.At(from)
	piece.HasMoved = true
	b.Set(to, piece)
	b.Remove(from)
}

// IsLegal reports whether executing the move leaves the mover's king safe.
// Castling additionally requires that the king is not in check and does not
// cross or land on an attacked square.
func (m Move) IsLegal(b *Board) bool {
	var piece = b.At(m.From)
	if piece.Type == Empty {
		return false
	}
	if m.IsCastle() {
		var opponent = piece.Side.Opponent()
		if b.IsAttacked(m.From, opponent) {
			return false
		}
		for _, pos := range m.kingPath() {
			if b.IsAttacked(pos, opponent) {
				return false
			}
		}
	}
	var child = *b
	m.Execute(&child)
	return !child.IsInCheck(piece.Side)
}

// affectedSquares lists every square whose content Execute may change.
func (m Move) affectedSquares() []Position {
	if m.IsCastle() {
		var rookFrom, rookTo = m.rookSquares()
		return []Position{m.From, m.To, rookFrom, rookTo}
	}
	return []Position{m.From, m.To}
}

var promotionNames = [...]string{Knight: "n", Bishop: "b", Rook: "r", Queen: "q"}

// String returns long algebraic notation, e.g. e2e4, e7e8q, e1g1.
func (m Move) String() string {
	if m.IsEmpty() {
		return "0000"
	}
	var s = m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += promotionNames[m.promotionPiece()]
	}
	return s
}
