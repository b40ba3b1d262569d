package common

// pieceRules is the capability table entry of a piece variant.
type pieceRules struct {
	// generate appends pseudo-legal moves of the piece standing on from.
	generate func(b *Board, from Position, piece Piece, ml []Move) []Move
	// attacks appends the squares controlled from from, blockers included.
	attacks func(b *Board, from Position, piece Piece, result []Position) []Position
	// canCapture reports whether the piece could capture on target.
	canCapture func(b *Board, from Position, piece Piece, target Position) bool
}

var rules = [...]pieceRules{
	Empty: {
		generate:   func(b *Board, from Position, piece Piece, ml []Move) []Move { return ml },
		attacks:    func(b *Board, from Position, piece Piece, result []Position) []Position { return result },
		canCapture: func(b *Board, from Position, piece Piece, target Position) bool { return false },
	},
	Pawn: {
		generate:   generatePawnMoves,
		attacks:    pawnAttacks,
		canCapture: pawnCanCapture,
	},
	Knight: {
		generate:   stepGenerator(knightOffsets),
		attacks:    stepAttacks(knightOffsets),
		canCapture: stepCanCapture(knightOffsets),
	},
	Bishop: {
		generate:   rayGenerator(bishopDirections),
		attacks:    rayAttacks(bishopDirections),
		canCapture: rayCanCapture(false, true),
	},
	Rook: {
		generate:   rayGenerator(rookDirections),
		attacks:    rayAttacks(rookDirections),
		canCapture: rayCanCapture(true, false),
	},
	Queen: {
		generate:   rayGenerator(queenDirections),
		attacks:    rayAttacks(queenDirections),
		canCapture: rayCanCapture(true, true),
	},
	King: {
		generate:   generateKingMoves,
		attacks:    stepAttacks(kingOffsets),
		canCapture: stepCanCapture(kingOffsets),
	},
}

var (
	rookDirections   = []Direction{North, South, East, West}
	bishopDirections = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	queenDirections  = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
	kingOffsets      = queenDirections
	knightOffsets    = []Direction{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	promotionTypes = [...]PieceType{Knight, Bishop, Rook, Queen}
)

func rulesFor(pt PieceType) *pieceRules {
	if pt < Empty || pt > King {
		return &rules[Empty]
	}
	return &rules[pt]
}

// GeneratePseudoLegalMoves ignores whether the mover's king is left in check.
func (b *Board) GeneratePseudoLegalMoves(from Position, ml []Move) []Move {
	var piece = b.At(from)
	return rulesFor(piece.Type).generate(b, from, piece, ml)
}

func rayGenerator(directions []Direction) func(*Board, Position, Piece, []Move) []Move {
	return func(b *Board, from Position, piece Piece, ml []Move) []Move {
		for _, dir := range directions {
			for to := from.Add(dir); to.IsInside(); to = to.Add(dir) {
				var target = b.At(to)
				if target.Type == Empty {
					ml = append(ml, Move{Type: Normal, From: from, To: to})
					continue
				}
				if target.Side != piece.Side {
					ml = append(ml, Move{Type: Normal, From: from, To: to})
				}
				break
			}
		}
		return ml
	}
}

func rayAttacks(directions []Direction) func(*Board, Position, Piece, []Position) []Position {
	return func(b *Board, from Position, piece Piece, result []Position) []Position {
		for _, dir := range directions {
			for to := from.Add(dir); to.IsInside(); to = to.Add(dir) {
				result = append(result, to)
				if !b.IsEmpty(to) {
					break
				}
			}
		}
		return result
	}
}

func rayCanCapture(orthogonal, diagonal bool) func(*Board, Position, Piece, Position) bool {
	return func(b *Board, from Position, piece Piece, target Position) bool {
		var dr, dc = target.Row - from.Row, target.Column - from.Column
		if dr == 0 && dc == 0 {
			return false
		}
		if dr == 0 || dc == 0 {
			if !orthogonal {
				return false
			}
		} else if Abs(dr) == Abs(dc) {
			if !diagonal {
				return false
			}
		} else {
			return false
		}
		var dir = Direction{sign(dr), sign(dc)}
		for pos := from.Add(dir); pos != target; pos = pos.Add(dir) {
			if !b.IsEmpty(pos) {
				return false
			}
		}
		return true
	}
}

func stepGenerator(offsets []Direction) func(*Board, Position, Piece, []Move) []Move {
	return func(b *Board, from Position, piece Piece, ml []Move) []Move {
		return appendSteps(b, from, piece, offsets, ml)
	}
}

func appendSteps(b *Board, from Position, piece Piece, offsets []Direction, ml []Move) []Move {
	for _, offset := range offsets {
		var to = from.Add(offset)
		if !to.IsInside() {
			continue
		}
		var target = b.At(to)
		if target.Type == Empty || target.Side != piece.Side {
			ml = append(ml, Move{Type: Normal, From: from, To: to})
		}
	}
	return ml
}

func stepAttacks(offsets []Direction) func(*Board, Position, Piece, []Position) []Position {
	return func(b *Board, from Position, piece Piece, result []Position) []Position {
		for _, offset := range offsets {
			var to = from.Add(offset)
			if to.IsInside() {
				result = append(result, to)
			}
		}
		return result
	}
}

func stepCanCapture(offsets []Direction) func(*Board, Position, Piece, Position) bool {
	return func(b *Board, from Position, piece Piece, target Position) bool {
		for _, offset := range offsets {
			if from.Add(offset) == target {
				return true
			}
		}
		return false
	}
}

func pawnForward(side Side) Direction {
	if side == White {
		return North
	}
	return South
}

func pawnStartRow(side Side) int {
	if side == White {
		return 6
	}
	return 1
}

func promotionRow(side Side) int {
	if side == White {
		return 0
	}
	return 7
}

func generatePawnMoves(b *Board, from Position, piece Piece, ml []Move) []Move {
	var forward = pawnForward(piece.Side)
	var one = from.Add(forward)
	if b.IsEmpty(one) {
		ml = appendPawnMove(ml, from, one, piece.Side)
		var two = one.Add(forward)
		if !piece.HasMoved && from.Row == pawnStartRow(piece.Side) && b.IsEmpty(two) {
			ml = append(ml, Move{Type: Normal, From: from, To: two})
		}
	}
	for _, dir := range [...]Direction{East, West} {
		var to = one.Add(dir)
		var target = b.At(to)
		if target.Type != Empty && target.Side != piece.Side {
			ml = appendPawnMove(ml, from, to, piece.Side)
		}
	}
	return ml
}

func appendPawnMove(ml []Move, from, to Position, side Side) []Move {
	if to.Row != promotionRow(side) {
		return append(ml, Move{Type: Normal, From: from, To: to})
	}
	for _, pt := range promotionTypes {
		ml = append(ml, Move{Type: PawnPromotion, From: from, To: to, Promotion: pt})
	}
	return ml
}

func pawnAttacks(b *Board, from Position, piece Piece, result []Position) []Position {
	var one = from.Add(pawnForward(piece.Side))
	for _, dir := range [...]Direction{East, West} {
		var to = one.Add(dir)
		if to.IsInside() {
			result = append(result, to)
		}
	}
	return result
}

func pawnCanCapture(b *Board, from Position, piece Piece, target Position) bool {
	var one = from.Add(pawnForward(piece.Side))
	return one.Add(East) == target || one.Add(West) == target
}

func homeRow(side Side) int {
	if side == White {
		return 7
	}
	return 0
}

func generateKingMoves(b *Board, from Position, piece Piece, ml []Move) []Move {
	ml = appendSteps(b, from, piece, kingOffsets, ml)
	if piece.HasMoved || from.Row != homeRow(piece.Side) || from.Column != FileE {
		return ml
	}
	if b.canCastle(from, piece.Side, FileH, FileF, FileG) {
		ml = append(ml, Move{Type: CastleKingSide, From: from, To: Position{from.Row, FileG}})
	}
	if b.canCastle(from, piece.Side, FileA, FileB, FileC, FileD) {
		ml = append(ml, Move{Type: CastleQueenSide, From: from, To: Position{from.Row, FileC}})
	}
	return ml
}

// canCastle checks the geometric preconditions only: an unmoved rook of the
// same side in the corner and empty squares between it and the king.
func (b *Board) canCastle(king Position, side Side, rookColumn int, between ...int) bool {
	var rook = b.At(Position{king.Row, rookColumn})
	if rook.Type != Rook || rook.Side != side || rook.HasMoved {
		return false
	}
	for _, column := range between {
		if !b.IsEmpty(Position{king.Row, column}) {
			return false
		}
	}
	return true
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
