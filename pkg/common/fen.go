package common

import (
	"fmt"
	"strconv"
	"strings"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameStateFromFEN builds a game state from Forsyth-Edwards Notation.
// HasMoved flags are derived: kings and rooks are unmoved only when a
// matching castling right exists, pawns only on their starting rank.
// The en passant field and the halfmove clock are ignored.
func NewGameStateFromFEN(fen string) (*GameState, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}

	var board, err = parsePlacement(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}

	var side Side
	switch tokens[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, fmt.Errorf("%w: %q: bad side to move", ErrInvalidFEN, fen)
	}

	var castling = "-"
	if len(tokens) > 2 {
		castling = tokens[2]
	}
	if strings.Trim(castling, "KQkq-") != "" {
		return nil, fmt.Errorf("%w: %q: bad castling rights", ErrInvalidFEN, fen)
	}
	markMoved(board, castling)

	var gs = NewGameState(side, board)
	if len(tokens) > 5 {
		if n, err := strconv.Atoi(tokens[5]); err == nil && n > 0 {
			gs.fullMoveNumber = n
		}
	}
	return gs, nil
}

func parsePlacement(s string) (*Board, error) {
	var ranks = strings.Split(s, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}
	var board = NewBoard()
	for row, rank := range ranks {
		var column = 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				column += int(ch - '0')
				continue
			}
			var piece, ok = parsePiece(ch)
			if !ok {
				return nil, fmt.Errorf("bad piece %q", ch)
			}
			if column >= 8 {
				return nil, fmt.Errorf("rank %d too long", Rank8-row+1)
			}
			board.squares[row][column] = piece
			column++
		}
		if column != 8 {
			return nil, fmt.Errorf("rank %d has %d files", Rank8-row+1, column)
		}
	}
	return board, nil
}

type castlingRight struct {
	symbol rune
	side   Side
	rook   int
}

var castlingRights = [...]castlingRight{
	{'K', White, FileH},
	{'Q', White, FileA},
	{'k', Black, FileH},
	{'q', Black, FileA},
}

func markMoved(b *Board, castling string) {
	for row := 0; row < 8; row++ {
		for column := 0; column < 8; column++ {
			var piece = &b.squares[row][column]
			switch piece.Type {
			case Pawn:
				piece.HasMoved = row != pawnStartRow(piece.Side)
			case King, Rook:
				piece.HasMoved = true
			}
		}
	}
	for _, right := range castlingRights {
		if !strings.ContainsRune(castling, right.symbol) {
			continue
		}
		var row = homeRow(right.side)
		var king = &b.squares[row][FileE]
		var rook = &b.squares[row][right.rook]
		if king.Type == King && king.Side == right.side &&
			rook.Type == Rook && rook.Side == right.side {
			king.HasMoved = false
			rook.HasMoved = false
		}
	}
}

func (gs *GameState) FEN() string {
	var sb = &strings.Builder{}
	for row := 0; row < 8; row++ {
		var empty = 0
		for column := 0; column < 8; column++ {
			var piece = gs.board.squares[row][column]
			if piece.Type == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	if gs.currentPlayer == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	var rights = ""
	for _, right := range castlingRights {
		var row = homeRow(right.side)
		var king = gs.board.squares[row][FileE]
		var rook = gs.board.squares[row][right.rook]
		if king.Type == King && king.Side == right.side && !king.HasMoved &&
			rook.Type == Rook && rook.Side == right.side && !rook.HasMoved {
			rights += string(right.symbol)
		}
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	var plies = len(gs.history)
	if gs.startPlayer == Black {
		plies++
	}
	fmt.Fprintf(sb, " - 0 %d", gs.fullMoveNumber+plies/2)
	return sb.String()
}
