package common

import "fmt"

type EndReason int8

const (
	NotEnded EndReason = iota
	Checkmate
	Stalemate
)

func (r EndReason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "none"
}

// GameResult describes a finished game. Winner is meaningful only when Draw
// is false.
type GameResult struct {
	Winner Side
	Draw   bool
	Reason EndReason
}

func (r GameResult) String() string {
	if r.Draw {
		return "1/2-1/2 {" + r.Reason.String() + "}"
	}
	if r.Winner == White {
		return "1-0 {" + r.Reason.String() + "}"
	}
	return "0-1 {" + r.Reason.String() + "}"
}

type undoRecord struct {
	move            Move
	squares         [4]Piece
	legalMoves      []Move
	legalMovesReady bool
	result          GameResult
	over            bool
}

// GameState is not safe for concurrent use: even read methods fill the
// legal move cache. Use Copy to hand a state to another goroutine.
type GameState struct {
	board           Board
	currentPlayer   Side
	history         []undoRecord
	result          GameResult
	over            bool
	legalMoves      []Move
	legalMovesReady bool
	fullMoveNumber  int
	startPlayer     Side
}

func NewGameState(currentPlayer Side, board *Board) *GameState {
	var gs = &GameState{
		board:          *board,
		currentPlayer:  currentPlayer,
		fullMoveNumber: 1,
		startPlayer:    currentPlayer,
	}
	gs.updateResult()
	return gs
}

func NewInitialGameState() *GameState {
	return NewGameState(White, NewInitialBoard())
}

// Board exposes the live board. Callers must not modify it; use Copy first.
func (gs *GameState) Board() *Board {
	return &gs.board
}

func (gs *GameState) CurrentPlayer() Side {
	return gs.currentPlayer
}

// Key is the placement hash extended with the side to move.
func (gs *GameState) Key() uint64 {
	var key = gs.board.ZobristHash()
	if gs.currentPlayer == Black {
		key ^= zobristSideKey
	}
	return key
}

func (gs *GameState) IsInCheck() bool {
	return gs.board.IsInCheck(gs.currentPlayer)
}

func (gs *GameState) IsGameOver() bool {
	return gs.over
}

func (gs *GameState) Result() (GameResult, bool) {
	return gs.result, gs.over
}

// LegalMovesForPiece returns nil for empty or off-board squares and for
// pieces that do not belong to the side to move.
func (gs *GameState) LegalMovesForPiece(pos Position) []Move {
	var piece = gs.board.At(pos)
	if piece.Type == Empty || piece.Side != gs.currentPlayer {
		return nil
	}
	return gs.appendLegalMoves(nil, pos)
}

// AllLegalMovesFor returns a fresh slice the caller may reorder.
func (gs *GameState) AllLegalMovesFor(side Side) []Move {
	if side == gs.currentPlayer {
		return cloneMoves(gs.currentLegalMoves())
	}
	return gs.generateLegalMoves(side)
}

// LegalMoveCount avoids the copy made by AllLegalMovesFor.
func (gs *GameState) LegalMoveCount(side Side) int {
	if side == gs.currentPlayer {
		return len(gs.currentLegalMoves())
	}
	return len(gs.generateLegalMoves(side))
}

func (gs *GameState) currentLegalMoves() []Move {
	if !gs.legalMovesReady {
		gs.legalMoves = gs.generateLegalMoves(gs.currentPlayer)
		gs.legalMovesReady = true
	}
	return gs.legalMoves
}

func (gs *GameState) generateLegalMoves(side Side) []Move {
	var ml = make([]Move, 0, 48)
	for _, pos := range gs.board.PiecePositions(side) {
		ml = gs.appendLegalMoves(ml, pos)
	}
	return ml
}

func (gs *GameState) appendLegalMoves(ml []Move, from Position) []Move {
	var start = len(ml)
	ml = gs.board.GeneratePseudoLegalMoves(from, ml)
	var n = start
	for i := start; i < len(ml); i++ {
		if ml[i].IsLegal(&gs.board) {
			ml[n] = ml[i]
			n++
		}
	}
	return ml[:n]
}

// MakeMove trusts the caller to pass a move enumerated for the side to move.
func (gs *GameState) MakeMove(m Move) {
	var record = undoRecord{
		move:            m,
		legalMoves:      gs.legalMoves,
		legalMovesReady: gs.legalMovesReady,
		result:          gs.result,
		over:            gs.over,
	}
	for i, pos := range m.affectedSquares() {
		record.squares[i] = gs.board.At(pos)
	}
	gs.history = append(gs.history, record)
	m.Execute(&gs.board)
	gs.currentPlayer = gs.currentPlayer.Opponent()
	gs.legalMoves = nil
	gs.legalMovesReady = false
	gs.updateResult()
}

// UndoMove reverts the most recent MakeMove, restoring captured pieces and
// HasMoved flags. It returns false when there is nothing to undo.
func (gs *GameState) UndoMove() bool {
	if len(gs.history) == 0 {
		return false
	}
	var record = gs.history[len(gs.history)-1]
	gs.history = gs.history[:len(gs.history)-1]
	for i, pos := range record.move.affectedSquares() {
		gs.board.Set(pos, record.squares[i])
	}
	gs.currentPlayer = gs.currentPlayer.Opponent()
	gs.legalMoves = record.legalMoves
	gs.legalMovesReady = record.legalMovesReady
	gs.result = record.result
	gs.over = record.over
	return true
}

func (gs *GameState) updateResult() {
	gs.result = GameResult{}
	gs.over = false
	if len(gs.currentLegalMoves()) != 0 {
		return
	}
	gs.over = true
	if gs.board.IsInCheck(gs.currentPlayer) {
		gs.result = GameResult{Winner: gs.currentPlayer.Opponent(), Reason: Checkmate}
	} else {
		gs.result = GameResult{Draw: true, Reason: Stalemate}
	}
}

func (gs *GameState) History() []Move {
	var result = make([]Move, len(gs.history))
	for i := range gs.history {
		result[i] = gs.history[i].move
	}
	return result
}

func (gs *GameState) LastMove() (Move, bool) {
	if len(gs.history) == 0 {
		return MoveEmpty, false
	}
	return gs.history[len(gs.history)-1].move, true
}

// IsCapture reports whether m takes a piece in the current position.
func (gs *GameState) IsCapture(m Move) bool {
	return !m.IsCastle() && !gs.board.IsEmpty(m.To)
}

func (gs *GameState) Copy() *GameState {
	var result = *gs
	result.history = make([]undoRecord, len(gs.history))
	copy(result.history, gs.history)
	return &result
}

// ParseMove finds the legal move written in long algebraic notation.
func (gs *GameState) ParseMove(lan string) (Move, error) {
	for _, m := range gs.currentLegalMoves() {
		if m.String() == lan {
			return m, nil
		}
	}
	return MoveEmpty, fmt.Errorf("parse move %q: %w", lan, ErrIllegalMove)
}

// MakeMoveLAN parses and applies a move in long algebraic notation.
func (gs *GameState) MakeMoveLAN(lan string) error {
	var m, err = gs.ParseMove(lan)
	if err != nil {
		return err
	}
	gs.MakeMove(m)
	return nil
}

func cloneMoves(ml []Move) []Move {
	var result = make([]Move, len(ml))
	copy(result, ml)
	return result
}
