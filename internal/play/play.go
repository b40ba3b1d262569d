package play

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ChizhovVadim/ChesseGo/pkg/common"
)

type IEngine interface {
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

type Settings struct {
	HumanSide common.Side
	Depth     int
	MoveTime  time.Duration
	Colors    bool
}

// PlayCli runs a console game against the engine. The human enters moves
// in long algebraic notation; "undo" takes back the last full move.
func PlayCli(ctx context.Context, engine IEngine, settings Settings, in io.Reader, out io.Writer) error {
	var game = common.NewInitialGameState()
	var p = &printer{out: out, colors: settings.Colors}

	var engineMove = func() error {
		var si = engine.Search(ctx, common.SearchParams{
			Game: game,
			Limits: common.LimitsType{
				Depth:    settings.Depth,
				MoveTime: settings.MoveTime,
			},
		})
		if len(si.MainLine) == 0 {
			return fmt.Errorf("engine found no move in %v", game.FEN())
		}
		var bestMove = si.MainLine[0]
		fmt.Fprintf(out, "%v (depth %v, score %v)\n", bestMove, si.Depth, scoreString(si.Score))
		game.MakeMove(bestMove)
		return nil
	}

	if game.CurrentPlayer() != settings.HumanSide {
		if err := engineMove(); err != nil {
			return err
		}
	}
	p.Print(game)

	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		switch commandLine {
		case "":
			continue
		case "quit":
			return nil
		case "undo":
			game.UndoMove()
			if game.CurrentPlayer() != settings.HumanSide {
				game.UndoMove()
			}
			p.Print(game)
			continue
		case "fen":
			fmt.Fprintln(out, game.FEN())
			continue
		}
		if game.IsGameOver() {
			fmt.Fprintln(out, "game over")
			continue
		}
		if err := game.MakeMoveLAN(commandLine); err != nil {
			fmt.Fprintln(out, "bad move")
			continue
		}
		if !game.IsGameOver() {
			if err := engineMove(); err != nil {
				return err
			}
		}
		p.Print(game)
	}
	return scanner.Err()
}

func scoreString(score common.UciScore) string {
	if score.Mate != 0 {
		return fmt.Sprintf("mate %v", score.Mate)
	}
	return strconv.Itoa(score.Centipawns)
}

type printer struct {
	out    io.Writer
	colors bool
}

func (p *printer) Print(game *common.GameState) {
	var b = game.Board()
	for row := 0; row < 8; row++ {
		fmt.Fprintf(p.out, "%d ", common.Rank8-row+1)
		for column := 0; column < 8; column++ {
			var pos = common.Position{Row: row, Column: column}
			fmt.Fprint(p.out, p.pieceString(b.At(pos), pos.SquareColour() == common.Black))
		}
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out, "  a b c d e f g h")
	if result, over := game.Result(); over {
		fmt.Fprintln(p.out, result)
	} else if game.IsInCheck() {
		fmt.Fprintf(p.out, "%v is in check\n", game.CurrentPlayer())
	}
}

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

const (
	fgBlack = 30
	bgWhite = 47
	// Background Hi-Intensity white
	bgHiWhite = 107
)

var chessSymbols = [2][7]string{
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

func (p *printer) pieceString(piece common.Piece, darkSquare bool) string {
	var s = chessSymbols[piece.Side][piece.Type] + " "
	if !p.colors {
		if piece.IsEmpty() {
			return ". "
		}
		return s
	}
	const fgColor = fgBlack
	var bgColor int
	if darkSquare {
		bgColor = bgWhite
	} else {
		bgColor = bgHiWhite
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s%s[%dm",
		escape, strconv.Itoa(fgColor), strconv.Itoa(bgColor), s, escape, reset)
}
