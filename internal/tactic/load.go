package tactic

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notnil/chess"
	"go.uber.org/zap"

	"github.com/ChizhovVadim/ChesseGo/pkg/common"
)

//go:embed suite.epd
var builtinSuite string

type EpdItem struct {
	Content   string
	ID        string
	Game      *common.GameState
	BestMoves []common.Move
}

// LoadEpd reads an EPD file; an empty path selects the built-in suite.
// Lines that fail to parse are logged and skipped.
func LoadEpd(filePath string, logger *zap.Logger) ([]EpdItem, error) {
	if filePath == "" {
		return ReadEpd(strings.NewReader(builtinSuite), logger)
	}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadEpd(file, logger)
}

func ReadEpd(r io.Reader, logger *zap.Logger) ([]EpdItem, error) {
	var result []EpdItem
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var test, err = ParseEpd(line)
		if err != nil {
			logger.Warn("skip epd line", zap.Error(err))
			continue
		}
		result = append(result, test)
	}
	return result, scanner.Err()
}

// ParseEpd parses "<4 FEN fields> bm <SAN moves>; id \"name\";".
func ParseEpd(s string) (EpdItem, error) {
	var fields = strings.Fields(s)
	if len(fields) < 6 {
		return EpdItem{}, fmt.Errorf("short epd line %q", s)
	}
	var fen = strings.Join(fields[:4], " ") + " 0 1"
	var operations = parseOperations(strings.Join(fields[4:], " "))
	var sBestMoves = strings.Fields(operations["bm"])
	if len(sBestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("empty best moves %q", s)
	}

	var game, err = common.NewGameStateFromFEN(fen)
	if err != nil {
		return EpdItem{}, err
	}
	fenOption, err := chess.FEN(fen)
	if err != nil {
		return EpdItem{}, fmt.Errorf("%w: %v", common.ErrInvalidFEN, err)
	}
	var position = chess.NewGame(fenOption).Position()

	var bestMoves []common.Move
	for _, sBestMove := range sBestMoves {
		var move, err = decodeSAN(game, position, sBestMove)
		if err != nil {
			return EpdItem{}, fmt.Errorf("parse move failed %q: %w", s, err)
		}
		bestMoves = append(bestMoves, move)
	}

	return EpdItem{
		Content:   s,
		ID:        strings.Trim(operations["id"], "\""),
		Game:      game,
		BestMoves: bestMoves,
	}, nil
}

func parseOperations(s string) map[string]string {
	var result = make(map[string]string)
	for _, op := range strings.Split(s, ";") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		var name, value, _ = strings.Cut(op, " ")
		result[name] = strings.TrimSpace(value)
	}
	return result
}

// decodeSAN resolves standard algebraic notation through notnil/chess and
// maps the result onto the local move list via long algebraic notation.
func decodeSAN(game *common.GameState, position *chess.Position, san string) (common.Move, error) {
	var m, err = chess.AlgebraicNotation{}.Decode(position, san)
	if err != nil {
		return common.MoveEmpty, err
	}
	return game.ParseMove(chess.UCINotation{}.Encode(position, m))
}
