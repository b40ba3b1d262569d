package arena

import (
	"fmt"
	"strconv"

	"github.com/notnil/chess"
)

const (
	engineAName = "A"
	engineBName = "B"
)

// encodePgn replays the game on a notnil/chess board so the move text comes
// out in standard algebraic notation.
func encodePgn(res gameResult) (string, error) {
	var fenOption, err = chess.FEN(res.gameInfo.opening)
	if err != nil {
		return "", err
	}
	var game = chess.NewGame(fenOption)

	var white, black = engineAName, engineBName
	if !res.gameInfo.engineAIsWhite {
		white, black = black, white
	}
	game.AddTagPair("Event", "arena")
	game.AddTagPair("Round", strconv.Itoa(res.gameInfo.gameNumber))
	game.AddTagPair("White", white)
	game.AddTagPair("Black", black)
	game.AddTagPair("Result", gameResultString(res.result))
	game.AddTagPair("FEN", res.gameInfo.opening)
	game.AddTagPair("SetUp", "1")
	game.AddTagPair("Termination", res.comment)
	game.AddTagPair("GameId", res.gameInfo.id.String())

	for i, move := range res.moves {
		var m, err = chess.UCINotation{}.Decode(game.Position(), move.String())
		if err != nil {
			return "", fmt.Errorf("game %v ply %v: %w", res.gameInfo.gameNumber, i+1, err)
		}
		if err := game.Move(m); err != nil {
			return "", fmt.Errorf("game %v ply %v: %w", res.gameInfo.gameNumber, i+1, err)
		}
	}

	if game.Outcome() == chess.NoOutcome {
		switch res.result {
		case gameResultDraw:
			if err := game.Draw(chess.DrawOffer); err != nil {
				return "", err
			}
		case gameResultWhiteWins:
			game.Resign(chess.Black)
		case gameResultBlackWins:
			game.Resign(chess.White)
		}
	}
	return game.String(), nil
}
