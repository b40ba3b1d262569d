package arena

import (
	"math"

	"go.uber.org/zap"
)

func showResults(gameResults <-chan gameResult, logger *zap.Logger) Stats {
	var stats Stats
	for gameResult := range gameResults {
		if ce := logger.Check(zap.DebugLevel, "game pgn"); ce != nil {
			var text, err = encodePgn(gameResult)
			if err != nil {
				logger.Warn("encode pgn failed", zap.Error(err))
			} else {
				ce.Write(zap.String("pgn", text))
			}
		}
		if gameResult.result == gameResultDraw {
			stats.Draws++
		} else if gameResult.result == gameResultWhiteWins && gameResult.gameInfo.engineAIsWhite ||
			gameResult.result == gameResultBlackWins && !gameResult.gameInfo.engineAIsWhite {
			stats.Wins++
		} else {
			stats.Losses++
		}
		logger.Info("finished game",
			zap.Int("game", gameResult.gameInfo.gameNumber),
			zap.Stringer("id", gameResult.gameInfo.id),
			zap.String("result", gameResultString(gameResult.result)),
			zap.String("comment", gameResult.comment),
			zap.Int("plies", len(gameResult.moves)))
		logger.Info("score",
			zap.Int("wins", stats.Wins),
			zap.Int("losses", stats.Losses),
			zap.Int("draws", stats.Draws),
			zap.Float64("fraction", stats.WinningFraction()),
			zap.Float64("elo", stats.EloDifference()),
			zap.Float64("los", stats.LOS()))
	}
	return stats
}

func (s Stats) Games() int {
	return s.Wins + s.Losses + s.Draws
}

func (s Stats) WinningFraction() float64 {
	if s.Games() == 0 {
		return 0.5
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(s.Games())
}

//https://chessprogramming.wikispaces.com/Match%20Statistics
func (s Stats) EloDifference() float64 {
	var f = s.WinningFraction()
	if f <= 0 || f >= 1 {
		return math.Copysign(math.Inf(1), f-0.5)
	}
	return -math.Log(1/f-1) * 400 / math.Ln10
}

// LOS is the likelihood of superiority.
func (s Stats) LOS() float64 {
	if s.Wins+s.Losses == 0 {
		return 0.5
	}
	return 0.5 + 0.5*math.Erf(float64(s.Wins-s.Losses)/math.Sqrt(2*float64(s.Wins+s.Losses)))
}

func gameResultString(v int) string {
	if v == gameResultWhiteWins {
		return "1-0"
	}
	if v == gameResultBlackWins {
		return "0-1"
	}
	if v == gameResultDraw {
		return "1/2-1/2"
	}
	return ""
}
