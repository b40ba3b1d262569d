package arena

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ChizhovVadim/ChesseGo/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type IEngine interface {
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

type Config struct {
	Games       int // 0 plays every opening with both colours
	Concurrency int
	DepthA      int
	DepthB      int
	MoveTime    time.Duration
	MaxPlies    int
}

type gameInfo struct {
	id             uuid.UUID
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []common.Move
	comment  string
	result   int
}

type Stats struct {
	Wins   int
	Losses int
	Draws  int
}
