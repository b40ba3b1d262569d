package common

import "time"

type UciScore struct {
	Centipawns int
	Mate       int
}

type LimitsType struct {
	Infinite       bool
	WhiteTime      time.Duration
	BlackTime      time.Duration
	WhiteIncrement time.Duration
	BlackIncrement time.Duration
	MoveTime       time.Duration
	MovesToGo      int
	Depth          int
}

type SearchParams struct {
	Game     *GameState
	Limits   LimitsType
	Progress func(si SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}
