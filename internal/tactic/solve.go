package tactic

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/ChesseGo/pkg/common"
)

type IEngine interface {
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

type Report struct {
	Total  int
	Solved int
	Nodes  int64
	Time   time.Duration
}

func (r Report) Nps() float64 {
	if r.Time <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Time.Seconds()
}

// SolveTactic searches every test with limits and counts the tests whose
// principal move is one of the listed best moves.
func SolveTactic(ctx context.Context, tests []EpdItem, engine IEngine,
	limits common.LimitsType, logger *zap.Logger) Report {

	var report Report
	for i := range tests {
		if ctx.Err() != nil {
			break
		}
		var test = &tests[i]
		engine.Clear()
		var searchResult = engine.Search(ctx, common.SearchParams{
			Game:   test.Game,
			Limits: limits,
		})
		report.Total++
		report.Nodes += searchResult.Nodes
		report.Time += searchResult.Time

		var solved = len(searchResult.MainLine) != 0 &&
			slices.Contains(test.BestMoves, searchResult.MainLine[0])
		if solved {
			report.Solved++
		}
		var move = "(none)"
		if len(searchResult.MainLine) != 0 {
			move = searchResult.MainLine[0].String()
		}
		logger.Info("tactic",
			zap.String("id", test.ID),
			zap.Bool("solved", solved),
			zap.String("move", move),
			zap.Int("depth", searchResult.Depth),
			zap.Int64("nodes", searchResult.Nodes))
	}
	logger.Info("tactic summary",
		zap.Int("solved", report.Solved),
		zap.Int("total", report.Total),
		zap.Duration("time", report.Time),
		zap.Float64("nps", report.Nps()))
	return report
}

// Benchmark searches every test to a fixed depth and reports search speed.
func Benchmark(ctx context.Context, tests []EpdItem, engine IEngine,
	depth int, logger *zap.Logger) Report {

	var report Report
	for i := range tests {
		if ctx.Err() != nil {
			break
		}
		engine.Clear()
		var searchResult = engine.Search(ctx, common.SearchParams{
			Game:   tests[i].Game,
			Limits: common.LimitsType{Depth: depth},
		})
		report.Total++
		report.Nodes += searchResult.Nodes
		report.Time += searchResult.Time
	}
	logger.Info("benchmark",
		zap.Int("positions", report.Total),
		zap.Int("depth", depth),
		zap.Int64("nodes", report.Nodes),
		zap.Duration("time", report.Time),
		zap.Float64("nps", report.Nps()))
	return report
}
