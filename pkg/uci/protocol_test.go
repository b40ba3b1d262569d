package uci

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ChizhovVadim/ChesseGo/internal/testutil"
	"github.com/ChizhovVadim/ChesseGo/pkg/engine"
	material "github.com/ChizhovVadim/ChesseGo/pkg/eval/material"
)

func newTestProtocol() (*Protocol, *engine.Engine) {
	var options = engine.NewOptions()
	options.Threads = 2
	options.TransTableSize = 10_000
	options.EvalCacheSize = 1 << 12
	var eng = engine.NewEngine(options, func() interface{} {
		return material.NewEvaluationService()
	}, nil)
	var uciOptions = []Option{
		&IntOption{Name: "Threads", Min: 1, Max: 64, Value: &eng.Options.Threads},
	}
	return New("Chesse", "test", "dev", eng, uciOptions, nil), eng
}

func run(p *Protocol, input string) string {
	var out bytes.Buffer
	p.Run(strings.NewReader(input), &out)
	return out.String()
}

func TestHandshake(t *testing.T) {
	var p, _ = newTestProtocol()
	var out = run(p, "uci\nisready\n")
	testutil.AssertContains(t, out, "id name Chesse dev")
	testutil.AssertContains(t, out, "option name Threads type spin default 2 min 1 max 64")
	testutil.AssertContains(t, out, "uciok")
	testutil.AssertContains(t, out, "readyok")
}

func TestGoReportsBestMove(t *testing.T) {
	var p, _ = newTestProtocol()
	var out = run(p, "position startpos moves e2e4 e7e5\ngo depth 2\n")
	testutil.AssertContains(t, out, "info depth 1")
	testutil.AssertContains(t, out, "info depth 2")
	testutil.AssertContains(t, out, "bestmove ")
	testutil.AssertFalse(t, strings.Contains(out, "bestmove 0000"))
}

func TestGoFindsMate(t *testing.T) {
	var p, _ = newTestProtocol()
	var out = run(p, "position fen 6k1/5ppp/8/8/8/8/8/R6K w - - 0 1\ngo depth 3\n")
	testutil.AssertContains(t, out, "score mate 1")
	testutil.AssertContains(t, out, "bestmove a1a8")
}

func TestGoWithoutMoves(t *testing.T) {
	var p, _ = newTestProtocol()
	var out = run(p, "position startpos moves f2f3 e7e5 g2g4 d8h4\ngo depth 2\n")
	testutil.AssertContains(t, out, "bestmove 0000")
}

func TestSetOption(t *testing.T) {
	var p, eng = newTestProtocol()
	run(p, "setoption name threads value 3\nsetoption name Threads value 100\n")
	testutil.AssertEqual(t, eng.Options.Threads, 3)
}

func TestComboOption(t *testing.T) {
	var value = "full"
	var changes []string
	var option = &ComboOption{
		Name:     "Eval",
		Vars:     []string{"full", "material"},
		Value:    &value,
		OnChange: func(v string) { changes = append(changes, v) },
	}
	var p = New("Chesse", "test", "dev", nil, []Option{option}, nil)
	var out = run(p, "uci\nsetoption name Eval value MATERIAL\nsetoption name Eval value nnue\n")
	testutil.AssertContains(t, out, "option name Eval type combo default full var full var material")
	testutil.AssertEqual(t, value, "material")
	testutil.AssertEqual(t, changes, []string{"material"})
}

func TestPositionAndDisplay(t *testing.T) {
	var p, _ = newTestProtocol()
	var out = run(p, "position startpos moves e2e4 e7e5 g1f3\nd\n")
	testutil.AssertContains(t, out, "Fen: rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2")

	out = run(p, "position startpos moves e2e5\nd\n")
	testutil.AssertContains(t, out, "Fen: rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2",
		"an illegal move leaves the position unchanged")

	out = run(p, "ucinewgame\nd\n")
	testutil.AssertContains(t, out, "Fen: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
}

func TestStopEndsInfiniteSearch(t *testing.T) {
	var p, _ = newTestProtocol()
	var reader, writer = io.Pipe()
	var done = make(chan string)
	go func() {
		var out bytes.Buffer
		p.Run(reader, &out)
		done <- out.String()
	}()
	fmt.Fprintln(writer, "go infinite")
	time.Sleep(50 * time.Millisecond)
	fmt.Fprintln(writer, "stop")
	writer.Close()

	select {
	case out := <-done:
		testutil.AssertContains(t, out, "bestmove ")
	case <-time.After(10 * time.Second):
		t.Fatal("search did not stop")
	}
}

func TestParseLimits(t *testing.T) {
	var limits = parseLimits(strings.Fields("wtime 60000 btime 30000 winc 1000 binc 500 movestogo 20 depth 6"))
	testutil.AssertEqual(t, limits.WhiteTime, time.Minute)
	testutil.AssertEqual(t, limits.BlackTime, 30*time.Second)
	testutil.AssertEqual(t, limits.WhiteIncrement, time.Second)
	testutil.AssertEqual(t, limits.BlackIncrement, 500*time.Millisecond)
	testutil.AssertEqual(t, limits.MovesToGo, 20)
	testutil.AssertEqual(t, limits.Depth, 6)

	limits = parseLimits(strings.Fields("movetime 250 infinite"))
	testutil.AssertEqual(t, limits.MoveTime, 250*time.Millisecond)
	testutil.AssertTrue(t, limits.Infinite)

	limits = parseLimits(strings.Fields("depth"))
	testutil.AssertEqual(t, limits.Depth, 0)
}
