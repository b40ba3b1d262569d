package evalbuilder

import (
	"testing"

	"github.com/ChizhovVadim/ChesseGo/internal/testutil"
	"github.com/ChizhovVadim/ChesseGo/pkg/common"
	"github.com/ChizhovVadim/ChesseGo/pkg/engine"
)

func TestGetBuildsEvaluators(t *testing.T) {
	var gs = common.NewInitialGameState()
	for _, key := range append([]string{""}, Names...) {
		testutil.AssertNoError(t, Validate(key))
		var e, ok = Get(key)().(engine.Evaluator)
		testutil.AssertTrue(t, ok, key)
		testutil.AssertEqual(t, e.Evaluate(gs, common.White), 0, key)
	}
}

func TestUnknownEval(t *testing.T) {
	testutil.AssertError(t, Validate("nnue"))
	defer func() {
		testutil.AssertTrue(t, recover() != nil)
	}()
	Get("nnue")()
}
