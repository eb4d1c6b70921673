package tirebench

import (
	"io"
	"log/slog"
	"testing"
)

// quietOptions returns default options with logging discarded.
func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

// testEngine builds a PAC2002 engine over c, optionally adjusted by tweak.
func testEngine(t *testing.T, tweak func(c *Coefficients)) *pac2002Engine {
	t.Helper()
	c := DefaultCoefficients()
	if tweak != nil {
		tweak(&c)
	}
	return newPAC2002Engine(c, quietOptions())
}

// loads is a set of vertical loads from unloaded to twice nominal.
var loads = []float64{0, 500, 2000, 4850, 7000, 9700}
