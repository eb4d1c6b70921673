package tirebench

import (
	"context"
	"fmt"
	"math"
	"testing"
)

// AssertionConfig contains tolerances for tire property checks.
type AssertionConfig struct {
	// Relative tolerance for value comparisons
	RelTolerance float64

	// Absolute floor, used when the expected value is near zero
	AbsTolerance float64

	// Minimum fraction of the sweep on each side of a force peak
	MinPeakMargin float64
}

// DefaultAssertionConfig returns tolerances for floating-point equality of
// the same formula evaluated in a possibly different operation order.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		RelTolerance:  1e-9,
		AbsTolerance:  1e-9,
		MinPeakMargin: 0.05,
	}
}

func within(got, want float64, cfg AssertionConfig) bool {
	if got == want {
		return true
	}
	return math.Abs(got-want) <= math.Max(cfg.AbsTolerance, cfg.RelTolerance*math.Abs(want))
}

// AssertClose verifies got equals want within the configured tolerance.
func AssertClose(t *testing.T, name string, got, want float64, cfg AssertionConfig) {
	t.Helper()

	if !within(got, want, cfg) {
		t.Errorf("%s = %.17g, want %.17g (Δ = %.3g)", name, got, want, got-want)
	}
}

// AssertFinite verifies every column of the table holds finite values.
//
// Degenerate inputs are guarded inside the formulas, so NaN or ±Inf in a
// result always means an unguarded division.
func AssertFinite(t *testing.T, table *ResultTable) {
	t.Helper()

	cols := table.Columns()
	var failures []string
	for i := range table.Rows {
		for _, c := range cols {
			v, err := table.Rows[i].Value(c)
			if err != nil {
				t.Fatalf("row %d: %v", i, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				failures = append(failures, fmt.Sprintf("  row %d %s=%v (FZ=%g SA=%g SR=%g IA=%g)",
					i, c, v, table.Rows[i].FZ, table.Rows[i].SA, table.Rows[i].SR, table.Rows[i].IA))
			}
		}
	}

	if len(failures) > 0 {
		t.Errorf("Non-finite outputs:\n%v", failures)
	}

	t.Logf("✓ Finite: %d rows × %d columns", table.Len(), len(cols))
}

// AssertGridOrder verifies the table rows follow enumeration order
// (FZ outermost, then IA, V, P, SR, SA innermost).
func AssertGridOrder(t *testing.T, table *ResultTable, ranges InputRanges) {
	t.Helper()

	want := Grid(ranges)
	if table.Len() != len(want) {
		t.Fatalf("Row count = %d, want %d", table.Len(), len(want))
	}

	for i, w := range want {
		g := table.Rows[i]
		if g.FZ != w.FZ || g.IA != w.IA || g.V != w.V || g.P != w.P || g.SR != w.SR || g.SA != w.SA {
			t.Fatalf("Row %d inputs = (FZ=%g IA=%g V=%g P=%g SR=%g SA=%g), want (FZ=%g IA=%g V=%g P=%g SR=%g SA=%g)",
				i, g.FZ, g.IA, g.V, g.P, g.SR, g.SA, w.FZ, w.IA, w.V, w.P, w.SR, w.SA)
		}
	}

	t.Logf("✓ Grid order: %d rows", len(want))
}

// AssertSaturates verifies the curve y(x) peaks strictly inside the sweep:
// the force rises, saturates and falls off again.
func AssertSaturates(t *testing.T, xs, ys []float64, cfg AssertionConfig) {
	t.Helper()

	s, err := Summarize(xs, ys)
	if err != nil {
		t.Fatalf("Failed to summarize curve: %v", err)
	}

	span := xs[len(xs)-1] - xs[0]
	lowMargin := (s.PeakAt - xs[0]) / span
	highMargin := (xs[len(xs)-1] - s.PeakAt) / span
	if lowMargin < cfg.MinPeakMargin || highMargin < cfg.MinPeakMargin {
		t.Errorf("Peak at sweep edge: |y| max %.3f at x=%.4f of [%.4f, %.4f]",
			s.Peak, s.PeakAt, xs[0], xs[len(xs)-1])
	}

	t.Logf("✓ Saturates: peak %.1f at x=%.4f, stiffness %.1f", s.Peak, s.PeakAt, s.Stiffness)
}

// AssertModelContract runs the Model contract checks: a full solve is finite
// and ordered, and the parameter set round-trips through SetParameters.
func AssertModelContract(t *testing.T, m Model) {
	t.Helper()

	ranges := InputRanges{
		FZ: []float64{0, 2500, 4850},
		IA: []float64{0, 0.05},
		V:  []float64{16.6},
		P:  []float64{0},
		SR: []float64{-0.1, 0, 0.1},
		SA: []float64{-0.1, 0, 0.1},
	}

	t.Run("Solve", func(t *testing.T) {
		table, err := m.Solve(context.Background(), ranges, ModeAll)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if table.Model != m.Info().Name {
			t.Errorf("Table model = %q, want %q", table.Model, m.Info().Name)
		}
		AssertGridOrder(t, table, ranges)
		AssertFinite(t, table)
	})

	t.Run("Parameters", func(t *testing.T) {
		params := m.Parameters()
		if err := m.SetParameters(params); err != nil {
			t.Fatalf("SetParameters(Parameters()): %v", err)
		}
		again := m.Parameters()
		for k, v := range params {
			if again[k] != v {
				t.Errorf("Parameter %s = %v after round trip, want %v", k, again[k], v)
			}
		}
		t.Logf("✓ Parameters round-trip: %d values", len(params))
	})
}
