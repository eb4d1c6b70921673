package tirebench

import (
	"context"
	"errors"
	"math"
	"testing"
)

// TestSummarize_Sine verifies peak, slope and amplitude on a known curve.
func TestSummarize_Sine(t *testing.T) {
	xs := Sweep(-math.Pi, math.Pi, math.Pi/100)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3 * math.Sin(x)
	}

	s, err := Summarize(xs, ys)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if math.Abs(math.Abs(s.Peak)-3) > 1e-9 || math.Abs(math.Abs(s.PeakAt)-math.Pi/2) > 1e-9 {
		t.Errorf("Peak %g at %g, want ±3 at ±π/2", s.Peak, s.PeakAt)
	}
	if math.Abs(s.Stiffness-3) > 1e-3 {
		t.Errorf("Stiffness = %g, want ≈ 3", s.Stiffness)
	}
	if math.Abs(s.Amplitude-6) > 1e-9 {
		t.Errorf("Amplitude = %g, want 6", s.Amplitude)
	}
	t.Logf("Summary: %+v", s)
}

func TestSummarize_Errors(t *testing.T) {
	if _, err := Summarize(nil, nil); err == nil {
		t.Error("Expected error for empty curve")
	}
	if _, err := Summarize([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("Expected error for length mismatch")
	}

	s, err := Summarize([]float64{0}, []float64{5})
	if err != nil || s.Peak != 5 || s.Stiffness != 0 {
		t.Errorf("Single point: %+v, %v", s, err)
	}
}

// TestSummarizeBy_LateralForce verifies peak lateral force per load: the
// peak grows with load and the curve saturates inside the sweep.
func TestSummarizeBy_LateralForce(t *testing.T) {
	m := NewPAC2002(DefaultCoefficients(), quietOptions())
	ranges := InputRanges{
		FZ: []float64{2000, 4850, 7000},
		IA: one(0), V: one(16.6), P: one(0), SR: one(0),
		SA: Sweep(-0.6, 0.6, 0.01),
	}

	table, err := m.Solve(context.Background(), ranges, ModeFy)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	loads, curves, err := SummarizeBy(table, "FZ", "SA", "FY")
	if err != nil {
		t.Fatalf("SummarizeBy failed: %v", err)
	}
	if len(loads) != 3 || loads[0] != 2000 || loads[2] != 7000 {
		t.Fatalf("Groups = %v", loads)
	}

	for i := 1; i < len(curves); i++ {
		if math.Abs(curves[i].Peak) <= math.Abs(curves[i-1].Peak) {
			t.Errorf("Peak |FY| not increasing with load: %g → %g", curves[i-1].Peak, curves[i].Peak)
		}
	}
	for i, c := range curves {
		if c.Stiffness >= 0 {
			t.Errorf("FZ=%g: cornering stiffness %g, want negative (FY opposes SA)", loads[i], c.Stiffness)
		}
		t.Logf("FZ=%5.0f  peak FY=%8.1f at SA=%+.3f  C_alpha=%9.0f", loads[i], c.Peak, c.PeakAt, c.Stiffness)
	}

	sa, _ := Column(table, "SA")
	fy, _ := Column(table, "FY")
	n := len(ranges.SA)
	AssertSaturates(t, sa[n:2*n], fy[n:2*n], DefaultAssertionConfig())
}

func TestColumn(t *testing.T) {
	table := &ResultTable{Mode: ModeRelaxation, Rows: []State{{FZ: 1, SigmaAlpha: 0.2}, {FZ: 2, SigmaAlpha: 0.3}}}

	got, err := Column(table, "SIGMA_ALPHA")
	if err != nil || len(got) != 2 || got[1] != 0.3 {
		t.Errorf("Column(SIGMA_ALPHA) = %v, %v", got, err)
	}
	if _, err := Column(table, "FZZ"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Expected ErrUnknownColumn, got %v", err)
	}

	cols := table.Columns()
	want := []string{"FZ", "IA", "SA", "SR", "V", "P", "FX", "FY", "MX", "MY", "MZ", "SIGMA_ALPHA", "SIGMA_KAPPA"}
	if len(cols) != len(want) {
		t.Fatalf("Columns = %v", cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("Columns[%d] = %s, want %s", i, cols[i], want[i])
		}
	}

	table.Mode = ModeFy
	if n := len(table.Columns()); n != 11 {
		t.Errorf("Columns(fy) has %d columns, want 11", n)
	}
}

// TestOutputColumns verifies dependency outputs are listed.
func TestOutputColumns(t *testing.T) {
	got := OutputColumns(ModeMz)
	want := []string{"FX", "FY", "MZ"}
	if len(got) != len(want) {
		t.Fatalf("OutputColumns(mz) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OutputColumns(mz)[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if n := len(OutputColumns(ModeAll)); n != 9 {
		t.Errorf("OutputColumns(all) has %d columns, want 9", n)
	}
}
