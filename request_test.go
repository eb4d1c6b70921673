package tirebench

import (
	"context"
	"errors"
	"testing"
)

// TestRunJSON verifies a request with a sweep solves in grid order.
func TestRunJSON(t *testing.T) {
	req := []byte(`{
		"model": "PAC2002",
		"mode": "fy|mx",
		"ranges": {"FZ": [2000, 4000], "V": [16.6]},
		"sweeps": {"sa": {"start": -0.1, "stop": 0.1, "step": 0.1}}
	}`)

	table, err := RunJSON(context.Background(), req, quietOptions())
	if err != nil {
		t.Fatalf("RunJSON failed: %v", err)
	}
	if table.Len() != 6 {
		t.Fatalf("Expected 6 rows, got %d", table.Len())
	}
	if table.Mode != ModeFy|ModeMx {
		t.Errorf("Mode = %v", table.Mode)
	}
	if table.Rows[2].SA != 0.1 || table.Rows[3].FZ != 4000 || table.Rows[3].SA != -0.1 {
		t.Errorf("Rows out of order: %+v", table.Rows)
	}
	AssertFinite(t, table)
}

// TestRequest_GridDefaults verifies empty axes hold a single zero and
// explicit ranges win over sweeps.
func TestRequest_GridDefaults(t *testing.T) {
	r := Request{
		Ranges: InputRanges{SA: []float64{0.3}},
		Sweeps: map[string]SweepRange{"SA": {0, 1, 0.5}, "FZ": {1000, 3000, 1000}},
	}
	g, err := r.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if len(g.SA) != 1 || g.SA[0] != 0.3 {
		t.Errorf("SA = %v, want explicit [0.3]", g.SA)
	}
	if len(g.FZ) != 3 || g.FZ[2] != 3000 {
		t.Errorf("FZ = %v", g.FZ)
	}
	for name, axis := range map[string][]float64{"IA": g.IA, "SR": g.SR, "V": g.V, "P": g.P} {
		if len(axis) != 1 || axis[0] != 0 {
			t.Errorf("%s = %v, want [0]", name, axis)
		}
	}

	bad := Request{Sweeps: map[string]SweepRange{"XYZ": {0, 1, 1}}}
	if _, err := bad.Grid(); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Expected ErrUnknownColumn, got %v", err)
	}

	huge := Request{Sweeps: map[string]SweepRange{"SA": {0, 1, 1e-12}}}
	if _, err := huge.Grid(); !errors.Is(err, ErrInvalidSweep) {
		t.Errorf("Expected ErrInvalidSweep, got %v", err)
	}
}

// TestRequest_Resolve verifies preset, inline and default coefficients.
func TestRequest_Resolve(t *testing.T) {
	m, err := Request{Preset: PresetPacejka94Default}.Resolve(quietOptions())
	if err != nil || m.Info().Name != ModelPacejka94 {
		t.Fatalf("preset: %v, %v", m, err)
	}

	if _, err := (Request{Model: ModelPAC2002, Preset: PresetPacejka94Default}).Resolve(quietOptions()); err == nil {
		t.Error("Expected error for preset of another model")
	}

	inline := DefaultCoefficients().Parameters()
	inline["LMUY"] = 0.7
	m, err = Request{Model: "pac2002", Coefficients: inline}.Resolve(quietOptions())
	if err != nil {
		t.Fatalf("inline: %v", err)
	}
	if m.Parameters()["LMUY"] != 0.7 {
		t.Error("inline coefficients not applied")
	}

	if _, err := (Request{Model: "nope"}).Resolve(quietOptions()); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("Expected ErrUnknownModel, got %v", err)
	}
}

func TestRun_NoMode(t *testing.T) {
	_, err := Run(context.Background(), Request{Model: ModelPAC2002}, quietOptions())
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
}

func TestParseRequest_Invalid(t *testing.T) {
	if _, err := ParseRequest([]byte(`{"mode": "warp"}`)); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
}
