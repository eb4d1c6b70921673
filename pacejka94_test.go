package tirebench

import (
	"context"
	"errors"
	"math"
	"testing"
)

// TestPacejka94_Reference verifies pure Fy and Fx at 4 kN.
func TestPacejka94_Reference(t *testing.T) {
	m := NewPacejka94(DefaultPacejka94Coefficients(), quietOptions())
	cfg := DefaultAssertionConfig()

	AssertClose(t, "FY", m.PureFy(&State{FZ: 4000, SA: 0.05}), 2142.2024790958399, cfg)
	AssertClose(t, "FX", m.PureFx(&State{FZ: 4000, SR: 0.05}), 3584.9048173419565, cfg)
}

// TestPacejka94_Units verifies the single per-point conversion.
func TestPacejka94_Units(t *testing.T) {
	u := toP94Units(&State{FZ: 4850, IA: math.Pi / 180, SA: math.Pi / 90, SR: 0.05})
	cfg := DefaultAssertionConfig()

	AssertClose(t, "fz [kN]", u.fz, 4.85, cfg)
	AssertClose(t, "ia [deg]", u.ia, 1, cfg)
	AssertClose(t, "sa [deg]", u.sa, 2, cfg)
	AssertClose(t, "sr [%]", u.sr, 5, cfg)
}

// TestPacejka94_PureModesOnly verifies outputs it does not model stay zero.
func TestPacejka94_PureModesOnly(t *testing.T) {
	m := NewPacejka94(DefaultPacejka94Coefficients(), quietOptions())
	ranges := InputRanges{FZ: one(4000), IA: one(0), V: one(16.6), P: one(0), SR: one(0.05), SA: one(0.05)}

	table, err := m.Solve(context.Background(), ranges, ModeAll|ModePureFy|ModePureFx|ModePureMz)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	r := table.Rows[0]
	if r.FY == 0 || r.FX == 0 || r.MZ == 0 {
		t.Errorf("pure outputs missing: %+v", r)
	}
	if r.MX != 0 || r.MY != 0 || r.RL != 0 || r.RE != 0 || r.SigmaAlpha != 0 {
		t.Errorf("unsupported outputs filled: %+v", r)
	}
	if table.Model != ModelPacejka94 {
		t.Errorf("table model = %q", table.Model)
	}
}

// TestPacejka94_ZeroLoad verifies the C·D guard at FZ = 0.
func TestPacejka94_ZeroLoad(t *testing.T) {
	m := NewPacejka94(DefaultPacejka94Coefficients(), quietOptions())
	s := State{SA: 0.1, SR: 0.1}

	for name, v := range map[string]float64{"FY": m.PureFy(&s), "FX": m.PureFx(&s), "MZ": m.PureMz(&s)} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s at FZ=0 = %v", name, v)
		}
	}
}

// TestPacejka94_Curvature verifies E is capped even when a7 pushes it high.
func TestPacejka94_Curvature(t *testing.T) {
	c := DefaultPacejka94Coefficients()
	c.A7 = 5
	m := NewPacejka94(c, quietOptions())

	capped := c
	capped.A7 = 1
	ref := NewPacejka94(capped, quietOptions())

	for _, sa := range []float64{0.02, 0.1, 0.3} {
		s := State{FZ: 4000, SA: sa}
		if got, want := m.PureFy(&s), ref.PureFy(&s); got != want {
			t.Errorf("SA=%g: Fy with E=5 is %g, want clamped %g", sa, got, want)
		}
	}
}

func TestPacejka94_SetParameters(t *testing.T) {
	m := NewPacejka94(DefaultPacejka94Coefficients(), quietOptions())
	if n := len(Pacejka94ParameterNames()); n != 53 {
		t.Errorf("Expected 53 coefficients, got %d", n)
	}

	params := m.Parameters()
	delete(params, "c20")
	if err := m.SetParameters(params); !errors.Is(err, ErrParameterMismatch) {
		t.Errorf("Expected ErrParameterMismatch, got %v", err)
	}
}
