package tirebench

import (
	"context"
	"math"
	"testing"
)

// TestDeflection_Sentinel verifies a non-positive discriminant reports
// NoContactDeflection.
func TestDeflection_Sentinel(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
	}{
		{"negative discriminant", 1, 0, 1},
		{"zero discriminant", 1, 2, 1},
		{"degenerate quadratic", 0, 0, -1},
	}

	for _, tc := range cases {
		if got := deflection(tc.a, tc.b, tc.c); got != NoContactDeflection {
			t.Errorf("%s: deflection = %g, want sentinel", tc.name, got)
		}
	}
}

// TestDeflection_Root verifies a positive discriminant yields a root of the
// quadratic.
func TestDeflection_Root(t *testing.T) {
	c := DefaultCoefficients()
	r0 := c.UNLOADED_RADIUS
	a := math.Pow(c.QFZ2/r0, 2)
	b := c.QFZ1 / r0

	for _, fz := range []float64{500, 4850, 9000} {
		cc := -fz / c.FNOMIN
		rho := deflection(a, b, cc)
		if rho == NoContactDeflection || rho <= 0 {
			t.Fatalf("FZ=%g: deflection = %g", fz, rho)
		}
		if residual := a*rho*rho + b*rho + cc; math.Abs(residual) > 1e-9 {
			t.Errorf("FZ=%g: aρ²+bρ+c = %g at ρ=%g", fz, residual, rho)
		}
	}
}

// TestDeflection_Linear verifies a zero quadratic term falls back to the
// linear root instead of dividing by zero.
func TestDeflection_Linear(t *testing.T) {
	b, c := 81.47, -1.0
	rho := deflection(0, b, c)
	if rho == NoContactDeflection || math.IsNaN(rho) {
		t.Fatalf("deflection(0, %g, %g) = %g", b, c, rho)
	}
	if residual := b*rho + c; math.Abs(residual) > 1e-12 {
		t.Errorf("bρ+c = %g at ρ=%g", residual, rho)
	}
	t.Logf("✓ Linear deflection: ρ=%.6f", rho)
}

// TestRadius_NoQuadraticStiffness verifies QFZ2 = 0 gives finite radii that
// compress more than the stiffer quadratic default.
func TestRadius_NoQuadraticStiffness(t *testing.T) {
	e := testEngine(t, func(c *Coefficients) { c.QFZ2 = 0 })
	stiff := testEngine(t, nil)

	for _, fz := range []float64{500, 4850, 9000} {
		rl, re := e.aux.radius(&State{FZ: fz, V: 16.6})
		if math.IsNaN(rl) || math.IsInf(rl, 0) || math.IsNaN(re) || math.IsInf(re, 0) {
			t.Fatalf("FZ=%g: radius = (%g, %g), want finite", fz, rl, re)
		}
		stiffRL, _ := stiff.aux.radius(&State{FZ: fz, V: 16.6})
		if rl <= 0 || rl > stiffRL {
			t.Errorf("FZ=%g: RL = %g, want in (0, %g]", fz, rl, stiffRL)
		}
	}

	table, err := NewPAC2002(e.coeffs, quietOptions()).Solve(context.Background(), InputRanges{
		FZ: []float64{0, 2000, 4850},
		IA: []float64{0},
		V:  []float64{16.6},
		P:  []float64{0},
		SR: []float64{-0.1, 0, 0.1},
		SA: []float64{-0.1, 0, 0.1},
	}, ModeRadius)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	AssertFinite(t, table)
}

// TestRadius_LoadCompresses verifies the loaded radius shrinks with load and
// stays below the speed-grown free radius.
func TestRadius_LoadCompresses(t *testing.T) {
	m := NewPAC2002(DefaultCoefficients(), quietOptions())

	prev := math.Inf(1)
	for _, fz := range []float64{1000, 2000, 4850, 9000} {
		s := State{FZ: fz, V: 16.6}
		rl, re := m.Radius(&s)
		if rl <= 0 || rl >= prev {
			t.Errorf("FZ=%g: RL = %g (previous %g)", fz, rl, prev)
		}
		if re <= 0 || re > m.Coefficients().UNLOADED_RADIUS*1.01 {
			t.Errorf("FZ=%g: RE = %g", fz, re)
		}
		prev = rl
	}

	rl, _ := m.Radius(&State{FZ: 4850, V: 16.6})
	AssertClose(t, "RL", rl, 0.33733230490699634, DefaultAssertionConfig())
}

// TestRadius_ZeroVerticalStiffness verifies C_z0 = 0 reports zero radii.
func TestRadius_ZeroVerticalStiffness(t *testing.T) {
	e := testEngine(t, func(c *Coefficients) { c.QFZ1, c.QFZ2 = 0, 0 })

	rl, re := e.aux.radius(&State{FZ: 4850, V: 16.6})
	if rl != 0 || re != 0 {
		t.Errorf("radius with C_z0=0 = (%g, %g), want (0, 0)", rl, re)
	}
}

// TestOverturning verifies the camber-free, force-free Mx term.
func TestOverturning(t *testing.T) {
	e := testEngine(t, nil)
	c := e.coeffs

	got := e.aux.overturning(&State{FZ: 4850, V: 16.6})
	want := c.UNLOADED_RADIUS * 4850 * c.QSX1
	AssertClose(t, "MX", got, want, DefaultAssertionConfig())
}

// TestRollingResistance verifies My at reference speed with no Fx.
func TestRollingResistance(t *testing.T) {
	e := testEngine(t, nil)
	c := e.coeffs

	got := e.aux.rollingResistance(&State{FZ: 4850, V: c.LONGVL})
	want := c.UNLOADED_RADIUS * 4850 * c.QSY1
	AssertClose(t, "MY", got, want, DefaultAssertionConfig())
}

// TestRelaxation verifies both relaxation lengths are positive at nominal
// load and that PTY2 = 0 disables the lateral one.
func TestRelaxation(t *testing.T) {
	e := testEngine(t, nil)
	s := State{FZ: 4850, V: 16.6}

	if sa := e.aux.lateralRelaxation(&s); sa <= 0 {
		t.Errorf("SIGMA_ALPHA = %g", sa)
	}
	// At nominal load dfz = 0: σκ = FZ·PTX1·R0/FNOMIN.
	c := e.coeffs
	AssertClose(t, "SIGMA_KAPPA", e.aux.longitudinalRelaxation(&s), 4850*c.PTX1*(c.UNLOADED_RADIUS/c.FNOMIN), DefaultAssertionConfig())

	off := testEngine(t, func(c *Coefficients) { c.PTY2 = 0 })
	if sa := off.aux.lateralRelaxation(&s); sa != 0 {
		t.Errorf("SIGMA_ALPHA with PTY2=0 = %g, want 0", sa)
	}
}
