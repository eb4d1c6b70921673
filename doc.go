// Package tirebench evaluates Magic Formula tire models over grids of
// operating conditions.
//
// # Overview
//
// A tire model maps an operating condition (vertical load, camber, slip
// angle, slip ratio, speed) to the forces and moments at the contact patch.
// tirebench implements the Pacejka 2002 model (PAC2002) with pure and
// combined slip, overturning and rolling resistance moments, rolling radii
// and relaxation lengths, and the older Pacejka 94 model for pure slip.
//
// # Architecture
//
// The package components:
//
//   - coefficients/presets - named coefficient sets, embedded as JSON
//   - lateral/longitudinal - pure and combined Fy and Fx
//   - aligning             - pneumatic trail and residual moment (Mz)
//   - auxiliary            - Mx, My, radii, relaxation lengths
//   - solver               - grid enumeration and parallel evaluation
//   - analysis             - column extraction and curve summaries
//   - assertions           - test helpers for tire model properties
//
// # Quick Start
//
// Sweep slip angle at one load and read the lateral force:
//
//	m, err := tirebench.NewPAC2002FromPreset(tirebench.PresetPAC2002Default, tirebench.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	table, err := m.Solve(ctx, tirebench.InputRanges{
//	    FZ: []float64{4850},
//	    IA: []float64{0},
//	    V:  []float64{16.6},
//	    P:  []float64{0},
//	    SR: []float64{0},
//	    SA: tirebench.Sweep(-0.3, 0.3, 0.01),
//	}, tirebench.ModeFy)
//
//	fy, _ := tirebench.Column(table, "FY")
//
// # Grid Order
//
// Rows come back in a fixed order: FZ outermost, then IA, V, P, SR and SA
// innermost. Consumers may index results by position.
//
// # Modes
//
// A Mode selects the outputs to compute. Modes are bit flags and combine
// with |. Outputs that depend on others pull them in: Mz needs Fy and Fx,
// Mx needs Fy, My needs Fx, and radius needs both forces. When a mode holds
// the pure and the combined variant of a force, the combined value wins.
//
// # Degenerate Inputs
//
// The formulas never fail. A zero stiffness denominator is replaced by 1e-9,
// every curvature factor E is capped at 1.0, and a radius with no real
// deflection root reports NoContactDeflection. Substitutions are logged at
// debug level through Options.Logger.
//
// # Load Increment
//
// The normalized load increment is dfz = (FZ − FNOMIN·LFZ0)/(FNOMIN·LFZ0).
// Options.LegacyLoadIncrement switches to FZ − FNOMIN/FNOMIN, which older
// tooling used, to reproduce curves produced with it.
package tirebench
