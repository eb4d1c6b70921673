package tirebench

import (
	"context"
	"sync"
)

// PAC2002 is the Pacejka 2002 Magic Formula tire model.
//
// It composes independent formula families over one coefficient set:
// lateral (Fy), longitudinal (Fx), aligning (Mz) and auxiliary (Mx, My,
// radii, relaxation lengths). All formulas are pure functions of the
// coefficients and the state.
type PAC2002 struct {
	mu   sync.RWMutex
	eng  *pac2002Engine
	opts Options
}

// pac2002Engine is an immutable coefficient set with its formula families.
type pac2002Engine struct {
	coeffs Coefficients
	lat    lateral
	lon    longitudinal
	align  aligning
	aux    auxiliary
}

func newPAC2002Engine(c Coefficients, opts Options) *pac2002Engine {
	e := &pac2002Engine{coeffs: c}
	f := family{c: &e.coeffs, legacy: opts.LegacyLoadIncrement, log: opts.logger()}
	e.lat = lateral{f}
	e.lon = longitudinal{f}
	e.align = aligning{family: f, lat: e.lat, lon: e.lon}
	e.aux = auxiliary{f}
	return e
}

// NewPAC2002 returns a model over a full coefficient set.
func NewPAC2002(c Coefficients, opts Options) *PAC2002 {
	return &PAC2002{eng: newPAC2002Engine(c, opts), opts: opts}
}

// NewPAC2002FromPreset returns a model over the named embedded preset.
func NewPAC2002FromPreset(name string, opts Options) (*PAC2002, error) {
	c, err := PAC2002Preset(name)
	if err != nil {
		return nil, err
	}
	return NewPAC2002(c, opts), nil
}

func (m *PAC2002) engine() *pac2002Engine {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.eng
}

// Info implements Model.
func (m *PAC2002) Info() ModelInfo {
	return ModelInfo{
		Name:        ModelPAC2002,
		Description: "An implementation of Pacejka 2002 as described in the first edition of Tire and Vehicle Dynamics",
	}
}

// Coefficients returns a copy of the current coefficient set.
func (m *PAC2002) Coefficients() Coefficients {
	return m.engine().coeffs
}

// Parameters implements Model.
func (m *PAC2002) Parameters() map[string]float64 {
	return m.engine().coeffs.Parameters()
}

// SetParameters implements Model.
func (m *PAC2002) SetParameters(params map[string]float64) error {
	c, err := CoefficientsFromParameters(params)
	if err != nil {
		return err
	}

	eng := newPAC2002Engine(c, m.opts)
	m.mu.Lock()
	m.eng = eng
	m.mu.Unlock()
	return nil
}

// PureFy returns the lateral force without slip-ratio correction, N.
func (m *PAC2002) PureFy(s *State) float64 { return m.engine().lat.pure(s) }

// PureFx returns the longitudinal force without slip-angle correction, N.
func (m *PAC2002) PureFx(s *State) float64 { return m.engine().lon.pure(s) }

// PureMz returns the aligning moment from the pure lateral force, N·m.
// s.FY must already hold PureFy(s).
func (m *PAC2002) PureMz(s *State) float64 { return m.engine().align.pure(s) }

// Fy returns the combined-slip lateral force, N.
func (m *PAC2002) Fy(s *State) float64 { return m.engine().lat.combined(s) }

// Fx returns the combined-slip longitudinal force, N.
func (m *PAC2002) Fx(s *State) float64 { return m.engine().lon.combined(s) }

// Mz returns the combined-slip aligning moment, N·m.
// s.FY and s.FX must already hold Fy(s) and Fx(s).
func (m *PAC2002) Mz(s *State) float64 { return m.engine().align.combined(s) }

// Mx returns the overturning moment from s.FY, N·m.
func (m *PAC2002) Mx(s *State) float64 { return m.engine().aux.overturning(s) }

// My returns the rolling resistance moment from s.FX, N·m.
func (m *PAC2002) My(s *State) float64 { return m.engine().aux.rollingResistance(s) }

// Radius returns the loaded and effective rolling radius, m.
func (m *PAC2002) Radius(s *State) (rl, re float64) { return m.engine().aux.radius(s) }

// LateralRelaxation returns the lateral relaxation length, m.
func (m *PAC2002) LateralRelaxation(s *State) float64 {
	return m.engine().aux.lateralRelaxation(s)
}

// LongitudinalRelaxation returns the longitudinal relaxation length, m.
func (m *PAC2002) LongitudinalRelaxation(s *State) float64 {
	return m.engine().aux.longitudinalRelaxation(s)
}

// evaluate fills the outputs selected by mode, and their dependencies, in
// dependency order. When a mode holds both the pure and combined variant of
// a force, the combined value is the one left in the state.
func (e *pac2002Engine) evaluate(s *State, mode Mode) {
	m := mode.WithDependencies()

	if m.Has(ModePureFy) {
		s.FY = e.lat.pure(s)
	}
	if m.Has(ModePureFx) {
		s.FX = e.lon.pure(s)
	}
	if m.Has(ModePureMz) {
		s.MZ = e.align.pure(s)
	}
	if m.Has(ModeFy) {
		s.FY = e.lat.combined(s)
	}
	if m.Has(ModeFx) {
		s.FX = e.lon.combined(s)
	}
	if m.Has(ModeMz) {
		s.MZ = e.align.combined(s)
	}
	if m.Has(ModeMx) {
		s.MX = e.aux.overturning(s)
	}
	if m.Has(ModeMy) {
		s.MY = e.aux.rollingResistance(s)
	}
	if m.Has(ModeRadius) {
		s.RL, s.RE = e.aux.radius(s)
	}
	if m.Has(ModeRelaxation) {
		s.SigmaAlpha = e.aux.lateralRelaxation(s)
		s.SigmaKappa = e.aux.longitudinalRelaxation(s)
	}
}

// Solve implements Model.
func (m *PAC2002) Solve(ctx context.Context, ranges InputRanges, mode Mode) (*ResultTable, error) {
	return solveGrid(ctx, m.opts.Config, ModelPAC2002, ranges, mode, m.engine().evaluate)
}
