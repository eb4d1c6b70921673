package tirebench

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
)

// Pacejka94Coefficients is the coefficient set of the Pacejka 94 model:
// a0..a17 lateral force, b0..b13 longitudinal force, c0..c20 aligning moment.
type Pacejka94Coefficients struct {
	A0  float64 `json:"a0"`
	A1  float64 `json:"a1"`
	A2  float64 `json:"a2"`
	A3  float64 `json:"a3"`
	A4  float64 `json:"a4"`
	A5  float64 `json:"a5"`
	A6  float64 `json:"a6"`
	A7  float64 `json:"a7"`
	A8  float64 `json:"a8"`
	A9  float64 `json:"a9"`
	A10 float64 `json:"a10"`
	A11 float64 `json:"a11"`
	A12 float64 `json:"a12"`
	A13 float64 `json:"a13"`
	A14 float64 `json:"a14"`
	A15 float64 `json:"a15"`
	A16 float64 `json:"a16"`
	A17 float64 `json:"a17"`

	B0  float64 `json:"b0"`
	B1  float64 `json:"b1"`
	B2  float64 `json:"b2"`
	B3  float64 `json:"b3"`
	B4  float64 `json:"b4"`
	B5  float64 `json:"b5"`
	B6  float64 `json:"b6"`
	B7  float64 `json:"b7"`
	B8  float64 `json:"b8"`
	B9  float64 `json:"b9"`
	B10 float64 `json:"b10"`
	B11 float64 `json:"b11"`
	B12 float64 `json:"b12"`
	B13 float64 `json:"b13"`

	C0  float64 `json:"c0"`
	C1  float64 `json:"c1"`
	C2  float64 `json:"c2"`
	C3  float64 `json:"c3"`
	C4  float64 `json:"c4"`
	C5  float64 `json:"c5"`
	C6  float64 `json:"c6"`
	C7  float64 `json:"c7"`
	C8  float64 `json:"c8"`
	C9  float64 `json:"c9"`
	C10 float64 `json:"c10"`
	C11 float64 `json:"c11"`
	C12 float64 `json:"c12"`
	C13 float64 `json:"c13"`
	C14 float64 `json:"c14"`
	C15 float64 `json:"c15"`
	C16 float64 `json:"c16"`
	C17 float64 `json:"c17"`
	C18 float64 `json:"c18"`
	C19 float64 `json:"c19"`
	C20 float64 `json:"c20"`
}

// Pacejka94ParameterNames returns the sorted Pacejka 94 coefficient names.
func Pacejka94ParameterNames() []string {
	return parameterNames(Pacejka94Coefficients{})
}

// Pacejka94Preset returns a named Pacejka 94 coefficient preset.
func Pacejka94Preset(name string) (Pacejka94Coefficients, error) {
	doc, err := LoadPreset(name)
	if err != nil {
		return Pacejka94Coefficients{}, err
	}
	if doc.Model != ModelPacejka94 {
		return Pacejka94Coefficients{}, fmt.Errorf("preset %q is for model %q, not %q", name, doc.Model, ModelPacejka94)
	}
	var c Pacejka94Coefficients
	if err := fromParameters(&c, doc.Parameters); err != nil {
		return Pacejka94Coefficients{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return c, nil
}

// DefaultPacejka94Coefficients returns the generic Pacejka 94 coefficient set.
func DefaultPacejka94Coefficients() Pacejka94Coefficients {
	c, err := Pacejka94Preset(PresetPacejka94Default)
	if err != nil {
		panic(fmt.Sprintf("tirebench: %v", err))
	}
	return c
}

// p94Units is a state in the units the Pacejka 94 formulas expect. It is
// converted once per grid point.
type p94Units struct {
	fz float64 // vertical load, kN
	ia float64 // camber, deg
	sa float64 // slip angle, deg
	sr float64 // slip ratio, %
}

func toP94Units(s *State) p94Units {
	return p94Units{
		fz: s.FZ / 1000,
		ia: s.IA * 180 / math.Pi,
		sa: s.SA * 180 / math.Pi,
		sr: s.SR * 100,
	}
}

// Pacejka94 is the legacy Pacejka 94 model. It computes pure-slip forces and
// aligning moment only; other outputs stay zero.
type Pacejka94 struct {
	mu   sync.RWMutex
	c    Pacejka94Coefficients
	opts Options
}

// NewPacejka94 returns a model over a full Pacejka 94 coefficient set.
func NewPacejka94(c Pacejka94Coefficients, opts Options) *Pacejka94 {
	return &Pacejka94{c: c, opts: opts}
}

func (m *Pacejka94) coefficients() Pacejka94Coefficients {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.c
}

// Info implements Model.
func (m *Pacejka94) Info() ModelInfo {
	return ModelInfo{Name: ModelPacejka94, Description: "An implementation of Pacejka 94"}
}

// Parameters implements Model.
func (m *Pacejka94) Parameters() map[string]float64 {
	return toParameters(m.coefficients())
}

// SetParameters implements Model.
func (m *Pacejka94) SetParameters(params map[string]float64) error {
	var c Pacejka94Coefficients
	if err := fromParameters(&c, params); err != nil {
		return err
	}
	m.mu.Lock()
	m.c = c
	m.mu.Unlock()
	return nil
}

// Supported returns the modes Pacejka 94 can compute.
func (m *Pacejka94) Supported() Mode {
	return ModePureFy | ModePureFx | ModePureMz
}

// Solve implements Model.
func (m *Pacejka94) Solve(ctx context.Context, ranges InputRanges, mode Mode) (*ResultTable, error) {
	if unsupported := mode &^ m.Supported(); unsupported != 0 {
		m.opts.logger().Warn("outputs not computed by model",
			"model", ModelPacejka94,
			"modes", unsupported.String())
	}

	f := p94{c: m.coefficients(), log: m.opts.logger()}
	return solveGrid(ctx, m.opts.Config, ModelPacejka94, ranges, mode, f.evaluate)
}

// PureFy returns the lateral force, N.
func (m *Pacejka94) PureFy(s *State) float64 {
	f := p94{c: m.coefficients(), log: m.opts.logger()}
	return f.fy(toP94Units(s))
}

// PureFx returns the longitudinal force, N.
func (m *Pacejka94) PureFx(s *State) float64 {
	f := p94{c: m.coefficients(), log: m.opts.logger()}
	return f.fx(toP94Units(s))
}

// PureMz returns the aligning moment, N·m.
func (m *Pacejka94) PureMz(s *State) float64 {
	f := p94{c: m.coefficients(), log: m.opts.logger()}
	return f.mz(toP94Units(s))
}

// p94 evaluates the Pacejka 94 formulas over one coefficient snapshot.
type p94 struct {
	c   Pacejka94Coefficients
	log *slog.Logger
}

func (f p94) evaluate(s *State, mode Mode) {
	u := toP94Units(s)
	if mode.Has(ModePureFy) {
		s.FY = f.fy(u)
	}
	if mode.Has(ModePureFx) {
		s.FX = f.fx(u)
	}
	if mode.Has(ModePureMz) {
		s.MZ = f.mz(u)
	}
}

// stiffnessFactor returns B = BCD/(C·D), substituting the epsilon
// denominator when C·D is zero.
func (f p94) stiffnessFactor(bcd, c, d float64) float64 {
	cd := c * d
	if cd == 0 {
		f.log.Debug("zero denominator replaced", "term", "C·D", "epsilon", denominatorEpsilon)
		cd = denominatorEpsilon
	}
	return bcd / cd
}

func (f p94) fy(u p94Units) float64 {
	c := f.c
	C := c.A0
	bcd := c.A3 * math.Sin(math.Atan(u.fz/c.A4)*2) * (1 - c.A5*math.Abs(u.ia))
	D := u.fz * (c.A1*u.fz + c.A2) * (1 - c.A15*u.ia*u.ia)
	B := f.stiffnessFactor(bcd, C, D)
	H := c.A8*u.fz + c.A9 + c.A10*u.ia
	E := clampCurvature((c.A6*u.fz + c.A7) * (1 - (c.A16*u.ia + c.A17)) * math.Copysign(1, u.sa+H))
	V := c.A11*u.fz + c.A12 + (c.A13*u.fz+c.A14)*u.ia*u.fz
	return magicSine(B, C, D, E, u.sa+H) + V
}

func (f p94) fx(u p94Units) float64 {
	c := f.c
	C := c.B0
	bcd := (c.B3*u.fz*u.fz + c.B4*u.fz) * math.Exp(-c.B5*u.fz)
	D := u.fz * (c.B1*u.fz + c.B2)
	B := f.stiffnessFactor(bcd, C, D)
	H := c.B9*u.fz + c.B10
	E := clampCurvature((c.B6*u.fz*u.fz + c.B7*u.fz + c.B8) * (1 - c.B13*math.Copysign(1, u.sr+H)))
	V := c.B11*u.fz + c.B12
	return magicSine(B, C, D, E, u.sr+H) + V
}

func (f p94) mz(u p94Units) float64 {
	c := f.c
	C := c.C0
	bcd := (c.C3*u.fz*u.fz + c.C4*u.fz) * (1 - c.C6*math.Abs(u.ia)) * math.Exp(-c.C5*u.fz)
	D := u.fz * (c.C1*u.fz + c.C2) * (1 - c.C18*u.ia*u.ia)
	B := f.stiffnessFactor(bcd, C, D)
	H := c.C11*u.fz + c.C12 + c.C13*u.ia
	E := clampCurvature((c.C7*u.fz*u.fz + c.C8*u.fz + c.C9) * (1 - (c.C19*u.ia+c.C20)*math.Copysign(1, u.sa+H)) / (1 - c.C10*math.Abs(u.ia)))
	V := c.C14*u.fz + c.C15 + (c.C16*u.fz+c.C17)*u.ia*u.fz
	return magicSine(B, C, D, E, u.sa+H) + V
}
