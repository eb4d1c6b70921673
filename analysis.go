package tirebench

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

// ErrUnknownColumn is returned when a column name is not a State field.
var ErrUnknownColumn = errors.New("unknown column")

// InputColumns are the input columns of a result table, in output order.
var InputColumns = []string{"FZ", "IA", "SA", "SR", "V", "P"}

var columnValues = map[string]func(s *State) float64{
	"FZ":          func(s *State) float64 { return s.FZ },
	"IA":          func(s *State) float64 { return s.IA },
	"SA":          func(s *State) float64 { return s.SA },
	"SR":          func(s *State) float64 { return s.SR },
	"V":           func(s *State) float64 { return s.V },
	"P":           func(s *State) float64 { return s.P },
	"FX":          func(s *State) float64 { return s.FX },
	"FY":          func(s *State) float64 { return s.FY },
	"MX":          func(s *State) float64 { return s.MX },
	"MY":          func(s *State) float64 { return s.MY },
	"MZ":          func(s *State) float64 { return s.MZ },
	"RL":          func(s *State) float64 { return s.RL },
	"RE":          func(s *State) float64 { return s.RE },
	"SIGMA_ALPHA": func(s *State) float64 { return s.SigmaAlpha },
	"SIGMA_KAPPA": func(s *State) float64 { return s.SigmaKappa },
}

// Value returns the named field of s. Names are the State JSON keys.
func (s *State) Value(name string) (float64, error) {
	get, ok := columnValues[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return get(s), nil
}

// OutputColumns returns the output columns a solve in mode fills, including
// outputs filled as dependencies.
func OutputColumns(mode Mode) []string {
	m := mode.WithDependencies()
	var cols []string
	if m.Has(ModePureFx) || m.Has(ModeFx) {
		cols = append(cols, "FX")
	}
	if m.Has(ModePureFy) || m.Has(ModeFy) {
		cols = append(cols, "FY")
	}
	if m.Has(ModeMx) {
		cols = append(cols, "MX")
	}
	if m.Has(ModeMy) {
		cols = append(cols, "MY")
	}
	if m.Has(ModePureMz) || m.Has(ModeMz) {
		cols = append(cols, "MZ")
	}
	if m.Has(ModeRadius) {
		cols = append(cols, "RL", "RE")
	}
	if m.Has(ModeRelaxation) {
		cols = append(cols, "SIGMA_ALPHA", "SIGMA_KAPPA")
	}
	return cols
}

// ForceColumns are the force and moment columns every result row carries,
// whether or not the table's mode filled them.
var ForceColumns = []string{"FX", "FY", "MX", "MY", "MZ"}

// Columns returns the input and force columns, followed by the radius and
// relaxation columns when the table's mode fills them.
func (t *ResultTable) Columns() []string {
	cols := append(append([]string{}, InputColumns...), ForceColumns...)
	m := t.Mode.WithDependencies()
	if m.Has(ModeRadius) {
		cols = append(cols, "RL", "RE")
	}
	if m.Has(ModeRelaxation) {
		cols = append(cols, "SIGMA_ALPHA", "SIGMA_KAPPA")
	}
	return cols
}

// Column extracts one column of the table in row order.
func Column(t *ResultTable, name string) ([]float64, error) {
	get, ok := columnValues[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return lo.Map(t.Rows, func(s State, _ int) float64 { return get(&s) }), nil
}

// CurveSummary characterises one output curve over one swept input, such as
// FY over SA at fixed load.
type CurveSummary struct {
	Peak      float64 `json:"peak"`      // largest |y|, with its sign
	PeakAt    float64 `json:"peak_at"`   // x at the peak
	Stiffness float64 `json:"stiffness"` // dy/dx at the sample closest to x = 0
	Amplitude float64 `json:"amplitude"` // max(y) − min(y)
}

// Summarize reduces the curve y(x) to its characteristic values. x must be
// sorted. Curves with fewer than two points have zero stiffness.
func Summarize(xs, ys []float64) (CurveSummary, error) {
	if len(xs) != len(ys) {
		return CurveSummary{}, fmt.Errorf("summarize: %d x values, %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return CurveSummary{}, errors.New("summarize: empty curve")
	}

	var sum CurveSummary
	peak := 0
	for i, y := range ys {
		if math.Abs(y) > math.Abs(ys[peak]) {
			peak = i
		}
	}
	sum.Peak = ys[peak]
	sum.PeakAt = xs[peak]
	sum.Amplitude = lo.Max(ys) - lo.Min(ys)

	if len(xs) < 2 {
		return sum, nil
	}

	// Central difference around the sample nearest the origin, one-sided at
	// the ends.
	origin := 0
	for i, x := range xs {
		if math.Abs(x) < math.Abs(xs[origin]) {
			origin = i
		}
	}
	left, right := origin-1, origin+1
	if left < 0 {
		left = origin
	}
	if right >= len(xs) {
		right = origin
	}
	if dx := xs[right] - xs[left]; dx != 0 {
		sum.Stiffness = (ys[right] - ys[left]) / dx
	}
	return sum, nil
}

// SummarizeBy groups the rows of t by the value of group and summarises y
// over x within each group, in first-seen group order. A typical use is
// peak lateral force per load: SummarizeBy(t, "FZ", "SA", "FY").
func SummarizeBy(t *ResultTable, group, x, y string) ([]float64, []CurveSummary, error) {
	gs, err := Column(t, group)
	if err != nil {
		return nil, nil, err
	}
	xs, err := Column(t, x)
	if err != nil {
		return nil, nil, err
	}
	ys, err := Column(t, y)
	if err != nil {
		return nil, nil, err
	}

	keys := lo.Uniq(gs)
	summaries := make([]CurveSummary, 0, len(keys))
	for _, k := range keys {
		var cx, cy []float64
		for i, g := range gs {
			if g == k {
				cx = append(cx, xs[i])
				cy = append(cy, ys[i])
			}
		}
		s, err := Summarize(cx, cy)
		if err != nil {
			return nil, nil, fmt.Errorf("%s=%g: %w", group, k, err)
		}
		summaries = append(summaries, s)
	}
	return keys, summaries, nil
}
