package tirebench

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

// State is one operating condition and the outputs computed for it.
//
// Inputs are SI: load in N, angles in rad, speed in m/s. Outputs that were not
// selected by the solve mode stay zero.
type State struct {
	// Inputs
	FZ float64 `json:"FZ"` // vertical load, N
	IA float64 `json:"IA"` // inclination (camber) angle, rad
	SA float64 `json:"SA"` // slip angle, rad
	SR float64 `json:"SR"` // slip ratio
	V  float64 `json:"V"`  // forward speed, m/s
	P  float64 `json:"P"`  // inflation pressure, carried only

	// Outputs
	FX         float64 `json:"FX"`          // longitudinal force, N
	FY         float64 `json:"FY"`          // lateral force, N
	MX         float64 `json:"MX"`          // overturning moment, N·m
	MY         float64 `json:"MY"`          // rolling resistance moment, N·m
	MZ         float64 `json:"MZ"`          // aligning moment, N·m
	RL         float64 `json:"RL"`          // loaded radius, m
	RE         float64 `json:"RE"`          // effective rolling radius, m
	SigmaAlpha float64 `json:"SIGMA_ALPHA"` // lateral relaxation length, m
	SigmaKappa float64 `json:"SIGMA_KAPPA"` // longitudinal relaxation length, m
}

// InputRanges holds the ordered values swept on each input axis.
type InputRanges struct {
	FZ []float64 `json:"FZ"`
	IA []float64 `json:"IA"`
	SR []float64 `json:"SR"`
	SA []float64 `json:"SA"`
	V  []float64 `json:"V"`
	P  []float64 `json:"P"`
}

// Size returns the number of grid points the ranges expand to.
func (r InputRanges) Size() int {
	return len(r.FZ) * len(r.IA) * len(r.V) * len(r.P) * len(r.SR) * len(r.SA)
}

// ResultTable is the ordered output of a solve: one row per grid point, in
// enumeration order (FZ outermost, then IA, V, P, SR, SA innermost).
type ResultTable struct {
	RunID string  `json:"run_id"`
	Model string  `json:"model"`
	Mode  Mode    `json:"mode"`
	Rows  []State `json:"rows"`
}

// Len returns the number of rows.
func (t *ResultTable) Len() int { return len(t.Rows) }

// MaxSweepPoints caps the number of values in one swept axis.
const MaxSweepPoints = 1 << 20

// ErrInvalidSweep is returned for sweep bounds that are not finite or that
// would exceed MaxSweepPoints.
var ErrInvalidSweep = errors.New("invalid sweep")

// sweepPoints returns the number of values Sweep produces, as a float so a
// tiny step cannot overflow int.
func sweepPoints(start, stop, step float64) float64 {
	if step == 0 || start == stop {
		return 1
	}
	return math.Floor(math.Abs(stop-start)/math.Abs(step)+1e-9) + 1
}

// CheckSweep reports whether Sweep(start, stop, step) is usable: all three
// arguments finite and at most MaxSweepPoints values.
func CheckSweep(start, stop, step float64) error {
	for _, v := range [...]float64{start, stop, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %g:%g:%g is not finite", ErrInvalidSweep, start, stop, step)
		}
	}
	if n := sweepPoints(start, stop, step); n > MaxSweepPoints {
		return fmt.Errorf("%w: %g:%g:%g has %.0f points, limit %d", ErrInvalidSweep, start, stop, step, n, MaxSweepPoints)
	}
	return nil
}

// Sweep returns the values start, start+step, ... up to and including stop
// (within a small tolerance). A zero step yields just start; a step pointing
// away from stop is reversed. Arguments rejected by CheckSweep yield nil.
func Sweep(start, stop, step float64) []float64 {
	if CheckSweep(start, stop, step) != nil {
		return nil
	}
	if step == 0 || start == stop {
		return []float64{start}
	}
	if (stop-start)*step < 0 {
		step = -step
	}

	n := int(sweepPoints(start, stop, step))
	values := make([]float64, n)
	for i := range values {
		v := start + float64(i)*step
		// Snap accumulated rounding back inside the requested interval.
		values[i] = lo.Clamp(v, math.Min(start, stop), math.Max(start, stop))
	}
	return values
}
