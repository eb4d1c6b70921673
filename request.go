package tirebench

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SweepRange describes an evenly spaced axis, see Sweep.
type SweepRange struct {
	Start float64 `json:"start"`
	Stop  float64 `json:"stop"`
	Step  float64 `json:"step"`
}

// Request is a complete solve description: which model and coefficients,
// which outputs and which grid.
type Request struct {
	Model        string                `json:"model"`
	Preset       string                `json:"preset,omitempty"`
	Coefficients map[string]float64    `json:"coefficients,omitempty"`
	Mode         Mode                  `json:"mode"`
	Ranges       InputRanges           `json:"ranges"`
	Sweeps       map[string]SweepRange `json:"sweeps,omitempty"`

	LegacyLoadIncrement bool `json:"legacy_load_increment,omitempty"`
}

// ParseRequest decodes a JSON request.
func ParseRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("parsing request: %w", err)
	}
	return req, nil
}

// Grid returns the request's ranges with sweeps expanded. Axes named in both
// Ranges and Sweeps keep the explicit values. Axes left empty hold a single 0.
func (r Request) Grid() (InputRanges, error) {
	g := r.Ranges
	axes := map[string]*[]float64{
		"FZ": &g.FZ, "IA": &g.IA, "SR": &g.SR, "SA": &g.SA, "V": &g.V, "P": &g.P,
	}
	for name, sw := range r.Sweeps {
		axis, ok := axes[strings.ToUpper(name)]
		if !ok {
			return InputRanges{}, fmt.Errorf("sweep %q: %w", name, ErrUnknownColumn)
		}
		if len(*axis) == 0 {
			if err := CheckSweep(sw.Start, sw.Stop, sw.Step); err != nil {
				return InputRanges{}, fmt.Errorf("sweep %q: %w", name, err)
			}
			*axis = Sweep(sw.Start, sw.Stop, sw.Step)
		}
	}
	for _, axis := range axes {
		if len(*axis) == 0 {
			*axis = []float64{0}
		}
	}
	return g, nil
}

// Resolve returns the request's model: an embedded preset, inline
// coefficients, or the model's default preset, in that order.
func (r Request) Resolve(opts Options) (Model, error) {
	opts.LegacyLoadIncrement = opts.LegacyLoadIncrement || r.LegacyLoadIncrement

	switch {
	case r.Preset != "":
		doc, err := LoadPreset(r.Preset)
		if err != nil {
			return nil, err
		}
		if r.Model != "" && !strings.EqualFold(r.Model, doc.Model) {
			return nil, fmt.Errorf("preset %q is for model %q, not %q", r.Preset, doc.Model, r.Model)
		}
		return FromDocument(doc, opts)

	case r.Coefficients != nil:
		return FromDocument(CoefficientDocument{Model: r.Model, Parameters: r.Coefficients}, opts)

	default:
		m, ok := New(r.Model, opts)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownModel, r.Model)
		}
		return m, nil
	}
}

// Run resolves the request's model and solves its grid.
func Run(ctx context.Context, r Request, opts Options) (*ResultTable, error) {
	if r.Mode == 0 {
		return nil, fmt.Errorf("%w: no outputs selected", ErrUnknownMode)
	}
	m, err := r.Resolve(opts)
	if err != nil {
		return nil, err
	}
	ranges, err := r.Grid()
	if err != nil {
		return nil, err
	}
	return m.Solve(ctx, ranges, r.Mode)
}

// RunJSON parses a JSON request and runs it.
func RunJSON(ctx context.Context, data []byte, opts Options) (*ResultTable, error) {
	r, err := ParseRequest(data)
	if err != nil {
		return nil, err
	}
	return Run(ctx, r, opts)
}
