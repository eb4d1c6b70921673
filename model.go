package tirebench

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel is returned when a model name does not resolve to an
// implemented model family.
var ErrUnknownModel = errors.New("unknown tire model")

// Model names accepted by New.
const (
	ModelPAC2002   = "PAC2002"
	ModelPacejka94 = "Pacejka94"
)

// ModelInfo identifies a model implementation.
type ModelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Model is the contract every tire model implements.
type Model interface {
	// Info returns the model name and description.
	Info() ModelInfo

	// Solve expands ranges into the full grid and computes the outputs
	// selected by mode for every point, in enumeration order.
	Solve(ctx context.Context, ranges InputRanges, mode Mode) (*ResultTable, error)

	// Parameters returns the current coefficients as a name → value mapping.
	Parameters() map[string]float64

	// SetParameters replaces every coefficient at once. It returns an error
	// wrapping ErrParameterMismatch, and changes nothing, when the key set
	// differs from the model's coefficient names.
	SetParameters(params map[string]float64) error
}

// ModelKind is the closed set of implemented model families.
type ModelKind int

const (
	KindPAC2002 ModelKind = iota + 1
	KindPacejka94
)

var modelKinds = map[string]ModelKind{
	strings.ToLower(ModelPAC2002):   KindPAC2002,
	strings.ToLower(ModelPacejka94): KindPacejka94,
}

// String returns the model name of the kind.
func (k ModelKind) String() string {
	switch k {
	case KindPAC2002:
		return ModelPAC2002
	case KindPacejka94:
		return ModelPacejka94
	default:
		return fmt.Sprintf("ModelKind(%d)", int(k))
	}
}

// LookupKind resolves a model name (case-insensitive) to its kind.
func LookupKind(name string) (ModelKind, bool) {
	k, ok := modelKinds[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// ModelNames lists the implemented models.
func ModelNames() []string {
	return []string{ModelPAC2002, ModelPacejka94}
}

// New returns the named model with its default coefficient preset. Unknown
// names report (nil, false).
func New(name string, opts Options) (Model, bool) {
	kind, ok := LookupKind(name)
	if !ok {
		return nil, false
	}

	switch kind {
	case KindPAC2002:
		return NewPAC2002(DefaultCoefficients(), opts), true
	case KindPacejka94:
		return NewPacejka94(DefaultPacejka94Coefficients(), opts), true
	default:
		return nil, false
	}
}

// DefaultMode returns every mode m can compute: the model's Supported set
// when it declares one, ModeAll otherwise.
func DefaultMode(m Model) Mode {
	if s, ok := m.(interface{ Supported() Mode }); ok {
		return s.Supported()
	}
	return ModeAll
}

// MustNew is like New but panics when the name is unknown.
func MustNew(name string, opts Options) Model {
	m, ok := New(name, opts)
	if !ok {
		panic(fmt.Sprintf("tirebench: %v: %q", ErrUnknownModel, name))
	}
	return m
}
