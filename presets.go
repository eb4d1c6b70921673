package tirebench

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
)

// ErrUnknownPreset is returned when no embedded coefficient preset has the requested name.
var ErrUnknownPreset = errors.New("unknown coefficient preset")

//go:embed presets/*.json
var presetFS embed.FS

// Preset names shipped with the package.
const (
	PresetPAC2002Default   = "pac2002-default"
	PresetPacejka94Default = "pacejka94-default"
)

// CoefficientDocument is the on-disk form of a coefficient set. Presets and
// files written by Save share it.
type CoefficientDocument struct {
	Model       string             `json:"model"`
	Name        string             `json:"name,omitempty"`
	Description string             `json:"description,omitempty"`
	Parameters  map[string]float64 `json:"parameters"`
}

// PresetNames lists the embedded presets, sorted.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// LoadPreset returns the embedded coefficient document with the given name.
func LoadPreset(name string) (CoefficientDocument, error) {
	data, err := presetFS.ReadFile(path.Join("presets", name+".json"))
	if err != nil {
		return CoefficientDocument{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	var doc CoefficientDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return CoefficientDocument{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return doc, nil
}

// DefaultCoefficients returns the PAC2002 reference coefficient set.
func DefaultCoefficients() Coefficients {
	return MustPAC2002Preset(PresetPAC2002Default)
}

// PAC2002Preset returns a named PAC2002 coefficient preset.
func PAC2002Preset(name string) (Coefficients, error) {
	doc, err := LoadPreset(name)
	if err != nil {
		return Coefficients{}, err
	}
	if doc.Model != ModelPAC2002 {
		return Coefficients{}, fmt.Errorf("preset %q is for model %q, not %q", name, doc.Model, ModelPAC2002)
	}
	c, err := CoefficientsFromParameters(doc.Parameters)
	if err != nil {
		return Coefficients{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return c, nil
}

// MustPAC2002Preset is like PAC2002Preset but panics on error.
// Use with the preset constants declared in this package.
func MustPAC2002Preset(name string) Coefficients {
	c, err := PAC2002Preset(name)
	if err != nil {
		panic(fmt.Sprintf("tirebench: %v", err))
	}
	return c
}
