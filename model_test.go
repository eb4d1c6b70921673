package tirebench

import (
	"errors"
	"strings"
	"testing"
)

// TestNew_KnownModels verifies the registry resolves every listed model,
// case-insensitively.
func TestNew_KnownModels(t *testing.T) {
	for _, name := range ModelNames() {
		for _, variant := range []string{name, strings.ToLower(name), " " + strings.ToUpper(name) + " "} {
			m, ok := New(variant, quietOptions())
			if !ok {
				t.Fatalf("New(%q) not found", variant)
			}
			if m.Info().Name != name {
				t.Errorf("New(%q).Info().Name = %q", variant, m.Info().Name)
			}
		}
	}
}

// TestNew_Unknown verifies an unknown name reports not found without error.
func TestNew_Unknown(t *testing.T) {
	m, ok := New("MF6.2", quietOptions())
	if ok || m != nil {
		t.Fatalf("New(unknown) = (%v, %v), want (nil, false)", m, ok)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustNew(unknown) did not panic")
		}
	}()
	MustNew("MF6.2", quietOptions())
}

// TestModelKind verifies kind lookup and naming.
func TestModelKind(t *testing.T) {
	k, ok := LookupKind("pac2002")
	if !ok || k != KindPAC2002 || k.String() != ModelPAC2002 {
		t.Errorf("LookupKind(pac2002) = %v, %v", k, ok)
	}
	if s := ModelKind(99).String(); s != "ModelKind(99)" {
		t.Errorf("unknown kind String = %q", s)
	}
}

// TestModelContract runs the shared contract checks on every model.
func TestModelContract(t *testing.T) {
	for _, name := range ModelNames() {
		t.Run(name, func(t *testing.T) {
			AssertModelContract(t, MustNew(name, quietOptions()))
		})
	}
}

// TestSetParameters_Mismatch verifies a partial or over-full mapping is
// rejected and leaves the model unchanged.
func TestSetParameters_Mismatch(t *testing.T) {
	m := NewPAC2002(DefaultCoefficients(), quietOptions())
	before := m.Coefficients()

	partial := m.Parameters()
	delete(partial, "PCY1")
	err := m.SetParameters(partial)
	if !errors.Is(err, ErrParameterMismatch) {
		t.Fatalf("Expected ErrParameterMismatch for missing key, got %v", err)
	}
	if !strings.Contains(err.Error(), "PCY1") {
		t.Errorf("Error does not name the missing key: %v", err)
	}

	extra := m.Parameters()
	extra["PCY9"] = 1
	if err := m.SetParameters(extra); !errors.Is(err, ErrParameterMismatch) {
		t.Fatalf("Expected ErrParameterMismatch for extra key, got %v", err)
	}

	if m.Coefficients() != before {
		t.Error("Coefficients changed after rejected SetParameters")
	}
}

// TestDefaultMode verifies models limited to pure slip default to what they
// compute.
func TestDefaultMode(t *testing.T) {
	if got := DefaultMode(MustNew(ModelPAC2002, quietOptions())); got != ModeAll {
		t.Errorf("DefaultMode(PAC2002) = %v, want %v", got, ModeAll)
	}
	want := ModePureFy | ModePureFx | ModePureMz
	if got := DefaultMode(MustNew(ModelPacejka94, quietOptions())); got != want {
		t.Errorf("DefaultMode(Pacejka94) = %v, want %v", got, want)
	}
}

// TestSetParameters_FixedTurnSlip verifies the turn-slip factors stay at 1.
func TestSetParameters_FixedTurnSlip(t *testing.T) {
	m := NewPAC2002(DefaultCoefficients(), quietOptions())
	before := m.Coefficients()

	params := m.Parameters()
	params["ZETA1"] = 2
	err := m.SetParameters(params)
	if !errors.Is(err, ErrFixedParameter) {
		t.Fatalf("Expected ErrFixedParameter, got %v", err)
	}
	if !strings.Contains(err.Error(), "ZETA1") {
		t.Errorf("Error does not name the fixed key: %v", err)
	}
	if m.Coefficients() != before {
		t.Error("Coefficients changed after rejected SetParameters")
	}

	params["ZETA1"] = 1
	if err := m.SetParameters(params); err != nil {
		t.Errorf("Unit turn-slip factors rejected: %v", err)
	}
}

// TestSetParameters_Replaces verifies a full mapping takes effect on the
// next evaluation.
func TestSetParameters_Replaces(t *testing.T) {
	m := NewPAC2002(DefaultCoefficients(), quietOptions())
	s := State{FZ: 4850, SA: 0.05, V: 16.6}
	before := m.PureFy(&s)

	params := m.Parameters()
	params["LMUY"] = 0.5
	if err := m.SetParameters(params); err != nil {
		t.Fatalf("SetParameters failed: %v", err)
	}

	after := m.PureFy(&s)
	if after == before {
		t.Fatalf("PureFy unchanged after halving LMUY: %g", after)
	}
	if m.Coefficients().LMUY != 0.5 {
		t.Errorf("LMUY = %g, want 0.5", m.Coefficients().LMUY)
	}
	t.Logf("Fy0: %.1f → %.1f with LMUY=0.5", before, after)
}
