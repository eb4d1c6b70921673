package tirebench

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"pure-fy":         ModePureFy,
		"FY":              ModeFy,
		"fy|mz":           ModeFy | ModeMz,
		"fx, my":          ModeFx | ModeMy,
		"all":             ModeAll,
		"radius|all":      ModeAll,
		"relaxation":      ModeRelaxation,
		"pure-fx|pure-mz": ModePureFx | ModePureMz,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil {
			t.Errorf("ParseMode(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}

	for _, bad := range []string{"", "warp", "fy|warp", "|"} {
		if _, err := ParseMode(bad); !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", bad, err)
		}
	}
}

func TestMode_String(t *testing.T) {
	if s := ModeAll.String(); s != "all" {
		t.Errorf("ModeAll = %q", s)
	}
	if s := Mode(0).String(); s != "none" {
		t.Errorf("zero mode = %q", s)
	}
	if s := (ModeMz | ModeFy).String(); s != "fy|mz" {
		t.Errorf("fy|mz = %q", s)
	}
}

// TestMode_Dependencies verifies each output pulls in the forces it reads.
func TestMode_Dependencies(t *testing.T) {
	cases := []struct {
		mode, want Mode
	}{
		{ModePureFy, ModePureFy},
		{ModePureMz, ModePureMz | ModePureFy},
		{ModeMz, ModeMz | ModeFy | ModeFx},
		{ModeMx, ModeMx | ModeFy},
		{ModeMy, ModeMy | ModeFx},
		{ModeRadius, ModeRadius | ModeFy | ModeFx},
		{ModeRelaxation, ModeRelaxation},
		{ModeAll, ModeAll},
	}
	for _, tc := range cases {
		if got := tc.mode.WithDependencies(); got != tc.want {
			t.Errorf("%v.WithDependencies() = %v, want %v", tc.mode, got, tc.want)
		}
	}
}

func TestMode_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Mode Mode `json:"mode"`
	}{ModeFy | ModeMx})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"mode":"fy|mx"}` {
		t.Errorf("Marshal = %s", data)
	}

	var back struct {
		Mode Mode `json:"mode"`
	}
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Mode != ModeFy|ModeMx {
		t.Errorf("Unmarshal = %v", back.Mode)
	}
}
