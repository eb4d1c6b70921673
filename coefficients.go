package tirebench

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// ErrParameterMismatch is returned when a parameter mapping does not carry
// exactly the coefficient names a model requires.
var ErrParameterMismatch = errors.New("parameter names do not match model coefficients")

// ErrFixedParameter is returned when a parameter pinned by a `fixed` struct
// tag is given a different value.
var ErrFixedParameter = errors.New("fixed parameter cannot be changed")

// Coefficients is the full PAC2002 coefficient set.
//
// Field names are the names used in .tir property files and in parameter
// mappings. Scaling factors (L*) default to 1.0 and the turn-slip reduction
// factors (ZETA*) are fixed at 1.0 because turn slip is not modelled.
//
// A Coefficients value is treated as immutable once handed to a model: models
// keep their own copy and never expose a mutable reference.
type Coefficients struct {
	// General
	FNOMIN          float64 `json:"FNOMIN"`          // nominal wheel load, N
	UNLOADED_RADIUS float64 `json:"UNLOADED_RADIUS"` // free tire radius, m
	LONGVL          float64 `json:"LONGVL"`          // reference speed, m/s

	// General scaling
	LFZ0 float64 `json:"LFZ0"`
	LCZ  float64 `json:"LCZ"`

	// Pure longitudinal scaling
	LCX  float64 `json:"LCX"`
	LMUX float64 `json:"LMUX"`
	LEX  float64 `json:"LEX"`
	LKX  float64 `json:"LKX"`
	LHX  float64 `json:"LHX"`
	LVX  float64 `json:"LVX"`
	LGAX float64 `json:"LGAX"`

	// Pure lateral scaling
	LCY  float64 `json:"LCY"`
	LMUY float64 `json:"LMUY"`
	LEY  float64 `json:"LEY"`
	LKY  float64 `json:"LKY"`
	LHY  float64 `json:"LHY"`
	LVY  float64 `json:"LVY"`
	LGAY float64 `json:"LGAY"`

	// Pure aligning moment scaling
	LTR  float64 `json:"LTR"`
	LRES float64 `json:"LRES"`
	LGAZ float64 `json:"LGAZ"`

	// Combined scaling
	LXAL  float64 `json:"LXAL"`
	LYKA  float64 `json:"LYKA"`
	LVYKA float64 `json:"LVYKA"`
	LS    float64 `json:"LS"`

	// Overturning scaling
	LMX  float64 `json:"LMX"`
	LVMX float64 `json:"LVMX"`

	// Rolling resistance scaling
	LMY float64 `json:"LMY"`

	// Relaxation scaling
	LSGKP float64 `json:"LSGKP"`
	LSGAL float64 `json:"LSGAL"`

	// Pure lateral
	PCY1 float64 `json:"PCY1"`
	PDY1 float64 `json:"PDY1"`
	PDY2 float64 `json:"PDY2"`
	PDY3 float64 `json:"PDY3"`
	PEY1 float64 `json:"PEY1"`
	PEY2 float64 `json:"PEY2"`
	PEY3 float64 `json:"PEY3"`
	PEY4 float64 `json:"PEY4"`
	PKY1 float64 `json:"PKY1"`
	PKY2 float64 `json:"PKY2"`
	PKY3 float64 `json:"PKY3"`
	PHY1 float64 `json:"PHY1"`
	PHY2 float64 `json:"PHY2"`
	PHY3 float64 `json:"PHY3"`
	PVY1 float64 `json:"PVY1"`
	PVY2 float64 `json:"PVY2"`
	PVY3 float64 `json:"PVY3"`
	PVY4 float64 `json:"PVY4"`

	// Combined lateral
	RBY1 float64 `json:"RBY1"`
	RBY2 float64 `json:"RBY2"`
	RBY3 float64 `json:"RBY3"`
	RCY1 float64 `json:"RCY1"`
	REY1 float64 `json:"REY1"`
	REY2 float64 `json:"REY2"`
	RHY1 float64 `json:"RHY1"`
	RHY2 float64 `json:"RHY2"`
	RVY1 float64 `json:"RVY1"`
	RVY2 float64 `json:"RVY2"`
	RVY3 float64 `json:"RVY3"`
	RVY4 float64 `json:"RVY4"`
	RVY5 float64 `json:"RVY5"`
	RVY6 float64 `json:"RVY6"`

	// Pure aligning torque
	QBZ1  float64 `json:"QBZ1"`
	QBZ2  float64 `json:"QBZ2"`
	QBZ3  float64 `json:"QBZ3"`
	QBZ4  float64 `json:"QBZ4"`
	QBZ5  float64 `json:"QBZ5"`
	QBZ9  float64 `json:"QBZ9"`
	QBZ10 float64 `json:"QBZ10"`
	QCZ1  float64 `json:"QCZ1"`
	QDZ1  float64 `json:"QDZ1"`
	QDZ2  float64 `json:"QDZ2"`
	QDZ3  float64 `json:"QDZ3"`
	QDZ4  float64 `json:"QDZ4"`
	QDZ6  float64 `json:"QDZ6"`
	QDZ7  float64 `json:"QDZ7"`
	QDZ8  float64 `json:"QDZ8"`
	QDZ9  float64 `json:"QDZ9"`
	QEZ1  float64 `json:"QEZ1"`
	QEZ2  float64 `json:"QEZ2"`
	QEZ3  float64 `json:"QEZ3"`
	QEZ4  float64 `json:"QEZ4"`
	QEZ5  float64 `json:"QEZ5"`
	QHZ1  float64 `json:"QHZ1"`
	QHZ2  float64 `json:"QHZ2"`
	QHZ3  float64 `json:"QHZ3"`
	QHZ4  float64 `json:"QHZ4"`

	// Combined aligning
	SSZ1 float64 `json:"SSZ1"`
	SSZ2 float64 `json:"SSZ2"`
	SSZ3 float64 `json:"SSZ3"`
	SSZ4 float64 `json:"SSZ4"`

	// Pure longitudinal
	PCX1 float64 `json:"PCX1"`
	PDX1 float64 `json:"PDX1"`
	PDX2 float64 `json:"PDX2"`
	PDX3 float64 `json:"PDX3"`
	PEX1 float64 `json:"PEX1"`
	PEX2 float64 `json:"PEX2"`
	PEX3 float64 `json:"PEX3"`
	PEX4 float64 `json:"PEX4"`
	PKX1 float64 `json:"PKX1"`
	PKX2 float64 `json:"PKX2"`
	PKX3 float64 `json:"PKX3"`
	PHX1 float64 `json:"PHX1"`
	PHX2 float64 `json:"PHX2"`
	PVX1 float64 `json:"PVX1"`
	PVX2 float64 `json:"PVX2"`

	// Combined longitudinal
	RBX1 float64 `json:"RBX1"`
	RBX2 float64 `json:"RBX2"`
	RCX1 float64 `json:"RCX1"`
	REX1 float64 `json:"REX1"`
	REX2 float64 `json:"REX2"`
	RHX1 float64 `json:"RHX1"`

	// Overturning moment
	QSX1 float64 `json:"QSX1"`
	QSX2 float64 `json:"QSX2"`
	QSX3 float64 `json:"QSX3"`

	// Rolling resistance
	QSY1 float64 `json:"QSY1"`
	QSY2 float64 `json:"QSY2"`
	QSY3 float64 `json:"QSY3"`
	QSY4 float64 `json:"QSY4"`

	// Loaded radius
	QV1  float64 `json:"QV1"`
	QV2  float64 `json:"QV2"`
	QFCX float64 `json:"QFCX"`
	QFCY float64 `json:"QFCY"`
	QFCG float64 `json:"QFCG"`
	QFZ1 float64 `json:"QFZ1"`
	QFZ2 float64 `json:"QFZ2"`

	// Effective rolling radius
	BREFF float64 `json:"BREFF"`
	DREFF float64 `json:"DREFF"`
	FREFF float64 `json:"FREFF"`

	// Lateral relaxation
	PTY1 float64 `json:"PTY1"`
	PTY2 float64 `json:"PTY2"`

	// Longitudinal relaxation
	PTX1 float64 `json:"PTX1"`
	PTX2 float64 `json:"PTX2"`
	PTX3 float64 `json:"PTX3"`

	// Turn-slip reduction factors (turn slip not modelled, fixed at 1)
	ZETA0 float64 `json:"ZETA0" fixed:"1"`
	ZETA1 float64 `json:"ZETA1" fixed:"1"`
	ZETA2 float64 `json:"ZETA2" fixed:"1"`
	ZETA3 float64 `json:"ZETA3" fixed:"1"`
	ZETA4 float64 `json:"ZETA4" fixed:"1"`
	ZETA5 float64 `json:"ZETA5" fixed:"1"`
	ZETA6 float64 `json:"ZETA6" fixed:"1"`
	ZETA7 float64 `json:"ZETA7" fixed:"1"`
	ZETA8 float64 `json:"ZETA8" fixed:"1"`
}

// coefficientField maps a parameter name to a struct field index. Fields
// tagged `fixed:"v"` accept only v.
type coefficientField struct {
	name  string
	index int
	fixed *float64
}

var (
	fieldTablesMu sync.Mutex
	fieldTables   = map[reflect.Type][]coefficientField{}
)

// fieldsOf returns the named float64 fields of a coefficient struct type,
// in declaration order. Tables are built once per type.
func fieldsOf(t reflect.Type) []coefficientField {
	fieldTablesMu.Lock()
	defer fieldTablesMu.Unlock()

	if fields, ok := fieldTables[t]; ok {
		return fields
	}

	fields := make([]coefficientField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Kind() != reflect.Float64 {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			if n, _, _ := strings.Cut(tag, ","); n != "" && n != "-" {
				name = n
			}
		}
		field := coefficientField{name: name, index: i}
		if tag, ok := f.Tag.Lookup("fixed"); ok {
			v, err := strconv.ParseFloat(tag, 64)
			if err != nil {
				panic(fmt.Sprintf("tirebench: %s.%s: bad fixed tag %q", t.Name(), f.Name, tag))
			}
			field.fixed = &v
		}
		fields = append(fields, field)
	}
	fieldTables[t] = fields
	return fields
}

// parameterNames lists the parameter names of a coefficient struct, sorted.
func parameterNames(v any) []string {
	fields := fieldsOf(reflect.Indirect(reflect.ValueOf(v)).Type())
	names := lo.Map(fields, func(f coefficientField, _ int) string { return f.name })
	sort.Strings(names)
	return names
}

// toParameters flattens a coefficient struct into a name → value mapping.
func toParameters(v any) map[string]float64 {
	val := reflect.Indirect(reflect.ValueOf(v))
	fields := fieldsOf(val.Type())

	params := make(map[string]float64, len(fields))
	for _, f := range fields {
		params[f.name] = val.Field(f.index).Float()
	}
	return params
}

// fromParameters fills the coefficient struct pointed to by dst from params.
// The key set must match the struct's parameter names exactly; no field is
// written unless it does.
func fromParameters(dst any, params map[string]float64) error {
	val := reflect.ValueOf(dst).Elem()
	fields := fieldsOf(val.Type())

	required := lo.Map(fields, func(f coefficientField, _ int) string { return f.name })
	missing, extra := lo.Difference(required, lo.Keys(params))
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return fmt.Errorf("%w: missing %v, unexpected %v", ErrParameterMismatch, missing, extra)
	}
	for _, f := range fields {
		if f.fixed != nil && params[f.name] != *f.fixed {
			return fmt.Errorf("%w: %s = %g, must be %g", ErrFixedParameter, f.name, params[f.name], *f.fixed)
		}
	}

	for _, f := range fields {
		val.Field(f.index).SetFloat(params[f.name])
	}
	return nil
}

// ParameterNames returns the sorted names of every PAC2002 coefficient.
func ParameterNames() []string {
	return parameterNames(Coefficients{})
}

// Parameters returns the coefficient set as a name → value mapping.
func (c Coefficients) Parameters() map[string]float64 {
	return toParameters(c)
}

// CoefficientsFromParameters builds a full coefficient set from a mapping.
// Partial or sparse mappings are rejected with ErrParameterMismatch.
func CoefficientsFromParameters(params map[string]float64) (Coefficients, error) {
	var c Coefficients
	if err := fromParameters(&c, params); err != nil {
		return Coefficients{}, err
	}
	return c, nil
}
