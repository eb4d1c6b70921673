// Package tablefmt writes solved result tables in the formats the CLI offers.
//
// Every writer emits the same column set, in ResultTable.Columns order.
// JSON has no NaN or infinity, so the JSON writers emit null for them.
package tablefmt

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/alexshd/tirebench"
)

// Output format names.
const (
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// ErrUnknownFormat is returned for a format name with no registered writer.
var ErrUnknownFormat = errors.New("unknown output format")

// WriteFunc writes a result table to w.
type WriteFunc func(w io.Writer, t *tirebench.ResultTable) error

var writers = map[string]WriteFunc{
	FormatCSV:   func(w io.Writer, t *tirebench.ResultTable) error { return writeDelimited(w, t, ',') },
	FormatTSV:   func(w io.Writer, t *tirebench.ResultTable) error { return writeDelimited(w, t, '\t') },
	FormatJSON:  writeJSON,
	FormatJSONL: writeJSONL,
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the writer for a format name.
func Lookup(format string) (WriteFunc, error) {
	fn, ok := writers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, format, Formats())
	}
	return fn, nil
}

// Write writes t to w in the named format.
func Write(w io.Writer, format string, t *tirebench.ResultTable) error {
	fn, err := Lookup(format)
	if err != nil {
		return err
	}
	return fn(w, t)
}

// rowValues returns one row's values in column order.
func rowValues(s *tirebench.State, cols []string) ([]float64, error) {
	vals := make([]float64, len(cols))
	for i, c := range cols {
		v, err := s.Value(c)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func writeDelimited(w io.Writer, t *tirebench.ResultTable, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	cols := t.Columns()
	if err := cw.Write(cols); err != nil {
		return err
	}

	record := make([]string, len(cols))
	for i := range t.Rows {
		vals, err := rowValues(&t.Rows[i], cols)
		if err != nil {
			return err
		}
		for j, v := range vals {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// number is a float64 that encodes NaN and ±Inf as null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func numbers(vals []float64) []number {
	out := make([]number, len(vals))
	for i, v := range vals {
		out[i] = number(v)
	}
	return out
}

// tableJSON is the single-document form of a result table.
type tableJSON struct {
	RunID   string     `json:"run_id"`
	Model   string     `json:"model"`
	Mode    string     `json:"mode"`
	Columns []string   `json:"columns"`
	Rows    [][]number `json:"rows"`
}

func writeJSON(w io.Writer, t *tirebench.ResultTable) error {
	doc := tableJSON{
		RunID:   t.RunID,
		Model:   t.Model,
		Mode:    t.Mode.String(),
		Columns: t.Columns(),
		Rows:    make([][]number, 0, len(t.Rows)),
	}
	for i := range t.Rows {
		vals, err := rowValues(&t.Rows[i], doc.Columns)
		if err != nil {
			return err
		}
		doc.Rows = append(doc.Rows, numbers(vals))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// writeJSONL writes one object per row keyed by column name.
func writeJSONL(w io.Writer, t *tirebench.ResultTable) error {
	cols := t.Columns()
	enc := json.NewEncoder(w)
	for i := range t.Rows {
		vals, err := rowValues(&t.Rows[i], cols)
		if err != nil {
			return err
		}
		row := make(map[string]number, len(cols))
		for j, c := range cols {
			row[c] = number(vals[j])
		}
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
