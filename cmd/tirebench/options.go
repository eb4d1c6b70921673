package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexshd/tirebench"
	"github.com/alexshd/tirebench/internal/tablefmt"
)

// Options is the parsed command line.
type Options struct {
	Model     string
	Preset    string
	CoeffFile string
	SaveFile  string
	Mode      tirebench.Mode // zero: every output the model computes
	Format    string
	Workers   int
	LegacyDFZ bool
	Verbose   bool
	List      bool

	Ranges tirebench.InputRanges

	// RequestFile is the JSON request path; "-" reads stdin. Empty means the
	// request is built from flags.
	RequestFile string
}

// axisFlag parses "v", "v1,v2,..." or "start:stop:step".
type axisFlag struct{ values *[]float64 }

func (a axisFlag) String() string {
	if a.values == nil {
		return ""
	}
	parts := make([]string, len(*a.values))
	for i, v := range *a.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (a axisFlag) Set(s string) error {
	vals, err := parseAxis(s)
	if err != nil {
		return err
	}
	*a.values = vals
	return nil
}

func parseAxis(s string) ([]float64, error) {
	if parts := strings.Split(s, ":"); len(parts) == 3 {
		var f [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("sweep %q: %w", s, err)
			}
			f[i] = v
		}
		if err := tirebench.CheckSweep(f[0], f[1], f[2]); err != nil {
			return nil, err
		}
		return tirebench.Sweep(f[0], f[1], f[2]), nil
	}

	var vals []float64
	for _, p := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("axis value %q: %w", p, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("axis value %q is not finite", p)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

type modeFlag struct{ mode *tirebench.Mode }

func (m modeFlag) String() string {
	if m.mode == nil {
		return ""
	}
	return m.mode.String()
}

func (m modeFlag) Set(s string) error {
	parsed, err := tirebench.ParseMode(s)
	if err != nil {
		return err
	}
	*m.mode = parsed
	return nil
}

// ParseArgs parses args into Options using fs.
func ParseArgs(fs *flag.FlagSet, args []string) (Options, error) {
	var o Options

	fs.StringVar(&o.Model, "model", tirebench.ModelPAC2002, "tire model: "+strings.Join(tirebench.ModelNames(), ", "))
	fs.StringVar(&o.Preset, "preset", "", "embedded coefficient preset")
	fs.StringVar(&o.CoeffFile, "coeffs", "", "coefficient document (JSON) to load")
	fs.StringVar(&o.SaveFile, "save", "", "write the resolved coefficients to this file")
	fs.Var(modeFlag{&o.Mode}, "mode", "outputs to compute, e.g. all, pure-fy, fy|mz (default: all the model supports)")
	fs.StringVar(&o.Format, "format", tablefmt.FormatCSV, "output format: "+strings.Join(tablefmt.Formats(), ", "))
	fs.IntVar(&o.Workers, "workers", 0, "parallel workers (0 = NumCPU)")
	fs.BoolVar(&o.LegacyDFZ, "legacy-dfz", false, "use the legacy normalized load increment")
	fs.BoolVar(&o.Verbose, "verbose", false, "debug logging")
	fs.BoolVar(&o.List, "list", false, "list models and presets and exit")

	fs.Var(axisFlag{&o.Ranges.FZ}, "fz", "vertical load, N")
	fs.Var(axisFlag{&o.Ranges.IA}, "ia", "inclination angle, rad")
	fs.Var(axisFlag{&o.Ranges.SA}, "sa", "slip angle, rad")
	fs.Var(axisFlag{&o.Ranges.SR}, "sr", "slip ratio")
	fs.Var(axisFlag{&o.Ranges.V}, "speed", "forward speed, m/s")
	fs.Var(axisFlag{&o.Ranges.P}, "pressure", "inflation pressure")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		o.RequestFile = fs.Arg(0)
	default:
		return Options{}, fmt.Errorf("at most one request file, got %d arguments", fs.NArg())
	}

	if o.Preset != "" && o.CoeffFile != "" {
		return Options{}, errors.New("-preset and -coeffs are mutually exclusive")
	}
	if _, err := tablefmt.Lookup(o.Format); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Request builds the solve request described by the flags.
func (o Options) Request() tirebench.Request {
	return tirebench.Request{
		Model:               o.Model,
		Preset:              o.Preset,
		Mode:                o.Mode,
		Ranges:              o.Ranges,
		LegacyLoadIncrement: o.LegacyDFZ,
	}
}
