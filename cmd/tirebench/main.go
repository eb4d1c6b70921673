// Command tirebench evaluates a tire model over a grid of operating
// conditions and writes the result table to stdout.
//
// The grid comes from a JSON request (file argument, or "-" for stdin) or
// from flags:
//
//	tirebench -mode fy -fz 2000,4000,6000 -sa -0.2:0.2:0.01 -format csv
//	tirebench request.json
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alexshd/tirebench"
	"github.com/alexshd/tirebench/internal/tablefmt"
	"github.com/lmittmann/tint"
)

func main() {
	o, err := ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tirebench: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)

	if o.List {
		fmt.Printf("models:  %s\n", strings.Join(tirebench.ModelNames(), ", "))
		fmt.Printf("presets: %s\n", strings.Join(tirebench.PresetNames(), ", "))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, logger, os.Stdout); err != nil {
		logger.Error("tirebench failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o Options, logger *slog.Logger, out io.Writer) error {
	req, err := request(o)
	if err != nil {
		return err
	}
	if req.Mode == 0 && o.RequestFile != "" {
		return fmt.Errorf("%w: request selects no outputs", tirebench.ErrUnknownMode)
	}

	opts := tirebench.DefaultOptions()
	opts.Logger = logger
	opts.LegacyLoadIncrement = o.LegacyDFZ || req.LegacyLoadIncrement
	if o.Workers > 0 {
		opts.Workers = o.Workers
	}

	var m tirebench.Model
	if o.CoeffFile != "" {
		m, err = tirebench.Load(o.CoeffFile, opts)
	} else {
		m, err = req.Resolve(opts)
	}
	if err != nil {
		return err
	}
	if req.Mode == 0 {
		req.Mode = tirebench.DefaultMode(m)
	}
	logger.Debug("model resolved", "model", m.Info().Name, "parameters", len(m.Parameters()), "mode", req.Mode.String())

	if o.SaveFile != "" {
		if err := tirebench.Save(o.SaveFile, m, req.Preset); err != nil {
			return err
		}
		logger.Info("coefficients saved", "path", o.SaveFile)
	}

	ranges, err := req.Grid()
	if err != nil {
		return err
	}
	table, err := m.Solve(ctx, ranges, req.Mode)
	if err != nil {
		return err
	}
	return tablefmt.Write(out, o.Format, table)
}

// request reads the JSON request named by o, or builds one from flags.
func request(o Options) (tirebench.Request, error) {
	if o.RequestFile == "" {
		return o.Request(), nil
	}

	var (
		data []byte
		err  error
	)
	if o.RequestFile == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(o.RequestFile)
	}
	if err != nil {
		return tirebench.Request{}, fmt.Errorf("reading request: %w", err)
	}
	return tirebench.ParseRequest(data)
}
