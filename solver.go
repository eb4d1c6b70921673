package tirebench

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Config controls grid solving.
type Config struct {
	Workers int          // goroutines evaluating grid points (0 = runtime.NumCPU())
	Logger  *slog.Logger // solve and guard logging (nil = slog.Default())
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Logger:  slog.Default(),
	}
}

// Options configures a model.
type Options struct {
	Config

	// LegacyLoadIncrement reproduces the historical dfz = FZ − FNOMIN/FNOMIN
	// instead of (FZ − FZ0')/FZ0'. Use it only to compare against curves
	// produced with that convention.
	LegacyLoadIncrement bool
}

// DefaultOptions returns the default model options.
func DefaultOptions() Options {
	return Options{Config: DefaultConfig()}
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// workers returns the worker count for n grid points.
func (c Config) workers(n int) int {
	w := c.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Grid expands ranges into one State per combination. FZ is the outermost
// axis, then IA, V, P, SR, and SA innermost. Consumers index results by this
// order.
func Grid(r InputRanges) []State {
	states := make([]State, 0, r.Size())
	for _, fz := range r.FZ {
		for _, ia := range r.IA {
			for _, v := range r.V {
				for _, p := range r.P {
					for _, sr := range r.SR {
						for _, sa := range r.SA {
							states = append(states, State{FZ: fz, IA: ia, SA: sa, SR: sr, V: v, P: p})
						}
					}
				}
			}
		}
	}
	return states
}

// evaluator fills the outputs selected by mode on one state.
type evaluator func(s *State, mode Mode)

// solveGrid evaluates every grid point of ranges. Points are spread over
// workers, each writing only its own rows, so the table keeps enumeration
// order regardless of how many workers run.
func solveGrid(ctx context.Context, cfg Config, model string, ranges InputRanges, mode Mode, eval evaluator) (*ResultTable, error) {
	log := cfg.logger()
	runID := uuid.NewString()
	rows := Grid(ranges)
	n := cfg.workers(len(rows))

	log.Info("solve started",
		"run_id", runID,
		"model", model,
		"mode", mode.String(),
		"points", len(rows),
		"workers", n)
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < n; w++ {
		wg.Add(1)
		go func(first int) {
			defer wg.Done()
			for i := first; i < len(rows); i += n {
				if ctx.Err() != nil {
					return
				}
				eval(&rows[i], mode)
			}
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		log.Warn("solve cancelled", "run_id", runID, "err", err)
		return nil, fmt.Errorf("solve %s: %w", runID, err)
	}

	log.Info("solve finished",
		"run_id", runID,
		"points", len(rows),
		"elapsed", time.Since(start))

	return &ResultTable{
		RunID: runID,
		Model: model,
		Mode:  mode,
		Rows:  rows,
	}, nil
}
