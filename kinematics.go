package tirebench

import (
	"log/slog"
	"math"
)

// slip holds the quantities every PAC2002 formula derives from a state.
// They are recomputed on each call and never stored.
type slip struct {
	dfz       float64 // normalized load increment
	alphaStar float64 // tan(SA)·sign(V)
	gammaStar float64 // sin(IA)
	kappa     float64 // SR
}

// family is the shared context of the PAC2002 formula families: the
// coefficient set, the load-increment convention and the guard logger.
type family struct {
	c      *Coefficients
	legacy bool
	log    *slog.Logger
}

// slip derives the normalized slip quantities for s.
func (f family) slip(s *State) slip {
	return slip{
		dfz:       f.loadIncrement(s.FZ),
		alphaStar: math.Tan(s.SA) * sign(s.V),
		gammaStar: math.Sin(s.IA),
		kappa:     s.SR,
	}
}

// loadIncrement returns dfz = (FZ − FZ0')/FZ0' with FZ0' = FNOMIN·LFZ0.
// The legacy convention reproduces the historical FZ − FNOMIN/FNOMIN.
func (f family) loadIncrement(fz float64) float64 {
	if f.legacy {
		return fz - f.c.FNOMIN/f.c.FNOMIN
	}
	fz0 := f.c.FNOMIN * f.c.LFZ0
	return (fz - fz0) / fz0
}

// nonZero returns d, or denominatorEpsilon when d is exactly zero.
func (f family) nonZero(d float64, what string) float64 {
	if d == 0 {
		if f.log != nil {
			f.log.Debug("zero denominator replaced", "term", what, "epsilon", denominatorEpsilon)
		}
		return denominatorEpsilon
	}
	return d
}
