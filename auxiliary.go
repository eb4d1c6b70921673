package tirebench

import "math"

// auxiliary holds the effects that are direct algebraic functions of the
// state and the already computed forces: overturning and rolling resistance
// moments, rolling radii and relaxation lengths.
type auxiliary struct{ family }

// overturning returns MX. It reads FY from s.
func (x auxiliary) overturning(s *State) float64 {
	k := x.slip(s)
	return x.c.UNLOADED_RADIUS * s.FZ * (x.c.QSX1*x.c.LVMX - x.c.QSX2*k.gammaStar + x.c.QSX3*s.FY/x.c.FNOMIN) * x.c.LMX
}

// rollingResistance returns MY. It reads FX from s.
func (x auxiliary) rollingResistance(s *State) float64 {
	vr := s.V / x.c.LONGVL
	return x.c.UNLOADED_RADIUS * s.FZ * (x.c.QSY1 + x.c.QSY2*s.FX/x.c.FNOMIN + x.c.QSY3*math.Abs(vr) + x.c.QSY4*math.Pow(vr, 4)) * x.c.LMY
}

// deflection solves a·ρ² + b·ρ + c = 0 for the tire deflection. With no
// quadratic term (QFZ2 = 0) the linear root is returned. A non-positive
// discriminant means there is no valid contact and the NoContactDeflection
// sentinel is returned.
func deflection(a, b, c float64) float64 {
	if a == 0 {
		if b == 0 {
			return NoContactDeflection
		}
		return -c / b
	}
	disc := b*b - 4*a*c
	if disc > 0 {
		return (-b + math.Sqrt(disc)) / (2 * a)
	}
	return NoContactDeflection
}

// angularSpeed approximates wheel spin from forward speed when no spin rate
// is available.
func (x auxiliary) angularSpeed(s *State) float64 {
	return s.V / (x.c.UNLOADED_RADIUS * 0.98)
}

// radius returns the loaded radius RL and the effective rolling radius RE.
// It reads FX and FY from s. Zero nominal vertical stiffness yields (0, 0).
func (x auxiliary) radius(s *State) (rl, re float64) {
	k := x.slip(s)
	r0 := x.c.UNLOADED_RADIUS
	omega := x.angularSpeed(s)

	speedEffect := x.c.QV2 * math.Abs(omega) * r0 / x.c.LONGVL
	fxEffect := math.Pow(x.c.QFCX*s.FX/x.c.FNOMIN, 2)
	fyEffect := math.Pow(x.c.QFCY*s.FY/x.c.FNOMIN, 2)
	camberEffect := x.c.QFCG * k.gammaStar * k.gammaStar
	external := 1.0 + speedEffect - fxEffect - fyEffect + camberEffect

	a := math.Pow(x.c.QFZ2/r0, 2)
	b := x.c.QFZ1 / r0
	c := -(s.FZ / (external * x.c.FNOMIN))

	rho := deflection(a, b, c)
	if rho == NoContactDeflection && x.log != nil {
		x.log.Debug("no real deflection root", "FZ", s.FZ, "external", external)
	}

	rOmega := r0 + x.c.QV1*r0*math.Pow(omega*r0/x.c.LONGVL, 2)
	rl = rOmega - rho

	cz0 := x.c.FNOMIN / r0 * math.Sqrt(x.c.QFZ1*x.c.QFZ1+4.0*x.c.QFZ2)
	if cz0 == 0.0 {
		return 0.0, 0.0
	}

	rhoFz0 := x.c.FNOMIN / (cz0 * x.c.LCZ)
	rhoD := rho / rhoFz0
	re = rOmega - rhoFz0*(x.c.DREFF*math.Atan(x.c.BREFF*rhoD)+x.c.FREFF*rhoD)
	return rl, re
}

// lateralRelaxation returns SIGMA_ALPHA, or 0 when PTY2 is 0.
func (x auxiliary) lateralRelaxation(s *State) float64 {
	if x.c.PTY2 == 0 {
		return 0
	}

	k := x.slip(s)
	gammaY := k.gammaStar * x.c.LGAY
	return x.c.PTY1 * math.Sin(2.0*math.Atan(s.FZ/(x.c.PTY2*x.c.FNOMIN*x.c.LFZ0))) * (1 - x.c.PKY3*math.Abs(gammaY)) * x.c.UNLOADED_RADIUS * x.c.LFZ0 * x.c.LSGAL
}

// longitudinalRelaxation returns SIGMA_KAPPA.
func (x auxiliary) longitudinalRelaxation(s *State) float64 {
	k := x.slip(s)
	return s.FZ * (x.c.PTX1 + x.c.PTX2*k.dfz) * math.Exp(-x.c.PTX3*k.dfz) * (x.c.UNLOADED_RADIUS / x.c.FNOMIN) * x.c.LSGKP
}
