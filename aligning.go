package tirebench

import "math"

// aligning is the aligning moment formula family. Mz is composed of the
// pneumatic trail acting on the lateral force plus a residual moment, so it
// reads the lateral and longitudinal families for stiffnesses and shifts.
type aligning struct {
	family
	lat lateral
	lon longitudinal
}

func (a aligning) gammaZ(gammaStar float64) float64 {
	return gammaStar * a.c.LGAZ
}

// Pneumatic trail

func (a aligning) bT(dfz, gammaZ float64) float64 {
	return (a.c.QBZ1 + a.c.QBZ2*dfz + a.c.QBZ3*dfz*dfz) * (1 + a.c.QBZ4*gammaZ + a.c.QBZ5*math.Abs(gammaZ)) * a.c.LKY / a.c.LMUY
}

func (a aligning) cT() float64 {
	return a.c.QCZ1
}

func (a aligning) dT(fz, dfz, gammaZ float64) float64 {
	return fz * (a.c.QDZ1 + a.c.QDZ2*dfz) * (1 + a.c.QDZ3*gammaZ + a.c.QDZ4*gammaZ*gammaZ) * a.c.UNLOADED_RADIUS / a.c.FNOMIN * a.c.LTR * a.c.ZETA5
}

func (a aligning) eT(dfz, gammaZ, alphaT, bt, ct float64) float64 {
	e := (a.c.QEZ1 + a.c.QEZ2*dfz + a.c.QEZ3*dfz*dfz) * (1 + (a.c.QEZ4+a.c.QEZ5*gammaZ)*((2/math.Pi)*math.Atan(bt*ct*alphaT)))
	return clampCurvature(e)
}

func (a aligning) sHT(dfz, gammaZ float64) float64 {
	return a.c.QHZ1 + a.c.QHZ2*dfz + (a.c.QHZ3+a.c.QHZ4*dfz)*gammaZ
}

// trail evaluates the pneumatic trail at alpha with curvature e.
func trail(bt, ct, dt, et, alpha, alphaStar float64) float64 {
	bx := bt * alpha
	return dt * math.Cos(ct*math.Atan(bx-et*(bx-math.Atan(bx)))) * math.Cos(alphaStar)
}

// Residual moment

func (a aligning) bR(by, cy float64) float64 {
	return (a.c.QBZ9*a.c.LKY/a.c.LMUY + a.c.QBZ10*by*cy) * a.c.ZETA6
}

func (a aligning) cR() float64 {
	return a.c.ZETA7
}

func (a aligning) dR(fz, dfz, gammaZ float64) float64 {
	return fz*((a.c.QDZ6+a.c.QDZ7*dfz)*a.c.LRES+(a.c.QDZ8+a.c.QDZ9*dfz)*gammaZ)*a.c.UNLOADED_RADIUS*a.c.LMUY + a.c.ZETA8 - 1.0
}

func residual(br, cr, dr, alpha, alphaStar float64) float64 {
	return dr * math.Cos(cr*math.Atan(br*alpha)) * math.Cos(alphaStar)
}

// trailParams holds the trail shape at one state. E is evaluated at the
// unblended alpha_t in both pure and combined slip.
type trailParams struct {
	B, C, D, E float64
	alpha      float64 // alpha* + S_Ht
}

func (a aligning) trailShape(s *State, k slip) trailParams {
	gz := a.gammaZ(k.gammaStar)

	var t trailParams
	t.alpha = k.alphaStar + a.sHT(k.dfz, gz)
	t.B = a.bT(k.dfz, gz)
	t.C = a.cT()
	t.D = a.dT(s.FZ, k.dfz, gz)
	t.E = a.eT(k.dfz, gz, t.alpha, t.B, t.C)
	return t
}

// residualParams holds the residual moment shape at one state.
type residualParams struct {
	B, C, D float64
	alpha   float64 // alpha* + S_Hf
}

func (a aligning) residualShape(s *State, k slip) residualParams {
	ls := a.lat.shape(s, k)
	gz := a.gammaZ(k.gammaStar)

	var r residualParams
	r.B = a.bR(ls.B, ls.C)
	r.C = a.cR()
	r.D = a.dR(s.FZ, k.dfz, gz)
	r.alpha = k.alphaStar + ls.SH + ls.SV/a.nonZero(ls.K, "K_y")
	return r
}

// pure returns Mz0. It reads the pure lateral force already stored in s.FY.
func (a aligning) pure(s *State) float64 {
	k := a.slip(s)
	t := a.trailShape(s, k)
	r := a.residualShape(s, k)

	tr := trail(t.B, t.C, t.D, t.E, t.alpha, k.alphaStar)
	mzr := residual(r.B, r.C, r.D, r.alpha, k.alphaStar)
	return -tr*s.FY + mzr
}

// equivalentSlip blends slip angle and slip ratio into one angle,
// atan(sqrt(tan²α + (Kx/Ky)²κ²)·sign(α)).
func equivalentSlip(alpha, kxOverKy, kappa float64) float64 {
	ta := math.Tan(alpha)
	return math.Atan(math.Sqrt(ta*ta+(kxOverKy*kxOverKy)*(kappa*kappa)) * sign(alpha))
}

// scrub is the pneumatic scrub arm of the longitudinal force.
func (a aligning) scrub(s *State, k slip) float64 {
	return a.c.UNLOADED_RADIUS * (a.c.SSZ1 + a.c.SSZ2*(s.FY/(a.c.FNOMIN*a.c.LFZ0)) + (a.c.SSZ3+a.c.SSZ4*k.dfz)*k.gammaStar) * a.c.LS
}

// combined returns Mz = −t·Fy' + Mzr + s·Fx. It reads the combined FY and FX
// already stored in s.
func (a aligning) combined(s *State) float64 {
	k := a.slip(s)
	gy := a.lat.gammaY(k.gammaStar)

	kx := a.lon.kX(s.FZ, k.dfz)
	ky := a.nonZero(a.lat.kY(s.FZ, gy), "K_y")
	ratio := kx / ky

	t := a.trailShape(s, k)
	tr := trail(t.B, t.C, t.D, t.E, equivalentSlip(t.alpha, ratio, k.kappa), k.alphaStar)

	r := a.residualShape(s, k)
	mzr := residual(r.B, r.C, r.D, equivalentSlip(r.alpha, ratio, k.kappa), k.alphaStar)

	fyPrime := s.FY - a.lat.sVYK(s, k)

	return -tr*fyPrime + mzr + a.scrub(s, k)*s.FX
}
