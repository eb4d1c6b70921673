package tirebench

import "math"

// lateral is the lateral force formula family: pure Fy0 and the slip-ratio
// weighted combined Fy.
type lateral struct{ family }

// lateralShape is the set of pure lateral Magic Formula parameters at one state.
type lateralShape struct {
	B, C, D, E float64
	K          float64 // cornering stiffness
	SH, SV     float64 // horizontal and vertical shift
	alpha      float64 // shifted slip, alpha* + SH
}

func (l lateral) gammaY(gammaStar float64) float64 {
	return gammaStar * l.c.LGAY
}

func (l lateral) muY(dfz, gammaY float64) float64 {
	return (l.c.PDY1 + l.c.PDY2*dfz) * (1 - l.c.PDY3*gammaY*gammaY) * l.c.LMUY
}

func (l lateral) cY() float64 {
	return l.c.PCY1 * l.c.LCY
}

func (l lateral) dY(fz, dfz, gammaY float64) float64 {
	return l.muY(dfz, gammaY) * fz * l.c.ZETA1
}

func (l lateral) eY(dfz, gammaY, alphaY float64) float64 {
	e := (l.c.PEY1 + l.c.PEY2*dfz) * (1 - (l.c.PEY3+l.c.PEY4*gammaY)*sign(alphaY)) * l.c.LEY
	return clampCurvature(e)
}

// kY is the cornering stiffness.
func (l lateral) kY(fz, gammaY float64) float64 {
	denom := l.nonZero(l.c.PKY2*l.c.FNOMIN*l.c.LFZ0, "PKY2·FNOMIN·LFZ0")
	ky0 := l.c.PKY1 * l.c.FNOMIN * math.Sin(2.0*math.Atan(fz/denom)) * l.c.LFZ0 * l.c.LKY
	return ky0 * (1 - l.c.PKY3*math.Abs(gammaY)) * l.c.ZETA3
}

func (l lateral) bY(cy, dy, ky float64) float64 {
	return ky / l.nonZero(cy*dy, "C_y·D_y")
}

func (l lateral) sHY(dfz, gammaY float64) float64 {
	return (l.c.PHY1+l.c.PHY2*dfz)*l.c.LHY + l.c.PHY3*gammaY*l.c.ZETA0 + l.c.ZETA4 - 1
}

func (l lateral) sVY(fz, dfz, gammaY float64) float64 {
	return fz * ((l.c.PVY1+l.c.PVY2*dfz)*l.c.LVY + (l.c.PVY3+l.c.PVY4*dfz)*gammaY) * l.c.LMUY * l.c.ZETA4
}

// shape computes the pure lateral parameters at s.
func (l lateral) shape(s *State, k slip) lateralShape {
	gy := l.gammaY(k.gammaStar)

	var sh lateralShape
	sh.C = l.cY()
	sh.D = l.dY(s.FZ, k.dfz, gy)
	sh.SH = l.sHY(k.dfz, gy)
	sh.alpha = k.alphaStar + sh.SH
	sh.E = l.eY(k.dfz, gy, sh.alpha)
	sh.K = l.kY(s.FZ, gy)
	sh.B = l.bY(sh.C, sh.D, sh.K)
	sh.SV = l.sVY(s.FZ, k.dfz, gy)
	return sh
}

// pure returns Fy0, the lateral force without slip-ratio correction.
func (l lateral) pure(s *State) float64 {
	sh := l.shape(s, l.slip(s))
	return magicSine(sh.B, sh.C, sh.D, sh.E, sh.alpha) + sh.SV
}

func (l lateral) bYK(alpha float64) float64 {
	return l.c.RBY1 * math.Cos(math.Atan(l.c.RBY2*(alpha-l.c.RBY3))) * l.c.LYKA
}

func (l lateral) cYK() float64 {
	return l.c.RCY1
}

func (l lateral) eYK(dfz float64) float64 {
	return clampCurvature(l.c.REY1 + l.c.REY2*dfz)
}

func (l lateral) sHYK(dfz float64) float64 {
	return l.c.RHY1 + l.c.RHY2*dfz
}

func (l lateral) dVYK(fz, dfz, gammaY, alpha, gamma float64) float64 {
	return l.muY(dfz, gammaY) * fz * (l.c.RVY1 + l.c.RVY2*dfz + l.c.RVY3*gamma) * math.Cos(math.Atan(l.c.RVY4*alpha))
}

// sVYK is the lateral force induced by slip ratio.
func (l lateral) sVYK(s *State, k slip) float64 {
	dvyk := l.dVYK(s.FZ, k.dfz, l.gammaY(k.gammaStar), k.alphaStar, k.gammaStar)
	return dvyk * math.Sin(l.c.RVY5*math.Atan(l.c.RVY6*k.kappa)) * l.c.LVYKA
}

// gYK is the slip-ratio weighting of the pure lateral force. It is 1 when
// kappa is 0.
func (l lateral) gYK(k slip) float64 {
	shyk := l.sHYK(k.dfz)
	kappaS := k.kappa + shyk
	return weighting(l.bYK(k.alphaStar), l.cYK(), l.eYK(k.dfz), kappaS, shyk)
}

// combined returns Fy = Fy0·G_yk + S_Vyk.
func (l lateral) combined(s *State) float64 {
	k := l.slip(s)
	fy0 := l.pure(s)
	return l.gYK(k)*fy0 + l.sVYK(s, k)
}
