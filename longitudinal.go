package tirebench

import "math"

// longitudinal is the longitudinal force formula family: pure Fx0 and the
// slip-angle weighted combined Fx.
type longitudinal struct{ family }

type longitudinalShape struct {
	B, C, D, E float64
	K          float64 // slip stiffness
	SH, SV     float64
	kappa      float64 // shifted slip, kappa + SH
}

func (x longitudinal) muX(dfz, gammaStar float64) float64 {
	gammaX := gammaStar * x.c.LGAX
	return (x.c.PDX1 + x.c.PDX2*dfz) * (1.0 - x.c.PDX3*gammaX*gammaX) * x.c.LMUX
}

func (x longitudinal) cX() float64 {
	return x.c.PCX1 * x.c.LCX
}

func (x longitudinal) dX(fz, dfz, gammaStar float64) float64 {
	return x.muX(dfz, gammaStar) * fz * x.c.ZETA1
}

func (x longitudinal) eX(dfz, kappaX float64) float64 {
	e := (x.c.PEX1 + x.c.PEX2*dfz + x.c.PEX3*dfz*dfz) * (1.0 - x.c.PEX4*sign(kappaX)) * x.c.LEX
	return clampCurvature(e)
}

// kX is the longitudinal slip stiffness.
func (x longitudinal) kX(fz, dfz float64) float64 {
	return fz * (x.c.PKX1 + x.c.PKX2*dfz) * math.Exp(x.c.PKX3*dfz) * x.c.LKX
}

// bX falls back to zero stiffness rather than an epsilon when C_x·D_x is zero.
func (x longitudinal) bX(cx, dx, kx float64) float64 {
	if cx*dx == 0.0 {
		if x.log != nil {
			x.log.Debug("zero denominator replaced", "term", "C_x·D_x", "B_x", 0.0)
		}
		return 0.0
	}
	return kx / (cx * dx)
}

func (x longitudinal) sHX(dfz float64) float64 {
	return (x.c.PHX1 + x.c.PHX2*dfz) * x.c.LHX
}

func (x longitudinal) sVX(fz, dfz float64) float64 {
	return fz * (x.c.PVX1 + x.c.PVX2*dfz) * x.c.LVX * x.c.LMUX * x.c.ZETA1
}

func (x longitudinal) shape(s *State, k slip) longitudinalShape {
	var sh longitudinalShape
	sh.C = x.cX()
	sh.D = x.dX(s.FZ, k.dfz, k.gammaStar)
	sh.SH = x.sHX(k.dfz)
	sh.kappa = k.kappa + sh.SH
	sh.E = x.eX(k.dfz, sh.kappa)
	sh.K = x.kX(s.FZ, k.dfz)
	sh.B = x.bX(sh.C, sh.D, sh.K)
	sh.SV = x.sVX(s.FZ, k.dfz)
	return sh
}

// pure returns Fx0, the longitudinal force without slip-angle correction.
func (x longitudinal) pure(s *State) float64 {
	sh := x.shape(s, x.slip(s))
	return magicSine(sh.B, sh.C, sh.D, sh.E, sh.kappa) + sh.SV
}

func (x longitudinal) sHXA() float64 {
	return x.c.RHX1
}

func (x longitudinal) bXA(kappa float64) float64 {
	return x.c.RBX1 * math.Cos(math.Atan(x.c.RBX2*kappa)) * x.c.LXAL
}

func (x longitudinal) cXA() float64 {
	return x.c.RCX1
}

func (x longitudinal) eXA(dfz float64) float64 {
	return clampCurvature(x.c.REX1 + x.c.REX2*dfz)
}

// gXA is the slip-angle weighting of the pure longitudinal force. It is 1
// when alpha* is 0.
func (x longitudinal) gXA(k slip) float64 {
	shxa := x.sHXA()
	alphaS := k.alphaStar + shxa
	return weighting(x.bXA(k.kappa), x.cXA(), x.eXA(k.dfz), alphaS, shxa)
}

// combined returns Fx = Fx0·G_xa.
func (x longitudinal) combined(s *State) float64 {
	return x.pure(s) * x.gXA(x.slip(s))
}
