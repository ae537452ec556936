// Package thirdbody computes the secular and long-period perturbations that
// the Sun and Moon induce on a satellite's mean orbital elements, the way
// Spacetrack Report #3's deep-space theory (the dscom/dpper/dsinit routines)
// does it.
//
// Compute is called once per body at constants-construction time and
// produces two things: a Dots value (the secular rate contribution this
// body adds to right ascension, argument of perigee, mean anomaly,
// eccentricity, and inclination) and a Perturbations value (the amplitude
// coefficients needed to evaluate this body's long-period periodic effect
// at any later elapsed time t).
package thirdbody

import "math"

// lowInclinationThreshold is the ~3° guard dscom/dsinit use near I=0 or
// I=π, where the node-rate terms divide by sin(I) and would otherwise blow
// up.
const lowInclinationThreshold = 5.2359877e-2

// Dots holds the secular rate of change this body contributes to the
// satellite's mean elements, in radians per minute.
type Dots struct {
	RightAscension    float64
	ArgumentOfPerigee float64
	MeanAnomaly       float64
	Eccentricity      float64
	Inclination       float64
}

// Perturbations holds the long-period periodic amplitude coefficients for
// one perturbing body, captured at the epoch this body's geometry was
// evaluated.
type Perturbations struct {
	meanAnomaly0 float64

	e2, e3        float64
	i2, i3        float64
	l2, l3, l4    float64
	gh2, gh3, gh4 float64
	h2, h3        float64
}

// Compute evaluates a third body's (Sun or Moon) effect on a satellite's
// mean elements at epoch.
//
// inclination, eccentricity, argumentOfPerigee, meanMotion are the
// satellite's own mean elements (I0, e0, ω0, n0"). bodyInclinationSine/
// Cosine are sin/cos of the body's orbital inclination relative to the
// satellite's equatorial reference (the obliquity of the ecliptic, for the
// Sun). sinRelativeNode/cosRelativeNode are sin/cos of the satellite's
// right ascension relative to the body's ascending node (simply Ω0 for the
// Sun, whose node is the reference direction). bodyEccentricity is the
// body's own reference-orbit eccentricity (zes/zel in the classic
// notation) — it scales the l4/gh4 amplitude terms directly, not the
// satellite's own β0. bodyArgumentOfPerigeeSine/Cosine, perturbationCoefficient
// (cc, i.e. c1ss/c1l) and bodyMeanMotion (zns/znl — the body's own mean
// motion, which also doubles as the dsinit secular-rate scale factor) are
// the remaining body reference-orbit constants. p1 and b0 are the
// satellite's 1 − e0² and β0 = √p1.
func Compute(
	inclination, eccentricity, argumentOfPerigee, meanMotion float64,
	bodyInclinationSine, bodyInclinationCosine float64,
	sinRelativeNode, cosRelativeNode float64,
	bodyEccentricity float64,
	bodyArgumentOfPerigeeSine, bodyArgumentOfPerigeeCosine float64,
	perturbationCoefficient, bodyMeanMotion, bodyMeanAnomaly0 float64,
	p1, b0 float64,
) (Perturbations, Dots) {
	si, ci := math.Sincos(inclination)
	sg, cg := math.Sincos(argumentOfPerigee)

	a1 := bodyArgumentOfPerigeeCosine*cosRelativeNode + bodyArgumentOfPerigeeSine*bodyInclinationCosine*sinRelativeNode
	a3 := -bodyArgumentOfPerigeeSine*cosRelativeNode + bodyArgumentOfPerigeeCosine*bodyInclinationCosine*sinRelativeNode
	a7 := -bodyArgumentOfPerigeeCosine*sinRelativeNode + bodyArgumentOfPerigeeSine*bodyInclinationCosine*cosRelativeNode
	a8 := bodyArgumentOfPerigeeSine * bodyInclinationSine
	a9 := bodyArgumentOfPerigeeSine*sinRelativeNode + bodyArgumentOfPerigeeCosine*bodyInclinationCosine*cosRelativeNode
	a10 := bodyArgumentOfPerigeeCosine * bodyInclinationSine

	a2 := ci*a7 + si*a8
	a4 := ci*a9 + si*a10
	a5 := -si*a7 + ci*a8
	a6 := -si*a9 + ci*a10

	x1 := a1*cg + a2*sg
	x2 := a3*cg + a4*sg
	x3 := -a1*sg + a2*cg
	x4 := -a3*sg + a4*cg
	x5 := a5 * sg
	x6 := a6 * sg
	x7 := a5 * cg
	x8 := a6 * cg

	eccsq := eccentricity * eccentricity
	betasq := p1

	z31 := 12.0*x1*x1 - 3.0*x3*x3
	z32 := 24.0*x1*x2 - 6.0*x3*x4
	z33 := 12.0*x2*x2 - 3.0*x4*x4

	z1 := 3.0*(a1*a1+a2*a2) + z31*eccsq
	z2 := 6.0*(a1*a3+a2*a4) + z32*eccsq
	z3 := 3.0*(a3*a3+a4*a4) + z33*eccsq

	z11 := -6.0*a1*a5 + eccsq*(-24.0*x1*x7-6.0*x3*x5)
	z12 := -6.0*(a1*a6+a3*a5) + eccsq*(-24.0*(x2*x7+x1*x8)-6.0*(x3*x6+x4*x5))
	z13 := -6.0*a3*a6 + eccsq*(-24.0*x2*x8-6.0*x4*x6)
	z21 := 6.0*a2*a5 + eccsq*(24.0*x1*x5-6.0*x3*x7)
	z22 := 6.0*(a4*a5+a2*a6) + eccsq*(24.0*(x2*x5+x1*x6)-6.0*(x4*x7+x3*x8))
	z23 := 6.0*a4*a6 + eccsq*(24.0*x2*x6-6.0*x4*x8)

	z1 = z1 + z1 + betasq*z31
	z2 = z2 + z2 + betasq*z32
	z3 = z3 + z3 + betasq*z33

	// s3 is the per-body amplitude scale (cc/n0", the perturbation
	// coefficient divided by the satellite's own mean motion); s1/s2/s4
	// derive from it the way dscom builds the amplitudes that feed both
	// dpper's periodic terms and dsinit's secular rates.
	s3 := perturbationCoefficient / meanMotion
	s2 := -0.5 * s3 / b0
	s4 := s3 * b0
	s1 := -15.0 * eccentricity * s4
	s5 := x1*x3 + x2*x4
	s6 := x2*x3 + x1*x4
	s7 := x2*x4 - x1*x3

	perturbations := Perturbations{
		meanAnomaly0: bodyMeanAnomaly0,
		e2:           2.0 * s1 * s6,
		e3:           2.0 * s1 * s7,
		i2:           2.0 * s2 * z12,
		i3:           2.0 * s2 * (z13 - z11),
		l2:           -2.0 * s3 * z2,
		l3:           -2.0 * s3 * (z3 - z1),
		l4:           -2.0 * s3 * (-21.0 - 9.0*eccsq) * bodyEccentricity,
		gh2:          2.0 * s4 * z32,
		gh3:          2.0 * s4 * (z33 - z31),
		gh4:          -18.0 * s4 * bodyEccentricity,
		h2:           -2.0 * s2 * z22,
		h3:           -2.0 * s2 * (z23 - z21),
	}

	// Secular rates (dsinit): zn is this body's own mean motion, doing
	// double duty as the rate scale factor for its contribution.
	zn := bodyMeanMotion
	deDt := s1 * zn * s5
	diDt := s2 * zn * (z11 + z13)
	dmDt := -zn * s3 * (z1 + z3 - 14.0 - 6.0*eccsq)
	sgh := s4 * zn * (z31 + z33 - 6.0)
	sh := -zn * s2 * (z21 + z23)

	var domDt, dnoDt float64
	if inclination >= lowInclinationThreshold && inclination <= math.Pi-lowInclinationThreshold {
		sh /= si
		domDt = sgh - ci*sh
		dnoDt = sh
	} else {
		domDt = sgh
	}

	dots := Dots{
		RightAscension:    dnoDt,
		ArgumentOfPerigee: domDt,
		MeanAnomaly:       dmDt,
		Eccentricity:      deDt,
		Inclination:       diDt,
	}

	return perturbations, dots
}

// LongPeriodPeriodicEffects evaluates this body's long-period periodic
// correction at elapsed time t minutes since epoch. bodyEccentricity and
// bodyMeanMotion are the same body constants passed to Compute.
//
// Returns the periodic corrections to eccentricity, inclination, and mean
// anomaly, plus two additional terms (l4, l5) used by the propagator to
// assemble the corrected argument of perigee and right ascension.
func (p Perturbations) LongPeriodPeriodicEffects(bodyEccentricity, bodyMeanMotion, t float64) (deltaE, deltaI, deltaM, l4, l5 float64) {
	zm := p.meanAnomaly0 + bodyMeanMotion*t
	zf := zm + 2.0*bodyEccentricity*math.Sin(zm)
	sinzf := math.Sin(zf)
	f2 := 0.5*sinzf*sinzf - 0.25
	f3 := -0.5 * sinzf * math.Cos(zf)

	deltaE = p.e2*f2 + p.e3*f3
	deltaI = p.i2*f2 + p.i3*f3
	deltaM = p.l2*f2 + p.l3*f3 + p.l4*sinzf
	l4 = p.gh2*f2 + p.gh3*f3 + p.gh4*sinzf
	l5 = p.h2*f2 + p.h3*f3
	return
}
