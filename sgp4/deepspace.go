package sgp4

import (
	"math"

	"github.com/anupshinde/goeph/thirdbody"
)

const (
	solarEccentricity             = 0.01675
	lunarEccentricity              = 0.05490
	solarMeanMotion                = 1.19459e-5
	lunarMeanMotion                = 1.5835218e-4
	solarPerturbationCoefficient   = 2.9864797e-6
	lunarPerturbationCoefficient   = 4.7968065e-7

	resonanceDeltaT = 720.0

	lambda31 = 0.13130908
	lambda22 = 2.8843198
	lambda33 = 0.37448087

	g22 = 5.7686396
	g32 = 0.95240898
	g44 = 1.8014998
	g52 = 1.0508330
	g54 = 4.4108898

	siderealSpeed = 4.37526908801129966e-3
)

// newDeepSpaceConstants computes the lunisolar secular rates and, when the
// epoch mean motion falls in a tesseral resonance band, the resonance
// coefficients this satellite needs integrated forward.
func newDeepSpaceConstants(epochToSiderealTime func(float64) float64, t0 float64, orbit0 Orbit, p0, a0, b0, p1, p13, p14, k14 float64) deepSpace {
	t1900 := (t0 + 100.0) * 365.25

	sinO0, cosO0 := math.Sincos(orbit0.RightAscension)

	solarPerturbations, solarDots := thirdbody.Compute(
		orbit0.Inclination, orbit0.Eccentricity, orbit0.ArgumentOfPerigee, orbit0.MeanMotion,
		0.39785416, 0.91744867,
		sinO0, cosO0,
		solarEccentricity,
		-0.98088458, 0.1945905,
		solarPerturbationCoefficient, solarMeanMotion,
		math.Mod(6.2565837+0.017201977*t1900, 2.0*math.Pi),
		p1, b0,
	)

	lunarRightAscensionEpsilon := math.Mod(4.5236020-9.2422029e-4*t1900, 2.0*math.Pi)
	lunarInclinationCosine := 0.91375164 - 0.03568096*math.Cos(lunarRightAscensionEpsilon)
	lunarInclinationSine := math.Sqrt(1.0 - lunarInclinationCosine*lunarInclinationCosine)
	lunarRightAscensionSine := 0.089683511 * math.Sin(lunarRightAscensionEpsilon) / lunarInclinationSine
	lunarRightAscensionCosine := math.Sqrt(1.0 - lunarRightAscensionSine*lunarRightAscensionSine)

	lunarArgumentOfPerigee := 5.8351514 + 0.001944368*t1900 +
		math.Atan2(0.39785416*math.Sin(lunarRightAscensionEpsilon)/lunarInclinationSine,
			lunarRightAscensionCosine*math.Cos(lunarRightAscensionEpsilon)+0.91744867*lunarRightAscensionSine*math.Sin(lunarRightAscensionEpsilon)) -
		lunarRightAscensionEpsilon

	lunarPerturbations, lunarDots := thirdbody.Compute(
		orbit0.Inclination, orbit0.Eccentricity, orbit0.ArgumentOfPerigee, orbit0.MeanMotion,
		lunarInclinationSine, lunarInclinationCosine,
		sinO0*lunarRightAscensionCosine-cosO0*lunarRightAscensionSine,
		lunarRightAscensionCosine*cosO0+lunarRightAscensionSine*sinO0,
		lunarEccentricity,
		math.Sin(lunarArgumentOfPerigee), math.Cos(lunarArgumentOfPerigee),
		lunarPerturbationCoefficient, lunarMeanMotion,
		math.Mod(-1.1151842+0.228027132*t1900, 2.0*math.Pi),
		p1, b0,
	)

	d := deepSpace{
		solarDots:          solarDots,
		lunarDots:          lunarDots,
		solarPerturbations: solarPerturbations,
		lunarPerturbations: lunarPerturbations,
	}

	is24h := orbit0.MeanMotion < 0.0052359877 && orbit0.MeanMotion > 0.0034906585
	is12h := orbit0.MeanMotion >= 8.26e-3 && orbit0.MeanMotion <= 9.24e-3 && orbit0.Eccentricity >= 0.5
	if !is24h && !is12h {
		d.resonant = resonant{isResonant: false, a0: a0}
		return d
	}

	siderealTime0 := epochToSiderealTime(t0)
	d.resonant.isResonant = true
	d.resonant.siderealTime0 = siderealTime0

	if is24h {
		d.resonant.kind = resonanceOneDay
		d.resonant.lambda0 = math.Mod(orbit0.MeanAnomaly+orbit0.RightAscension+orbit0.ArgumentOfPerigee-siderealTime0, 2.0*math.Pi)
		d.resonant.lambdaDot0 = p14 + (k14+p13) - siderealSpeed +
			(solarDots.MeanAnomaly + lunarDots.MeanAnomaly) +
			(solarDots.ArgumentOfPerigee + lunarDots.ArgumentOfPerigee) +
			(solarDots.RightAscension + lunarDots.RightAscension) -
			orbit0.MeanMotion

		p16 := 3.0 * (orbit0.MeanMotion / a0) * (orbit0.MeanMotion / a0)
		sinI0 := math.Sin(orbit0.Inclination)
		d.resonant.oneDay = oneDay{
			dr1: p16 * (0.9375*sinI0*sinI0*(1.0+3.0*p0) - 0.75*(1.0+p0)) *
				(1.0 + 2.0*orbit0.Eccentricity*orbit0.Eccentricity) * 2.1460748e-6 / a0,
			dr2: 2.0 * p16 * (0.75 * (1.0 + p0) * (1.0 + p0)) *
				(1.0 + orbit0.Eccentricity*orbit0.Eccentricity*(-2.5+0.8125*orbit0.Eccentricity*orbit0.Eccentricity)) * 1.7891679e-6,
			dr3: 3.0 * p16 * (1.875 * (1.0 + p0) * (1.0 + p0) * (1.0 + p0)) *
				(1.0 + orbit0.Eccentricity*orbit0.Eccentricity*(-6.0+6.60937*orbit0.Eccentricity*orbit0.Eccentricity)) * 2.2123015e-7 / a0,
		}
		return d
	}

	d.resonant.kind = resonanceHalfDay
	d.resonant.lambda0 = math.Mod(orbit0.MeanAnomaly+orbit0.RightAscension+orbit0.RightAscension-siderealTime0-siderealTime0, 2.0*math.Pi)
	d.resonant.lambdaDot0 = p14 +
		(solarDots.MeanAnomaly + lunarDots.MeanAnomaly) +
		2.0*(p13+(solarDots.RightAscension+lunarDots.RightAscension)-siderealSpeed) -
		orbit0.MeanMotion
	d.resonant.halfDay = newHalfDayCoefficients(orbit0, p0, a0, k14)
	return d
}

func newHalfDayCoefficients(orbit0 Orbit, p0, a0, k14 float64) halfDay {
	e := orbit0.Eccentricity
	e2 := e * e
	e3 := e2 * e

	p17 := 3.0 * orbit0.MeanMotion * orbit0.MeanMotion * (1.0 / a0) * (1.0 / a0)
	p18 := p17 / a0
	p19 := p18 / a0
	p20 := p19 / a0

	f220 := 0.75 * (1.0 + 2.0*p0 + p0*p0)

	var g211, g310, g322, g410, g422 float64
	if e <= 0.65 {
		g211 = 3.616 - 13.247*e + 16.29*e2
		g310 = -19.302 + 117.39*e - 228.419*e2 + 156.591*e3
		g322 = -18.9068 + 109.7927*e - 214.6334*e2 + 146.5816*e3
		g410 = -41.122 + 242.694*e - 471.094*e2 + 313.953*e3
		g422 = -146.407 + 841.88*e - 1629.014*e2 + 1083.435*e3
	} else {
		g211 = -72.099 + 331.819*e - 508.738*e2 + 266.724*e3
		g310 = -346.844 + 1582.851*e - 2415.925*e2 + 1246.113*e3
		g322 = -342.585 + 1554.908*e - 2366.899*e2 + 1215.972*e3
		g410 = -1052.797 + 4758.686*e - 7193.992*e2 + 3651.957*e3
		g422 = -3581.69 + 16178.11*e - 24462.77*e2 + 12422.52*e3
	}

	var g520 float64
	switch {
	case e <= 0.65:
		g520 = -532.114 + 3017.977*e - 5740.032*e2 + 3708.276*e3
	case e < 0.715:
		g520 = 1464.74 - 4664.75*e + 3763.64*e2
	default:
		g520 = -5149.66 + 29936.92*e - 54087.36*e2 + 31324.56*e3
	}

	var g532, g521, g533 float64
	if e < 0.7 {
		g532 = -853.666 + 4690.25*e - 8624.77*e2 + 5341.4*e3
		g521 = -822.71072 + 4568.6173*e - 8491.4146*e2 + 5337.524*e3
		g533 = -919.2277 + 4988.61*e - 9064.77*e2 + 5542.21*e3
	} else {
		g532 = -40023.88 + 170470.89*e - 242699.48*e2 + 115605.82*e3
		g521 = -51752.104 + 218913.95*e - 309468.16*e2 + 146349.42*e3
		g533 = -37995.78 + 161616.52*e - 229838.2*e2 + 109377.94*e3
	}

	sinI := math.Sin(orbit0.Inclination)

	return halfDay{
		d2201: p17 * 1.7891679e-6 * f220 * (-0.306 - (e-0.64)*0.44),
		d2211: p17 * 1.7891679e-6 * (1.5 * sinI * sinI) * g211,
		d3210: p18 * 3.7393792e-7 * (1.875 * sinI * (1.0 - 2.0*p0 - 3.0*p0*p0)) * g310,
		d3222: p18 * 3.7393792e-7 * (-1.875 * sinI * (1.0 + 2.0*p0 - 3.0*p0*p0)) * g322,
		d4410: 2.0 * p19 * 7.3636953e-9 * (35.0 * sinI * sinI * f220) * g410,
		d4422: 2.0 * p19 * 7.3636953e-9 * (39.375 * sinI * sinI * sinI * sinI) * g422,
		d5220: p20 * 1.1428639e-7 * (9.84375 * sinI * (sinI*sinI*(1.0-2.0*p0-5.0*p0*p0) + 0.33333333*(-2.0+4.0*p0+6.0*p0*p0))) * g520,
		d5232: p20 * 1.1428639e-7 * (sinI * (4.92187512*sinI*sinI*(-2.0-4.0*p0+10.0*p0*p0) + 6.56250012*(1.0+2.0*p0-3.0*p0*p0))) * g532,
		d5421: 2.0 * p20 * 2.1765803e-9 * (29.53125 * sinI * (2.0 - 8.0*p0 + p0*p0*(-12.0+8.0*p0+10.0*p0*p0))) * g521,
		d5433: 2.0 * p20 * 2.1765803e-9 * (29.53125 * sinI * (-2.0 - 8.0*p0 + p0*p0*(12.0+8.0*p0-10.0*p0*p0))) * g533,
		k14:   k14,
	}
}

// propagateDeepSpace evaluates the lunisolar-perturbed orbital elements at
// elapsed time t minutes, dispatching to the resonance integrator when the
// orbit is tesseral-resonant. state must be non-nil exactly when the orbit
// is resonant, and is mutated in place as the integrator advances.
func (c *Constants) propagateDeepSpace(t, p21, p22 float64, state *ResonanceState, afspcCompatibilityMode bool) (Orbit, float64, float64, float64, float64, float64, float64, float64, error) {
	d := c.deepSpace

	var p26, p27 float64
	if !d.resonant.isResonant {
		p26 = d.resonant.a0
		p27 = c.orbit0.MeanAnomaly + c.meanAnomalyDot*t
	} else {
		var resonance interface{}
		if d.resonant.kind == resonanceOneDay {
			resonance = d.resonant.oneDay
		} else {
			resonance = d.resonant.halfDay
		}
		p26, p27 = state.integrate(c.model.Ke, c.orbit0.ArgumentOfPerigee, d.resonant.lambdaDot0, resonance, d.resonant.siderealTime0, t, p21, p22)
	}

	solarDeltaE, solarDeltaI, solarDeltaM, ls4, ls5 := d.solarPerturbations.LongPeriodPeriodicEffects(solarEccentricity, solarMeanMotion, t)
	lunarDeltaE, lunarDeltaI, lunarDeltaM, lp5, lp6 := d.lunarPerturbations.LongPeriodPeriodicEffects(lunarEccentricity, lunarMeanMotion, t)

	inclination := c.orbit0.Inclination + d.inclinationDot()*t + (solarDeltaI + lunarDeltaI)

	var rightAscension, argumentOfPerigee float64
	if inclination >= 0.2 {
		sinI := math.Sin(inclination)
		rightAscension = p21 + (ls5+lp6)/sinI
		argumentOfPerigee = p22 + (ls4 + lp5) - math.Cos(inclination)*((ls5+lp6)/sinI)
	} else {
		sinI, cosI := math.Sincos(inclination)
		sinP21, cosP21 := math.Sincos(p21)
		deltaI := solarDeltaI + lunarDeltaI

		p28 := math.Atan2(
			sinI*sinP21+((ls5+lp6)*cosP21+deltaI*cosI*sinP21),
			sinI*cosP21+(-(ls5+lp6)*sinP21+deltaI*cosI*cosP21),
		)

		p21Mod2Pi := math.Mod(p21, 2.0*math.Pi)
		switch {
		case p28 < p21Mod2Pi-math.Pi:
			rightAscension = p28 + 2.0*math.Pi
		case p28 > p21Mod2Pi+math.Pi:
			rightAscension = p28 - 2.0*math.Pi
		default:
			rightAscension = p28
		}

		var p21Remainder float64
		if afspcCompatibilityMode {
			p21Remainder = euclideanMod(p21, 2.0*math.Pi)
		} else {
			p21Remainder = math.Mod(p21, 2.0*math.Pi)
		}

		argumentOfPerigee = p22 + (ls4 + lp5) + cosI*(p21Mod2Pi-rightAscension) - deltaI*p21Remainder*sinI
	}

	p29 := c.orbit0.Eccentricity + d.eccentricityDot()*t - c.dragTerm*c.c4*t
	if p29 >= 1.0 || p29 < -0.001 {
		return Orbit{}, 0, 0, 0, 0, 0, 0, 0, Error{"diverging eccentricity"}
	}
	eccentricity := math.Max(p29, 1.0e-6) + (solarDeltaE + lunarDeltaE)
	if eccentricity < 0.0 || eccentricity > 1.0 {
		return Orbit{}, 0, 0, 0, 0, 0, 0, 0, Error{"diverging perturbed eccentricity"}
	}

	meanAnomaly := p27 + (solarDeltaM + lunarDeltaM)
	a := p26 * (1.0 - c.c1*t) * (1.0 - c.c1*t)

	orbit := Orbit{
		Inclination:       inclination,
		RightAscension:    rightAscension,
		Eccentricity:      eccentricity,
		ArgumentOfPerigee: argumentOfPerigee,
		MeanAnomaly:       meanAnomaly,
		MeanMotion:        c.model.Ke / math.Pow(a, 1.5),
	}

	sinI, cosI := math.Sincos(inclination)
	p33Denominator := 1.0 + cosI
	if math.Abs(p33Denominator) <= 1.5e-12 {
		p33Denominator = 1.5e-12
	}

	return orbit, a,
		meanAnomaly + c.orbit0.MeanMotion*c.k1*t*t,
		-0.5 * (c.model.J3 / c.model.J2) * sinI,
		1.0 - cosI*cosI,
		7.0*cosI*cosI - 1.0,
		-0.25 * (c.model.J3 / c.model.J2) * sinI * (3.0 + 5.0*cosI) / p33Denominator,
		3.0*cosI*cosI - 1.0,
		nil
}

func euclideanMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m < 0 {
		m += math.Abs(y)
	}
	return m
}
