package sgp4

import "math"

// Prediction is a satellite's position (km) and velocity (km/s) in the TEME
// (True Equator, Mean Equinox) inertial frame.
type Prediction struct {
	Position [3]float64
	Velocity [3]float64
}

// PropagateFromState evaluates the satellite's position and velocity at
// elapsed time t minutes since epoch, using and advancing state.
//
// state must be nil for a near-Earth orbit or a non-resonant deep-space
// orbit, and non-nil (obtained from InitialState) for a resonant deep-space
// orbit; passing the wrong one is a programming error. Successive calls with
// a given state must keep t on one side of zero and never decrease |t|.
func (c *Constants) PropagateFromState(t float64, state *ResonanceState, afspcCompatibilityMode bool) (Prediction, error) {
	p21 := c.orbit0.RightAscension + c.rightAscensionDot*t + c.k0*t*t
	p22 := c.orbit0.ArgumentOfPerigee + c.argumentOfPerigeeDot*t

	var (
		orbit                       Orbit
		a, l, p30, p31, p32, p33, p34 float64
		err                         error
	)
	if c.how == methodNearEarth {
		orbit, a, l, p30, p31, p32, p33, p34, err = c.propagateNearEarth(t, p21, p22)
	} else {
		orbit, a, l, p30, p31, p32, p33, p34, err = c.propagateDeepSpace(t, p21, p22, state, afspcCompatibilityMode)
	}
	if err != nil {
		return Prediction{}, err
	}

	p27 := 1.0 / (a * (1.0 - orbit.Eccentricity*orbit.Eccentricity))

	axn := orbit.Eccentricity * math.Cos(orbit.ArgumentOfPerigee)
	ayn := orbit.Eccentricity*math.Sin(orbit.ArgumentOfPerigee) + p27*p30

	p35 := math.Mod(l+orbit.ArgumentOfPerigee+p27*p33*axn, 2.0*math.Pi)

	ew := p35
	for i := 0; i < 10; i++ {
		sinEw, cosEw := math.Sincos(ew)
		delta := (p35 - ayn*cosEw + axn*sinEw - ew) / (1.0 - cosEw*axn - sinEw*ayn)
		if math.Abs(delta) < 1.0e-12 {
			break
		}
		switch {
		case delta < -0.95:
			ew += -0.95
		case delta > 0.95:
			ew += 0.95
		default:
			ew += delta
		}
	}

	p36 := axn*axn + ayn*ayn
	pl := a * (1.0 - p36)
	if pl < 0.0 {
		return Prediction{}, Error{"negative semi-latus rectum"}
	}

	sinEw, cosEw := math.Sincos(ew)
	p37 := axn*cosEw + ayn*sinEw
	p38 := axn*sinEw - ayn*cosEw

	r := a * (1.0 - p37)
	rDot := math.Sqrt(a) * p38 / r

	beta := math.Sqrt(1.0 - p36)
	p39 := p38 / (1.0 + beta)

	p40 := a / r * (sinEw - ayn - axn*p39)
	p41 := a / r * (cosEw - axn + ayn*p39)

	u := math.Atan2(p40, p41)
	p42 := 2.0 * p41 * p40
	p43 := 1.0 - 2.0*p40*p40

	p44 := 0.5 * c.model.J2 / pl / pl

	rk := r*(1.0-1.5*p44*beta*p34) + 0.5*(0.5*c.model.J2/pl)*p31*p43
	uk := u - 0.25*p44*p32*p42

	cosI, sinI := math.Cos(orbit.Inclination), math.Sin(orbit.Inclination)

	rightAscensionK := orbit.RightAscension + 1.5*p44*cosI*p42
	inclinationK := orbit.Inclination + 1.5*p44*cosI*sinI*p43

	rkDot := rDot - orbit.MeanMotion*(0.5*c.model.J2/pl)*p31*p42/c.model.Ke
	rfkDot := math.Sqrt(pl)/r + orbit.MeanMotion*(0.5*c.model.J2/pl)*(p31*p43+1.5*p34)/c.model.Ke

	sinRaK, cosRaK := math.Sincos(rightAscensionK)
	cosIK, sinIK := math.Cos(inclinationK), math.Sin(inclinationK)
	sinUk, cosUk := math.Sincos(uk)

	u0 := -sinRaK*cosIK*sinUk + cosRaK*cosUk
	u1 := cosRaK*cosIK*sinUk + sinRaK*cosUk
	u2 := sinIK * sinUk

	velocityScale := c.model.Ae * c.model.Ke / 60.0

	return Prediction{
		Position: [3]float64{
			rk * u0 * c.model.Ae,
			rk * u1 * c.model.Ae,
			rk * u2 * c.model.Ae,
		},
		Velocity: [3]float64{
			(rkDot*u0 + rfkDot*(-sinRaK*cosIK*cosUk-cosRaK*sinUk)) * velocityScale,
			(rkDot*u1 + rfkDot*(cosRaK*cosIK*cosUk-sinRaK*sinUk)) * velocityScale,
			(rkDot*u2 + rfkDot*(sinIK*cosUk)) * velocityScale,
		},
	}, nil
}

// Propagate evaluates the satellite's position and velocity at elapsed time
// t minutes since epoch, with a fresh resonance state and the truncated
// (non-AFSPC) modular remainder in the low-inclination deep-space branch.
func (c *Constants) Propagate(t float64) (Prediction, error) {
	return c.PropagateFromState(t, c.InitialState(), false)
}

// PropagateAFSPCCompatibilityMode behaves like Propagate but reproduces the
// AFSPC reference implementation's low-inclination modular-remainder
// convention.
func (c *Constants) PropagateAFSPCCompatibilityMode(t float64) (Prediction, error) {
	return c.PropagateFromState(t, c.InitialState(), true)
}
