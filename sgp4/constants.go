package sgp4

import (
	"math"

	"github.com/anupshinde/goeph/gravity"
)

// Constants is the fully precomputed propagation state for one satellite at
// one epoch. It is immutable after construction: every exported method
// that reads it takes a value receiver or only reads fields, so a single
// Constants may be shared across goroutines propagating the same satellite
// at different times.
type Constants struct {
	model    gravity.Model
	orbit0   Orbit
	dragTerm float64

	rightAscensionDot    float64
	argumentOfPerigeeDot float64
	meanAnomalyDot       float64

	c1, c4 float64
	k0, k1 float64

	how       method
	nearEarth nearEarth
	deepSpace deepSpace
}

// orbitalPeriodThreshold is the Brouwer mean motion above which an orbit is
// treated as near-Earth rather than deep-space: n0" > 2π/225, i.e. orbital
// period under 225 minutes.
const orbitalPeriodThreshold = 2.0 * math.Pi / 225.0

// New precomputes everything a propagation needs from a mean orbit at
// epoch: the secular rates, drag coefficients, and the near-Earth or
// deep-space branch-specific coefficients.
//
// epochToSiderealTime converts t0 (years since UTC 2000-01-01T12:00) to
// Greenwich sidereal time in radians; it is only invoked for deep-space
// orbits that turn out to be resonant. dragTerm is B*, in Earth radii^-1.
func New(model gravity.Model, epochToSiderealTime func(float64) float64, t0, dragTerm float64, orbit0 Orbit) (*Constants, error) {
	if orbit0.Eccentricity < 0.0 || orbit0.Eccentricity >= 1.0 {
		return nil, Error{"the eccentricity must be in the range [0, 1["}
	}

	p0 := math.Cos(orbit0.Inclination)
	p1 := 1.0 - orbit0.Eccentricity*orbit0.Eccentricity
	k6 := 3.0*p0*p0 - 1.0

	a0 := math.Pow(model.Ke/orbit0.MeanMotion, 2.0/3.0)
	p3 := a0 * (1.0 - orbit0.Eccentricity)
	perigee := model.Ae * (p3 - 1.0)

	var p4 float64
	switch {
	case perigee < 98.0:
		p4 = 20.0
	case perigee < 156.0:
		p4 = perigee - 78.0
	default:
		p4 = 78.0
	}
	s := p4/model.Ae + 1.0
	p5 := math.Pow((120.0-p4)/model.Ae, 4)

	xi := 1.0 / (a0 - s)
	p6 := p5 * math.Pow(xi, 4)
	eta := a0 * orbit0.Eccentricity * xi
	p7 := math.Abs(1.0 - eta*eta)
	p8 := p6 / math.Pow(p7, 3.5)

	c1 := dragTerm * (p8 * orbit0.MeanMotion * (a0*(1.0+1.5*eta*eta+orbit0.Eccentricity*eta*(4.0+eta*eta)) +
		0.375*model.J2*xi/p7*k6*(8.0+3.0*eta*eta*(8.0+eta*eta))))

	p9 := 1.0 / math.Pow(a0*p1, 2)
	b0 := math.Sqrt(p1)
	p10 := 1.5 * model.J2 * p9 * orbit0.MeanMotion
	p11 := 0.5 * p10 * model.J2 * p9
	p12 := -0.46875 * model.J4 * p9 * p9 * orbit0.MeanMotion

	p13 := -p10*p0 + (0.5*p11*(4.0-19.0*p0*p0)+2.0*p12*(3.0-7.0*p0*p0))*p0
	k14 := -0.5*p10*(1.0-5.0*p0*p0) + 0.0625*p11*(7.0-114.0*p0*p0+395.0*p0*p0*p0*p0) + p12*(3.0-36.0*p0*p0+49.0*p0*p0*p0*p0)
	p14 := orbit0.MeanMotion + 0.5*p10*b0*k6 + 0.0625*p11*b0*(13.0-78.0*p0*p0+137.0*p0*p0*p0*p0)

	c4 := 2.0 * orbit0.MeanMotion * p8 * a0 * p1 * (eta*(2.0+0.5*eta*eta) +
		orbit0.Eccentricity*(0.5+2.0*eta*eta) -
		model.J2*xi/(a0*p7)*(-3.0*k6*(1.0-2.0*orbit0.Eccentricity*eta+eta*eta*(1.5-0.5*orbit0.Eccentricity*eta))+
			0.75*(1.0-p0*p0)*(2.0*eta*eta-orbit0.Eccentricity*eta*(1.0+eta*eta))*math.Cos(2.0*orbit0.ArgumentOfPerigee)))

	k0 := 3.5 * p1 * (-p10 * p0) * c1
	k1 := 1.5 * c1

	c := &Constants{
		model:    model,
		orbit0:   orbit0,
		dragTerm: dragTerm,
		c1:       c1,
		c4:       c4,
		k0:       k0,
		k1:       k1,
	}

	if orbit0.MeanMotion > orbitalPeriodThreshold {
		c.how = methodNearEarth
		c.rightAscensionDot = p13
		c.argumentOfPerigeeDot = k14
		c.meanAnomalyDot = p14
		c.nearEarth = newNearEarthConstants(model, dragTerm, orbit0, p0, a0, s, xi, eta, c1, p1)
		return c, nil
	}

	c.how = methodDeepSpace
	c.deepSpace = newDeepSpaceConstants(epochToSiderealTime, t0, orbit0, p0, a0, b0, p1, p13, p14, k14)
	c.rightAscensionDot = p13 + c.deepSpace.solarDots.RightAscension + c.deepSpace.lunarDots.RightAscension
	c.argumentOfPerigeeDot = k14 + c.deepSpace.solarDots.ArgumentOfPerigee + c.deepSpace.lunarDots.ArgumentOfPerigee
	c.meanAnomalyDot = p14 + c.deepSpace.solarDots.MeanAnomaly + c.deepSpace.lunarDots.MeanAnomaly
	return c, nil
}

// InitialState returns a fresh resonance integrator state, or nil if this
// satellite's method is NearEarth or a non-resonant DeepSpace orbit.
func (c *Constants) InitialState() *ResonanceState {
	if c.how != methodDeepSpace || !c.deepSpace.resonant.isResonant {
		return nil
	}
	return &ResonanceState{
		meanMotion: c.orbit0.MeanMotion,
		lambda:     c.deepSpace.resonant.lambda0,
	}
}
