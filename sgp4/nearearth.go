package sgp4

import (
	"math"

	"github.com/anupshinde/goeph/gravity"
)

// newNearEarthConstants extends CommonConstants with the short-period
// coefficients (precomputed once here since near-Earth orbits never
// perturb inclination, unlike deep-space ones) and, when the perigee
// altitude is at least 220 km, the higher-order drag polynomial terms.
func newNearEarthConstants(model gravity.Model, dragTerm float64, orbit0 Orbit, p0, a0, s, xi, eta, c1, p1 float64) nearEarth {
	cosI := math.Cos(orbit0.Inclination)
	sinI := math.Sin(orbit0.Inclination)

	n := nearEarth{
		a0: a0,
		k2: -0.5 * (model.J3 / model.J2) * sinI,
		k3: 1.0 - cosI*cosI,
		k4: 7.0*cosI*cosI - 1.0,
		k5: shortPeriodK5(model, orbit0.Inclination),
		k6: 3.0*cosI*cosI - 1.0,
	}

	perigeeAltitude := a0*(1.0-orbit0.Eccentricity) - 1.0
	if perigeeAltitude < 220.0/model.Ae {
		return n
	}

	perigee := model.Ae * perigeeAltitude
	var p4 float64
	switch {
	case perigee < 98.0:
		p4 = 20.0
	case perigee < 156.0:
		p4 = perigee - 78.0
	default:
		p4 = 78.0
	}
	p5 := math.Pow((120.0-p4)/model.Ae, 4)
	p7 := math.Abs(1.0 - eta*eta)
	coef := p5 * math.Pow(xi, 4) / math.Pow(p7, 3.5)

	eeta := orbit0.Eccentricity * eta
	c5 := 2.0 * coef * a0 * math.Sqrt(p1) * (1.0 + 2.75*(eta*eta+eeta) + eeta*eta*eta)

	d2 := 4.0 * a0 * xi * c1 * c1
	temp := d2 * xi * c1 / 3.0
	d3 := (17.0*a0 + s) * temp
	d4 := 0.5 * temp * a0 * xi * (221.0*a0 + 31.0*s) * c1

	t3cof := d2 + 2.0*c1*c1
	t4cof := 0.25 * (3.0*d3 + c1*(12.0*d2+10.0*c1*c1))
	t5cof := 0.2 * (3.0*d4 + 12.0*c1*d3 + 6.0*d2*d2 + 15.0*c1*c1*(2.0*d2+c1*c1))

	var c3 float64
	if orbit0.Eccentricity > 1.0e-4 {
		c3 = coef * xi * (model.J3 / model.J2) * orbit0.MeanMotion * sinI / orbit0.Eccentricity
	}
	omgcof := dragTerm * c3 * math.Cos(orbit0.ArgumentOfPerigee)

	var xmcof float64
	if eta > 1.0e-4 {
		xmcof = -2.0 / 3.0 * coef * dragTerm / eta
	}

	delmtemp := 1.0 + eta*math.Cos(orbit0.MeanAnomaly)
	delmo := delmtemp * delmtemp * delmtemp
	sinmao := math.Sin(orbit0.MeanAnomaly)

	n.full = &fullCoefficients{
		c5: c5, d2: d2, d3: d3, d4: d4,
		t3cof: t3cof, t4cof: t4cof, t5cof: t5cof,
		omgcof: omgcof, xmcof: xmcof,
		delmo: delmo, sinmao: sinmao,
		eta: eta,
	}
	return n
}

// shortPeriodK5 computes p33, the short-period coefficient that carries the
// |1 + cos I| < 1.5e-12 guard for orbits near I = π.
func shortPeriodK5(model gravity.Model, inclination float64) float64 {
	cosI := math.Cos(inclination)
	sinI := math.Sin(inclination)
	denominator := 1.0 + cosI
	if math.Abs(denominator) <= 1.5e-12 {
		denominator = 1.5e-12
	}
	return -0.25 * (model.J3 / model.J2) * sinI * (3.0 + 5.0*cosI) / denominator
}

// propagateNearEarth evaluates the secular drag-perturbed orbital elements
// at elapsed time t minutes, returning the same (orbit, a, L, p30..p34)
// tuple the deep-space path produces so PropagateFromState can treat both
// uniformly.
func (c *Constants) propagateNearEarth(t, p21, p22 float64) (Orbit, float64, float64, float64, float64, float64, float64, float64, error) {
	n := c.nearEarth

	xmdf := c.orbit0.MeanAnomaly + c.meanAnomalyDot*t
	argpm := p22
	mm := xmdf

	t2 := t * t
	tempa := 1.0 - c.c1*t
	tempe := c.dragTerm * c.c4 * t
	templ := c.k1 * t2

	if n.full != nil {
		f := n.full
		delmtemp := 1.0 + f.eta*math.Cos(xmdf)
		delm := f.xmcof * (delmtemp*delmtemp*delmtemp - f.delmo)
		delomg := f.omgcof * t
		temp := delomg + delm
		mm = xmdf + temp
		argpm = p22 - temp

		t3 := t2 * t
		t4 := t3 * t
		tempa = tempa - f.d2*t2 - f.d3*t3 - f.d4*t4
		tempe = tempe + c.dragTerm*f.c5*(math.Sin(mm)-f.sinmao)
		templ = templ + f.t3cof*t3 + t4*(f.t4cof+t*f.t5cof)
	}

	a := n.a0 * tempa * tempa
	eccentricity := c.orbit0.Eccentricity - tempe
	if eccentricity >= 1.0 || eccentricity < -0.001 {
		return Orbit{}, 0, 0, 0, 0, 0, 0, 0, Error{"diverging eccentricity"}
	}
	if eccentricity < 1.0e-6 {
		eccentricity = 1.0e-6
	}

	meanAnomaly := mm + c.orbit0.MeanMotion*templ

	orbit := Orbit{
		Inclination:       c.orbit0.Inclination,
		RightAscension:    p21,
		Eccentricity:      eccentricity,
		ArgumentOfPerigee: argpm,
		MeanAnomaly:       meanAnomaly,
		MeanMotion:        c.model.Ke / math.Pow(a, 1.5),
	}

	return orbit, a, meanAnomaly, n.k2, n.k3, n.k4, n.k5, n.k6, nil
}
