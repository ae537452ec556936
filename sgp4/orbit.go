// Package sgp4 implements the Simplified General Perturbations (SGP4/SDP4)
// orbit propagator: given a satellite's mean orbital elements at an epoch
// and a time offset, it produces the satellite's inertial position and
// velocity in the TEME frame.
//
// The package does not parse Two-Line Elements. New takes the gravity model
// and the sidereal-time function from the caller; FromTLEElements and
// FromTLEElementsAFSPCCompatibilityMode pick the canonical pairings from the
// gravity package.
package sgp4

import (
	"math"

	"github.com/anupshinde/goeph/gravity"
)

// Orbit holds a satellite's mean orbital elements at an epoch: inclination,
// right ascension of the ascending node, eccentricity, argument of perigee,
// mean anomaly, and mean motion (Brouwer, radians per minute). All angles
// are in radians.
type Orbit struct {
	Inclination       float64
	RightAscension    float64
	Eccentricity      float64
	ArgumentOfPerigee float64
	MeanAnomaly       float64
	MeanMotion        float64
}

// FromKozaiElements converts a Kozai mean motion (the convention a TLE
// stores) to the Brouwer mean motion this package's theory is built on.
func FromKozaiElements(
	model gravity.Model,
	inclination, rightAscension, eccentricity, argumentOfPerigee, meanAnomaly, kozaiMeanMotion float64,
) (Orbit, error) {
	if kozaiMeanMotion <= 0.0 {
		return Orbit{}, Error{"the Kozai mean motion must be positive"}
	}

	// a1 = (ke / n0)^(2/3)
	a1 := math.Pow(model.Ke/kozaiMeanMotion, 2.0/3.0)

	cosI := math.Cos(inclination)
	// p2 = (3/4) J2 (3cos^2 I0 - 1) / (1 - e0^2)^(3/2)
	p2 := 0.75 * model.J2 * (3.0*cosI*cosI - 1.0) / math.Pow(1.0-eccentricity*eccentricity, 1.5)

	d1 := p2 / (a1 * a1)
	d0 := p2 / math.Pow(a1*(1.0-d1*d1-d1*(1.0/3.0+134.0*d1*d1/81.0)), 2)

	meanMotion := kozaiMeanMotion / (1.0 + d0)
	if meanMotion <= 0.0 {
		return Orbit{}, Error{"the Brouwer mean motion must be positive"}
	}

	return Orbit{
		Inclination:       inclination,
		RightAscension:    rightAscension,
		Eccentricity:      eccentricity,
		ArgumentOfPerigee: argumentOfPerigee,
		MeanAnomaly:       meanAnomaly,
		MeanMotion:        meanMotion,
	}, nil
}
