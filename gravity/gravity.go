// Package gravity holds the physical constants an SGP4/SDP4 propagator is
// built on: the two canonical WGS72/WGS84 Earth gravity models, and the
// sidereal-time conversion functions a caller plugs into sgp4.Constants.New.
//
// Gravity-model table authorship and sidereal-time theory are treated as
// external collaborators by the propagator core (sgp4 package) — it only
// consumes the numbers. This package is where a caller gets them from.
package gravity

import "math"

// TwoPi is 2π, used throughout the propagator for angle wrapping.
const TwoPi = 2 * math.Pi

// SiderealSpeed is the Earth's mean sidereal rotation rate θ̇, in
// radians per minute.
const SiderealSpeed = 4.37526908801129966e-3

// Model holds the physical constants of an Earth gravity field used by
// SGP4/SDP4: the equatorial radius, the square root of the gravitational
// parameter (in Earth-radii^1.5 per minute), and the zonal harmonics J2,
// J3, J4. A Model is immutable once constructed; WGS72 and WGS84 are the
// two canonical tables.
type Model struct {
	// Ae is the equatorial radius, in km. Distances computed internally
	// are normalized to Earth radii; Ae is the one place that scale is
	// converted back to km.
	Ae float64

	// Ke is the square root of the Earth's gravitational parameter,
	// expressed in Earth-radii^1.5 per minute.
	Ke float64

	// J2, J3, J4 are the Earth's zonal gravity harmonics.
	J2, J3, J4 float64
}

// WGS72 is the 1972 World Geodetic System gravity model, the one the
// original NORAD SGP4 element sets were fit against.
var WGS72 = Model{
	Ae: 6378.135,
	Ke: 0.07436691613317342,
	J2: 0.001082616,
	J3: -0.00000253881,
	J4: -0.00000165597,
}

// WGS84 is the 1984 World Geodetic System gravity model.
var WGS84 = Model{
	Ae: 6378.137,
	Ke: 0.07436685316871385,
	J2: 0.00108262998905,
	J3: -0.00000253215306,
	J4: -0.00000161098761,
}

// gmstPolynomial evaluates the IAU-82 Greenwich Mean Sidereal Time
// polynomial at the UT1 Julian date jd, returning an angle in radians
// that has not yet been reduced to [0, 2π).
func gmstPolynomial(jd float64) float64 {
	const deg2rad = math.Pi / 180.0
	t := (jd - 2451545.0) / 36525.0
	seconds := -6.2e-6*t*t*t + 0.093104*t*t + (876600.0*3600.0+8640184.812866)*t + 67310.54841
	return seconds * deg2rad / 240.0
}

// AFSPCEpochToSiderealTime converts t0, years since UTC 1 January 2000
// 12h00, to Greenwich sidereal time in radians using the classic AFSPC
// reference implementation's wrap-to-positive convention (matching the
// legacy SGP4 release's gstime routine).
func AFSPCEpochToSiderealTime(t0 float64) float64 {
	jd := 2451545.0 + t0*365.25
	theta := math.Mod(gmstPolynomial(jd), TwoPi)
	if theta < 0.0 {
		theta += TwoPi
	}
	return theta
}

// IAUEpochToSiderealTime converts t0, years since UTC 1 January 2000
// 12h00, to Greenwich sidereal time in radians using the same IAU-82
// polynomial but the plain (possibly negative) modular reduction, the
// way the non-AFSPC propagation path expects it.
func IAUEpochToSiderealTime(t0 float64) float64 {
	jd := 2451545.0 + t0*365.25
	return math.Mod(gmstPolynomial(jd), TwoPi)
}
