package sgp4

import (
	"math"

	"github.com/anupshinde/goeph/gravity"
)

// FromTLEElements builds propagation Constants from a Two-Line Element's
// numeric fields, using the IAU sidereal-time convention and the WGS84
// gravity model for secular propagation (WGS72 for the Kozai-to-Brouwer
// mean motion conversion, matching how TLEs were originally fit).
//
// t0 is the epoch expressed as years since UTC 2000-01-01T12:00. Angles
// (inclinationDeg, rightAscensionDeg, argumentOfPerigeeDeg, meanAnomalyDeg)
// are in degrees; meanMotionRevPerDay is revolutions per day, the TLE
// convention.
func FromTLEElements(
	t0, dragTerm float64,
	inclinationDeg, rightAscensionDeg, eccentricity, argumentOfPerigeeDeg, meanAnomalyDeg, meanMotionRevPerDay float64,
) (*Constants, error) {
	orbit0, err := FromKozaiElements(
		gravity.WGS72,
		inclinationDeg*(math.Pi/180.0),
		rightAscensionDeg*(math.Pi/180.0),
		eccentricity,
		argumentOfPerigeeDeg*(math.Pi/180.0),
		meanAnomalyDeg*(math.Pi/180.0),
		meanMotionRevPerDay*(math.Pi/720.0),
	)
	if err != nil {
		return nil, err
	}
	return New(gravity.WGS84, gravity.IAUEpochToSiderealTime, t0, dragTerm, orbit0)
}

// FromTLEElementsAFSPCCompatibilityMode is FromTLEElements, but uses the
// WGS72 gravity model throughout and the AFSPC sidereal-time convention,
// reproducing the reference AFSPC implementation's behavior bit-for-bit
// where the two conventions diverge.
func FromTLEElementsAFSPCCompatibilityMode(
	t0, dragTerm float64,
	inclinationDeg, rightAscensionDeg, eccentricity, argumentOfPerigeeDeg, meanAnomalyDeg, meanMotionRevPerDay float64,
) (*Constants, error) {
	orbit0, err := FromKozaiElements(
		gravity.WGS72,
		inclinationDeg*(math.Pi/180.0),
		rightAscensionDeg*(math.Pi/180.0),
		eccentricity,
		argumentOfPerigeeDeg*(math.Pi/180.0),
		meanAnomalyDeg*(math.Pi/180.0),
		meanMotionRevPerDay*(math.Pi/720.0),
	)
	if err != nil {
		return nil, err
	}
	return New(gravity.WGS72, gravity.AFSPCEpochToSiderealTime, t0, dragTerm, orbit0)
}
