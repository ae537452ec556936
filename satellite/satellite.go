// Package satellite wraps the sgp4 propagator with the pieces a caller
// working from Two-Line Elements actually needs: TLE parsing, a sidereal
// sub-satellite point, TEME-to-ICRF conversion, and pass prediction.
package satellite

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/anupshinde/goeph/coord"
	"github.com/anupshinde/goeph/elements"
	"github.com/anupshinde/goeph/gravity"
	"github.com/anupshinde/goeph/search"
	"github.com/anupshinde/goeph/sgp4"
	"github.com/anupshinde/goeph/timescale"
)

// earthMuKm3s2 is Earth's gravitational parameter GM, in km³/s², derived
// from the WGS72 Ke/Ae constants SGP4 itself is built on (Ke is in
// Earth-radii^1.5 per minute).
var earthMuKm3s2 = gravity.WGS72.Ke * gravity.WGS72.Ke * gravity.WGS72.Ae * gravity.WGS72.Ae * gravity.WGS72.Ae / 3600.0

// Sat holds a named satellite's propagation constants and the epoch they
// were built from, in AFSPC compatibility mode (WGS72 throughout), matching
// how the overwhelming majority of published TLEs are meant to be
// propagated.
type Sat struct {
	Name      string
	Constants *sgp4.Constants
	EpochJD   float64
}

// NewSat parses a two-line element set and builds a Sat ready to
// propagate. It returns an error if the lines are malformed or the
// resulting mean elements are invalid.
func NewSat(name, line1, line2 string) (Sat, error) {
	e, err := parseTLE(line1, line2)
	if err != nil {
		return Sat{}, errors.Wrap(err, "parsing TLE")
	}

	t0 := e.epochT0()
	constants, err := sgp4.FromTLEElementsAFSPCCompatibilityMode(
		t0, e.dragTerm,
		e.inclination, e.rightAscension, e.eccentricity, e.argumentOfPerigee, e.meanAnomaly, e.meanMotion,
	)
	if err != nil {
		return Sat{}, errors.Wrap(err, "building propagation constants")
	}

	return Sat{
		Name:      name,
		Constants: constants,
		EpochJD:   dayOfYearToJD(e.epochYear, e.epochDay),
	}, nil
}

// minutesSinceEpoch returns the elapsed time, in minutes, from a Sat's TLE
// epoch to t.
func (s Sat) minutesSinceEpoch(t time.Time) float64 {
	jd := timescale.TimeToJDUTC(t)
	return (jd - s.EpochJD) * 1440.0
}

// Propagate evaluates a Sat's TEME position (km) and velocity (km/s) at t.
func (s Sat) Propagate(t time.Time) (sgp4.Prediction, error) {
	return s.Constants.PropagateAFSPCCompatibilityMode(s.minutesSinceEpoch(t))
}

// OsculatingElements returns the instantaneous Keplerian orbital elements of
// a Sat's TEME state vector at t — the classical elements that best
// describe the orbit if perturbations stopped acting at that instant.
func OsculatingElements(s Sat, t time.Time) (elements.OsculatingElements, error) {
	p, err := s.Propagate(t)
	if err != nil {
		return elements.OsculatingElements{}, err
	}
	return elements.FromStateVector(p.Position, p.Velocity, earthMuKm3s2), nil
}

// SubPoint returns the sub-satellite point (geographic lat/lon in degrees)
// at t.
func SubPoint(s Sat, t time.Time) (latDeg, lonDeg float64, err error) {
	p, err := s.Propagate(t)
	if err != nil {
		return 0, 0, err
	}

	jd := timescale.TimeToJDUTC(t)
	gmst := gravity.AFSPCEpochToSiderealTime((jd - 2451545.0) / 365.25)

	x, y, z := p.Position[0], p.Position[1], p.Position[2]
	lon := math.Atan2(y, x) - gmst
	lat := math.Atan2(z, math.Sqrt(x*x+y*y))

	latDeg = lat * 180.0 / math.Pi
	lonDeg = math.Mod(lon*180.0/math.Pi+360.0, 360.0)
	return latDeg, lonDeg, nil
}

// TEMEToICRF converts a TEME (True Equator, Mean Equinox) position vector
// from SGP4 propagation to ICRF/GCRS coordinates.
//
// posKmTEME is the satellite position in km from SGP4 (TEME frame).
// jdUT1 is the UT1 Julian date (used to evaluate nutation and precession).
//
// The TEME frame is the output frame of SGP4. It uses the true equator of
// date but a "mean" equinox that differs from the classical mean equinox
// by the equation of the equinoxes. The conversion chain is:
//
//	TEME → equator of date (via equation of equinoxes rotation)
//	     → mean equator of date (via nutation^-1)
//	     → ICRF/J2000 (via precession^-1)
//
// This matches Skyfield's TEME→GCRS conversion for SGP4 satellite positions.
func TEMEToICRF(posKmTEME [3]float64, jdUT1 float64) [3]float64 {
	return coord.TEMEToICRF(posKmTEME, jdUT1)
}

// Event kinds returned by FindEvents.
const (
	Rise        = 0 // Satellite rises above the altitude threshold
	Culmination = 1 // Satellite reaches maximum altitude during a pass
	Set         = 2 // Satellite sets below the altitude threshold
)

// SatEvent represents a satellite pass event (rise, culmination, or set).
type SatEvent struct {
	T      float64 // TT Julian date of the event
	Kind   int     // Rise=0, Culmination=1, Set=2
	AltDeg float64 // Altitude in degrees at the event time
}

// FindEvents finds satellite rise, culmination, and set events as seen from a
// ground observer in the given TT Julian date range.
//
// latDeg, lonDeg: observer geodetic latitude and longitude in degrees.
// minAltDeg: minimum altitude threshold in degrees (typically 0).
//
// Returns events sorted by time. Each visible pass produces up to three events:
// Rise (satellite crosses above threshold), Culmination (maximum altitude),
// and Set (satellite crosses below threshold).
func FindEvents(sat Sat, latDeg, lonDeg, startJD, endJD, minAltDeg float64) ([]SatEvent, error) {
	// Step size ~1 minute. LEO orbital period ~90 min, shortest visible pass ~2 min.
	const stepDays = 1.0 / 1440.0 // 1 minute

	altFunc := satAltitudeFunc(sat, latDeg, lonDeg)

	// Find rise/set transitions using discrete search.
	discreteFunc := func(ttJD float64) int {
		if altFunc(ttJD) >= minAltDeg {
			return 1
		}
		return 0
	}
	transitions, err := search.FindDiscrete(startJD, endJD, stepDays, discreteFunc, 0)
	if err != nil {
		return nil, err
	}

	// Group transitions into passes and find culminations.
	var events []SatEvent
	for i := 0; i < len(transitions); i++ {
		e := transitions[i]
		if e.NewValue == 1 {
			// Rise event.
			riseT := e.T
			events = append(events, SatEvent{T: riseT, Kind: Rise, AltDeg: altFunc(riseT)})

			// Look for the matching set event.
			setT := endJD
			if i+1 < len(transitions) && transitions[i+1].NewValue == 0 {
				setT = transitions[i+1].T
				i++ // consume the set event

				// Find culmination between rise and set.
				maxima, err := search.FindMaxima(riseT, setT, stepDays, altFunc, 0)
				if err == nil && len(maxima) > 0 {
					// Use the highest maximum.
					best := maxima[0]
					for _, m := range maxima[1:] {
						if m.Value > best.Value {
							best = m
						}
					}
					events = append(events, SatEvent{T: best.T, Kind: Culmination, AltDeg: best.Value})
				}

				events = append(events, SatEvent{T: setT, Kind: Set, AltDeg: altFunc(setT)})
			}
		}
	}

	return events, nil
}

// satAltitudeFunc returns a function that computes the satellite's altitude
// in degrees as seen from the given ground observer at a TT Julian date.
func satAltitudeFunc(sat Sat, latDeg, lonDeg float64) func(float64) float64 {
	// Observer's geocentric distance (km) on the WGS84 ellipsoid, used to
	// scale coord.GeodeticToICRF's unit direction into a position.
	const wgs84A = 6378.137
	const wgs84F = 1.0 / 298.257223563
	const wgs84E2 = wgs84F * (2.0 - wgs84F)
	sinLat, cosLat := math.Sincos(latDeg * math.Pi / 180.0)
	normalRadius := wgs84A / math.Sqrt(1.0-wgs84E2*sinLat*sinLat)
	observerDistKm := normalRadius * math.Hypot(cosLat, (1.0-wgs84E2)*sinLat)

	return func(ttJD float64) float64 {
		jdUT1 := timescale.TTToUT1(ttJD)

		minutes := (jdUT1 - sat.EpochJD) * 1440.0
		p, err := sat.Constants.PropagateAFSPCCompatibilityMode(minutes)
		if err != nil {
			return math.Inf(-1)
		}

		// SGP4 position is in km, TEME frame. Convert to ICRF.
		satICRF := coord.TEMEToICRF(p.Position, jdUT1)

		// Observer position in ICRF (km).
		ux, uy, uz := coord.GeodeticToICRF(latDeg, lonDeg, jdUT1)
		ox, oy, oz := ux*observerDistKm, uy*observerDistKm, uz*observerDistKm

		// Topocentric vector in ICRF.
		topoICRF := [3]float64{
			satICRF[0] - ox,
			satICRF[1] - oy,
			satICRF[2] - oz,
		}

		alt, _, _ := coord.Altaz(topoICRF, latDeg, lonDeg, jdUT1)
		return alt
	}
}
