package satellite

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// elements holds the numeric fields extracted from a Two-Line Element set,
// in the units the TLE format stores them: degrees, revolutions per day,
// and a bare decimal eccentricity.
type elements struct {
	epochYear         int
	epochDay          float64
	dragTerm          float64
	inclination       float64
	rightAscension    float64
	eccentricity      float64
	argumentOfPerigee float64
	meanAnomaly       float64
	meanMotion        float64
}

// parseTLE extracts the orbital elements from a standard two-line element
// set. It validates line length and the line-number markers but does not
// verify the checksum: a corrupted but correctly shaped TLE is the caller's
// problem to detect some other way.
func parseTLE(line1, line2 string) (elements, error) {
	if len(line1) < 69 || len(line2) < 69 {
		return elements{}, errors.New("TLE lines must be at least 69 characters")
	}
	if line1[0] != '1' {
		return elements{}, errors.New("line 1 must start with '1'")
	}
	if line2[0] != '2' {
		return elements{}, errors.New("line 2 must start with '2'")
	}

	epochYear, err := strconv.Atoi(strings.TrimSpace(line1[18:20]))
	if err != nil {
		return elements{}, errors.Wrap(err, "parsing epoch year")
	}
	if epochYear < 57 {
		epochYear += 2000
	} else {
		epochYear += 1900
	}

	epochDay, err := strconv.ParseFloat(strings.TrimSpace(line1[20:32]), 64)
	if err != nil {
		return elements{}, errors.Wrap(err, "parsing epoch day")
	}

	dragTerm, err := parseDecimalAssumed(strings.TrimSpace(line1[53:61]))
	if err != nil {
		return elements{}, errors.Wrap(err, "parsing drag term")
	}

	inclination, err := strconv.ParseFloat(strings.TrimSpace(line2[8:16]), 64)
	if err != nil {
		return elements{}, errors.Wrap(err, "parsing inclination")
	}

	rightAscension, err := strconv.ParseFloat(strings.TrimSpace(line2[17:25]), 64)
	if err != nil {
		return elements{}, errors.Wrap(err, "parsing right ascension")
	}

	eccentricity, err := strconv.ParseFloat("0."+strings.TrimSpace(line2[26:33]), 64)
	if err != nil {
		return elements{}, errors.Wrap(err, "parsing eccentricity")
	}

	argumentOfPerigee, err := strconv.ParseFloat(strings.TrimSpace(line2[34:42]), 64)
	if err != nil {
		return elements{}, errors.Wrap(err, "parsing argument of perigee")
	}

	meanAnomaly, err := strconv.ParseFloat(strings.TrimSpace(line2[43:51]), 64)
	if err != nil {
		return elements{}, errors.Wrap(err, "parsing mean anomaly")
	}

	meanMotion, err := strconv.ParseFloat(strings.TrimSpace(line2[52:63]), 64)
	if err != nil {
		return elements{}, errors.Wrap(err, "parsing mean motion")
	}

	return elements{
		epochYear:         epochYear,
		epochDay:          epochDay,
		dragTerm:          dragTerm,
		inclination:       inclination,
		rightAscension:    rightAscension,
		eccentricity:      eccentricity,
		argumentOfPerigee: argumentOfPerigee,
		meanAnomaly:       meanAnomaly,
		meanMotion:        meanMotion,
	}, nil
}

// parseDecimalAssumed parses TLE-style "assumed decimal point" exponential
// notation, e.g. " 12345-3" meaning 0.12345e-3, or "-12345-3" meaning
// -0.12345e-3.
func parseDecimalAssumed(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	sign := 1.0
	if s[0] == '-' {
		sign = -1.0
		s = s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}

	expSignIdx := strings.IndexAny(s, "+-")
	if expSignIdx < 0 {
		mantissa, err := strconv.ParseFloat("0."+s, 64)
		return sign * mantissa, err
	}

	mantissa, err := strconv.ParseFloat("0."+s[:expSignIdx], 64)
	if err != nil {
		return 0, err
	}
	exponent, err := strconv.Atoi(s[expSignIdx:])
	if err != nil {
		return 0, err
	}
	return sign * mantissa * pow10(exponent), nil
}

func pow10(n int) float64 {
	result := 1.0
	neg := n < 0
	if neg {
		n = -n
	}
	for i := 0; i < n; i++ {
		result *= 10.0
	}
	if neg {
		return 1.0 / result
	}
	return result
}

// epochT0 returns this epoch as years since UTC 2000-01-01T12:00, the t0
// convention the propagator's secular theory is built on.
func (e elements) epochT0() float64 {
	jd := dayOfYearToJD(e.epochYear, e.epochDay)
	return (jd - 2451545.0) / 365.25
}

// dayOfYearToJD converts a year and a fractional day-of-year (1.0 = January
// 1st, 00:00 UTC) to a Julian date.
func dayOfYearToJD(year int, dayOfYear float64) float64 {
	y := float64(year)
	jdJan1 := 367.0*y - math.Floor(1.75*y) + 1721044.5
	return jdJan1 + (dayOfYear - 1.0)
}
