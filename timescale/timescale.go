// Package timescale converts between the time scales a satellite pipeline
// has to juggle: UTC (what a time.Time gives you), TT (what SGP4's secular
// theory and the nutation series are built on), and UT1 (what Earth's
// actual rotation angle is built on).
package timescale

import (
	"math"
	"time"
)

// SecPerDay is the number of SI seconds in a day.
const SecPerDay = 86400.0

// leapSecondEntry is one row of the UTC leap-second table: offset seconds
// become effective at jdUTC.
type leapSecondEntry struct {
	jdUTC  float64
	offset float64
}

// leapSeconds lists TAI-UTC at each leap-second insertion, starting from the
// initial 10s offset that opened the leap-second era on 1972-01-01.
var leapSeconds = []leapSecondEntry{
	{2441317.5, 10},
	{2441499.5, 11},
	{2441683.5, 12},
	{2442048.5, 13},
	{2442413.5, 14},
	{2442778.5, 15},
	{2443144.5, 16},
	{2443509.5, 17},
	{2443874.5, 18},
	{2444239.5, 19},
	{2444786.5, 20},
	{2445151.5, 21},
	{2445516.5, 22},
	{2446247.5, 23},
	{2447161.5, 24},
	{2447892.5, 25},
	{2448257.5, 26},
	{2448804.5, 27},
	{2449169.5, 28},
	{2449534.5, 29},
	{2450083.5, 30},
	{2450630.5, 31},
	{2451179.5, 32},
	{2453736.5, 33},
	{2454832.5, 34},
	{2456109.5, 35},
	{2457204.5, 36},
	{2457754.5, 37},
}

// LeapSecondOffset returns TAI-UTC, in seconds, effective at jdUTC. Before
// the leap-second era it returns the initial 10s offset; after the last
// known insertion it returns the latest known value.
func LeapSecondOffset(jdUTC float64) float64 {
	if jdUTC < leapSeconds[0].jdUTC {
		return leapSeconds[0].offset
	}
	offset := leapSeconds[0].offset
	for _, e := range leapSeconds {
		if jdUTC < e.jdUTC {
			break
		}
		offset = e.offset
	}
	return offset
}

// deltaTEntry is one row of the historical/predicted ΔT = TT-UT1 table, in
// seconds, tabulated at whole Besselian years.
type deltaTEntry struct {
	year float64
	dt   float64
}

// deltaTTable holds decadal ΔT estimates from the long-term historical
// record through the current predicted near-term values. Between entries,
// DeltaT interpolates linearly; outside the table it clamps to the nearest
// end.
var deltaTTable = []deltaTEntry{
	{1800, 18.3670}, {1810, 15.4367}, {1820, 13.1240}, {1830, 12.0290},
	{1840, 10.9980}, {1850, 9.4190}, {1860, 7.8800}, {1870, 1.8200},
	{1880, -5.0400}, {1890, -5.7100}, {1900, -2.7200}, {1910, 3.8600},
	{1920, 10.4600}, {1930, 17.2000}, {1940, 21.1600}, {1950, 29.0700},
	{1960, 33.1500}, {1970, 40.1800}, {1980, 50.5400}, {1990, 56.8600},
	{2000, 63.8290}, {2010, 66.0700}, {2020, 69.3600}, {2030, 72.0000},
	{2040, 75.0000}, {2050, 78.0000}, {2060, 81.0000}, {2070, 84.0000},
	{2080, 87.0000}, {2090, 90.0000}, {2100, 93.0000}, {2110, 96.0000},
	{2120, 99.0000}, {2130, 102.0000}, {2140, 105.0000}, {2150, 108.0000},
	{2160, 111.0000}, {2170, 114.0000}, {2180, 117.0000}, {2190, 120.0000},
	{2200, 123.0000},
}

// DeltaT estimates ΔT = TT - UT1, in seconds, at a decimal year. Years
// before the table's first entry or after its last are clamped to that
// entry's value.
func DeltaT(year float64) float64 {
	n := len(deltaTTable)
	if year <= deltaTTable[0].year {
		return deltaTTable[0].dt
	}
	if year >= deltaTTable[n-1].year {
		return deltaTTable[n-1].dt
	}
	idx := int((year - deltaTTable[0].year) / 10.0)
	if idx >= n-1 {
		idx = n - 2
	}
	lo, hi := deltaTTable[idx], deltaTTable[idx+1]
	frac := (year - lo.year) / (hi.year - lo.year)
	return lo.dt + frac*(hi.dt-lo.dt)
}

// TimeToJDUTC converts a UTC time.Time to a Julian date.
func TimeToJDUTC(t time.Time) float64 {
	t = t.UTC()
	year, month, day := t.Date()

	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	dayFrac := (float64(t.Hour())*3600.0 + float64(t.Minute())*60.0 + float64(t.Second()) + float64(t.Nanosecond())/1e9) / SecPerDay
	return float64(jdn) - 0.5 + dayFrac
}

// UTCToTT converts a UTC Julian date to TT, applying the current leap
// second offset and the fixed 32.184s TT-TAI offset.
func UTCToTT(jdUTC float64) float64 {
	return jdUTC + (LeapSecondOffset(jdUTC)+32.184)/SecPerDay
}

// TTToUT1 converts a TT Julian date to UT1 using the ΔT estimate at that
// epoch.
func TTToUT1(jdTT float64) float64 {
	year := 2000.0 + (jdTT-2451545.0)/365.25
	return jdTT - DeltaT(year)/SecPerDay
}

// TDBMinusTT returns TDB-TT, in seconds, at a TT Julian date: the ~1.658ms
// periodic term driven by Earth's orbital eccentricity (Fairhead & Bretagnon
// 1990's leading term).
func TDBMinusTT(jdTT float64) float64 {
	g := 357.53 + 0.9856003*(jdTT-2451545.0)
	gRad := g * math.Pi / 180.0
	return 0.001658 * math.Sin(gRad+0.0167*math.Sin(gRad))
}
