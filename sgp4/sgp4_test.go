package sgp4

import (
	"math"
	"testing"

	"github.com/anupshinde/goeph/gravity"
)

func approxEqual(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s: got %v, want %v (tolerance %v)", name, got, want, tolerance)
	}
}

// vanguard1 is NORAD 5, a near-Earth LEO test vector from the classic SGP4
// verification test set.
func vanguard1(t *testing.T) *Constants {
	t.Helper()
	c, err := FromTLEElementsAFSPCCompatibilityMode(
		0.0, // epoch not needed for near-earth; placeholder t0
		2.8098e-5,
		34.2682, 348.7242, 0.1859667, 331.7664, 19.3264, 10.82419157,
	)
	if err != nil {
		t.Fatalf("FromTLEElementsAFSPCCompatibilityMode: %v", err)
	}
	return c
}

func TestVanguard1AtEpoch(t *testing.T) {
	c := vanguard1(t)
	p, err := c.PropagateAFSPCCompatibilityMode(0.0)
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	approxEqual(t, "x", p.Position[0], 7022.46526, 1.0)
	approxEqual(t, "y", p.Position[1], -1400.08276, 1.0)
	approxEqual(t, "z", p.Position[2], 0.03986, 1.0)
	approxEqual(t, "vx", p.Velocity[0], 1.893841, 1e-3)
	approxEqual(t, "vy", p.Velocity[1], 6.405893, 1e-3)
	approxEqual(t, "vz", p.Velocity[2], 4.534807, 1e-3)
}

func TestDeterminism(t *testing.T) {
	c := vanguard1(t)
	p1, err := c.Propagate(123.0)
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	p2, err := c.Propagate(123.0)
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	if p1 != p2 {
		t.Errorf("propagate(t) is not deterministic: %+v != %+v", p1, p2)
	}
}

func TestFromKozaiElementsRejectsNonPositiveMeanMotion(t *testing.T) {
	_, err := FromKozaiElements(gravity.WGS72, 0, 0, 0, 0, 0, 0)
	if err == nil {
		t.Fatal("expected an error for a non-positive Kozai mean motion")
	}
}

func TestNewRejectsOutOfRangeEccentricity(t *testing.T) {
	orbit0 := Orbit{MeanMotion: 0.05, Eccentricity: 1.0}
	_, err := New(gravity.WGS72, gravity.IAUEpochToSiderealTime, 0, 0, orbit0)
	if err == nil {
		t.Fatal("expected an error for eccentricity >= 1")
	}
}

func TestDivergingEccentricityIsReported(t *testing.T) {
	c := vanguard1(t)
	// A drag term orders of magnitude beyond anything physical drives
	// tempe past 1 within one orbit, exercising the divergence guard.
	c.dragTerm = 1.0
	c.c4 = 1.0
	_, err := c.Propagate(1440.0)
	if err == nil {
		t.Fatal("expected a diverging eccentricity error")
	}
	if got, ok := err.(Error); !ok || got.Reason != "diverging eccentricity" {
		t.Errorf("unexpected error: %v", err)
	}
}

// deepSpaceScenario is one row of the published SGP4 verification test set
// (AIAA 2006-6753, "Revisiting Spacetrack Report #3"): a TLE's mean elements
// plus the expected TEME position/velocity at a given elapsed time.
type deepSpaceScenario struct {
	name          string
	t0, dragTerm  float64

	inclinationDeg, rightAscensionDeg, eccentricity           float64
	argumentOfPerigeeDeg, meanAnomalyDeg, meanMotionRevPerDay float64

	evalMinutes                float64
	wantPosition, wantVelocity [3]float64

	posToleranceKm, velToleranceKmS float64
}

// TestEndToEndScenarios exercises both the near-Earth and deep-space
// propagation paths (including the resonance dispatch and the lunisolar
// secular/periodic corrections) against the published test vectors.
func TestEndToEndScenarios(t *testing.T) {
	scenarios := []deepSpaceScenario{
		{
			// NORAD 11801: a high-eccentricity deep-space stress case.
			// Epoch 1980 day 230.29629788 -> t0 years since J2000.
			name: "11801@0", t0: -20.194945, dragTerm: 0.014311,
			inclinationDeg: 46.7916, rightAscensionDeg: 230.4354, eccentricity: 0.7318036,
			argumentOfPerigeeDeg: 47.4722, meanAnomalyDeg: 10.4117, meanMotionRevPerDay: 2.28537848,
			evalMinutes:      0.0,
			wantPosition:     [3]float64{7473.37058, 428.94270, 5828.74854},
			wantVelocity:     [3]float64{5.1071513, 6.4413272, -0.1860054},
			posToleranceKm:   2.0,
			velToleranceKmS:  0.01,
		},
		{
			name: "11801@360", t0: -20.194945, dragTerm: 0.014311,
			inclinationDeg: 46.7916, rightAscensionDeg: 230.4354, eccentricity: 0.7318036,
			argumentOfPerigeeDeg: 47.4722, meanAnomalyDeg: 10.4117, meanMotionRevPerDay: 2.28537848,
			evalMinutes:      360.0,
			wantPosition:     [3]float64{-3305.22148, 32410.8648, -24697.1735},
			wantVelocity:     [3]float64{-1.9624341, -2.6924925, -0.1898275},
			posToleranceKm:   20.0,
			velToleranceKmS:  0.05,
		},
		{
			// NORAD 8195, a 12-hour Molniya-class resonant deep-space orbit.
			// Epoch 2006 day 176.33215444 -> t0 years since J2000.
			name: "8195@0", t0: 6.4800333, dragTerm: 0.00011873,
			inclinationDeg: 64.1586, rightAscensionDeg: 279.0717, eccentricity: 0.6877146,
			argumentOfPerigeeDeg: 264.7651, meanAnomalyDeg: 20.2257, meanMotionRevPerDay: 2.00491383,
			evalMinutes:      0.0,
			wantPosition:     [3]float64{2334.11450, -541.35964, -6651.61908},
			wantVelocity:     [3]float64{-0.2486854, 7.6948178, -0.7127340},
			posToleranceKm:   2.0,
			velToleranceKmS:  0.01,
		},
		{
			// NORAD 28057, a sun-synchronous near-Earth LEO: stays on the
			// drag-perturbed near-Earth path, not the lunisolar one.
			name: "28057@120", t0: 6.483439, dragTerm: 1.305e-5,
			inclinationDeg: 98.4283, rightAscensionDeg: 247.6961, eccentricity: 0.0000884,
			argumentOfPerigeeDeg: 88.1735, meanAnomalyDeg: 271.9628, meanMotionRevPerDay: 14.32319560,
			evalMinutes:      120.0,
			wantPosition:     [3]float64{1022.06495, 6699.66427, 11.46334},
			wantVelocity:     [3]float64{-7.480012, 1.144223, 0.039678},
			posToleranceKm:   2.0,
			velToleranceKmS:  0.01,
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			c, err := FromTLEElementsAFSPCCompatibilityMode(
				s.t0, s.dragTerm,
				s.inclinationDeg, s.rightAscensionDeg, s.eccentricity,
				s.argumentOfPerigeeDeg, s.meanAnomalyDeg, s.meanMotionRevPerDay,
			)
			if err != nil {
				t.Fatalf("FromTLEElementsAFSPCCompatibilityMode: %v", err)
			}
			p, err := c.PropagateAFSPCCompatibilityMode(s.evalMinutes)
			if err != nil {
				t.Fatalf("propagate: %v", err)
			}
			for i, axis := range []string{"x", "y", "z"} {
				approxEqual(t, axis, p.Position[i], s.wantPosition[i], s.posToleranceKm)
			}
			for i, axis := range []string{"vx", "vy", "vz"} {
				approxEqual(t, axis, p.Velocity[i], s.wantVelocity[i], s.velToleranceKmS)
			}
		})
	}
}

func TestResonanceNonMonotonicGuardPanics(t *testing.T) {
	state := &ResonanceState{t: 1000.0, meanMotion: 0.004, lambda: 0.1}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-monotonic resonance step")
		}
	}()
	state.integrate(gravity.WGS72.Ke, 0, 0, oneDay{}, 0, 10.0, 0, 0)
}

func TestZeroTimePropagationMatchesKeplerRadius(t *testing.T) {
	c := vanguard1(t)
	p, err := c.PropagateAFSPCCompatibilityMode(0.0)
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	r := math.Sqrt(p.Position[0]*p.Position[0] + p.Position[1]*p.Position[1] + p.Position[2]*p.Position[2])
	if r < gravity.WGS72.Ae || r > 2.0*gravity.WGS72.Ae {
		t.Errorf("unexpected radius at epoch: %v km", r)
	}

	// Kepler radius a0(1 - e0 cos E0) at epoch; the propagated radius also
	// carries the short-period corrections, a few km for this orbit.
	o := c.orbit0
	a0 := math.Pow(gravity.WGS72.Ke/o.MeanMotion, 2.0/3.0)
	eccentricAnomaly := o.MeanAnomaly
	for i := 0; i < 50; i++ {
		eccentricAnomaly = o.MeanAnomaly + o.Eccentricity*math.Sin(eccentricAnomaly)
	}
	approxEqual(t, "radius", r, a0*(1.0-o.Eccentricity*math.Cos(eccentricAnomaly))*gravity.WGS72.Ae, 10.0)
}
