package coord

import (
	"math"
	"testing"
)

func TestGMST_J2000(t *testing.T) {
	gmst := GMST(j2000JD)
	if math.Abs(gmst-280.46061837) > 0.001 {
		t.Errorf("GMST at J2000: got %f want ~280.461", gmst)
	}
}

func TestGAST(t *testing.T) {
	gast := GAST(j2000JD)
	gmst := GMST(j2000JD)
	diff := gast - gmst
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}
	if math.Abs(diff) > 0.01 {
		t.Errorf("GAST-GMST difference too large: %f°", diff)
	}
}

func TestNutationAngles(t *testing.T) {
	dpsi, deps := nutationAngles(0)
	dpsiArcsec := dpsi / arcsec2rad
	depsArcsec := deps / arcsec2rad
	if math.Abs(dpsiArcsec) > 30 || math.Abs(depsArcsec) > 30 {
		t.Errorf("nutation at T=0 too large: dpsi=%.3f\" deps=%.3f\"", dpsiArcsec, depsArcsec)
	}
	if dpsiArcsec == 0 && depsArcsec == 0 {
		t.Error("nutation at T=0 is exactly zero (unexpected)")
	}
}

func TestNutationAngles_VaryWithTime(t *testing.T) {
	dpsi0, deps0 := nutationAngles(0)
	dpsi1, deps1 := nutationAngles(1.0) // 1 century later
	if dpsi0 == dpsi1 && deps0 == deps1 {
		t.Error("nutation unchanged after 1 century")
	}
}

func TestFundamentalArgs(t *testing.T) {
	l, lp, F, D, om := fundamentalArgs(0)
	for _, v := range []float64{l, lp, F, D, om} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatal("fundamental args returned NaN or Inf")
		}
	}
}

func TestFundamentalArgs_VaryWithTime(t *testing.T) {
	l0, _, _, _, _ := fundamentalArgs(0)
	l1, _, _, _, _ := fundamentalArgs(0.01)
	if l0 == l1 {
		t.Error("fundamental arg l unchanged with different T")
	}
}

func TestMeanObliquity(t *testing.T) {
	eps := meanObliquity(0)
	epsDeg := eps * rad2deg
	if math.Abs(epsDeg-23.4393) > 0.001 {
		t.Errorf("mean obliquity at T=0: got %.4f° want ~23.4393°", epsDeg)
	}
}

func TestMeanObliquity_Decreasing(t *testing.T) {
	eps0 := meanObliquity(0)
	eps1 := meanObliquity(1.0)
	if eps1 >= eps0 {
		t.Error("mean obliquity should decrease over centuries")
	}
}

func TestNutationMatrixTranspose_Identity(t *testing.T) {
	NT := nutationMatrixTranspose(0, 0, meanObliquity(0))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(NT[i][j]-want) > 1e-10 {
				t.Errorf("NT[%d][%d] = %f, want %f", i, j, NT[i][j], want)
			}
		}
	}
}

func TestNutationMatrixTranspose_NonZero(t *testing.T) {
	dpsi, deps := nutationAngles(0)
	epsM := meanObliquity(0)
	NT := nutationMatrixTranspose(dpsi, deps, epsM)
	if NT[0][1] == 0 || NT[0][2] == 0 {
		t.Error("nutation matrix off-diagonal is zero with nonzero nutation")
	}
}

func TestPrecessionMatrixInverse_T0(t *testing.T) {
	P := precessionMatrixInverse(0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(P[i][j]-want) > 1e-10 {
				t.Errorf("P[%d][%d] = %.15e, want %f", i, j, P[i][j], want)
			}
		}
	}
}

func TestPrecessionMatrixInverse_Orthogonal(t *testing.T) {
	P := precessionMatrixInverse(1.0)
	var prod [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				prod[i][j] += P[i][k] * P[j][k]
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(prod[i][j]-want) > 1e-12 {
				t.Errorf("P*P^T[%d][%d] = %.15e, want %f", i, j, prod[i][j], want)
			}
		}
	}
}

func TestGeodeticToICRF_UnitVector(t *testing.T) {
	x, y, z := GeodeticToICRF(0, 0, j2000JD)
	r := math.Sqrt(x*x + y*y + z*z)
	if math.Abs(r-1.0) > 1e-12 {
		t.Errorf("not a unit vector: |r| = %.15f", r)
	}
}

func TestGeodeticToICRF_Pole(t *testing.T) {
	x, y, z := GeodeticToICRF(90, 0, j2000JD)
	r := math.Sqrt(x*x + y*y + z*z)
	x /= r
	y /= r
	z /= r
	if math.Abs(z) < 0.9 {
		t.Errorf("north pole z too small: %.6f", z)
	}
}

func TestGeodeticToICRF_DifferentTimes(t *testing.T) {
	x0, y0, z0 := GeodeticToICRF(0, 0, j2000JD)
	x1, y1, z1 := GeodeticToICRF(0, 0, j2000JD+0.5) // 12 hours later
	// Earth rotates, so direction should change
	dot := x0*x1 + y0*y1 + z0*z1
	if math.Abs(dot-1.0) < 1e-6 {
		t.Error("geodetic direction unchanged after 12 hours (Earth should have rotated)")
	}
}

func BenchmarkGAST(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GAST(2451545.0 + float64(i))
	}
}

func TestAltaz_Zenith(t *testing.T) {
	// A point directly at the zenith should have altitude ~90°.
	// GeodeticToICRF gives the ICRF direction of a ground point.
	// Altaz of that direction from the same location should be nearly overhead.
	lat, lon := 40.0, -74.0
	jd := j2000JD

	x, y, z := GeodeticToICRF(lat, lon, jd)
	// Scale to some distance (doesn't matter for direction)
	pos := [3]float64{x * 1e6, y * 1e6, z * 1e6}

	alt, az, dist := Altaz(pos, lat, lon, jd)
	_ = az
	if math.Abs(alt-90.0) > 1.0 {
		t.Errorf("zenith altitude = %.4f°, want ~90°", alt)
	}
	if math.Abs(dist-1e6) > 1.0 {
		t.Errorf("distance = %.4f, want 1e6", dist)
	}
}

func TestAltaz_Horizon(t *testing.T) {
	// A point 90° away (in the equatorial plane) should be near the horizon.
	lat, lon := 0.0, 0.0
	jd := j2000JD

	// ICRF direction of (lat=0, lon=90) is roughly 90° away in longitude
	x2, y2, z2 := GeodeticToICRF(0.0, 90.0, jd)
	pos := [3]float64{x2 * 1e6, y2 * 1e6, z2 * 1e6}

	alt, _, _ := Altaz(pos, lat, lon, jd)
	// Should be within a few degrees of the horizon (not exact due to precession/nutation)
	if math.Abs(alt) > 10.0 {
		t.Errorf("horizon point altitude = %.4f°, want near 0°", alt)
	}
}

func TestAltaz_AzimuthRange(t *testing.T) {
	// Azimuth should always be in [0, 360)
	jd := 2451545.0 + 365.25*10.0
	for _, lat := range []float64{-45, 0, 45, 90} {
		for _, lon := range []float64{-180, -90, 0, 90, 180} {
			pos := [3]float64{1e8, 2e8, 3e8}
			alt, az, _ := Altaz(pos, lat, lon, jd)
			_ = alt
			if az < 0 || az >= 360 {
				t.Errorf("lat=%.0f lon=%.0f: az=%.4f outside [0,360)", lat, lon, az)
			}
		}
	}
}

func BenchmarkGeodeticToICRF(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GeodeticToICRF(40.0, -74.0, 2451545.0)
	}
}

func TestTEMEToICRF_PreservesMagnitude(t *testing.T) {
	// Rotation should preserve vector magnitude
	posTEME := [3]float64{6778.0, 1234.0, -3456.0} // typical LEO position, km
	jd := 2451545.0 + 365.25*10                     // 10 years from J2000

	posICRF := TEMEToICRF(posTEME, jd)

	magTEME := math.Sqrt(posTEME[0]*posTEME[0] + posTEME[1]*posTEME[1] + posTEME[2]*posTEME[2])
	magICRF := math.Sqrt(posICRF[0]*posICRF[0] + posICRF[1]*posICRF[1] + posICRF[2]*posICRF[2])

	if math.Abs(magICRF-magTEME) > 1e-10 {
		t.Errorf("magnitude changed: TEME=%.10f ICRF=%.10f", magTEME, magICRF)
	}
}

func TestTEMEToICRF_AtJ2000(t *testing.T) {
	// At J2000, precession=identity, nutation is small, eq_eq is small.
	// TEME and ICRF should nearly coincide.
	posTEME := [3]float64{6778.0, 0.0, 0.0}
	posICRF := TEMEToICRF(posTEME, j2000JD)

	// Difference should be very small (only nutation + eq_eq at T=0)
	diff := math.Sqrt(
		(posICRF[0]-posTEME[0])*(posICRF[0]-posTEME[0]) +
			(posICRF[1]-posTEME[1])*(posICRF[1]-posTEME[1]) +
			(posICRF[2]-posTEME[2])*(posICRF[2]-posTEME[2]))
	// At J2000, nutation is ~17 arcsec → ~0.56 km at 6778 km altitude
	if diff > 1.0 {
		t.Errorf("TEME≈ICRF at J2000 but diff=%.6f km", diff)
	}
}

func TestTEMEToICRF_ChangesWithTime(t *testing.T) {
	posTEME := [3]float64{6778.0, 1234.0, -3456.0}
	pos1 := TEMEToICRF(posTEME, j2000JD)
	pos2 := TEMEToICRF(posTEME, j2000JD+365.25*50) // 50 years later

	// Precession should cause a measurable difference
	diff := math.Sqrt(
		(pos1[0]-pos2[0])*(pos1[0]-pos2[0]) +
			(pos1[1]-pos2[1])*(pos1[1]-pos2[1]) +
			(pos1[2]-pos2[2])*(pos1[2]-pos2[2]))
	if diff < 1.0 {
		t.Errorf("TEME→ICRF unchanged after 50 years: diff=%.6f km", diff)
	}
}
