package sgp4

import "github.com/anupshinde/goeph/thirdbody"

// method is the tag of a Constants' dispatch: NearEarth for orbits whose
// period is under 225 minutes, DeepSpace otherwise.
type method int

const (
	methodNearEarth method = iota
	methodDeepSpace
)

// fullCoefficients holds the higher-order drag polynomial terms used for
// near-Earth orbits whose perigee altitude is at least 220 km. Below that
// altitude, these are left zero and the simplified drag model applies.
type fullCoefficients struct {
	c5, d2, d3, d4      float64
	t3cof, t4cof, t5cof float64
	omgcof, xmcof       float64
	delmo, sinmao       float64
	eta                 float64
}

// nearEarth holds the precomputed, inclination-dependent short-period
// coefficients (k2..k6, matching p30..p34 at the epoch inclination, which
// near-Earth orbits never perturb) plus the optional higher-order drag
// terms.
type nearEarth struct {
	a0             float64
	k2, k3, k4, k5 float64
	k6             float64
	full           *fullCoefficients
}

// resonanceKind is the tag of a resonant deep-space orbit's tesseral term set.
type resonanceKind int

const (
	resonanceOneDay resonanceKind = iota
	resonanceHalfDay
)

// oneDay holds the three 24-hour (synchronous) resonance coefficients.
type oneDay struct {
	dr1, dr2, dr3 float64
}

// halfDay holds the ten 12-hour (Molniya-class) tesseral resonance
// coefficients, plus the apsidal rate k14 the integrator needs to advance
// the argument of perigee between steps.
type halfDay struct {
	d2201, d2211 float64
	d3210, d3222 float64
	d4410, d4422 float64
	d5220, d5232 float64
	d5421, d5433 float64
	k14          float64
}

// resonant tags whether a deep-space orbit is locked to a tesseral
// resonance, and if so which kind and its resonance angle state.
type resonant struct {
	isResonant    bool
	a0            float64 // valid when !isResonant
	lambda0       float64
	lambdaDot0    float64
	siderealTime0 float64
	kind          resonanceKind
	oneDay        oneDay
	halfDay       halfDay
}

// deepSpace holds the lunisolar secular rates and resonance classification
// computed once at Constants construction time.
type deepSpace struct {
	solarDots, lunarDots thirdbody.Dots
	solarPerturbations   thirdbody.Perturbations
	lunarPerturbations   thirdbody.Perturbations
	resonant             resonant
}

func (d deepSpace) eccentricityDot() float64  { return d.solarDots.Eccentricity + d.lunarDots.Eccentricity }
func (d deepSpace) inclinationDot() float64   { return d.solarDots.Inclination + d.lunarDots.Inclination }
