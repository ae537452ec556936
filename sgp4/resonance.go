package sgp4

import "math"

// ResonanceState is the caller-owned integration state for a tesseral
// resonant deep-space orbit. It must be obtained from Constants.InitialState
// and advanced only with values of t of one sign whose magnitude |t| never
// decreases; reusing it across a non-monotonic sequence of propagate calls
// is a programming error and panics.
type ResonanceState struct {
	t          float64
	meanMotion float64
	lambda     float64
}

// integrate advances the resonance state to elapsed time t minutes and
// returns (p26, p27): the semi-major-axis seed and the resonance-corrected
// mean anomaly contribution the propagator combines with the short-period
// corrections.
//
// resonance is either a oneDay or halfDay coefficient set, matching the kind
// this state's Constants classified the orbit as at construction time.
func (s *ResonanceState) integrate(ke, argumentOfPerigee0, lambdaDot0 float64, resonance interface{}, siderealTime0, t, p21, p22 float64) (float64, float64) {
	if (s.t != 0.0 && signbit(s.t) != signbit(t)) || math.Abs(t) < math.Abs(s.t) {
		panic("the resonance integration state must be manually reset if the target times are non-monotonic")
	}

	siderealTime := math.Mod(siderealTime0+t*siderealSpeed, 2.0*math.Pi)

	var deltaT float64
	forward := t > 0.0
	if forward {
		deltaT = resonanceDeltaT
	} else {
		deltaT = -resonanceDeltaT
	}

	for {
		lambdaDot := s.meanMotion + lambdaDot0
		nDot, nDdot := resonanceRates(s.t, s.lambda, lambdaDot, argumentOfPerigee0, resonance)

		remaining := t - deltaT
		if (forward && remaining < s.t) || (!forward && remaining > s.t) {
			dt := t - s.t
			meanMotion := s.meanMotion + nDot*dt + nDdot*dt*dt*0.5
			p26 := math.Pow(ke/meanMotion, 2.0/3.0)

			var p27 float64
			if _, ok := resonance.(oneDay); ok {
				p27 = s.lambda + lambdaDot*dt + nDot*dt*dt*0.5 - p21 - p22 + siderealTime
			} else {
				p27 = s.lambda + lambdaDot*dt + nDot*dt*dt*0.5 - 2.0*p21 + 2.0*siderealTime
			}
			return p26, p27
		}

		s.t += deltaT
		s.meanMotion += nDot*deltaT + nDdot*(resonanceDeltaT*resonanceDeltaT/2.0)
		s.lambda += lambdaDot*deltaT + nDot*(resonanceDeltaT*resonanceDeltaT/2.0)
	}
}

func signbit(x float64) bool {
	return math.Signbit(x)
}

// resonanceRates evaluates (ṅ, n̈) for the current resonance angle λ and,
// for half-day resonances, the argument of perigee advanced to t.
func resonanceRates(t, lambda, lambdaDot, argumentOfPerigee0 float64, resonance interface{}) (float64, float64) {
	switch r := resonance.(type) {
	case oneDay:
		nDot := r.dr1*math.Sin(lambda-lambda31) +
			r.dr2*math.Sin(2.0*(lambda-lambda22)) +
			r.dr3*math.Sin(3.0*(lambda-lambda33))
		nDdot := (r.dr1*math.Cos(lambda-lambda31) +
			2.0*r.dr2*math.Cos(2.0*(lambda-lambda22)) +
			3.0*r.dr3*math.Cos(3.0*(lambda-lambda33))) * lambdaDot
		return nDot, nDdot
	case halfDay:
		argumentOfPerigeeI := argumentOfPerigee0 + r.k14*t
		nDot := r.d2201*math.Sin(2.0*argumentOfPerigeeI+lambda-g22) +
			r.d2211*math.Sin(lambda-g22) +
			r.d3210*math.Sin(argumentOfPerigeeI+lambda-g32) +
			r.d3222*math.Sin(-argumentOfPerigeeI+lambda-g32) +
			r.d4410*math.Sin(2.0*argumentOfPerigeeI+2.0*lambda-g44) +
			r.d4422*math.Sin(2.0*lambda-g44) +
			r.d5220*math.Sin(argumentOfPerigeeI+lambda-g52) +
			r.d5232*math.Sin(-argumentOfPerigeeI+lambda-g52) +
			r.d5421*math.Sin(argumentOfPerigeeI+2.0*lambda-g54) +
			r.d5433*math.Sin(-argumentOfPerigeeI+2.0*lambda-g54)

		nDdot := (r.d2201*math.Cos(2.0*argumentOfPerigeeI+lambda-g22) +
			r.d2211*math.Cos(lambda-g22) +
			r.d3210*math.Cos(argumentOfPerigeeI+lambda-g32) +
			r.d3222*math.Cos(-argumentOfPerigeeI+lambda-g32) +
			r.d5220*math.Cos(argumentOfPerigeeI+lambda-g52) +
			r.d5232*math.Cos(-argumentOfPerigeeI+lambda-g52) +
			2.0*(r.d4410*math.Cos(2.0*argumentOfPerigeeI+2.0*lambda-g44)+
				r.d4422*math.Cos(2.0*lambda-g44)+
				r.d5421*math.Cos(argumentOfPerigeeI+2.0*lambda-g54)+
				r.d5433*math.Cos(-argumentOfPerigeeI+2.0*lambda-g54))) * lambdaDot
		return nDot, nDdot
	default:
		return 0, 0
	}
}
