package spring

import "math"

// Coefficients is the 2x2 state-transition matrix advancing a
// position/velocity pair by exactly DeltaTime seconds under the closed-form
// solution of x'' + 2ζωx' + ω²x = ω²·target. The values are only valid for
// the DeltaTime they were computed for; regenerate them for any other step
// size.
type Coefficients struct {
	PosPos float64
	PosVel float64
	VelPos float64
	VelVel float64

	DeltaTime float64
}

// NewCoefficients derives the transition coefficients for one time step.
// Negative deltaTime is clamped to zero, which yields an identity step.
//
// Because these are the exact analytic solutions of the spring ODE rather
// than a numerical integration, the step is stable and correct for
// arbitrarily large deltaTime.
func NewCoefficients(cfg Config, deltaTime float64) Coefficients {
	if deltaTime < 0 {
		deltaTime = 0
	}
	c := Coefficients{DeltaTime: deltaTime}

	omega := cfg.AngularFrequency
	zeta := cfg.DampingRatio

	switch {
	case omega < epsilon:
		// No spring force: position and velocity pass through unchanged.
		c.PosPos = 1
		c.VelVel = 1

	case zeta > 1+epsilon:
		// Overdamped: two distinct real decay roots.
		za := -omega * zeta
		zb := omega * math.Sqrt(zeta*zeta-1)
		z1 := za - zb
		z2 := za + zb

		e1 := math.Exp(z1 * deltaTime)
		e2 := math.Exp(z2 * deltaTime)
		invTwoZb := 1 / (2 * zb)

		e1OverTwoZb := e1 * invTwoZb
		e2OverTwoZb := e2 * invTwoZb
		z1e1OverTwoZb := z1 * e1OverTwoZb
		z2e2OverTwoZb := z2 * e2OverTwoZb

		c.PosPos = e1OverTwoZb*z2 - z2e2OverTwoZb + e2
		c.PosVel = -e1OverTwoZb + e2OverTwoZb
		c.VelPos = (z1e1OverTwoZb - z2e2OverTwoZb + e2) * z2
		c.VelVel = -z1e1OverTwoZb + z2e2OverTwoZb

	case zeta < 1-epsilon:
		// Underdamped: complex-conjugate roots, decaying oscillation.
		omegaZeta := omega * zeta
		alpha := omega * math.Sqrt(1-zeta*zeta)

		expTerm := math.Exp(-omegaZeta * deltaTime)
		cosTerm := math.Cos(alpha * deltaTime)
		sinTerm := math.Sin(alpha * deltaTime)
		invAlpha := 1 / alpha

		expSin := expTerm * sinTerm
		expCos := expTerm * cosTerm
		expOmegaZetaSinOverAlpha := expTerm * omegaZeta * sinTerm * invAlpha

		c.PosPos = expCos + expOmegaZetaSinOverAlpha
		c.PosVel = expSin * invAlpha
		c.VelPos = -expSin*alpha - omegaZeta*expOmegaZetaSinOverAlpha
		c.VelVel = expCos - expOmegaZetaSinOverAlpha

	default:
		// Critically damped: repeated real root.
		expTerm := math.Exp(-omega * deltaTime)
		timeExp := deltaTime * expTerm
		timeExpFreq := timeExp * omega

		c.PosPos = timeExpFreq + expTerm
		c.PosVel = timeExp
		c.VelPos = -omega * timeExpFreq
		c.VelVel = -timeExpFreq + expTerm
	}

	return c
}
