package spring

import (
	"fmt"
	"math"
)

// epsilon is the float64 machine epsilon, used to pick the damping regime
// and to floor thresholds before taking logarithms.
const epsilon = 2.220446049250313e-16

// Config holds the physical parameters of a damped harmonic oscillator.
// It is an immutable value; copy it freely.
type Config struct {
	// AngularFrequency is the natural oscillation rate of the undamped
	// spring in radians per second. Must be positive.
	AngularFrequency float64

	// DampingRatio controls oscillation decay: below 1 the spring
	// overshoots and rings, at 1 it is critically damped, above 1 it
	// approaches the target without oscillating. Must be positive.
	DampingRatio float64

	// Threshold is the arrival tolerance: once the position is within
	// Threshold of the target it snaps to the target exactly.
	Threshold float64

	// StopWhenHitTarget zeroes velocity and acceleration on arrival,
	// bringing the spring to a full stop. When false the position still
	// snaps but motion continues, so an underdamped spring keeps ringing.
	StopWhenHitTarget bool
}

// NewConfig validates and returns a Config. Invalid physical parameters
// (non-positive or non-finite frequency or damping ratio, negative
// threshold) panic rather than being clamped: silently adjusted parameters
// would produce misleading motion.
func NewConfig(angularFrequency, dampingRatio, threshold float64, stopWhenHitTarget bool) Config {
	if !(angularFrequency > 0) || math.IsInf(angularFrequency, 0) {
		panic(fmt.Sprintf("spring: angular frequency must be positive and finite, got %v", angularFrequency))
	}
	if !(dampingRatio > 0) || math.IsInf(dampingRatio, 0) {
		panic(fmt.Sprintf("spring: damping ratio must be positive and finite, got %v", dampingRatio))
	}
	if !(threshold >= 0) || math.IsInf(threshold, 0) {
		panic(fmt.Sprintf("spring: threshold must be non-negative and finite, got %v", threshold))
	}
	return Config{
		AngularFrequency:  angularFrequency,
		DampingRatio:      dampingRatio,
		Threshold:         threshold,
		StopWhenHitTarget: stopWhenHitTarget,
	}
}

// SettlingDuration estimates how long the spring's response envelope takes
// to decay within Threshold of the target. It is an approximation: the
// critically damped branch uses -ln(threshold)/ω, which ignores the (1+ωt)
// polynomial prefactor of the true envelope and therefore under-estimates.
// Callers that remap trajectories onto wall-clock durations depend on this
// exact numeric behavior.
func (c Config) SettlingDuration() float64 {
	threshold := c.Threshold
	if threshold < epsilon {
		threshold = epsilon
	}
	switch {
	case c.DampingRatio < 1-epsilon:
		if c.DampingRatio == 0 {
			return math.Inf(1)
		}
		return -math.Log(threshold) / (c.DampingRatio * c.AngularFrequency)
	case c.DampingRatio > 1+epsilon:
		// The slower of the two real decay roots dominates.
		lambda := -c.AngularFrequency * (c.DampingRatio - math.Sqrt(c.DampingRatio*c.DampingRatio-1))
		return math.Log(threshold) / lambda
	default:
		return -math.Log(threshold) / c.AngularFrequency
	}
}
