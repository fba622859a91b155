// Package spring implements a closed-form damped harmonic oscillator for
// animation timing: a scalar position/velocity pair advanced toward a target
// in discrete steps using the exact state-transition solution of the spring
// ODE, plus a two-axis composition and settling-time estimation.
package spring

import "math"

// Spring advances a scalar position/velocity pair toward a target. It holds
// its own copy of the Config and is mutated only by Step and the explicit
// setters; it is not safe for concurrent use, but independent instances
// share nothing.
type Spring struct {
	cfg Config

	position float64
	velocity float64
	target   float64

	acceleration      float64
	velocityDelta     float64
	accelerationDelta float64
	lastDeltaTime     float64
	atTarget          bool
}

// New creates a Spring at rest at position zero with target zero.
func New(cfg Config) *Spring {
	return &Spring{cfg: cfg}
}

// NewAt creates a Spring with the given initial position, velocity and
// target.
func NewAt(cfg Config, position, velocity, target float64) *Spring {
	return &Spring{cfg: cfg, position: position, velocity: velocity, target: target}
}

// Clone returns an independent copy of the spring's full state.
func (s *Spring) Clone() *Spring {
	c := *s
	return &c
}

// Step advances the spring by deltaTime seconds and returns the new
// position. Negative deltaTime is treated as zero (a no-op step). Steps
// must be applied in temporal order; out-of-order steps produce physically
// meaningless but harmless results.
func (s *Spring) Step(deltaTime float64) float64 {
	if deltaTime < 0 {
		deltaTime = 0
	}
	co := NewCoefficients(s.cfg, deltaTime)

	relPos := s.position - s.target
	relVel := s.velocity
	newPos := relPos*co.PosPos + relVel*co.PosVel + s.target
	newVel := relPos*co.VelPos + relVel*co.VelVel

	var newAccel float64
	if deltaTime > 0 {
		newAccel = (newVel - s.velocity) / deltaTime
	}
	s.velocityDelta = math.Abs(newVel - s.velocity)
	s.accelerationDelta = math.Abs(newAccel - s.acceleration)

	s.position = newPos
	s.velocity = newVel
	s.acceleration = newAccel
	s.lastDeltaTime = deltaTime

	if math.Abs(s.position-s.target) < s.cfg.Threshold {
		s.position = s.target
		s.atTarget = true
		if s.cfg.StopWhenHitTarget {
			s.velocity = 0
			s.acceleration = 0
			s.velocityDelta = 0
			s.accelerationDelta = 0
		}
	} else {
		s.atTarget = false
	}

	return s.position
}

// SetCurrent resets position and velocity and zeroes all diagnostics,
// including the arrival flag. The target is unchanged.
func (s *Spring) SetCurrent(position, velocity float64) {
	s.position = position
	s.velocity = velocity
	s.acceleration = 0
	s.velocityDelta = 0
	s.accelerationDelta = 0
	s.lastDeltaTime = 0
	s.atTarget = false
}

// SetTarget changes the target without touching position or velocity, so a
// spring already in flight redirects smoothly.
func (s *Spring) SetTarget(target float64) {
	s.target = target
	s.atTarget = false
}

// SetThreshold replaces the arrival tolerance on the spring's config copy.
// Negative values are clamped to zero.
func (s *Spring) SetThreshold(threshold float64) {
	if threshold < 0 {
		threshold = 0
	}
	s.cfg.Threshold = threshold
}

// Position returns the current position.
func (s *Spring) Position() float64 { return s.position }

// Velocity returns the current velocity.
func (s *Spring) Velocity() float64 { return s.velocity }

// Target returns the current target.
func (s *Spring) Target() float64 { return s.target }

// Acceleration returns the acceleration observed over the last step.
func (s *Spring) Acceleration() float64 { return s.acceleration }

// VelocityDelta returns the absolute velocity change over the last step, a
// smoothness diagnostic.
func (s *Spring) VelocityDelta() float64 { return s.velocityDelta }

// AccelerationDelta returns the absolute acceleration change over the last
// step, a smoothness diagnostic.
func (s *Spring) AccelerationDelta() float64 { return s.accelerationDelta }

// LastDeltaTime returns the deltaTime of the most recent step.
func (s *Spring) LastDeltaTime() float64 { return s.lastDeltaTime }

// AtTarget reports whether the last step ended within the arrival
// threshold. Callers typically stop invoking Step once this is true and
// StopWhenHitTarget is set.
func (s *Spring) AtTarget() bool { return s.atTarget }

// Config returns the spring's current configuration copy.
func (s *Spring) Config() Config { return s.cfg }
