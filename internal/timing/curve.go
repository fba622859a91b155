// Package timing turns spring trajectories into sampled timing curves:
// dense fraction-indexed tables built by driving a scalar spring to
// convergence, with linear interpolation for fractional lookups. The tables
// feed keyframe-based animation systems that cannot evaluate a spring per
// frame.
package timing

import (
	"math"

	"github.com/okatz/springlab/internal/spring"
)

// DefaultSampleCount is the table density used by the preset curves.
const DefaultSampleCount = 128

// Curve is an immutable sampled mapping from animation fraction in [0,1]
// to spring response value. The samples span the spring's full trajectory
// from 0 to 1; the final sample is forced to exactly 1, so the curve always
// reaches its nominal endpoint regardless of numerical drift. The table is
// monotone by construction intent only: underdamped configurations
// legitimately overshoot 1 mid-curve.
type Curve struct {
	samples  []float64
	duration float64
}

// NewCurve builds a timing table by stepping a spring from 0 toward 1 with
// a fixed step size and recording the pre-step value at each iteration.
// sampleCount is floored at 2.
//
// The step size is derived from the configuration's estimated settling
// duration when that is finite and positive, falling back to the nominal
// duration otherwise. This decouples physical settle time from the
// user-visible animation duration: the full trajectory is remapped onto
// whatever wall-clock span the caller asked for.
func NewCurve(cfg spring.Config, duration float64, sampleCount int) *Curve {
	if sampleCount < 2 {
		sampleCount = 2
	}

	span := cfg.SettlingDuration()
	if math.IsInf(span, 0) || !(span > 0) {
		span = duration
	}

	// Force stop-on-arrival so the tail of the table is deterministic.
	cfg.StopWhenHitTarget = true
	s := spring.New(cfg)
	s.SetTarget(1)

	dt := span / float64(sampleCount-1)
	samples := make([]float64, sampleCount)
	for i := range samples {
		samples[i] = s.Position()
		s.Step(dt)
	}
	samples[sampleCount-1] = 1.0

	return &Curve{samples: samples, duration: duration}
}

// ValueAt returns the curve value at the given animation fraction. The
// fraction is clamped to [0,1] and mapped to a fractional table index,
// linearly interpolating between the two bracketing samples. A curve with
// no samples returns the fraction unchanged (identity fallback), so a
// rendering loop always gets some numeric value back.
func (c *Curve) ValueAt(fraction float64) float64 {
	if len(c.samples) == 0 {
		return fraction
	}
	if fraction < 0 || math.IsNaN(fraction) {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	pos := fraction * float64(len(c.samples)-1)
	i := int(pos)
	if i >= len(c.samples)-1 {
		return c.samples[len(c.samples)-1]
	}
	frac := pos - float64(i)
	return c.samples[i] + (c.samples[i+1]-c.samples[i])*frac
}

// ValueAtTime returns the curve value at the given elapsed time relative to
// the curve's nominal duration.
func (c *Curve) ValueAtTime(t float64) float64 {
	if !(c.duration > 0) {
		return c.ValueAt(1)
	}
	return c.ValueAt(t / c.duration)
}

// Duration returns the nominal wall-clock duration of the curve.
func (c *Curve) Duration() float64 { return c.duration }

// Len returns the number of stored samples.
func (c *Curve) Len() int { return len(c.samples) }

// Keyframes samples n evenly spaced values from the curve for consumption
// by keyframe-based animation primitives. n is floored at 2; the result
// always starts at the curve's first sample and ends at exactly 1.
func Keyframes(c *Curve, n int) []float64 {
	if n < 2 {
		n = 2
	}
	frames := make([]float64, n)
	for i := range frames {
		frames[i] = c.ValueAt(float64(i) / float64(n-1))
	}
	return frames
}
