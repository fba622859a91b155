package spring

import "math"

// Vector composes two independent scalar springs sharing one Config, one
// per axis. The axes never interact; the combined speed and deformation
// readouts are derived views, not separately stored state.
type Vector struct {
	x Spring
	y Spring
}

// NewVector creates a Vector at rest at the origin.
func NewVector(cfg Config) *Vector {
	return &Vector{x: Spring{cfg: cfg}, y: Spring{cfg: cfg}}
}

// Step advances both axes by deltaTime and returns the new position.
func (v *Vector) Step(deltaTime float64) (x, y float64) {
	return v.x.Step(deltaTime), v.y.Step(deltaTime)
}

// SetTarget sets the per-axis targets.
func (v *Vector) SetTarget(x, y float64) {
	v.x.SetTarget(x)
	v.y.SetTarget(y)
}

// SetCurrent resets both axes to the given position at rest.
func (v *Vector) SetCurrent(x, y float64) {
	v.x.SetCurrent(x, 0)
	v.y.SetCurrent(y, 0)
}

// Position returns the current position of both axes.
func (v *Vector) Position() (x, y float64) {
	return v.x.Position(), v.y.Position()
}

// Target returns the current per-axis targets.
func (v *Vector) Target() (x, y float64) {
	return v.x.Target(), v.y.Target()
}

// Speed returns the magnitude of the combined velocity vector.
func (v *Vector) Speed() float64 {
	return math.Hypot(v.x.Velocity(), v.y.Velocity())
}

// Deformation returns the distance between the current position and the
// target, a measure of how far the spring is stretched.
func (v *Vector) Deformation() float64 {
	return math.Hypot(v.x.Position()-v.x.Target(), v.y.Position()-v.y.Target())
}

// AtTarget reports whether both axes are within the arrival threshold.
func (v *Vector) AtTarget() bool {
	return v.x.AtTarget() && v.y.AtTarget()
}
