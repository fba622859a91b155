package timing

import "github.com/okatz/springlab/internal/spring"

// Preset angular frequency and arrival tolerance shared by the named
// curves. Presets vary only damping ratio and duration; the curve builder's
// settle-time remapping fits the trajectory to the nominal duration.
const (
	DefaultAngularFrequency = 12.0
	DefaultThreshold        = 0.001
)

// Preset is a named (damping ratio, duration) pair. Presets are
// configuration data, not behavior.
type Preset struct {
	Name         string
	DampingRatio float64
	Duration     float64 // seconds
}

var presets = []Preset{
	{Name: "interface", DampingRatio: 1.0, Duration: 0.35},
	{Name: "drag", DampingRatio: 0.9, Duration: 0.25},
	{Name: "gentle", DampingRatio: 1.0, Duration: 0.8},
	{Name: "bouncy", DampingRatio: 0.55, Duration: 0.6},
	{Name: "stiff", DampingRatio: 1.2, Duration: 0.3},
}

// Presets returns the named preset catalog in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByName looks up a preset by name. The second return value reports
// whether the name exists.
func PresetByName(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Config returns the spring configuration for the preset.
func (p Preset) Config() spring.Config {
	return spring.NewConfig(DefaultAngularFrequency, p.DampingRatio, DefaultThreshold, true)
}

// Curve builds the preset's timing table at the default sample density.
func (p Preset) Curve() *Curve {
	return NewCurve(p.Config(), p.Duration, DefaultSampleCount)
}
