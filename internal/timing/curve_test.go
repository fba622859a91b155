package timing

import (
	"math"
	"testing"

	"github.com/okatz/springlab/internal/spring"
)

func testConfig(zeta float64) spring.Config {
	return spring.NewConfig(10, zeta, 0.0001, true)
}

func TestCurveEndpoints(t *testing.T) {
	for _, zeta := range []float64{0.55, 1.0, 2.0} {
		c := NewCurve(testConfig(zeta), 0.5, DefaultSampleCount)
		if v := c.ValueAt(0); v != 0 {
			t.Fatalf("zeta=%v: ValueAt(0) = %v, want 0", zeta, v)
		}
		if v := c.ValueAt(1); v != 1 {
			t.Fatalf("zeta=%v: ValueAt(1) = %v, want exactly 1", zeta, v)
		}
	}
}

func TestCurveClampsFraction(t *testing.T) {
	c := NewCurve(testConfig(1), 0.5, 64)
	if v := c.ValueAt(-0.5); v != c.ValueAt(0) {
		t.Fatalf("ValueAt(-0.5) = %v, want clamp to ValueAt(0) = %v", v, c.ValueAt(0))
	}
	if v := c.ValueAt(2.5); v != 1 {
		t.Fatalf("ValueAt(2.5) = %v, want clamp to 1", v)
	}
}

func TestCurveInterpolatesBetweenSamples(t *testing.T) {
	// For a fraction strictly between two sample indices the result must
	// lie between the two bracketing sample values.
	c := NewCurve(testConfig(0.55), 0.6, 32)
	n := c.Len()
	for i := 0; i < n-1; i++ {
		lo := c.ValueAt(float64(i) / float64(n-1))
		hi := c.ValueAt(float64(i+1) / float64(n-1))
		if lo > hi {
			lo, hi = hi, lo
		}
		mid := c.ValueAt((float64(i) + 0.5) / float64(n-1))
		if mid < lo-1e-12 || mid > hi+1e-12 {
			t.Fatalf("sample %d: midpoint %v outside [%v, %v]", i, mid, lo, hi)
		}
	}
}

func TestCurveSettlesAtTail(t *testing.T) {
	// Critically damped reference scenario: the settle estimate must be
	// finite and positive and the tail of the table close to 1. The
	// estimate deliberately ignores the polynomial envelope prefactor, so
	// the tail tolerance is looser than the arrival threshold.
	cfg := spring.NewConfig(4, 1, 0.0001, true)
	d := cfg.SettlingDuration()
	if !(d > 0) || math.IsInf(d, 0) {
		t.Fatalf("SettlingDuration() = %v, want finite and positive", d)
	}

	c := NewCurve(cfg, 0.5, 200)
	n := c.Len()
	for i := n - n/20; i < n; i++ {
		v := c.ValueAt(float64(i) / float64(n-1))
		if math.Abs(v-1) > 0.005 {
			t.Fatalf("sample %d: value %v, want within 0.005 of 1", i, v)
		}
	}
}

func TestCurveMinimumSampleCount(t *testing.T) {
	c := NewCurve(testConfig(1), 0.5, 0)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want sampleCount floored at 2", c.Len())
	}
	if v := c.ValueAt(1); v != 1 {
		t.Fatalf("ValueAt(1) = %v, want 1", v)
	}
}

func TestEmptyCurveIdentityFallback(t *testing.T) {
	var c Curve
	for _, f := range []float64{0, 0.25, 1, 2} {
		if v := c.ValueAt(f); v != f {
			t.Fatalf("ValueAt(%v) = %v, want identity fallback", f, v)
		}
	}
}

func TestValueAtTime(t *testing.T) {
	c := NewCurve(testConfig(1), 0.5, 64)
	if v := c.ValueAtTime(0.25); v != c.ValueAt(0.5) {
		t.Fatalf("ValueAtTime(0.25) = %v, want ValueAt(0.5) = %v", v, c.ValueAt(0.5))
	}
	if v := c.ValueAtTime(10); v != 1 {
		t.Fatalf("ValueAtTime(10) = %v, want 1 past the duration", v)
	}
}

func TestKeyframes(t *testing.T) {
	c := NewCurve(testConfig(1), 0.5, 64)
	frames := Keyframes(c, 10)
	if len(frames) != 10 {
		t.Fatalf("len(frames) = %d, want 10", len(frames))
	}
	if frames[0] != 0 || frames[9] != 1 {
		t.Fatalf("frames endpoints = %v, %v, want 0 and 1", frames[0], frames[9])
	}

	if got := Keyframes(c, 1); len(got) != 2 {
		t.Fatalf("Keyframes(c, 1) returned %d frames, want floor at 2", len(got))
	}
}

func TestPresetCatalog(t *testing.T) {
	names := []string{"interface", "drag", "gentle", "bouncy", "stiff"}
	all := Presets()
	if len(all) != len(names) {
		t.Fatalf("len(Presets()) = %d, want %d", len(all), len(names))
	}
	for i, name := range names {
		if all[i].Name != name {
			t.Fatalf("Presets()[%d].Name = %q, want %q", i, all[i].Name, name)
		}
		p, ok := PresetByName(name)
		if !ok {
			t.Fatalf("PresetByName(%q) not found", name)
		}
		if p.Duration <= 0 || p.DampingRatio <= 0 {
			t.Fatalf("preset %q has degenerate parameters: %+v", name, p)
		}
	}
	if _, ok := PresetByName("molasses"); ok {
		t.Fatal("PresetByName returned an unknown preset")
	}
}

func TestPresetCurvesReachEndpoint(t *testing.T) {
	for _, p := range Presets() {
		c := p.Curve()
		if v := c.ValueAt(1); v != 1 {
			t.Fatalf("preset %q: ValueAt(1) = %v, want 1", p.Name, v)
		}
		if c.Duration() != p.Duration {
			t.Fatalf("preset %q: Duration() = %v, want %v", p.Name, c.Duration(), p.Duration)
		}
	}
}
