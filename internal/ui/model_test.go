package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okatz/springlab/internal/timing"
)

func testPreset(t *testing.T, name string) timing.Preset {
	t.Helper()
	p, ok := timing.PresetByName(name)
	if !ok {
		t.Fatalf("preset %q not found", name)
	}
	return p
}

func TestNewModelAimsAtOne(t *testing.T) {
	m := New(testPreset(t, "bouncy"))
	if m.scalar.Target() != 1 {
		t.Fatalf("scalar target = %v, want 1", m.scalar.Target())
	}
	if m.preset.Name != "bouncy" {
		t.Fatalf("preset = %q, want bouncy", m.preset.Name)
	}
	if m.curve.ValueAt(1) != 1 {
		t.Fatalf("curve ValueAt(1) = %v, want 1", m.curve.ValueAt(1))
	}
}

func TestTickAdvancesSpringAndReschedules(t *testing.T) {
	m := New(testPreset(t, "interface"))
	model, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected next tick command")
	}
	got := model.(Model)
	if got.scalar.Position() <= 0 {
		t.Fatalf("position = %v after a tick, want progress toward 1", got.scalar.Position())
	}
	if len(got.trace) != 1 {
		t.Fatalf("trace length = %d, want 1", len(got.trace))
	}
}

func TestSpaceRetargetsInFlight(t *testing.T) {
	m := New(testPreset(t, "bouncy"))
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	got := model.(Model)
	if got.scalar.Target() != 0 {
		t.Fatalf("target = %v after space, want 0", got.scalar.Target())
	}
	model, _ = got.Update(tea.KeyMsg{Type: tea.KeySpace})
	if target := model.(Model).scalar.Target(); target != 1 {
		t.Fatalf("target = %v after second space, want 1", target)
	}
}

func TestParameterKeysClampAtBounds(t *testing.T) {
	m := New(testPreset(t, "interface"))
	for i := 0; i < 200; i++ {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = model.(Model)
	}
	if m.cfg.DampingRatio != minDamping {
		t.Fatalf("damping = %v after holding down, want clamp at %v", m.cfg.DampingRatio, minDamping)
	}

	for i := 0; i < 200; i++ {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = model.(Model)
	}
	if m.cfg.AngularFrequency != minFrequency {
		t.Fatalf("frequency = %v after holding left, want clamp at %v", m.cfg.AngularFrequency, minFrequency)
	}
}

func TestStopModeToggleKeepsMotionState(t *testing.T) {
	m := New(testPreset(t, "bouncy"))
	model, _ := m.Update(tickMsg(time.Now()))
	m = model.(Model)
	pos := m.scalar.Position()

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	got := model.(Model)
	if got.cfg.StopWhenHitTarget == m.cfg.StopWhenHitTarget {
		t.Fatal("expected stop policy to flip")
	}
	if got.scalar.Position() != pos {
		t.Fatalf("position = %v after retune, want preserved %v", got.scalar.Position(), pos)
	}
}

func TestDigitKeySwitchesPreset(t *testing.T) {
	m := New(testPreset(t, "interface"))
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	got := model.(Model)
	if got.preset.Name != "bouncy" {
		t.Fatalf("preset = %q after pressing 4, want bouncy", got.preset.Name)
	}
}

func TestMouseClickRetargetsField(t *testing.T) {
	m := New(testPreset(t, "drag"))
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = model.(Model)

	x0, y0, w, _ := m.fieldRect()
	model, _ = m.Update(tea.MouseMsg{
		X:      x0 + w - 1,
		Y:      y0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	got := model.(Model)
	tx, ty := got.field.Target()
	if tx != 1 || ty != 1 {
		t.Fatalf("field target = (%v, %v) after corner click, want (1, 1)", tx, ty)
	}

	// Clicks outside the pane are ignored.
	model, _ = got.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tx2, ty2 := model.(Model).field.Target()
	if tx2 != tx || ty2 != ty {
		t.Fatal("click outside the field pane changed the target")
	}
}

func TestQuitKeysQuit(t *testing.T) {
	m := New(testPreset(t, "interface"))
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !model.(Model).quitting {
		t.Fatal("expected quitting state")
	}
	if model.(Model).View() != "" {
		t.Fatal("expected empty view while quitting")
	}
}

func TestPickerSelectionReturnsPreset(t *testing.T) {
	m := NewPicker()
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command after selection")
	}
	picker := model.(PickerModel)
	result := picker.Result()
	if result.Cancelled {
		t.Fatal("expected a selection, got cancelled")
	}
	if result.Preset.Name != "interface" {
		t.Fatalf("selected preset = %q, want first preset interface", result.Preset.Name)
	}
}

func TestPickerCancelled(t *testing.T) {
	m := NewPicker()
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !model.(PickerModel).Result().Cancelled {
		t.Fatal("expected cancelled result")
	}

	if !NewPicker().Result().Cancelled {
		t.Fatal("expected cancelled result before any selection")
	}
}
