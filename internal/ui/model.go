package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/okatz/springlab/internal/spring"
	"github.com/okatz/springlab/internal/timing"
	"github.com/okatz/springlab/internal/util"
)

const (
	frameInterval = 1.0 / 60
	maxFrameDT    = 0.25 // clamp for stalls, e.g. a suspended terminal

	scopeHeight = 6
	paneHeight  = 9
	paneGap     = 3
	margin      = 2
	maxTrace    = 512

	minFrequency = 1
	maxFrequency = 50
	minDamping   = 0.05
	maxDamping   = 4
)

// Model is the Bubbletea model for the springlab playground. It owns one
// scalar spring bouncing between 0 and 1, one 2D drag field, and the timing
// curve of the active configuration, all stepped once per rendered frame
// with the measured frame delta.
type Model struct {
	preset timing.Preset
	cfg    spring.Config
	scalar *spring.Spring
	field  *spring.Vector
	curve  *timing.Curve

	bar      progress.Model
	trace    []float64
	lastTick time.Time
	width    int
	height   int
	quitting bool
}

// New creates a playground running the given preset.
func New(preset timing.Preset) Model {
	bar := progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
	)

	m := Model{bar: bar}
	m.scalar = spring.New(preset.Config())
	m.field = spring.NewVector(preset.Config())
	m.field.SetCurrent(0.5, 0.5)
	m.field.SetTarget(0.5, 0.5)
	m = m.applyPreset(preset)
	m.scalar.SetTarget(1)
	return m
}

// applyPreset switches configuration while preserving the springs' motion
// state, so retuning mid-flight redirects smoothly instead of snapping.
func (m Model) applyPreset(p timing.Preset) Model {
	m.preset = p
	return m.retune(p.Config())
}

func (m Model) retune(cfg spring.Config) Model {
	m.cfg = cfg
	m.curve = timing.NewCurve(cfg, m.preset.Duration, timing.DefaultSampleCount)
	m.scalar = spring.NewAt(cfg, m.scalar.Position(), m.scalar.Velocity(), m.scalar.Target())

	px, py := m.field.Position()
	tx, ty := m.field.Target()
	field := spring.NewVector(cfg)
	field.SetCurrent(px, py)
	field.SetTarget(tx, ty)
	m.field = field
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("springlab"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch msg.String() {
		case " ":
			// Retarget in flight: velocity carries over.
			if m.scalar.Target() == 0 {
				m.scalar.SetTarget(1)
			} else {
				m.scalar.SetTarget(0)
			}
		case "r":
			m.scalar.SetCurrent(0, 0)
			m.field.SetCurrent(0.5, 0.5)
			m.field.SetTarget(0.5, 0.5)
			m.trace = nil
		case "s":
			cfg := m.cfg
			return m.retune(spring.NewConfig(cfg.AngularFrequency, cfg.DampingRatio, cfg.Threshold, !cfg.StopWhenHitTarget)), nil
		case "left", "right", "up", "down":
			return m.adjust(msg.String()), nil
		case "1", "2", "3", "4", "5":
			presets := timing.Presets()
			i := int(msg.String()[0] - '1')
			if i < len(presets) {
				return m.applyPreset(presets[i]), nil
			}
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			x0, y0, w, h := m.fieldRect()
			if msg.X >= x0 && msg.X < x0+w && msg.Y >= y0 && msg.Y < y0+h {
				fx := float64(msg.X-x0) / float64(w-1)
				fy := 1 - float64(msg.Y-y0)/float64(h-1)
				m.field.SetTarget(fx, fy)
			}
		}
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := frameInterval
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
			if dt < 0 {
				dt = 0
			}
			if dt > maxFrameDT {
				dt = maxFrameDT
			}
		}
		m.lastTick = now

		m.scalar.Step(dt)
		m.field.Step(dt)
		m.trace = append(m.trace, m.scalar.Position())
		if len(m.trace) > maxTrace {
			m.trace = m.trace[len(m.trace)-maxTrace:]
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := m.innerWidth() - 28
		if barWidth < 10 {
			barWidth = 10
		}
		m.bar.Width = barWidth
		return m, nil
	}

	return m, nil
}

// adjust retunes one physical parameter, clamped to the playground's bounds
// before NewConfig sees it so the construction invariant never trips from a
// keypress.
func (m Model) adjust(key string) Model {
	frequency := m.cfg.AngularFrequency
	damping := m.cfg.DampingRatio
	switch key {
	case "left":
		frequency -= 1
	case "right":
		frequency += 1
	case "up":
		damping += 0.05
	case "down":
		damping -= 0.05
	}
	if frequency < minFrequency {
		frequency = minFrequency
	}
	if frequency > maxFrequency {
		frequency = maxFrequency
	}
	if damping < minDamping {
		damping = minDamping
	}
	if damping > maxDamping {
		damping = maxDamping
	}
	return m.retune(spring.NewConfig(frequency, damping, m.cfg.Threshold, m.cfg.StopWhenHitTarget))
}

func (m Model) innerWidth() int {
	w := m.width
	if w < 46 {
		w = 72
	}
	return w - 2*margin
}

// fieldRect returns the screen rectangle of the drag-field pane. It must
// stay in sync with the line layout produced by View.
func (m Model) fieldRect() (x0, y0, w, h int) {
	paneW := (m.innerWidth() - paneGap) / 2
	return margin + paneW + paneGap, 10 + scopeHeight, paneW, paneHeight
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	inner := m.innerWidth()
	paneW := (inner - paneGap) / 2
	pad := spaces(margin)

	header := headerStyle.Render("springlab") + "  " + titleStyle.Render(m.preset.Name)

	stop := "off"
	if m.cfg.StopWhenHitTarget {
		stop = "on"
	}
	params := labelStyle.Render("ω ") + valueStyle.Render(fmt.Sprintf("%.1f", m.cfg.AngularFrequency)) +
		labelStyle.Render("  ζ ") + valueStyle.Render(fmt.Sprintf("%.2f", m.cfg.DampingRatio)) +
		labelStyle.Render("  stop ") + valueStyle.Render(stop) +
		labelStyle.Render("  settle ") + valueStyle.Render(util.FormatSeconds(m.cfg.SettlingDuration()))

	readout := statusStyle.Render(fmt.Sprintf("pos %+.3f  vel %+.2f", m.scalar.Position(), m.scalar.Velocity()))
	barLine := m.bar.ViewAs(clamp01(m.scalar.Position())) + "  " + readout

	scopeTitle := labelStyle.Render("scope")
	scope := renderSeries(m.trace, inner, scopeHeight)

	curveTitle := labelStyle.Render(padRight("timing curve", paneW+paneGap))
	fieldTitle := labelStyle.Render(fmt.Sprintf("drag field  d %.2f  v %.2f", m.field.Deformation(), m.field.Speed()))

	curvePane := renderSeries(timing.Keyframes(m.curve, paneW), paneW, paneHeight)

	fx, fy := m.field.Position()
	tx, ty := m.field.Target()
	fieldPane := renderField(fx, fy, tx, ty, paneW, paneHeight)

	lines := []string{
		"",
		pad + header,
		"",
		pad + params,
		"",
		pad + barLine,
		"",
		pad + scopeTitle,
	}
	for _, row := range scope {
		lines = append(lines, pad+plotStyle.Render(row))
	}
	lines = append(lines, "", pad+curveTitle+fieldTitle)
	for r := 0; r < paneHeight; r++ {
		lines = append(lines, pad+plotStyle.Render(curvePane[r])+spaces(paneGap)+accentStyle.Render(fieldPane[r]))
	}
	lines = append(lines, "", pad+helpStyle.Render(helpText()), "")

	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
