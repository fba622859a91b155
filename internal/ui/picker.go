package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/okatz/springlab/internal/timing"
	"github.com/okatz/springlab/internal/util"
)

// PickerResult holds the outcome of the preset picker screen.
type PickerResult struct {
	Preset    timing.Preset
	Cancelled bool
}

type presetItem struct {
	preset timing.Preset
}

func (i presetItem) Title() string { return i.preset.Name }
func (i presetItem) Description() string {
	return fmt.Sprintf("damping %.2f · %s", i.preset.DampingRatio, util.FormatSeconds(i.preset.Duration))
}
func (i presetItem) FilterValue() string { return i.preset.Name }

// PickerModel is the Bubbletea model for the preset picker screen.
type PickerModel struct {
	list   list.Model
	result *PickerResult
}

// NewPicker creates a picker listing the named timing presets.
func NewPicker() PickerModel {
	items := make([]list.Item, 0, len(timing.Presets()))
	for _, p := range timing.Presets() {
		items = append(items, presetItem{preset: p})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 60, 18)
	l.Title = "springlab — pick a preset"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle

	return PickerModel{list: l}
}

// Result returns the picker outcome after the program finishes.
func (m PickerModel) Result() PickerResult {
	if m.result != nil {
		return *m.result
	}
	return PickerResult{Cancelled: true}
}

func (m PickerModel) Init() tea.Cmd {
	return tea.SetWindowTitle("springlab")
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys while the list is filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				m.result = &PickerResult{Preset: item.preset}
				return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
			}
		case "q", "esc", "ctrl+c":
			m.result = &PickerResult{Cancelled: true}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-2)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PickerModel) View() string {
	return "\n" + m.list.View()
}
