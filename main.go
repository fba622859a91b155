package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okatz/springlab/internal/timing"
	"github.com/okatz/springlab/internal/ui"
)

func main() {
	var preset timing.Preset

	if len(os.Args) > 1 {
		p, ok := timing.PresetByName(os.Args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q (available: %s)\n", os.Args[1], presetNames())
			os.Exit(1)
		}
		preset = p
	} else {
		picker := ui.NewPicker()
		p := tea.NewProgram(picker, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		pm, ok := finalModel.(ui.PickerModel)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unexpected model type from picker\n")
			os.Exit(1)
		}
		result := pm.Result()
		if result.Cancelled {
			os.Exit(0)
		}
		preset = result.Preset
	}

	model := ui.New(preset)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func presetNames() string {
	names := make([]string, 0, len(timing.Presets()))
	for _, p := range timing.Presets() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
