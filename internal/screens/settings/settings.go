package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivanz/interq/internal/appstate"
	"github.com/ivanz/interq/internal/bank"
	"github.com/ivanz/interq/internal/screen"
	"github.com/ivanz/interq/internal/ui/components"
	"github.com/ivanz/interq/internal/ui/layout"
	"github.com/ivanz/interq/internal/ui/theme"
)

const volumeStep = 0.1

// SettingsScreen edits the interview mode: enabled themes, question order,
// free roam and narration volume. Edits apply to the shared state
// immediately; there is no separate save step.
type SettingsScreen struct {
	state *appstate.State
	list  components.ToggleList
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// Row order: one row per theme, then random order, then free roam.
func buildRows(state *appstate.State) []components.ToggleItem {
	mode := state.Mode
	items := make([]components.ToggleItem, 0, bank.NumThemes+2)
	for _, t := range bank.Themes() {
		items = append(items, components.ToggleItem{
			Label: t.String(),
			// Free roam shows every theme as enabled and locks the rows.
			On:     mode.FreeRoam || mode.Themes[t],
			Locked: mode.FreeRoam,
		})
	}
	items = append(items,
		components.ToggleItem{Label: "Random question order", On: mode.Random},
		components.ToggleItem{Label: "Free roam (browse all questions)", On: mode.FreeRoam},
	)
	return items
}

// New creates the settings screen bound to the shared mode.
func New(state *appstate.State) *SettingsScreen {
	return &SettingsScreen{
		state: state,
		list:  components.NewToggleList(buildRows(state)),
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Interview settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "←→", Description: "Volume"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			s.state.Volume = clamp(s.state.Volume - volumeStep)
			return s, nil
		case "right", "l":
			s.state.Volume = clamp(s.state.Volume + volumeStep)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	s.apply()
	return s, cmd
}

// apply writes the toggle rows back into the shared mode. A free-roam flip
// rebuilds the rows so the theme section re-renders locked or unlocked.
func (s *SettingsScreen) apply() {
	mode := s.state.Mode
	themes := bank.Themes()

	freeRoam := s.list.Items[len(themes)+1].On
	mode.Random = s.list.Items[len(themes)].On

	if freeRoam != mode.FreeRoam {
		mode.FreeRoam = freeRoam
		cursor := s.list.Selected
		s.list = components.NewToggleList(buildRows(s.state))
		s.list.Selected = cursor
		return
	}

	if !mode.FreeRoam {
		for i, t := range themes {
			mode.Themes[t] = s.list.Items[i].On
		}
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		// Keep the step arithmetic from drifting.
		return float64(int(v*10+0.5)) / 10
	}
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Themes and order"))
	b.WriteString("\n\n")
	b.WriteString(s.list.View())
	b.WriteString("\n")

	volBar := components.NewProgressBar("Narration volume", s.state.Volume, false, 40)
	b.WriteString(volBar.View())
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %.1f", s.state.Volume)))

	if s.state.Mode.FreeRoam {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(
			"free roam enables every theme and lets you pick questions by hand"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
}
