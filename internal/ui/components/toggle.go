package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivanz/interq/internal/ui/theme"
)

// ToggleItem is one on/off row in a ToggleList.
type ToggleItem struct {
	Label string
	On    bool
	// Locked rows render dimmed and ignore the toggle key.
	Locked bool
}

// ToggleList is a vertical list of switchable options. The host screen
// reads Items back after updates; the list itself holds no other state.
type ToggleList struct {
	Items    []ToggleItem
	Selected int
}

// NewToggleList creates a toggle list with the cursor on the first row.
func NewToggleList(items []ToggleItem) ToggleList {
	return ToggleList{Items: items}
}

// Update moves the cursor and flips rows on space or enter.
func (l ToggleList) Update(msg tea.Msg) (ToggleList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(l.Items) == 0 {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Items)-1 {
			l.Selected++
		}
	case " ", "space", "enter":
		if !l.Items[l.Selected].Locked {
			l.Items[l.Selected].On = !l.Items[l.Selected].On
		}
	}
	return l, nil
}

// View renders the list with [x] markers.
func (l ToggleList) View() string {
	var s string
	for i, item := range l.Items {
		mark := "[ ]"
		if item.On {
			mark = "[x]"
		}
		line := mark + " " + item.Label

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case item.Locked:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == l.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		cursor := "    "
		if i == l.Selected {
			cursor = "  ▸ "
		}
		s += style.Render(cursor+line) + "\n"
	}
	return s
}
