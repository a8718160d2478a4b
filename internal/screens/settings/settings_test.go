package settings

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ivanz/interq/internal/appstate"
	"github.com/ivanz/interq/internal/bank"
	"github.com/ivanz/interq/internal/narrator"
)

func newTestSettings() (*SettingsScreen, *appstate.State) {
	state := appstate.New(nil, nil, narrator.Noop{}, nil, 0.5)
	return New(state), state
}

func press(s *SettingsScreen, key string) {
	var msg tea.KeyPressMsg
	switch key {
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "space":
		msg = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "left":
		msg = tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		msg = tea.KeyPressMsg{Code: tea.KeyRight}
	default:
		r := rune(key[0])
		msg = tea.KeyPressMsg{Code: r, Text: key}
	}
	s.Update(msg)
}

func TestToggleThemeWritesMode(t *testing.T) {
	s, state := newTestSettings()

	// First row is the basics theme, enabled by default.
	press(s, "space")
	if state.Mode.Themes[bank.ThemeBasics] {
		t.Error("basics should be toggled off")
	}

	press(s, "down")
	press(s, "space")
	if !state.Mode.Themes[bank.ThemeOOP] {
		t.Error("oop should be toggled on")
	}
}

func TestRandomToggle(t *testing.T) {
	s, state := newTestSettings()

	for i := 0; i < bank.NumThemes; i++ {
		press(s, "down")
	}
	press(s, "space")

	if !state.Mode.Random {
		t.Error("random order should be enabled")
	}
}

func TestFreeRoamLocksThemes(t *testing.T) {
	s, state := newTestSettings()

	for i := 0; i < bank.NumThemes+1; i++ {
		press(s, "down")
	}
	press(s, "space")

	if !state.Mode.FreeRoam {
		t.Fatal("free roam should be enabled")
	}
	for i := 0; i < bank.NumThemes; i++ {
		if !s.list.Items[i].On || !s.list.Items[i].Locked {
			t.Errorf("theme row %d should be on and locked", i)
		}
	}

	// Locked rows must not flip, and the underlying selection is kept.
	s.list.Selected = 0
	press(s, "space")
	if !s.list.Items[0].On {
		t.Error("locked theme row must stay on")
	}
	if state.Mode.Themes[bank.ThemeOOP] {
		t.Error("free roam must not rewrite the stored theme selection")
	}
}

func TestFreeRoamOffRestoresSelection(t *testing.T) {
	s, state := newTestSettings()

	for i := 0; i < bank.NumThemes+1; i++ {
		press(s, "down")
	}
	press(s, "space")
	press(s, "space")

	if state.Mode.FreeRoam {
		t.Fatal("free roam should be off again")
	}
	if !s.list.Items[0].On {
		t.Error("basics row should be back to its stored value")
	}
	if s.list.Items[1].On {
		t.Error("oop row should be back to its stored value")
	}
}

func TestVolumeKeys(t *testing.T) {
	s, state := newTestSettings()

	press(s, "right")
	if state.Volume != 0.6 {
		t.Errorf("volume = %v, want 0.6", state.Volume)
	}

	for i := 0; i < 10; i++ {
		press(s, "right")
	}
	if state.Volume != 1.0 {
		t.Errorf("volume = %v, want clamp at 1.0", state.Volume)
	}

	for i := 0; i < 20; i++ {
		press(s, "left")
	}
	if state.Volume != 0 {
		t.Errorf("volume = %v, want clamp at 0", state.Volume)
	}
}
