// Package appstate carries the dependencies and mutable selections shared
// by every screen.
package appstate

import (
	"github.com/ivanz/interq/internal/bank"
	"github.com/ivanz/interq/internal/hint"
	"github.com/ivanz/interq/internal/narrator"
	"github.com/ivanz/interq/internal/session"
	"github.com/ivanz/interq/internal/store"
)

// State is threaded through the screen constructors. Screens mutate User,
// Mode and Volume; everything else is wired once at startup.
type State struct {
	Store   *store.Store
	Bank    *bank.Bank
	Speaker narrator.Speaker
	Hints   hint.Viewer

	// User is the active profile name, empty for anonymous practice.
	User string
	// Mode holds the interview settings edited on the settings screen.
	Mode *session.Mode
	// Volume for narration, 0 to 1.
	Volume float64
}

// New builds the shared state with defaults applied.
func New(st *store.Store, b *bank.Bank, speaker narrator.Speaker, hints hint.Viewer, volume float64) *State {
	mode := session.NewMode()
	return &State{
		Store:   st,
		Bank:    b,
		Speaker: speaker,
		Hints:   hints,
		Mode:    &mode,
		Volume:  volume,
	}
}

// Anonymous reports whether no profile is selected.
func (s *State) Anonymous() bool {
	return s.User == ""
}

// Speak narrates text at the configured volume.
func (s *State) Speak(text string) {
	if s.Speaker != nil {
		s.Speaker.Speak(text, s.Volume)
	}
}
