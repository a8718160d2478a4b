package session

import "github.com/ivanz/interq/internal/bank"

// Mode is the interview configuration chosen on the settings screen: the
// enabled theme set plus the random and free-roam flags. Components receive
// Mode as a value snapshot, never a shared reference.
type Mode struct {
	Themes   map[bank.Theme]bool
	Random   bool
	FreeRoam bool
}

// NewMode returns the default configuration: ordered questions, basics only.
func NewMode() Mode {
	return Mode{
		Themes: map[bank.Theme]bool{bank.ThemeBasics: true},
	}
}

// Clone returns a deep copy of the mode.
func (m Mode) Clone() Mode {
	themes := make(map[bank.Theme]bool, len(m.Themes))
	for t, on := range m.Themes {
		themes[t] = on
	}
	return Mode{Themes: themes, Random: m.Random, FreeRoam: m.FreeRoam}
}

// Enabled reports whether the theme participates in eligibility. Free-roam
// overrides individual theme flags and forces every theme on.
func (m Mode) Enabled(t bank.Theme) bool {
	if m.FreeRoam {
		return true
	}
	return m.Themes[t]
}
