package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivanz/interq/internal/appstate"
	"github.com/ivanz/interq/internal/bank"
	"github.com/ivanz/interq/internal/hint"
	"github.com/ivanz/interq/internal/narrator"
	"github.com/ivanz/interq/internal/router"
	"github.com/ivanz/interq/internal/screen"
	"github.com/ivanz/interq/internal/screens/home"
	"github.com/ivanz/interq/internal/screens/welcome"
	"github.com/ivanz/interq/internal/store"
	"github.com/ivanz/interq/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Store   *store.Store
	Bank    *bank.Bank
	Speaker narrator.Speaker
	Hints   hint.Viewer
	Volume  float64
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	state  *appstate.State
	router *router.Router
	width  int
	height int
}

// newAppModel builds the shared state and opens on the welcome splash.
func newAppModel(opts Options) AppModel {
	state := appstate.New(opts.Store, opts.Bank, opts.Speaker, opts.Hints, opts.Volume)
	splash := welcome.New(func() screen.Screen {
		return home.New(state)
	})
	return AppModel{
		state:  state,
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash runs frameless.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.state.User, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
