package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivanz/interq/internal/appstate"
	"github.com/ivanz/interq/internal/router"
	"github.com/ivanz/interq/internal/screen"
	"github.com/ivanz/interq/internal/screens/interview"
	"github.com/ivanz/interq/internal/screens/profile"
	"github.com/ivanz/interq/internal/screens/settings"
	"github.com/ivanz/interq/internal/ui/components"
	"github.com/ivanz/interq/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	state *appstate.State
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen backed by the shared state.
func New(state *appstate.State) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PASS INTERVIEW", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: interview.New(state)}
			}
		}},
		{Label: "USER PROFILES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(state)}
			}
		}},
		{Label: "INTERVIEW SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(state)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		state: state,
		menu:  components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("Interview Trainer")
	sections = append(sections, title)

	subtitle := theme.Subtitle.Width(width).Render(h.profileLine())
	sections = append(sections, subtitle, "")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) profileLine() string {
	if h.state.Anonymous() {
		return "no profile selected, progress will not be saved"
	}
	return "practicing as " + h.state.User
}

func (h *HomeScreen) Title() string {
	return "Home"
}
