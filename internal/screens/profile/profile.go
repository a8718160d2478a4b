package profile

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ivanz/interq/internal/appstate"
	"github.com/ivanz/interq/internal/router"
	"github.com/ivanz/interq/internal/screen"
	"github.com/ivanz/interq/internal/ui/components"
	"github.com/ivanz/interq/internal/ui/layout"
	"github.com/ivanz/interq/internal/users"
)

// errorDismissAfter is how long a create-form validation message stays up.
const errorDismissAfter = 3 * time.Second

// clearErrorMsg dismisses the create-form validation message.
type clearErrorMsg struct{}

// ProfileScreen lists user profiles, shows their statistics and hosts the
// create and delete flows.
type ProfileScreen struct {
	state *appstate.State

	names  []string
	cursor int

	creating   bool
	input      components.TextInput
	confirming bool

	loadErr error
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen and loads the user list.
func New(state *appstate.State) *ProfileScreen {
	p := &ProfileScreen{
		state: state,
		input: components.NewTextInput("profile name", users.MaxNameLen),
	}
	p.reload()
	return p
}

func (p *ProfileScreen) reload() {
	names, err := p.state.Store.ListUsers()
	p.names = names
	p.loadErr = err
	if p.cursor >= len(p.names) {
		p.cursor = len(p.names) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "User profiles"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.creating {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if p.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "N", Description: "New"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clearErrorMsg:
		p.input.ClearError()
		return p, nil

	case tea.KeyMsg:
		if p.creating {
			return p.updateCreating(msg)
		}
		if p.confirming {
			return p.updateConfirming(msg)
		}
		return p.updateList(msg)
	}

	if p.creating {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *ProfileScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.names)-1 {
			p.cursor++
		}
	case "enter":
		if len(p.names) > 0 {
			p.state.User = p.names[p.cursor]
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	case "n":
		p.creating = true
		p.input.Reset()
		return p, p.input.Init()
	case "d":
		if len(p.names) > 0 {
			p.confirming = true
		}
	}
	return p, nil
}

func (p *ProfileScreen) updateCreating(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.creating = false
		return p, nil
	case "enter":
		return p.submitName()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *ProfileScreen) submitName() (screen.Screen, tea.Cmd) {
	name := p.input.Value()

	err := users.ValidateNew(name, p.state.Store.UserExists)
	if err == nil {
		err = p.state.Store.CreateUser(name)
	}
	if err != nil {
		p.input.SetError(validationMessage(err))
		return p, tea.Tick(errorDismissAfter, func(time.Time) tea.Msg {
			return clearErrorMsg{}
		})
	}

	p.creating = false
	p.state.User = name
	p.reload()
	// Jump the cursor onto the new profile.
	for i, n := range p.names {
		if n == name {
			p.cursor = i
			break
		}
	}
	return p, nil
}

func (p *ProfileScreen) updateConfirming(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y":
		name := p.names[p.cursor]
		if err := p.state.Store.DeleteUser(name); err != nil {
			p.loadErr = err
		}
		if p.state.User == name {
			p.state.User = ""
		}
		p.confirming = false
		p.reload()
	case "n", "esc":
		p.confirming = false
	}
	return p, nil
}

// validationMessage maps a validation failure to the text shown under the
// input.
func validationMessage(err error) string {
	switch err {
	case users.ErrNameEmpty:
		return "enter a name"
	case users.ErrNameTooShort:
		return fmt.Sprintf("at least %d characters", users.MinNameLen)
	case users.ErrNameTooLong:
		return fmt.Sprintf("at most %d characters", users.MaxNameLen)
	case users.ErrNameBadFirstChar:
		return "must start with a letter"
	case users.ErrNameBadChars:
		return "letters, digits, space, - and _ only"
	case users.ErrNameTaken:
		return "that name is taken"
	default:
		return err.Error()
	}
}
