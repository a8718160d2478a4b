package profile

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/ivanz/interq/internal/bank"
	"github.com/ivanz/interq/internal/stats"
	"github.com/ivanz/interq/internal/ui/components"
	"github.com/ivanz/interq/internal/ui/theme"
)

func (p *ProfileScreen) View(width, height int) string {
	if p.loadErr != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + p.loadErr.Error())
	}

	if p.creating {
		return p.renderCreateForm(width, height)
	}
	if p.confirming {
		return p.renderDeleteConfirm(width, height)
	}

	listWidth := width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	statsWidth := width - listWidth - 4

	list := p.renderList(listWidth)
	panel := p.renderStats(statsWidth)

	row := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", panel)
	return lipgloss.NewStyle().Padding(1, 2).Render(row)
}

func (p *ProfileScreen) renderList(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Profiles"))
	b.WriteString("\n\n")

	if len(p.names) == 0 {
		b.WriteString(theme.Hint.Render("no profiles yet, press n"))
		return lipgloss.NewStyle().Width(width).Render(b.String())
	}

	for i, name := range p.names {
		label := name
		if name == p.state.User {
			label += " ●"
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		cursor := "  "
		if i == p.cursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			cursor = "▸ "
		}
		b.WriteString(style.Render(cursor+label) + "\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (p *ProfileScreen) renderStats(width int) string {
	if len(p.names) == 0 {
		return ""
	}
	name := p.names[p.cursor]

	progress, err := p.state.Store.Progress(name)
	if err != nil {
		return theme.Hint.Render(err.Error())
	}
	rep := stats.Build(progress, p.state.Bank.Ranges())

	var lines []string
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(name),
		"")

	if last, err := p.state.Store.LastEnter(name); err == nil {
		lines = append(lines, statLine("Last visit", stats.LastVisit(last, time.Now())))
	}
	if secs, err := p.state.Store.Duration(name); err == nil {
		lines = append(lines, statLine("Interview hours", stats.Hours(secs)))
	}
	if n, err := p.state.Store.SessionCount(name); err == nil {
		lines = append(lines, statLine("Sessions", fmt.Sprintf("%d", n)))
	}
	lines = append(lines,
		statLine("Answered", fmt.Sprintf("%d of %d", rep.RightAnswers, rep.TotalQuestions)),
		statLine("Completion", fmt.Sprintf("%.1f%%", rep.CompletionPercent)),
		"")

	barWidth := width - 4
	if barWidth > 48 {
		barWidth = 48
	}
	for _, t := range bank.Themes() {
		frac, ok := rep.PerTheme[t]
		if !ok {
			continue
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-18s", t.String()), frac, true, barWidth)
		lines = append(lines, bar.View())
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func statLine(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+": ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(value)
}

func (p *ProfileScreen) renderCreateForm(width, height int) string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("New profile"),
		"",
		p.input.View(),
	)
	card := theme.Card.Render(form)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (p *ProfileScreen) renderDeleteConfirm(width, height int) string {
	name := p.names[p.cursor]
	prompt := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render("Delete "+name+"?"),
		"",
		theme.Hint.Render("all progress will be lost, y to confirm"),
	)
	card := theme.Card.Render(prompt)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
