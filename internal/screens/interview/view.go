package interview

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/ivanz/interq/internal/session"
	"github.com/ivanz/interq/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	listWidth := width * 2 / 5
	if listWidth < 30 {
		listWidth = 30
	}
	cardWidth := width - listWidth - 6

	noticeLine := s.renderNotice(width)
	bodyHeight := height - lipgloss.Height(noticeLine) - 2
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	s.list.ViewRows = bodyHeight - 2
	left := lipgloss.NewStyle().
		Width(listWidth).
		Height(bodyHeight).
		Render(s.list.View())

	right := lipgloss.NewStyle().
		Width(cardWidth).
		Height(bodyHeight).
		Render(s.renderQuestion(cardWidth))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return lipgloss.NewStyle().Padding(1, 2).Render(body + "\n" + noticeLine)
}

func (s *InterviewScreen) renderQuestion(width int) string {
	var b strings.Builder

	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-2, 1))))
	b.WriteString("\n\n")

	if !s.hasCurrent {
		if s.ctrl.State() == session.StateRunning {
			b.WriteString(theme.Hint.Render("Nothing to ask, stop with s"))
			return b.String()
		}
		if rec, ok := s.ctrl.LastRecord(); ok {
			b.WriteString(renderSummary(rec, width))
			b.WriteString("\n\n")
		}
		b.WriteString(theme.Hint.Render("Press s to start the interview"))
		return b.String()
	}

	q, ok := s.state.Bank.Lookup(s.current)
	if !ok {
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(q.Title))
	b.WriteString("\n\n")

	if q.Theory != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width).
			Render(q.Theory))
		b.WriteString("\n\n")
	}

	if q.Code != "" {
		code := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Background(theme.BgCard).
			Padding(0, 1).
			Render(q.Code)
		b.WriteString(code)
		b.WriteString("\n")
	}

	return b.String()
}

// renderSummary shows the figures of the session that just ended.
func renderSummary(rec session.SessionRecord, width int) string {
	elapsed := rec.EndedAt.Sub(rec.StartedAt).Round(time.Second)

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("Last session"),
		"",
		fmt.Sprintf("Answered   %d", rec.Answered),
		fmt.Sprintf("Correct    %d", rec.Correct),
		fmt.Sprintf("Duration   %s", elapsed),
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func (s *InterviewScreen) renderStatusLine(width int) string {
	var left string
	if s.ctrl.State() == session.StateRunning {
		if s.ctrl.FreeRoam() {
			left = lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("Free roam")
		} else {
			left = lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render(fmt.Sprintf("In progress, %d left", s.ctrl.Remaining()))
		}
	} else {
		left = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Idle")
	}

	right := ""
	if s.muted {
		right = lipgloss.NewStyle().Foreground(theme.TextDim).Render("muted")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *InterviewScreen) renderNotice(width int) string {
	if s.notice == "" {
		return ""
	}

	var fg color.Color
	switch s.noticeKind {
	case noticeError:
		fg = theme.Error
	case noticeWarn:
		fg = theme.Accent
	case noticeSuccess:
		fg = theme.Success
	default:
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Width(width).
		Render("  " + s.notice)
}
