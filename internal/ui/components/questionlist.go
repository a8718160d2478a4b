package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ivanz/interq/internal/ui/theme"
)

// RowState colors a question row.
type RowState int

const (
	RowPlain RowState = iota
	RowGood
	RowBad
)

// QuestionRow is one selectable line in a QuestionList. Header rows are
// skipped by the cursor.
type QuestionRow struct {
	Label  string
	State  RowState
	Header bool
}

// QuestionList renders the question tree with a movable cursor and a
// scrolling window. The host screen maps the cursor back to its own data
// through Selected().
type QuestionList struct {
	Rows     []QuestionRow
	Cursor   int
	ViewRows int
	offset   int
}

// NewQuestionList builds a list with the cursor on the first selectable row.
func NewQuestionList(rows []QuestionRow, viewRows int) QuestionList {
	l := QuestionList{Rows: rows, ViewRows: viewRows}
	for i, r := range rows {
		if !r.Header {
			l.Cursor = i
			break
		}
	}
	return l
}

// Selected returns the cursor position, or -1 when the list has no
// selectable rows.
func (l QuestionList) Selected() int {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) || l.Rows[l.Cursor].Header {
		return -1
	}
	return l.Cursor
}

// Update moves the cursor over selectable rows.
func (l QuestionList) Update(msg tea.Msg) (QuestionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(l.Rows) == 0 {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := l.Cursor - 1; i >= 0; i-- {
			if !l.Rows[i].Header {
				l.Cursor = i
				break
			}
		}
	case "down", "j":
		for i := l.Cursor + 1; i < len(l.Rows); i++ {
			if !l.Rows[i].Header {
				l.Cursor = i
				break
			}
		}
	}
	l.scrollToCursor()
	return l, nil
}

func (l *QuestionList) scrollToCursor() {
	if l.ViewRows <= 0 {
		return
	}
	if l.Cursor < l.offset {
		l.offset = l.Cursor
	}
	if l.Cursor >= l.offset+l.ViewRows {
		l.offset = l.Cursor - l.ViewRows + 1
	}
}

// View renders the visible window of rows.
func (l QuestionList) View() string {
	end := len(l.Rows)
	start := 0
	if l.ViewRows > 0 && end > l.ViewRows {
		start = l.offset
		if start+l.ViewRows < end {
			end = start + l.ViewRows
		}
	}

	var s string
	for i := start; i < end; i++ {
		row := l.Rows[i]

		if row.Header {
			s += lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  "+row.Label) + "\n"
			continue
		}

		var style lipgloss.Style
		switch row.State {
		case RowGood:
			style = theme.QuestionMastered
		case RowBad:
			style = theme.QuestionWrong
		default:
			style = theme.QuestionUntouched
		}

		cursor := "    "
		if i == l.Cursor {
			cursor = "  ▸ "
			style = style.Bold(true)
		}
		s += style.Render(cursor+row.Label) + "\n"
	}
	return s
}
