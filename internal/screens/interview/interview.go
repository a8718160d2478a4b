package interview

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ivanz/interq/internal/appstate"
	"github.com/ivanz/interq/internal/bank"
	"github.com/ivanz/interq/internal/hint"
	"github.com/ivanz/interq/internal/screen"
	"github.com/ivanz/interq/internal/session"
	"github.com/ivanz/interq/internal/ui/components"
	"github.com/ivanz/interq/internal/ui/layout"
)

// InterviewScreen drives a practice session. The question tree fills the
// left half, the current question the right; answers are dispatched with
// y and n.
type InterviewScreen struct {
	state *appstate.State
	ctrl  *session.Controller

	list   components.QuestionList
	rowIDs []bank.QuestionID

	current    bank.QuestionID
	hasCurrent bool
	remaining  int
	muted      bool

	notice     string
	noticeKind noticeKind
	noticeSeq  int
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates the interview screen with a fresh controller.
func New(state *appstate.State) *InterviewScreen {
	ctrl := session.NewController(state.Bank.Ranges(), state.Store)
	ctrl.SetSessionLog(state.Store)

	s := &InterviewScreen{
		state: state,
		ctrl:  ctrl,
	}
	s.rebuildList()
	return s
}

func (s *InterviewScreen) Init() tea.Cmd {
	return nil
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.State() == session.StateRunning {
		hints := []layout.KeyHint{
			{Key: "Y", Description: "Right"},
			{Key: "N", Description: "Wrong"},
			{Key: "H", Description: "Hint"},
			{Key: "R", Description: "Repeat"},
			{Key: "S", Description: "Stop"},
		}
		if s.ctrl.FreeRoam() {
			hints = append([]layout.KeyHint{
				{Key: "↑↓", Description: "Pick question"},
			}, hints...)
		}
		return hints
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clearNoticeMsg:
		if msg.seq == s.noticeSeq {
			s.notice = ""
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "s":
		return s.toggleSession()
	case "y":
		return s.answer(true)
	case "n":
		return s.answer(false)
	case "h":
		return s.showHint()
	case "r":
		s.narrateCurrent()
		return s, nil
	case "m":
		s.muted = !s.muted
		return s, nil
	case "up", "down", "k", "j":
		if s.ctrl.State() == session.StateRunning && s.ctrl.FreeRoam() {
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(msg)
			s.browseToCursor()
			return s, cmd
		}
	}
	return s, nil
}

func (s *InterviewScreen) toggleSession() (screen.Screen, tea.Cmd) {
	if s.ctrl.State() == session.StateRunning {
		if err := s.ctrl.Stop(); err != nil {
			return s, s.setNotice(err.Error(), noticeError)
		}
		s.hasCurrent = false
		s.rebuildList()
		return s, s.setNotice("Interview stopped", noticeInfo)
	}

	info, err := s.ctrl.Start(s.state.User, *s.state.Mode)
	if errors.Is(err, session.ErrNoThemeSelected) {
		return s, s.setNotice("Enable at least one theme in the settings", noticeError)
	}
	if err != nil {
		return s, s.setNotice(err.Error(), noticeError)
	}

	s.current = info.Current
	s.hasCurrent = info.HasCurrent
	s.remaining = info.Remaining
	s.rebuildList()
	s.focusCurrent()
	s.narrateCurrent()

	if info.Anonymous {
		return s, s.setNotice("Anonymous session, progress will not be saved", noticeWarn)
	}
	if !info.HasCurrent && !s.ctrl.FreeRoam() {
		return s, s.setNotice("Every selected question is already mastered", noticeInfo)
	}
	return s, nil
}

func (s *InterviewScreen) answer(correct bool) (screen.Screen, tea.Cmd) {
	if s.ctrl.State() != session.StateRunning {
		return s, nil
	}

	info, err := s.ctrl.Answer(correct)
	if err != nil && !info.Completed {
		return s, s.setNotice(err.Error(), noticeError)
	}

	if info.Completed {
		s.hasCurrent = false
		s.rebuildList()
		return s, s.setNotice("All questions answered, interview complete", noticeSuccess)
	}

	prev := s.current
	s.current = info.Current
	s.hasCurrent = info.HasCurrent
	s.remaining = s.ctrl.Remaining()
	s.rebuildList()
	s.focusCurrent()
	if s.hasCurrent && s.current != prev {
		s.narrateCurrent()
	}
	return s, nil
}

func (s *InterviewScreen) showHint() (screen.Screen, tea.Cmd) {
	if !s.hasCurrent {
		return s, nil
	}
	q, ok := s.state.Bank.Lookup(s.current)
	if !ok {
		return s, nil
	}
	err := s.state.Hints.Show(hint.Ref{Doc: q.Doc, Page: q.DocPage})
	if errors.Is(err, hint.ErrNoDoc) {
		return s, s.setNotice("No documentation for this question", noticeInfo)
	}
	if err != nil {
		return s, s.setNotice("Could not open the hint: "+err.Error(), noticeError)
	}
	return s, nil
}

// browseToCursor retargets a free-roam session at the question under the
// cursor.
func (s *InterviewScreen) browseToCursor() {
	idx := s.list.Selected()
	if idx < 0 || idx >= len(s.rowIDs) {
		return
	}
	id := s.rowIDs[idx]
	if id == 0 || id == s.current {
		return
	}
	s.ctrl.Browse(id)
	s.current = id
	s.hasCurrent = true
	s.narrateCurrent()
}

func (s *InterviewScreen) narrateCurrent() {
	if !s.hasCurrent || s.muted {
		return
	}
	if q, ok := s.state.Bank.Lookup(s.current); ok {
		s.state.Speak(q.Title)
	}
}

func (s *InterviewScreen) setNotice(text string, kind noticeKind) tea.Cmd {
	s.notice = text
	s.noticeKind = kind
	s.noticeSeq++
	seq := s.noticeSeq
	return tea.Tick(noticeDismissAfter, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// rebuildList regenerates the question tree from the current statuses.
func (s *InterviewScreen) rebuildList() {
	statuses := s.statuses()
	ranges := s.state.Bank.Ranges()

	var rows []components.QuestionRow
	var ids []bank.QuestionID

	for _, t := range bank.Themes() {
		r, ok := ranges[t]
		if !ok || !s.themeVisible(t) {
			continue
		}
		rows = append(rows, components.QuestionRow{Label: t.String(), Header: true})
		ids = append(ids, 0)

		for _, id := range r.IDs() {
			q, ok := s.state.Bank.Lookup(id)
			if !ok {
				continue
			}
			rows = append(rows, components.QuestionRow{
				Label: q.Title,
				State: rowState(statuses[id]),
			})
			ids = append(ids, id)
		}
	}

	cursor := s.list.Cursor
	s.list = components.NewQuestionList(rows, 0)
	if cursor < len(rows) {
		s.list.Cursor = cursor
	}
	s.rowIDs = ids
}

// themeVisible reports whether a theme's block belongs in the tree. While
// idle every theme is listed; a running session narrows to what it covers.
func (s *InterviewScreen) themeVisible(t bank.Theme) bool {
	if s.ctrl.State() != session.StateRunning {
		return true
	}
	if s.ctrl.FreeRoam() {
		return true
	}
	return s.state.Mode.Enabled(t)
}

// statuses resolves the color of every question. A running session asks
// the controller so the last wrong answer shows red; otherwise mastered
// questions come straight from the store.
func (s *InterviewScreen) statuses() map[bank.QuestionID]session.Status {
	if s.ctrl.State() == session.StateRunning {
		return s.ctrl.Statuses()
	}

	out := make(map[bank.QuestionID]session.Status)
	if s.state.Anonymous() {
		return out
	}
	progress, err := s.state.Store.Progress(s.state.User)
	if err != nil {
		return out
	}
	for id, correct := range progress {
		if correct {
			out[id] = session.StatusCorrect
		}
	}
	return out
}

func rowState(st session.Status) components.RowState {
	switch st {
	case session.StatusCorrect:
		return components.RowGood
	case session.StatusWrong:
		return components.RowBad
	default:
		return components.RowPlain
	}
}

// focusCurrent moves the tree cursor onto the active question.
func (s *InterviewScreen) focusCurrent() {
	if !s.hasCurrent {
		return
	}
	for i, id := range s.rowIDs {
		if id == s.current {
			s.list.Cursor = i
			return
		}
	}
}
