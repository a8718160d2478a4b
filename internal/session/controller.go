package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ivanz/interq/internal/bank"
)

// State is the controller lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
)

// ErrNotRunning is returned by Answer when no session is active.
var ErrNotRunning = errors.New("no interview in progress")

// ErrAlreadyRunning is returned by Start while a session is active.
var ErrAlreadyRunning = errors.New("interview already in progress")

// ProgressStore is the persistence collaborator the controller writes
// through. All operations are synchronous and keyed by user name; failures
// propagate to the caller.
type ProgressStore interface {
	Progress(user string) (map[bank.QuestionID]bool, error)
	SetProgress(user string, progress map[bank.QuestionID]bool) error
	SetLastEnter(user string, day time.Time) error
	Duration(user string) (int64, error)
	SetDuration(user string, secs int64) error
}

// SessionRecord summarizes one finished start-to-stop interval.
type SessionRecord struct {
	ID        string
	User      string
	StartedAt time.Time
	EndedAt   time.Time
	Answered  int
	Correct   int
}

// SessionLog receives a record for every finished named-user session.
type SessionLog interface {
	AppendSession(rec SessionRecord) error
}

// questionProvider resolves the active question for the current answer
// event. The strategy is fixed at session start: queue-driven sessions take
// the queue front, free-roam sessions take whatever the user browsed to.
type questionProvider interface {
	Active() (bank.QuestionID, bool)
}

type queueProvider struct {
	queue *Queue
}

func (p queueProvider) Active() (bank.QuestionID, bool) {
	return p.queue.Current()
}

type browseProvider struct {
	selected bank.QuestionID
	has      bool
}

func (p *browseProvider) Active() (bank.QuestionID, bool) {
	return p.selected, p.has
}

// StartInfo reports the outcome of a successful Start.
type StartInfo struct {
	SessionID string
	Current   bank.QuestionID
	// HasCurrent is false when the seeded queue is empty (every eligible
	// question is already mastered).
	HasCurrent bool
	Remaining  int
	// Anonymous is true for empty-user sessions: no progress or duration
	// is persisted and the caller must show a warning.
	Anonymous bool
}

// AnswerInfo reports the outcome of one answer event.
type AnswerInfo struct {
	Answered    bank.QuestionID
	HasAnswered bool
	// Current is the newly-current question after the queue advanced.
	Current    bank.QuestionID
	HasCurrent bool
	// Completed is true when the correct answer emptied the queue: the
	// session auto-stopped with the "all questions answered" outcome.
	Completed bool
}

// Controller owns the interview session lifecycle. All methods run on the
// interaction loop; the controller is not safe for concurrent use. At most
// one session is active per process.
type Controller struct {
	ranges map[bank.Theme]bank.Range
	store  ProgressStore
	log    SessionLog
	now    func() time.Time

	state     State
	sessionID string
	user      string
	mode      Mode
	queue     Queue
	provider  questionProvider
	browse    *browseProvider

	progress  map[bank.QuestionID]bool
	lastWrong bank.QuestionID
	hasWrong  bool

	startedAt time.Time
	answered  int
	correct   int
	lastRec   *SessionRecord
}

// NewController builds a controller over the bank's theme ranges and the
// persistence collaborator.
func NewController(ranges map[bank.Theme]bank.Range, store ProgressStore) *Controller {
	return &Controller{
		ranges:   ranges,
		store:    store,
		now:      time.Now,
		progress: make(map[bank.QuestionID]bool),
	}
}

// SetSessionLog attaches an optional session history sink.
func (c *Controller) SetSessionLog(log SessionLog) {
	c.log = log
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Start begins a session for the given user (empty user = anonymous). It
// computes eligibility, loads the user's progress snapshot, seeds the queue
// (queue-driven sessions only), records the visit date and transitions to
// Running. An empty eligible set with free-roam off aborts with
// ErrNoThemeSelected and the controller stays Idle.
func (c *Controller) Start(user string, mode Mode) (StartInfo, error) {
	if c.state == StateRunning {
		return StartInfo{}, ErrAlreadyRunning
	}

	mode = mode.Clone()
	eligible, err := EligibleIDs(mode, c.ranges)
	if err != nil {
		return StartInfo{}, err
	}

	progress := make(map[bank.QuestionID]bool)
	if user != "" {
		progress, err = c.store.Progress(user)
		if err != nil {
			return StartInfo{}, err
		}
	}

	c.user = user
	c.mode = mode
	c.progress = progress
	c.hasWrong = false
	c.answered = 0
	c.correct = 0

	if mode.FreeRoam {
		c.browse = &browseProvider{}
		if len(eligible) > 0 {
			c.browse.selected = eligible[0]
			c.browse.has = true
		}
		c.provider = c.browse
		c.queue.Clear()
	} else {
		c.browse = nil
		c.queue.Seed(eligible, progress, mode.Random)
		c.provider = queueProvider{queue: &c.queue}
	}

	c.startedAt = c.now()
	if user != "" {
		if err := c.store.SetLastEnter(user, c.startedAt); err != nil {
			c.queue.Clear()
			return StartInfo{}, err
		}
	}

	c.sessionID = uuid.New().String()
	c.state = StateRunning

	info := StartInfo{
		SessionID: c.sessionID,
		Remaining: c.queue.Len(),
		Anonymous: user == "",
	}
	info.Current, info.HasCurrent = c.provider.Active()
	return info, nil
}

// Answer records one correct/incorrect answer event for the active
// question. Valid only while Running.
func (c *Controller) Answer(correct bool) (AnswerInfo, error) {
	if c.state != StateRunning {
		return AnswerInfo{}, ErrNotRunning
	}

	id, ok := c.provider.Active()
	var info AnswerInfo
	info.Answered, info.HasAnswered = id, ok

	if ok {
		c.answered++
	}

	if !correct {
		if ok {
			c.lastWrong = id
			c.hasWrong = true
			if !c.mode.FreeRoam {
				c.queue.AdvanceOnIncorrect()
			}
		}
		info.Current, info.HasCurrent = c.provider.Active()
		return info, nil
	}

	if ok {
		c.correct++
		c.progress[id] = true
		if c.hasWrong && c.lastWrong == id {
			c.hasWrong = false
		}
		if c.user != "" {
			if err := c.store.SetProgress(c.user, c.snapshot()); err != nil {
				return info, err
			}
		}
	}

	if !c.mode.FreeRoam {
		if err := c.queue.AdvanceOnCorrect(); err != nil {
			// Last pending question answered: graceful auto-stop.
			info.Completed = true
			if ferr := c.finish(); ferr != nil {
				return info, ferr
			}
			return info, nil
		}
	}

	info.Current, info.HasCurrent = c.provider.Active()
	return info, nil
}

// Browse records the externally selected question for free-roam sessions.
// Ignored for queue-driven sessions, where the queue alone decides the
// active question.
func (c *Controller) Browse(id bank.QuestionID) {
	if c.browse == nil {
		return
	}
	c.browse.selected = id
	c.browse.has = true
}

// Current returns the active question id, if any.
func (c *Controller) Current() (bank.QuestionID, bool) {
	if c.state != StateRunning || c.provider == nil {
		return 0, false
	}
	return c.provider.Active()
}

// Stop ends the running session: it adds the elapsed duration to the user's
// stored total, clears the queue and returns to Idle. Stop while already
// Idle is a no-op: it must not fail and must not double-count duration.
func (c *Controller) Stop() error {
	if c.state != StateRunning {
		return nil
	}
	return c.finish()
}

func (c *Controller) finish() error {
	elapsed := c.now().Sub(c.startedAt)
	if elapsed < 0 {
		// Clock skew: never subtract from the stored total.
		elapsed = 0
	}
	endedAt := c.startedAt.Add(elapsed)

	user := c.user
	rec := SessionRecord{
		ID:        c.sessionID,
		User:      user,
		StartedAt: c.startedAt,
		EndedAt:   endedAt,
		Answered:  c.answered,
		Correct:   c.correct,
	}
	c.lastRec = &rec

	c.queue.Clear()
	c.provider = nil
	c.browse = nil
	c.hasWrong = false
	c.state = StateIdle

	if user == "" {
		return nil
	}

	total, err := c.store.Duration(user)
	if err != nil {
		return err
	}
	if err := c.store.SetDuration(user, total+int64(elapsed.Seconds())); err != nil {
		return err
	}
	if c.log != nil {
		if err := c.log.AppendSession(rec); err != nil {
			return err
		}
	}
	return nil
}

// LastRecord returns the record of the most recently finished session, if
// one finished since the controller was built.
func (c *Controller) LastRecord() (SessionRecord, bool) {
	if c.lastRec == nil {
		return SessionRecord{}, false
	}
	return *c.lastRec, true
}

// Statuses reconciles the three-color view over the session's progress
// snapshot: green for mastered ids, red for the last wrongly answered id
// (unless since mastered). Absent ids render white.
func (c *Controller) Statuses() map[bank.QuestionID]Status {
	out := make(map[bank.QuestionID]Status, len(c.progress)+1)
	for id, right := range c.progress {
		if right {
			out[id] = StatusCorrect
		}
	}
	if c.hasWrong && !c.progress[c.lastWrong] {
		out[c.lastWrong] = StatusWrong
	}
	return out
}

// ProgressSnapshot returns a copy of the session's in-memory progress view.
func (c *Controller) ProgressSnapshot() map[bank.QuestionID]bool {
	return c.snapshot()
}

// Remaining returns the number of questions still pending in the queue.
func (c *Controller) Remaining() int {
	return c.queue.Len()
}

// FreeRoam reports whether the running session is browse-driven.
func (c *Controller) FreeRoam() bool {
	return c.state == StateRunning && c.mode.FreeRoam
}

func (c *Controller) snapshot() map[bank.QuestionID]bool {
	out := make(map[bank.QuestionID]bool, len(c.progress))
	for id, right := range c.progress {
		out[id] = right
	}
	return out
}
