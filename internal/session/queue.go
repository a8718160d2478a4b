package session

import (
	"errors"
	"math/rand"

	"github.com/ivanz/interq/internal/bank"
)

// ErrQueueExhausted signals that the last pending question has been answered
// correctly. It is the expected session-complete signal, not a failure.
var ErrQueueExhausted = errors.New("session queue exhausted")

// Queue holds the rotating sequence of not-yet-mastered questions for the
// active session. The front element is the current question. Wrong answers
// rotate the front to the back so every unmastered question recurs within
// the session; correct answers remove the front for monotonic progress.
// Created at session start, cleared at stop, never persisted.
type Queue struct {
	ids []bank.QuestionID
}

// Seed builds the pending sequence from the eligible ids, excluding ids
// already marked correct in the progress snapshot. With randomOrder the
// sequence is a fresh uniform permutation on every call; otherwise the
// eligible order is preserved.
func (q *Queue) Seed(eligible []bank.QuestionID, progress map[bank.QuestionID]bool, randomOrder bool) {
	q.ids = q.ids[:0]
	for _, id := range eligible {
		if progress[id] {
			continue
		}
		q.ids = append(q.ids, id)
	}
	if randomOrder {
		rand.Shuffle(len(q.ids), func(i, j int) {
			q.ids[i], q.ids[j] = q.ids[j], q.ids[i]
		})
	}
}

// Current returns the question at the front of the queue.
func (q *Queue) Current() (bank.QuestionID, bool) {
	if len(q.ids) == 0 {
		return 0, false
	}
	return q.ids[0], true
}

// AdvanceOnCorrect removes the front element. It returns ErrQueueExhausted
// when the queue is empty, or becomes empty by this removal: both mean
// there is no next question and the session is complete.
func (q *Queue) AdvanceOnCorrect() error {
	if len(q.ids) == 0 {
		return ErrQueueExhausted
	}
	q.ids = q.ids[1:]
	if len(q.ids) == 0 {
		return ErrQueueExhausted
	}
	return nil
}

// AdvanceOnIncorrect rotates the front element to the back. The question is
// revisited later in the same session; nothing is removed.
func (q *Queue) AdvanceOnIncorrect() {
	if len(q.ids) < 2 {
		return
	}
	front := q.ids[0]
	copy(q.ids, q.ids[1:])
	q.ids[len(q.ids)-1] = front
}

// Len returns the number of pending questions.
func (q *Queue) Len() int {
	return len(q.ids)
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.ids = nil
}

// Pending returns a copy of the pending sequence, front first.
func (q *Queue) Pending() []bank.QuestionID {
	out := make([]bank.QuestionID, len(q.ids))
	copy(out, q.ids)
	return out
}
