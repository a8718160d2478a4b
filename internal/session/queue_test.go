package session

import (
	"errors"
	"testing"

	"github.com/ivanz/interq/internal/bank"
)

func seededQueue(ids ...bank.QuestionID) *Queue {
	q := &Queue{}
	q.Seed(ids, nil, false)
	return q
}

func TestSeed_OrderedFiltersMastered(t *testing.T) {
	q := &Queue{}
	progress := map[bank.QuestionID]bool{
		9:  true,
		11: true,
		10: false, // answered wrong before: stays in
	}
	q.Seed([]bank.QuestionID{8, 9, 10, 11, 12}, progress, false)

	want := []bank.QuestionID{8, 10, 12}
	got := q.Pending()
	if len(got) != len(want) {
		t.Fatalf("Pending = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pending[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSeed_RandomIsPermutation(t *testing.T) {
	eligible := make([]bank.QuestionID, 50)
	for i := range eligible {
		eligible[i] = bank.QuestionID(8 + i)
	}

	q := &Queue{}
	q.Seed(eligible, nil, true)

	if q.Len() != len(eligible) {
		t.Fatalf("Len = %d, want %d", q.Len(), len(eligible))
	}
	seen := make(map[bank.QuestionID]bool)
	for _, id := range q.Pending() {
		if seen[id] {
			t.Fatalf("duplicate id %d in shuffled queue", id)
		}
		seen[id] = true
	}
	for _, id := range eligible {
		if !seen[id] {
			t.Errorf("id %d missing from shuffled queue", id)
		}
	}
}

func TestSeed_RandomReshufflesPerSession(t *testing.T) {
	eligible := make([]bank.QuestionID, 64)
	for i := range eligible {
		eligible[i] = bank.QuestionID(8 + i)
	}

	// Two independent seeds agreeing element-for-element is astronomically
	// unlikely at this size; retry a few times to rule out the fluke.
	same := true
	for attempt := 0; attempt < 3 && same; attempt++ {
		a, b := &Queue{}, &Queue{}
		a.Seed(eligible, nil, true)
		b.Seed(eligible, nil, true)
		pa, pb := a.Pending(), b.Pending()
		same = true
		for i := range pa {
			if pa[i] != pb[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("repeated random seeds produced identical order")
	}
}

func TestAdvanceOnCorrect_ShrinksByOne(t *testing.T) {
	q := seededQueue(8, 9, 10)

	if err := q.AdvanceOnCorrect(); err != nil {
		t.Fatalf("AdvanceOnCorrect: %v", err)
	}
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
	if cur, _ := q.Current(); cur != 9 {
		t.Errorf("Current = %d, want 9", cur)
	}
}

func TestAdvanceOnCorrect_LastItemExhausts(t *testing.T) {
	q := seededQueue(8)

	err := q.AdvanceOnCorrect()
	if !errors.Is(err, ErrQueueExhausted) {
		t.Fatalf("err = %v, want ErrQueueExhausted", err)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}

	// Advancing an empty queue keeps signalling exhaustion.
	if err := q.AdvanceOnCorrect(); !errors.Is(err, ErrQueueExhausted) {
		t.Errorf("err = %v, want ErrQueueExhausted", err)
	}
}

func TestAdvanceOnIncorrect_RotatesWithoutShrinking(t *testing.T) {
	q := seededQueue(8, 9, 10)

	q.AdvanceOnIncorrect()
	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}
	want := []bank.QuestionID{9, 10, 8}
	got := q.Pending()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pending[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAdvanceOnIncorrect_FullCycleRestoresOrder(t *testing.T) {
	ids := []bank.QuestionID{8, 9, 10, 11, 12}
	q := seededQueue(ids...)

	fronts := make(map[bank.QuestionID]int)
	for i := 0; i < len(ids); i++ {
		cur, ok := q.Current()
		if !ok {
			t.Fatal("queue unexpectedly empty")
		}
		fronts[cur]++
		q.AdvanceOnIncorrect()
	}

	// Every element reached the front exactly once per full cycle.
	for _, id := range ids {
		if fronts[id] != 1 {
			t.Errorf("id %d was front %d times, want 1", id, fronts[id])
		}
	}

	// And a full cycle restores the original order.
	got := q.Pending()
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("Pending[%d] = %d, want %d", i, got[i], ids[i])
		}
	}
}

func TestAdvanceOnIncorrect_SingleElementNoop(t *testing.T) {
	q := seededQueue(8)
	q.AdvanceOnIncorrect()
	if cur, ok := q.Current(); !ok || cur != 8 {
		t.Errorf("Current = %d/%v, want 8/true", cur, ok)
	}
}

func TestCurrent_EmptyQueue(t *testing.T) {
	q := &Queue{}
	if _, ok := q.Current(); ok {
		t.Error("Current on empty queue reported a question")
	}
}
