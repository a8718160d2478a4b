package bank

import (
	"fmt"
	"sort"
)

// QuestionID identifies a question. IDs are globally unique and contiguous
// inside each theme's range.
type QuestionID int

// Question is a single interview question. Immutable once loaded.
type Question struct {
	ID      QuestionID
	Theme   Theme
	Title   string
	Theory  string
	Code    string
	Doc     string
	DocPage int
}

// Range is a closed interval [First, Last] of question identifiers owned by
// one theme.
type Range struct {
	First QuestionID
	Last  QuestionID
}

// Contains reports whether id falls inside the range.
func (r Range) Contains(id QuestionID) bool {
	return id >= r.First && id <= r.Last
}

// Size returns the number of identifiers in the range.
func (r Range) Size() int {
	return int(r.Last-r.First) + 1
}

// IDs returns every identifier in the range in ascending order.
func (r Range) IDs() []QuestionID {
	ids := make([]QuestionID, 0, r.Size())
	for id := r.First; id <= r.Last; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Bank is the in-memory question bank, loaded once at startup and read-only
// for the process lifetime.
type Bank struct {
	questions []Question
	byID      map[QuestionID]int
	ranges    map[Theme]Range
}

// New builds a Bank from the loaded questions and derives the per-theme
// identifier ranges. It enforces the range invariant: each theme's ids form
// a contiguous block, blocks are disjoint, and together they cover the whole
// bank without gaps.
func New(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })

	byID := make(map[QuestionID]int, len(qs))
	ranges := make(map[Theme]Range)
	for i, q := range qs {
		if !q.Theme.Valid() {
			return nil, fmt.Errorf("question %d: unknown theme %d", q.ID, q.Theme)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		byID[q.ID] = i

		if i > 0 && q.ID != qs[i-1].ID+1 {
			return nil, fmt.Errorf("question ids not contiguous: gap between %d and %d", qs[i-1].ID, q.ID)
		}

		r, seen := ranges[q.Theme]
		if !seen {
			ranges[q.Theme] = Range{First: q.ID, Last: q.ID}
			continue
		}
		if q.ID != r.Last+1 {
			return nil, fmt.Errorf("theme %s split: id %d does not extend [%d, %d]", q.Theme, q.ID, r.First, r.Last)
		}
		r.Last = q.ID
		ranges[q.Theme] = r
	}

	return &Bank{questions: qs, byID: byID, ranges: ranges}, nil
}

// Lookup returns the question with the given id.
func (b *Bank) Lookup(id QuestionID) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// Questions returns all questions in ascending id order. The caller must not
// mutate the returned slice.
func (b *Bank) Questions() []Question {
	return b.questions
}

// Size returns the number of questions in the bank.
func (b *Bank) Size() int {
	return len(b.questions)
}

// Range returns the identifier range owned by the given theme. Themes with
// no questions in the bank report ok=false.
func (b *Bank) Range(t Theme) (Range, bool) {
	r, ok := b.ranges[t]
	return r, ok
}

// Ranges returns a copy of the per-theme identifier ranges.
func (b *Bank) Ranges() map[Theme]Range {
	out := make(map[Theme]Range, len(b.ranges))
	for t, r := range b.ranges {
		out[t] = r
	}
	return out
}
