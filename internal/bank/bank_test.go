package bank

import (
	"strings"
	"testing"
)

func testQuestions(themeSizes map[Theme]int) []Question {
	var qs []Question
	id := QuestionID(8)
	for _, t := range Themes() {
		n := themeSizes[t]
		for i := 0; i < n; i++ {
			qs = append(qs, Question{
				ID:      id,
				Theme:   t,
				Title:   "q",
				Theory:  "theory",
				Code:    "code",
				Doc:     "doc",
				DocPage: 1,
			})
			id++
		}
	}
	return qs
}

func TestNew_DerivesRanges(t *testing.T) {
	b, err := New(testQuestions(map[Theme]int{
		ThemeBasics: 5,
		ThemeOOP:    3,
		ThemeGit:    2,
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		theme Theme
		first QuestionID
		last  QuestionID
	}{
		{ThemeBasics, 8, 12},
		{ThemeOOP, 13, 15},
		{ThemeGit, 16, 17},
	}
	for _, tt := range tests {
		r, ok := b.Range(tt.theme)
		if !ok {
			t.Errorf("Range(%s): missing", tt.theme)
			continue
		}
		if r.First != tt.first || r.Last != tt.last {
			t.Errorf("Range(%s) = [%d, %d], want [%d, %d]", tt.theme, r.First, r.Last, tt.first, tt.last)
		}
	}

	if _, ok := b.Range(ThemeSQL); ok {
		t.Error("Range(ThemeSQL): expected no range for absent theme")
	}
}

func TestNew_RejectsGaps(t *testing.T) {
	qs := testQuestions(map[Theme]int{ThemeBasics: 3})
	qs[2].ID = 20 // leaves a hole after 9

	if _, err := New(qs); err == nil {
		t.Error("expected error for non-contiguous ids")
	}
}

func TestNew_RejectsSplitTheme(t *testing.T) {
	qs := []Question{
		{ID: 8, Theme: ThemeBasics},
		{ID: 9, Theme: ThemeOOP},
		{ID: 10, Theme: ThemeBasics},
	}
	if _, err := New(qs); err == nil {
		t.Error("expected error for interleaved theme ranges")
	}
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	qs := []Question{
		{ID: 8, Theme: ThemeBasics},
		{ID: 8, Theme: ThemeBasics},
	}
	if _, err := New(qs); err == nil {
		t.Error("expected error for duplicate id")
	}
}

func TestNew_RejectsEmptyBank(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for empty bank")
	}
}

func TestLoad_ParsesCSV(t *testing.T) {
	data := strings.Join([]string{
		"8;0;Variables;What is a variable?;Declare three variables;basics;1",
		"9;0;Typing;Static vs dynamic typing?;Write a typed function;basics;4",
		"10;1;Classes;What is a class?;Define a class;oop;2",
	}, "\n")

	b, err := Load(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Size() != 3 {
		t.Fatalf("Size = %d, want 3", b.Size())
	}

	q, ok := b.Lookup(9)
	if !ok {
		t.Fatal("Lookup(9): missing")
	}
	if q.Theme != ThemeBasics {
		t.Errorf("Theme = %v, want ThemeBasics", q.Theme)
	}
	if q.Title != "Typing" {
		t.Errorf("Title = %q, want %q", q.Title, "Typing")
	}
	if q.Doc != "basics" || q.DocPage != 4 {
		t.Errorf("Doc = %q page %d, want basics page 4", q.Doc, q.DocPage)
	}
}

func TestLoad_RejectsBadRecord(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad id", "x;0;t;th;c;d;1"},
		{"bad theme", "8;seven;t;th;c;d;1"},
		{"bad page", "8;0;t;th;c;d;last"},
		{"wrong field count", "8;0;t;th;c"},
		{"unknown theme index", "8;9;t;th;c;d;1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.data)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestRangeIDs(t *testing.T) {
	r := Range{First: 8, Last: 12}
	ids := r.IDs()
	want := []QuestionID{8, 9, 10, 11, 12}
	if len(ids) != len(want) {
		t.Fatalf("len = %d, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}
