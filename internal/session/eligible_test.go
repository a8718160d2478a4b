package session

import (
	"errors"
	"testing"

	"github.com/ivanz/interq/internal/bank"
)

func testRanges() map[bank.Theme]bank.Range {
	return map[bank.Theme]bank.Range{
		bank.ThemeBasics:     {First: 8, Last: 12},
		bank.ThemeOOP:        {First: 13, Last: 15},
		bank.ThemeAlgorithms: {First: 16, Last: 17},
	}
}

func TestEligibleIDs_EnabledThemesOnly(t *testing.T) {
	mode := Mode{Themes: map[bank.Theme]bool{
		bank.ThemeBasics:     true,
		bank.ThemeAlgorithms: true,
	}}

	ids, err := EligibleIDs(mode, testRanges())
	if err != nil {
		t.Fatalf("EligibleIDs: %v", err)
	}

	want := []bank.QuestionID{8, 9, 10, 11, 12, 16, 17}
	if len(ids) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(ids), len(want), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestEligibleIDs_FreeRoamOverridesThemeFlags(t *testing.T) {
	// Every theme flag off, free-roam on: the whole bank is eligible.
	mode := Mode{Themes: map[bank.Theme]bool{}, FreeRoam: true}

	ids, err := EligibleIDs(mode, testRanges())
	if err != nil {
		t.Fatalf("EligibleIDs: %v", err)
	}
	if len(ids) != 10 {
		t.Errorf("len = %d, want 10", len(ids))
	}
}

func TestEligibleIDs_NoThemeSelected(t *testing.T) {
	mode := Mode{Themes: map[bank.Theme]bool{}}

	_, err := EligibleIDs(mode, testRanges())
	if !errors.Is(err, ErrNoThemeSelected) {
		t.Errorf("err = %v, want ErrNoThemeSelected", err)
	}
}

func TestEligibleIDs_ThemeWithoutQuestions(t *testing.T) {
	// Enabled theme absent from the bank contributes nothing but a second
	// populated theme keeps the set non-empty.
	mode := Mode{Themes: map[bank.Theme]bool{
		bank.ThemeSQL: true,
		bank.ThemeOOP: true,
	}}

	ids, err := EligibleIDs(mode, testRanges())
	if err != nil {
		t.Fatalf("EligibleIDs: %v", err)
	}
	want := []bank.QuestionID{13, 14, 15}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
}
