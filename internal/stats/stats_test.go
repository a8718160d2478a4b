package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ivanz/interq/internal/bank"
)

func testRanges() map[bank.Theme]bank.Range {
	return map[bank.Theme]bank.Range{
		bank.ThemeBasics: {First: 8, Last: 11},
		bank.ThemeOOP:    {First: 12, Last: 15},
		bank.ThemeGit:    {First: 16, Last: 17},
	}
}

func TestBuild(t *testing.T) {
	progress := map[bank.QuestionID]bool{
		8: true, 9: true, // half of basics
		12: true, 13: true, 14: true, 15: true, // all of OOP
		16: false, // answered wrong once, not mastered
	}

	rep := Build(progress, testRanges())

	assert.Equal(t, 6, rep.RightAnswers)
	assert.Equal(t, 10, rep.TotalQuestions)
	assert.InDelta(t, 60.0, rep.CompletionPercent, 0.01)
	assert.InDelta(t, 0.5, rep.PerTheme[bank.ThemeBasics], 0.001)
	assert.InDelta(t, 1.0, rep.PerTheme[bank.ThemeOOP], 0.001)
	assert.InDelta(t, 0.0, rep.PerTheme[bank.ThemeGit], 0.001)
}

func TestBuildEmptyProgress(t *testing.T) {
	rep := Build(nil, testRanges())

	assert.Equal(t, 0, rep.RightAnswers)
	assert.Equal(t, 10, rep.TotalQuestions)
	assert.Zero(t, rep.CompletionPercent)
	assert.Len(t, rep.PerTheme, 3)
}

func TestBuildIgnoresStaleIDs(t *testing.T) {
	// Id 99 belongs to no range; it must not inflate the counts.
	progress := map[bank.QuestionID]bool{8: true, 99: true}

	rep := Build(progress, testRanges())

	assert.Equal(t, 1, rep.RightAnswers)
	assert.Equal(t, 10, rep.TotalQuestions)
}

func TestBuildRoundsToOneDecimal(t *testing.T) {
	ranges := map[bank.Theme]bank.Range{
		bank.ThemeBasics: {First: 8, Last: 10},
	}
	progress := map[bank.QuestionID]bool{8: true}

	rep := Build(progress, ranges)

	// 1/3 -> 33.3, not 33.333...
	assert.Equal(t, 33.3, rep.CompletionPercent)
}

func TestHours(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "0.0"},
		{3600, "1.0"},
		{5400, "1.5"},
		{360, "0.1"},
		{86400, "24.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Hours(tt.secs), "Hours(%d)", tt.secs)
	}
}

func TestLastVisit(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	day := func(d int) *time.Time {
		t := time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	assert.Equal(t, "never", LastVisit(nil, now))
	assert.Equal(t, "today", LastVisit(day(15), now))
	assert.Equal(t, "yesterday", LastVisit(day(14), now))
	assert.Equal(t, "3 days ago", LastVisit(day(12), now))
}

func TestLastVisitIgnoresTimeOfDay(t *testing.T) {
	// Late evening yesterday against early morning today is still one day.
	last := time.Date(2025, 6, 14, 23, 50, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 0, 10, 0, 0, time.UTC)

	assert.Equal(t, "yesterday", LastVisit(&last, now))
}
