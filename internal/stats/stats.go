// Package stats derives display figures from raw progress data.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/ivanz/interq/internal/bank"
)

// Report is a user's aggregate standing across the whole question bank.
type Report struct {
	RightAnswers      int
	TotalQuestions    int
	CompletionPercent float64
	// PerTheme holds a 0..1 completion fraction for every theme that has
	// questions in the bank.
	PerTheme map[bank.Theme]float64
}

// Build computes a report from a progress snapshot and the bank's theme
// ranges. Only ids that fall inside a known range count; stale rows from an
// older bank are ignored.
func Build(progress map[bank.QuestionID]bool, ranges map[bank.Theme]bank.Range) Report {
	rep := Report{PerTheme: make(map[bank.Theme]float64, len(ranges))}

	for theme, r := range ranges {
		mastered := 0
		for _, id := range r.IDs() {
			if progress[id] {
				mastered++
			}
		}
		rep.RightAnswers += mastered
		rep.TotalQuestions += r.Size()
		if r.Size() > 0 {
			rep.PerTheme[theme] = float64(mastered) / float64(r.Size())
		}
	}

	if rep.TotalQuestions > 0 {
		frac := float64(rep.RightAnswers) / float64(rep.TotalQuestions)
		rep.CompletionPercent = math.Round(frac*1000) / 10
	}
	return rep
}

// Hours formats a cumulative second count as decimal hours with one digit,
// e.g. 5400 seconds -> "1.5".
func Hours(secs int64) string {
	return fmt.Sprintf("%.1f", float64(secs)/3600)
}

// LastVisit renders a last-enter date relative to now. A nil date means the
// user has never started a session.
func LastVisit(last *time.Time, now time.Time) string {
	if last == nil {
		return "never"
	}

	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	days := int(day(now).Sub(day(*last)).Hours() / 24)

	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
