package session

import (
	"errors"

	"github.com/ivanz/interq/internal/bank"
)

// ErrNoThemeSelected is returned when session start is attempted with no
// theme enabled and free-roam off. It blocks the start; the caller surfaces
// a notice telling the user to pick a theme.
var ErrNoThemeSelected = errors.New("no interview theme selected")

// EligibleIDs computes the question ids in scope for a session. With
// free-roam on, every theme range participates regardless of per-theme
// flags; otherwise only the enabled themes' ranges do. The result is in
// ascending id order (themes are visited in bank order and ranges ascend
// along it).
func EligibleIDs(mode Mode, ranges map[bank.Theme]bank.Range) ([]bank.QuestionID, error) {
	var ids []bank.QuestionID
	for _, t := range bank.Themes() {
		if !mode.Enabled(t) {
			continue
		}
		r, ok := ranges[t]
		if !ok {
			continue
		}
		ids = append(ids, r.IDs()...)
	}

	if len(ids) == 0 && !mode.FreeRoam {
		return nil, ErrNoThemeSelected
	}
	return ids, nil
}
