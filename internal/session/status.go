package session

// Status is the visual state of a question in the tree.
type Status int

const (
	// StatusUntouched renders white: no recorded progress.
	StatusUntouched Status = iota
	// StatusCorrect renders green: answered correctly at least once.
	StatusCorrect
	// StatusWrong renders red: the most recent answer event for this
	// question was wrong. Red is ephemeral, last-event-only; it is never
	// stored and a later render pass rebuilt from progress drops it.
	StatusWrong
)
