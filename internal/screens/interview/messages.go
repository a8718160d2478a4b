package interview

import "time"

// noticeKind selects the notice color.
type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeWarn
	noticeError
	noticeSuccess
)

// noticeDismissAfter is how long transient notices stay on screen.
const noticeDismissAfter = 4 * time.Second

// clearNoticeMsg dismisses the current notice.
type clearNoticeMsg struct{ seq int }
