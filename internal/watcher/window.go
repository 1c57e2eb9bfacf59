package watcher

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Window is a same-day business-hours window, inclusive on both ends.
// Open and Close are offsets from local midnight; Close never wraps past
// midnight.
type Window struct {
	Open  time.Duration
	Close time.Duration
}

func clockOffset(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// Contains reports whether t's local clock time falls inside the window.
// Both endpoints count as inside.
func (w Window) Contains(t time.Time) bool {
	d := clockOffset(t)
	return d >= w.Open && d <= w.Close
}

// UntilOpen returns how long after t the window next opens. Before the
// window it is the wait until today's opening; after the close it wraps to
// tomorrow's.
func (w Window) UntilOpen(t time.Time) time.Duration {
	d := clockOffset(t)
	if d < w.Open {
		return w.Open - d
	}
	return day - d + w.Open
}

// formatClock renders a duration as H:MM:SS for notification bodies.
func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
