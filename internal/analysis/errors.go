package analysis

import "fmt"

// InsufficientDataError reports that too few matching sessions were found for
// an analysis to be meaningful.
type InsufficientDataError struct {
	What   string // e.g. "running sessions"
	Needed int
	Found  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("need at least %d %s to analyze, found %d", e.Needed, e.What, e.Found)
}

// NoSessionError reports that no session of the requested type exists on a
// given date.
type NoSessionError struct {
	Date string // YYYY-MM-DD
	What string // e.g. "running session"
}

func (e *NoSessionError) Error() string {
	return fmt.Sprintf("no %s found on %s", e.What, e.Date)
}
