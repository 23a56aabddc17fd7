package state

import "fmt"

// FilterApplicationError reports that swapping a view's predicates required
// settling an in-progress row edit and that settling failed. The predicate is
// still applied afterwards; the error is surfaced through the MessageSink
// only.
type FilterApplicationError struct {
	View View
	Err  error
}

// Error implements the error interface.
func (e *FilterApplicationError) Error() string {
	return fmt.Sprintf("filter could not settle a pending edit on the %s view: %v", e.View, e.Err)
}

// Unwrap returns the underlying commit failure.
func (e *FilterApplicationError) Unwrap() error {
	return e.Err
}
