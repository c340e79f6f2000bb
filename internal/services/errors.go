package services

import "fmt"

// CompositionError reports which constituent of a compound view could not
// be fetched. The join is all-or-nothing, so one of these always means
// the caller got no view at all.
type CompositionError struct {
	Part string
	Err  error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("compose nft view: %s: %v", e.Part, e.Err)
}

func (e *CompositionError) Unwrap() error { return e.Err }
