package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a query for an id the contracts do not know (the call
// reverted or returned nothing). Batch callers drop such items; top-level
// callers surface the error.
var ErrNotFound = errors.New("ledger: not found")

// TransportError wraps a failed remote call: network failure, timeout,
// node-side error or a response the codec could not decode. Distinct from
// ErrNotFound so call sites can apply the right propagation policy.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ledger: %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
