package session

import "errors"

// ValidationError reports learner input that fails a precondition (empty
// topic, no option selected). It is recovered locally: the message is shown
// on the current screen and nothing else changes.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ErrRequestInFlight is returned when a transition would start a second
// generation request while one is still outstanding. Correct UI gating
// makes this unreachable; the guard keeps the one-request invariant even
// without it.
var ErrRequestInFlight = errors.New("a generation request is already in flight")

// ErrWrongScreen is returned when an operation is invoked from a screen it
// is not defined for. These are programmer errors, not learner-reachable
// states.
var ErrWrongScreen = errors.New("operation not valid on current screen")
