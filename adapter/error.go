package adapter

import (
	"errors"
	"fmt"
)

// ErrNilRequest is the translation failure produced when Execute is given
// a nil request.
var ErrNilRequest = errors.New("no request to execute")

// Stage identifies the phase of an adapted HTTP transaction that produced
// an error.
type Stage int

const (
	// StageTranslation covers synchronous failures to represent a generic
	// request as a native one.  The wrapped client is never invoked for
	// these.
	StageTranslation Stage = iota

	// StageDispatch covers failures reported by the wrapped client after
	// the native request was handed off, e.g. connection refusal or a
	// protocol violation.
	StageDispatch
)

func (s Stage) String() string {
	switch s {
	case StageTranslation:
		return "translation"
	case StageDispatch:
		return "dispatch"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Error is the unified error delivered through an Execution.  Every failure,
// regardless of which stage produced it, is surfaced as this one type so
// callers handle outcomes uniformly.  The cause is available via Unwrap for
// use with errors.Is and errors.As.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
