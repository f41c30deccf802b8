package service

import (
	"context"

	"github.com/alekseysidorov/http-interop/httpmodel"
)

var failedDone = func() chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}()

// failedExecution is an Execution that was born resolved to an error.  The
// stored error is delivered exactly once; it observes the same
// resolve-exactly-once contract as any other execution.
type failedExecution struct {
	err error
}

func (fe *failedExecution) Done() <-chan struct{} {
	return failedDone
}

func (fe *failedExecution) Wait(ctx context.Context) (*httpmodel.Response, error) {
	if fe.err == nil {
		panic("service: Wait called on a resolved execution")
	}

	err := fe.err
	fe.err = nil
	return nil, err
}

func (fe *failedExecution) Cancel() {}

// Fail returns an Execution that is already resolved to the given error.
// Middleware uses this to reject a call without breaking the contract that
// Execute always returns a future.  This function panics if err is nil,
// since a nil error cannot be a failure.
func Fail(err error) Execution {
	if err == nil {
		panic("service: Fail requires an error")
	}

	return &failedExecution{err: err}
}
