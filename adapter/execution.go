package adapter

import (
	"context"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// closedDone backs Done for executions that failed before dispatch.
var closedDone = func() chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}()

// Execution is the asynchronous result of ClientService.Execute.  It is a
// two-variant future: either a native transaction is in flight, or
// translation failed before dispatch and the stored error is delivered on
// the first Wait.  An Execution resolves exactly once and transitions
// through no other states.
//
// An Execution is driven by a single waiter and is not safe for concurrent
// use by multiple goroutines.
type Execution struct {
	// exactly one of inner, stored is set
	inner  service.Future
	stored *Error

	cancel   context.CancelFunc
	resolved bool
}

var _ service.Execution = (*Execution)(nil)

func newInFlight(inner service.Future, cancel context.CancelFunc) *Execution {
	return &Execution{
		inner:  inner,
		cancel: cancel,
	}
}

func newFailed(stored *Error, cancel context.CancelFunc) *Execution {
	return &Execution{
		stored: stored,
		cancel: cancel,
	}
}

// Done returns a channel closed once an outcome is available.  For an
// execution that failed before dispatch, the channel is already closed.
func (e *Execution) Done() <-chan struct{} {
	if e.inner != nil {
		return e.inner.Done()
	}

	return closedDone
}

// Wait blocks until the execution resolves or ctx is canceled.  When ctx
// expires first, Wait returns ctx.Err() verbatim and the execution remains
// unresolved, so Wait may be called again.  Otherwise the outcome is
// translated and the execution becomes resolved.
//
// Wait panics if called after the execution has resolved.  Resolution is
// single-use; honoring the asynchronous contract means not polling a
// completed future.
func (e *Execution) Wait(ctx context.Context) (*httpmodel.Response, error) {
	if e.resolved {
		panic("adapter: Wait called on a resolved execution")
	}

	if e.stored != nil {
		err := e.stored
		e.stored = nil
		e.resolved = true
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-e.inner.Done():
	}

	e.resolved = true

	native, err := e.inner.Result()
	if err != nil {
		e.cancel()
		return nil, &Error{Stage: StageDispatch, Err: err}
	}

	response := translateResponse(native)
	response.Body = releasingBody{Body: response.Body, release: e.cancel}
	return response, nil
}

// Cancel abandons the execution, canceling the native request's context so
// the wrapped client tears down its side of the transaction.  Cancel is
// idempotent and safe to call at any time.
func (e *Execution) Cancel() {
	e.cancel()
}

// releasingBody ties the native request's context to the response body:
// once the caller closes the body, the transaction's resources are released.
type releasingBody struct {
	httpmodel.Body
	release context.CancelFunc
}

func (rb releasingBody) Close() error {
	err := rb.Body.Close()
	rb.release()
	return err
}
