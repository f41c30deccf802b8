package service

import (
	"context"
	"net/http"

	"github.com/alekseysidorov/http-interop/httpmodel"
)

// Service is the uniform request execution contract.  Middleware and
// adapters both satisfy this interface, which allows arbitrary stacking.
type Service interface {
	// Ready reports whether this service can currently accept a call.
	// A nil return means ready.  Services that hold no queue of their own
	// are always ready and return nil unconditionally.
	Ready() error

	// Execute takes ownership of the given request and begins processing
	// it.  Execute never fails synchronously: it always returns an
	// Execution, which may resolve to an error.  The context governs the
	// lifetime of the underlying transaction.
	Execute(ctx context.Context, request *httpmodel.Request) Execution
}

// Execution is the asynchronous outcome of Service.Execute.  An Execution
// resolves exactly once; see Wait for the resolution contract.
type Execution interface {
	// Done returns a channel that is closed once the execution has an
	// outcome available.  For executions that failed before dispatch the
	// returned channel is already closed.
	Done() <-chan struct{}

	// Wait blocks until the execution resolves or ctx is canceled.  If ctx
	// is canceled first, Wait returns ctx.Err() and the execution remains
	// unresolved; Wait may be invoked again.  Once Wait has returned the
	// execution's outcome, the execution is resolved and any further Wait
	// call panics: the asynchronous contract is resolve-exactly-once.
	Wait(ctx context.Context) (*httpmodel.Response, error)

	// Cancel abandons the execution and releases any resources held by the
	// underlying transaction, such as an open connection.  Cancel is safe
	// to call at any time, including after resolution.
	Cancel()
}

// Executor is the contract of a wrapped HTTP client: accept one native
// request, return a future resolving to a native response or error.  An
// Executor must be safe for concurrent Submit calls; the adapters in this
// module assume that rather than enforce it.
type Executor interface {
	Submit(request *http.Request) Future
}

// Future is an in-flight native HTTP transaction.
type Future interface {
	// Done returns a channel that is closed when the transaction completes.
	Done() <-chan struct{}

	// Result returns the transaction outcome.  Result must only be called
	// after Done is closed; its return values are stable thereafter.
	Result() (*http.Response, error)
}

// ExecutorFunc allows an ordinary function to be used as an Executor.
type ExecutorFunc func(*http.Request) Future

// Submit invokes f.
func (f ExecutorFunc) Submit(request *http.Request) Future {
	return f(request)
}
