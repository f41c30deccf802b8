// Package httpexec adapts synchronous HTTP clients to the asynchronous
// service.Executor contract.
package httpexec

import (
	"net/http"

	"github.com/alekseysidorov/http-interop/service"
)

// Doer is the synchronous transaction contract satisfied by *http.Client.
// Any type that supplies this method may be wrapped by an Executor.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

// Executor dispatches native requests through a Doer, one goroutine per
// submitted request.  The future it returns resolves when the underlying
// Do call completes; canceling the request's context causes the Doer to
// abort the transaction, which resolves the future with that error.
type Executor struct {
	doer Doer
}

var _ service.Executor = (*Executor)(nil)

// New constructs an Executor around the given Doer.  If doer is nil,
// http.DefaultClient is used.
func New(doer Doer) *Executor {
	if doer == nil {
		doer = http.DefaultClient
	}

	return &Executor{doer: doer}
}

// Submit begins the given transaction and returns its future.
func (e *Executor) Submit(request *http.Request) service.Future {
	f := &future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.response, f.err = e.doer.Do(request)
	}()

	return f
}

type future struct {
	done     chan struct{}
	response *http.Response
	err      error
}

func (f *future) Done() <-chan struct{} {
	return f.done
}

func (f *future) Result() (*http.Response, error) {
	return f.response, f.err
}
