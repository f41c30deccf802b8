package interoptest

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/alekseysidorov/http-interop/service"
)

var alreadyDone = func() chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}()

type immediateFuture struct {
	response *http.Response
	err      error
}

func (f immediateFuture) Done() <-chan struct{}           { return alreadyDone }
func (f immediateFuture) Result() (*http.Response, error) { return f.response, f.err }

// ImmediateFuture returns a future that is resolved from the start with the
// given outcome.
func ImmediateFuture(response *http.Response, err error) service.Future {
	return immediateFuture{response: response, err: err}
}

type contextFuture struct {
	ctx context.Context
}

func (f contextFuture) Done() <-chan struct{}           { return f.ctx.Done() }
func (f contextFuture) Result() (*http.Response, error) { return nil, f.ctx.Err() }

// ContextFuture returns a future that resolves only when the given context
// is canceled, yielding the context's error.  Wrapping the submitted
// request's context makes an executor whose transactions block until the
// caller abandons them, which is how cancellation behavior is observed in
// tests.
func ContextFuture(ctx context.Context) service.Future {
	return contextFuture{ctx: ctx}
}

// BlockingExecutor is a stub executor whose futures resolve only when the
// submitted request's context is canceled.  It records how many submitted
// transactions have been released that way.
type BlockingExecutor struct {
	released int32
}

var _ service.Executor = (*BlockingExecutor)(nil)

func (be *BlockingExecutor) Submit(request *http.Request) service.Future {
	ctx := request.Context()
	go func() {
		<-ctx.Done()
		atomic.AddInt32(&be.released, 1)
	}()

	return ContextFuture(ctx)
}

// Released returns the number of submitted transactions whose contexts have
// been canceled so far.
func (be *BlockingExecutor) Released() int {
	return int(atomic.LoadInt32(&be.released))
}

// CountingExecutor wraps another executor and counts Submit invocations.
// If next is nil, every submitted transaction resolves immediately with an
// empty 200 response.
type CountingExecutor struct {
	count int32
	next  service.Executor
}

var _ service.Executor = (*CountingExecutor)(nil)

// NewCountingExecutor constructs a CountingExecutor around next, which may
// be nil.
func NewCountingExecutor(next service.Executor) *CountingExecutor {
	return &CountingExecutor{next: next}
}

func (ce *CountingExecutor) Submit(request *http.Request) service.Future {
	atomic.AddInt32(&ce.count, 1)
	if ce.next != nil {
		return ce.next.Submit(request)
	}

	return ImmediateFuture(NewResponse(http.StatusOK, ""), nil)
}

// Count returns the number of Submit invocations observed so far.
func (ce *CountingExecutor) Count() int {
	return int(atomic.LoadInt32(&ce.count))
}

// NewResponse builds a minimal native response suitable for canned futures.
func NewResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
