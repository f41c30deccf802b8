package service

import (
	"context"

	"github.com/alekseysidorov/http-interop/httpmodel"
)

// markerService is a terminal Service for middleware tests.  It hands out
// a preconfigured execution and remembers the last request it saw.
type markerService struct {
	ready     error
	execution Execution
	last      *httpmodel.Request
}

func (ms *markerService) Ready() error {
	return ms.ready
}

func (ms *markerService) Execute(_ context.Context, request *httpmodel.Request) Execution {
	ms.last = request
	return ms.execution
}

// labeled produces a middleware that appends its label to the request's
// X-Order header on each execution.
func labeled(label string) Middleware {
	return func(next Service) Service {
		return &labeledService{next: next, label: label}
	}
}

type labeledService struct {
	next  Service
	label string
}

func (ls *labeledService) Ready() error {
	return ls.next.Ready()
}

func (ls *labeledService) Execute(ctx context.Context, request *httpmodel.Request) Execution {
	request.Header.Add("X-Order", ls.label)
	return ls.next.Execute(ctx, request)
}

// stubExecution is a controllable Execution for decorator tests.
type stubExecution struct {
	done     chan struct{}
	response *httpmodel.Response
	err      error

	resolved  bool
	cancelled int
}

func newStubExecution() *stubExecution {
	return &stubExecution{done: make(chan struct{})}
}

func (se *stubExecution) resolve(response *httpmodel.Response, err error) {
	se.response, se.err = response, err
	close(se.done)
}

func (se *stubExecution) Done() <-chan struct{} {
	return se.done
}

func (se *stubExecution) Wait(ctx context.Context) (*httpmodel.Response, error) {
	if se.resolved {
		panic("stubExecution: Wait called on a resolved execution")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-se.done:
	}

	se.resolved = true
	return se.response, se.err
}

func (se *stubExecution) Cancel() {
	se.cancelled++
}
