package middleware

import (
	"context"
	"sync"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// stubExecution is an Execution whose resolution is driven by the test.
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

// stubService is a terminal Service that hands out a fresh stubExecution
// per call and records what it saw.
type stubService struct {
	lock sync.Mutex

	ready      error
	executions []*stubExecution
	requests   []*httpmodel.Request
	contexts   []context.Context
}

func (ss *stubService) Ready() error {
	return ss.ready
}

func (ss *stubService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	e := newStubExecution()
	ss.executions = append(ss.executions, e)
	ss.requests = append(ss.requests, request)
	ss.contexts = append(ss.contexts, ctx)
	return e
}

func (ss *stubService) execution(index int) *stubExecution {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.executions[index]
}
