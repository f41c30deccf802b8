package service

import (
	"context"

	"github.com/alekseysidorov/http-interop/httpmodel"
)

// Go runs work in its own goroutine and returns an Execution that resolves
// to the work's outcome.  The context handed to work is derived from ctx
// and is canceled by the execution's Cancel, or when the work fails.  On
// success the derived context stays alive until Cancel, since the response
// body may still depend on it.
func Go(ctx context.Context, work func(context.Context) (*httpmodel.Response, error)) Execution {
	ctx, cancel := context.WithCancel(ctx)
	ae := &asyncExecution{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(ae.done)
		ae.response, ae.err = work(ctx)
	}()

	return ae
}

type asyncExecution struct {
	done   chan struct{}
	cancel context.CancelFunc

	response *httpmodel.Response
	err      error
	resolved bool
}

func (ae *asyncExecution) Done() <-chan struct{} {
	return ae.done
}

func (ae *asyncExecution) Wait(ctx context.Context) (*httpmodel.Response, error) {
	if ae.resolved {
		panic("service: Wait called on a resolved execution")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-ae.done:
	}

	ae.resolved = true
	if ae.err != nil {
		ae.cancel()
		return nil, ae.err
	}

	return ae.response, nil
}

func (ae *asyncExecution) Cancel() {
	ae.cancel()
}
