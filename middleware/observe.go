package middleware

import (
	"context"
	"sync"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// observedExecution invokes a finish callback exactly once when the
// execution resolves or is canceled.  Several middlewares in this package
// share it to release resources tied to a single call.
type observedExecution struct {
	service.Execution
	once   sync.Once
	finish func(*httpmodel.Response, error)
}

func (oe *observedExecution) Wait(ctx context.Context) (*httpmodel.Response, error) {
	response, err := oe.Execution.Wait(ctx)
	if err != nil && err == ctx.Err() {
		// the waiting context expired first; the execution has not
		// resolved.  An execution may itself resolve to a bare context
		// error, so this is decided against the waiting context rather
		// than the global sentinels.
		return nil, err
	}

	oe.once.Do(func() { oe.finish(response, err) })
	return response, err
}

func (oe *observedExecution) Cancel() {
	oe.Execution.Cancel()
	oe.once.Do(func() { oe.finish(nil, context.Canceled) })
}

func observe(e service.Execution, finish func(*httpmodel.Response, error)) service.Execution {
	return &observedExecution{
		Execution: e,
		finish:    finish,
	}
}
