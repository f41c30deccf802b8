package service

import (
	"context"

	"github.com/alekseysidorov/http-interop/httpmodel"
)

// Transformer is applied to the outcome of an execution as it resolves.
// Either input may be nil, following the usual (response, error) contract.
type Transformer func(*httpmodel.Response, error) (*httpmodel.Response, error)

// wrappedExecution decorates the resolution of another Execution.  All other
// behavior, including the resolve-exactly-once contract, is delegated.
type wrappedExecution struct {
	Execution
	transform Transformer
}

func (we *wrappedExecution) Wait(ctx context.Context) (*httpmodel.Response, error) {
	response, err := we.Execution.Wait(ctx)
	if err != nil && err == ctx.Err() {
		// the waiting context expired before resolution; the execution is
		// still pending and the outcome must not be transformed.  Comparing
		// against the waiting context keeps an execution that resolved to a
		// bare context error, as with Fail(ctx.Err()), from being mistaken
		// for a pending one.
		return nil, err
	}

	return we.transform(response, err)
}

// WrapExecution returns an Execution whose resolved outcome is passed
// through the given transformer.  Middleware uses this to rewrite responses
// or errors without disturbing the underlying execution's state machine.
func WrapExecution(e Execution, transform Transformer) Execution {
	return &wrappedExecution{
		Execution: e,
		transform: transform,
	}
}
