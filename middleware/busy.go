package middleware

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// Busy produces a middleware that bounds the number of in-flight calls.
// Calls beyond the bound are rejected with an execution that resolves to
// busyError, and the bound is also surfaced through Ready, which is the one
// place in this package where readiness becomes non-trivial.  If busyError
// is nil, a default error is used.
//
// If maxCalls is nonpositive, this factory function panics.
func Busy(maxCalls int64, busyError error) service.Middleware {
	if maxCalls < 1 {
		panic("maxCalls must be positive")
	}

	return func(next service.Service) service.Service {
		if busyError == nil {
			busyError = fmt.Errorf("exceeded maximum number of in-flight calls: %d", maxCalls)
		}

		return &busyService{
			next:      next,
			maxCalls:  maxCalls,
			busyError: busyError,
		}
	}
}

type busyService struct {
	next      service.Service
	maxCalls  int64
	busyError error
	inFlight  int64
}

func (bs *busyService) Ready() error {
	if atomic.LoadInt64(&bs.inFlight) >= bs.maxCalls {
		return bs.busyError
	}

	return bs.next.Ready()
}

func (bs *busyService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	if atomic.AddInt64(&bs.inFlight, 1) > bs.maxCalls {
		atomic.AddInt64(&bs.inFlight, -1)
		return service.Fail(bs.busyError)
	}

	return observe(
		bs.next.Execute(ctx, request),
		func(*httpmodel.Response, error) {
			atomic.AddInt64(&bs.inFlight, -1)
		},
	)
}
