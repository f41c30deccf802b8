package middleware

import (
	"context"
	"time"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// DefaultTimeout is used by Timeout when given a nonpositive duration.
const DefaultTimeout = 30 * time.Second

// Timeout produces a middleware that applies a deadline to each call's
// context.  A call that outlives the deadline resolves to a dispatch
// failure from the underlying transport, exactly as if the caller had
// canceled it.
func Timeout(timeout time.Duration) service.Middleware {
	if timeout < 1 {
		timeout = DefaultTimeout
	}

	return func(next service.Service) service.Service {
		return &timeoutService{
			next:    next,
			timeout: timeout,
		}
	}
}

type timeoutService struct {
	next    service.Service
	timeout time.Duration
}

func (ts *timeoutService) Ready() error {
	return ts.next.Ready()
}

func (ts *timeoutService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	ctx, cancel := context.WithTimeout(ctx, ts.timeout)

	// the deadline's timer must live as long as the execution, so it is
	// released on resolution rather than when Execute returns
	return observe(
		ts.next.Execute(ctx, request),
		func(*httpmodel.Response, error) {
			cancel()
		},
	)
}
