package middleware

import (
	"context"

	"github.com/segmentio/ksuid"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// RequestIDHeader is the header populated by RequestID.
const RequestIDHeader = "X-Request-Id"

// RequestID produces a middleware that stamps each outbound request with a
// generated ksuid in the X-Request-Id header.  Requests that already carry
// the header pass through untouched.
func RequestID() service.Middleware {
	return func(next service.Service) service.Service {
		return &requestIDService{next: next}
	}
}

type requestIDService struct {
	next service.Service
}

func (rs *requestIDService) Ready() error {
	return rs.next.Ready()
}

func (rs *requestIDService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	if request != nil && request.Header.Get(RequestIDHeader) == "" {
		request.SetHeader(RequestIDHeader, ksuid.New().String())
	}

	return rs.next.Execute(ctx, request)
}
