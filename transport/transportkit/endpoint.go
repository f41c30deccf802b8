// Package transportkit bridges interop services and go-kit endpoints, so
// that pipelines built from either abstraction can host the other.
package transportkit

import (
	"context"
	"errors"

	"github.com/go-kit/kit/endpoint"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

var (
	// ErrNotARequest is returned by bridged endpoints given a value other
	// than *httpmodel.Request.
	ErrNotARequest = errors.New("endpoint value is not an httpmodel request")

	// ErrNotAResponse is returned by bridged services when the wrapped
	// endpoint yields a value other than *httpmodel.Response.
	ErrNotAResponse = errors.New("endpoint yielded a value that is not an httpmodel response")
)

// NewEndpoint exposes svc as a go-kit endpoint.  The endpoint consults the
// service's readiness, executes the request, and waits for resolution under
// the endpoint's context.  If that context expires first, the pending
// execution is canceled so the underlying transaction is released.
func NewEndpoint(svc service.Service) endpoint.Endpoint {
	return func(ctx context.Context, value interface{}) (interface{}, error) {
		request, ok := value.(*httpmodel.Request)
		if !ok {
			return nil, ErrNotARequest
		}

		if err := svc.Ready(); err != nil {
			return nil, err
		}

		e := svc.Execute(ctx, request)
		response, err := e.Wait(ctx)
		if err != nil && err == ctx.Err() {
			// the endpoint's context expired while the execution was still
			// pending; release the underlying transaction
			e.Cancel()
			return nil, err
		}

		return response, err
	}
}

// FromEndpoint adapts a go-kit endpoint to the service contract, allowing
// go-kit middleware such as rate limiters or circuit breakers to sit inside
// an interop pipeline.  The returned service is always ready.
func FromEndpoint(e endpoint.Endpoint) service.Service {
	return &endpointService{endpoint: e}
}

type endpointService struct {
	endpoint endpoint.Endpoint
}

func (es *endpointService) Ready() error {
	return nil
}

func (es *endpointService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	return service.Go(ctx, func(ctx context.Context) (*httpmodel.Response, error) {
		value, err := es.endpoint(ctx, request)
		if err != nil {
			return nil, err
		}

		response, ok := value.(*httpmodel.Response)
		if !ok {
			return nil, ErrNotAResponse
		}

		return response, nil
	})
}
