package middleware

import (
	"context"
	"net/http"
	"net/textproto"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// canonicalize preprocesses header keys once, so that headers read in from
// sources that do not use the http.Header methods, such as unmarshaled
// JSON, behave the same as hand-built ones.
func canonicalize(header http.Header) http.Header {
	preprocessed := make(http.Header, len(header))
	for k, v := range header {
		preprocessed[textproto.CanonicalMIMEHeaderKey(k)] = v
	}

	return preprocessed
}

// ExtraHeaders produces a middleware that emits a static set of headers
// into every outbound request, replacing any values the request already has
// for those names.  If the set of headers is empty, the middleware does no
// decoration.
func ExtraHeaders(extra http.Header) service.Middleware {
	if len(extra) == 0 {
		return func(next service.Service) service.Service {
			return next
		}
	}

	extra = canonicalize(extra)
	return func(next service.Service) service.Service {
		return &extraHeadersService{
			next:  next,
			extra: extra,
		}
	}
}

type extraHeadersService struct {
	next  service.Service
	extra http.Header
}

func (es *extraHeadersService) Ready() error {
	return es.next.Ready()
}

func (es *extraHeadersService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	if request != nil {
		if request.Header == nil {
			request.Header = make(http.Header, len(es.extra))
		}

		for k, v := range es.extra {
			request.Header[k] = v
		}
	}

	return es.next.Execute(ctx, request)
}

// ResponseHeaders produces a middleware that overrides headers on every
// response delivered through it.  Failed executions pass through untouched.
func ResponseHeaders(extra http.Header) service.Middleware {
	if len(extra) == 0 {
		return func(next service.Service) service.Service {
			return next
		}
	}

	extra = canonicalize(extra)
	return func(next service.Service) service.Service {
		return &responseHeadersService{
			next:  next,
			extra: extra,
		}
	}
}

type responseHeadersService struct {
	next  service.Service
	extra http.Header
}

func (rs *responseHeadersService) Ready() error {
	return rs.next.Ready()
}

func (rs *responseHeadersService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	return service.WrapExecution(
		rs.next.Execute(ctx, request),
		func(response *httpmodel.Response, err error) (*httpmodel.Response, error) {
			if response != nil {
				if response.Header == nil {
					response.Header = make(http.Header, len(rs.extra))
				}

				for k, v := range rs.extra {
					response.Header[k] = v
				}
			}

			return response, err
		},
	)
}
