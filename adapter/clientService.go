package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/textproto"

	"golang.org/x/net/http/httpguts"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// ClientService adapts a service.Executor, typically a wrapped *http.Client,
// to the generic service contract.  A ClientService holds no per-call state
// of its own and is safe for concurrent use whenever its executor is.
type ClientService struct {
	executor service.Executor
}

var _ service.Service = (*ClientService)(nil)

// NewClientService constructs a ClientService around the given executor.
// This function panics if executor is nil.
func NewClientService(executor service.Executor) *ClientService {
	if executor == nil {
		panic("adapter: a ClientService requires an executor")
	}

	return &ClientService{executor: executor}
}

// Ready always returns nil.  Translation happens synchronously inside
// Execute and dispatch is delegated to the executor's own future, so this
// service holds no queue and can always accept another call.  Any
// backpressure the wrapped client applies is observed through the in-flight
// execution, not here.
func (cs *ClientService) Ready() error {
	return nil
}

// Execute translates the given request into a native http.Request and hands
// it to the executor.  Execute never fails synchronously: when translation
// fails the executor is not invoked, and the returned Execution resolves to
// a StageTranslation error on its first Wait.
//
// The execution holds a context derived from ctx; canceling ctx, or calling
// Cancel on the execution, releases the native transaction.
func (cs *ClientService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	ctx, cancel := context.WithCancel(ctx)

	native, err := translateRequest(ctx, request)
	if err != nil {
		cancel()
		return newFailed(&Error{Stage: StageTranslation, Err: err}, cancel)
	}

	return newInFlight(cs.executor.Submit(native), cancel)
}

// translateRequest is the pure, synchronous mapping from the generic request
// representation to net/http's.  It performs no I/O: the body is bridged
// lazily, and any stream failure it carries surfaces later as an ordinary
// read error on the native body.
func translateRequest(ctx context.Context, request *httpmodel.Request) (*http.Request, error) {
	if request == nil {
		return nil, ErrNilRequest
	}

	var body io.Reader
	if request.Body != nil && request.Body != httpmodel.NoBody {
		body = httpmodel.BodyReader(request.Body)
	}

	native, err := http.NewRequestWithContext(ctx, request.Method, request.Target, body)
	if err != nil {
		return nil, err
	}

	if sized, ok := request.Body.(interface{ Len() int }); ok {
		native.ContentLength = int64(sized.Len())
	}

	// net/http defers header validation until the request hits the wire,
	// which would misreport a malformed header as a dispatch failure.
	// Validate here so the executor is never invoked for such a request.
	for name, values := range request.Header {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, fmt.Errorf("invalid header name %q", name)
		}

		for _, value := range values {
			if !httpguts.ValidHeaderFieldValue(value) {
				return nil, fmt.Errorf("invalid value for header %q", name)
			}
		}

		native.Header[textproto.CanonicalMIMEHeaderKey(name)] = values
	}

	return native, nil
}

// translateResponse maps a native response onto the generic representation.
// The native body is adopted as the generic body stream, byte for byte;
// closing the generic body closes the native one.
func translateResponse(native *http.Response) *httpmodel.Response {
	body := httpmodel.NoBody
	if native.Body != nil && native.Body != http.NoBody {
		body = httpmodel.ReaderBody(native.Body)
	}

	return &httpmodel.Response{
		StatusCode: native.StatusCode,
		Header:     native.Header,
		Body:       body,
	}
}
