package interoptest

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/alekseysidorov/http-interop/service"
)

// SubmitCall is a stretchr mock Call with some extra behavior that makes
// setting up executor futures easier.
type SubmitCall struct {
	*mock.Call
}

// Resolve arranges for the mocked Submit to return a future already
// resolved with the given response.
func (sc *SubmitCall) Resolve(response *http.Response) *SubmitCall {
	sc.Return(ImmediateFuture(response, nil))
	return sc
}

// ResolveWithError arranges for the mocked Submit to return a future
// already resolved with the given error.
func (sc *SubmitCall) ResolveWithError(err error) *SubmitCall {
	sc.Return(ImmediateFuture(nil, err))
	return sc
}

// ReturnFuture arranges for the mocked Submit to return the given future
// as is, which allows tests to control resolution timing.
func (sc *SubmitCall) ReturnFuture(f service.Future) *SubmitCall {
	sc.Return(f)
	return sc
}

// MockExecutor is a stretchr mock for service.Executor.  Use OnSubmit to
// set up behaviors for the Submit method.
type MockExecutor struct {
	mock.Mock
}

var _ service.Executor = (*MockExecutor)(nil)

// Submit is a mocked dispatch call.
func (me *MockExecutor) Submit(request *http.Request) service.Future {
	arguments := me.Called(request)
	future, _ := arguments.Get(0).(service.Future)
	return future
}

// OnSubmit sets an On("Submit", ...) with the given request matchers.  The
// returned call has augmented behavior for producing futures.
func (me *MockExecutor) OnSubmit(matchers ...func(*http.Request) bool) *SubmitCall {
	call := me.On("Submit", mock.MatchedBy(func(candidate *http.Request) bool {
		for _, matcher := range matchers {
			if !matcher(candidate) {
				return false
			}
		}

		return true
	}))

	return &SubmitCall{call}
}

// MatchMethod returns a request matcher that verifies each request has a
// specific method.
func MatchMethod(expected string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		return strings.EqualFold(expected, r.Method)
	}
}

// MatchURL returns a request matcher that verifies each request's URL
// renders to the expected string.
func MatchURL(expected string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		return r.URL != nil && r.URL.String() == expected
	}
}

// MatchHeader returns a request matcher that verifies the first value of
// the given header.
func MatchHeader(name, expected string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		return r.Header.Get(name) == expected
	}
}

// MatchQuery returns a request matcher that verifies a query parameter.
func MatchQuery(name, expected string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		if r.URL == nil {
			return false
		}

		values, err := url.ParseQuery(r.URL.RawQuery)
		return err == nil && values.Get(name) == expected
	}
}
