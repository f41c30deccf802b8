package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alekseysidorov/http-interop/httpmodel"
)

func TestChain(t *testing.T) {
	t.Run("ExecutionOrder", func(t *testing.T) {
		var (
			assert   = assert.New(t)
			terminal = &markerService{execution: newStubExecution()}

			decorated = Chain(labeled("outer"), labeled("middle"), labeled("inner"))(terminal)
			request   = httpmodel.NewRequest(http.MethodGet, "http://localhost", nil)
		)

		decorated.Execute(context.Background(), request)
		assert.Equal([]string{"outer", "middle", "inner"}, request.Header.Values("X-Order"))
		assert.Equal(request, terminal.last)
	})

	t.Run("ReadyPassesThrough", func(t *testing.T) {
		var (
			assert        = assert.New(t)
			expectedError = errors.New("expected readiness error")
			terminal      = &markerService{ready: expectedError}
		)

		decorated := Chain(labeled("outer"), labeled("inner"))(terminal)
		assert.Equal(expectedError, decorated.Ready())
	})

	t.Run("Single", func(t *testing.T) {
		var (
			assert   = assert.New(t)
			terminal = &markerService{execution: newStubExecution()}
			request  = httpmodel.NewRequest(http.MethodGet, "http://localhost", nil)
		)

		Chain(labeled("only"))(terminal).Execute(context.Background(), request)
		assert.Equal([]string{"only"}, request.Header.Values("X-Order"))
	})
}
