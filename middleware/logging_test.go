package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alekseysidorov/http-interop/httpmodel"
)

func TestLogging(t *testing.T) {
	t.Run("NilLoggerDoesNotDecorate", func(t *testing.T) {
		assert := assert.New(t)
		next := new(stubService)

		assert.Same(next, Logging(nil)(next))
	})

	t.Run("LogsSuccess", func(t *testing.T) {
		var (
			assert     = assert.New(t)
			require    = require.New(t)
			core, logs = observer.New(zap.DebugLevel)
			next       = new(stubService)

			decorated = Logging(zap.New(core))(next)
		)

		execution := decorated.Execute(context.Background(), httpmodel.NewRequest(http.MethodGet, "http://localhost/ok", nil))
		next.execution(0).resolve(&httpmodel.Response{StatusCode: http.StatusOK, Body: httpmodel.NoBody}, nil)

		_, err := execution.Wait(context.Background())
		require.NoError(err)

		entries := logs.FilterMessage("transaction complete").All()
		require.Len(entries, 1)

		fields := entries[0].ContextMap()
		assert.Equal("GET", fields["method"])
		assert.Equal("http://localhost/ok", fields["target"])
		assert.Equal(int64(http.StatusOK), fields["status"])
		assert.Contains(fields, "elapsed")
	})

	t.Run("LogsFailure", func(t *testing.T) {
		var (
			assert     = assert.New(t)
			require    = require.New(t)
			core, logs = observer.New(zap.DebugLevel)
			next       = new(stubService)

			decorated = Logging(zap.New(core))(next)
		)

		execution := decorated.Execute(context.Background(), httpmodel.NewRequest(http.MethodGet, "http://localhost/broken", nil))
		next.execution(0).resolve(nil, errors.New("expected transaction error"))

		_, err := execution.Wait(context.Background())
		require.Error(err)

		entries := logs.FilterMessage("transaction failed").All()
		require.Len(entries, 1)
		assert.Equal(zap.ErrorLevel, entries[0].Level)
	})

	t.Run("ReadyPassesThrough", func(t *testing.T) {
		var (
			assert        = assert.New(t)
			expectedError = errors.New("expected readiness error")
			next          = &stubService{ready: expectedError}
		)

		assert.Equal(expectedError, Logging(zap.NewNop())(next).Ready())
	})
}
