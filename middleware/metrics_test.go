package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alekseysidorov/http-interop/httpmodel"
)

func TestNewOutboundMeasures(t *testing.T) {
	assert := assert.New(t)
	registry := prometheus.NewPedanticRegistry()
	om := NewOutboundMeasures(registry)

	assert.NotNil(om.InFlight)
	assert.NotNil(om.Requests)
	assert.NotNil(om.Duration)

	// re-registering on the same registry is a programming error
	assert.Panics(func() {
		NewOutboundMeasures(registry)
	})
}

func TestMetrics(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			om      = NewOutboundMeasures(prometheus.NewPedanticRegistry())
			next    = new(stubService)

			decorated = Metrics(om)(next)
		)

		execution := decorated.Execute(context.Background(), httpmodel.NewRequest(http.MethodGet, "http://localhost", nil))
		assert.Equal(float64(1), testutil.ToFloat64(om.InFlight))

		next.execution(0).resolve(&httpmodel.Response{StatusCode: http.StatusOK, Body: httpmodel.NoBody}, nil)
		_, err := execution.Wait(context.Background())
		require.NoError(err)

		assert.Zero(testutil.ToFloat64(om.InFlight))
		assert.Equal(float64(1), testutil.ToFloat64(om.Requests.WithLabelValues("200")))
	})

	t.Run("Error", func(t *testing.T) {
		var (
			assert = assert.New(t)
			om     = NewOutboundMeasures(prometheus.NewPedanticRegistry())
			next   = new(stubService)

			decorated = Metrics(om)(next)
		)

		execution := decorated.Execute(context.Background(), httpmodel.NewRequest(http.MethodGet, "http://localhost", nil))
		next.execution(0).resolve(nil, errors.New("expected"))

		_, err := execution.Wait(context.Background())
		assert.Error(err)

		assert.Zero(testutil.ToFloat64(om.InFlight))
		assert.Equal(float64(1), testutil.ToFloat64(om.Requests.WithLabelValues(OutboundErrorCode)))
	})

	t.Run("ContextErrorResolutionReleasesGauge", func(t *testing.T) {
		var (
			assert = assert.New(t)
			om     = NewOutboundMeasures(prometheus.NewPedanticRegistry())
			next   = new(stubService)

			decorated = Metrics(om)(next)
		)

		execution := decorated.Execute(context.Background(), httpmodel.NewRequest(http.MethodGet, "http://localhost", nil))
		next.execution(0).resolve(nil, context.Canceled)

		// an execution resolving to a bare context error is still a
		// resolution and must release the in-flight gauge
		_, err := execution.Wait(context.Background())
		assert.Equal(context.Canceled, err)

		assert.Zero(testutil.ToFloat64(om.InFlight))
		assert.Equal(float64(1), testutil.ToFloat64(om.Requests.WithLabelValues(OutboundErrorCode)))
	})

	t.Run("CancelReleasesGauge", func(t *testing.T) {
		var (
			assert = assert.New(t)
			om     = NewOutboundMeasures(prometheus.NewPedanticRegistry())
			next   = new(stubService)

			decorated = Metrics(om)(next)
		)

		execution := decorated.Execute(context.Background(), httpmodel.NewRequest(http.MethodGet, "http://localhost", nil))
		assert.Equal(float64(1), testutil.ToFloat64(om.InFlight))

		execution.Cancel()
		assert.Zero(testutil.ToFloat64(om.InFlight))
		assert.Equal(float64(1), testutil.ToFloat64(om.Requests.WithLabelValues(OutboundErrorCode)))
	})
}
