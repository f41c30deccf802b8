package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

const (
	OutboundInFlightGauge   = "outbound_inflight"
	OutboundRequestCounter  = "outbound_requests"
	OutboundRequestDuration = "outbound_request_duration_seconds"

	// OutboundErrorCode is the code label applied to transactions that
	// resolved with an error instead of a response.
	OutboundErrorCode = "error"
)

// OutboundMeasures holds the instrumentation applied by Metrics.
type OutboundMeasures struct {
	InFlight prometheus.Gauge
	Requests *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewOutboundMeasures constructs and registers the outbound client metrics
// on the given registerer.  Registration failures panic, consistent with
// prometheus.MustRegister.
func NewOutboundMeasures(r prometheus.Registerer) OutboundMeasures {
	om := OutboundMeasures{
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: OutboundInFlightGauge,
			Help: "The number of active, in-flight outbound requests",
		}),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: OutboundRequestCounter,
				Help: "The count of resolved outbound requests",
			},
			[]string{"code"},
		),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    OutboundRequestDuration,
			Help:    "The durations of outbound requests",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10},
		}),
	}

	r.MustRegister(om.InFlight, om.Requests, om.Duration)
	return om
}

// Metrics produces a middleware that instruments each call with the given
// measures: an in-flight gauge held for the life of the execution, a
// request counter labeled by status code, and a duration histogram.
func Metrics(om OutboundMeasures) service.Middleware {
	return func(next service.Service) service.Service {
		return &metricsService{
			next:     next,
			measures: om,
		}
	}
}

type metricsService struct {
	next     service.Service
	measures OutboundMeasures
}

func (ms *metricsService) Ready() error {
	return ms.next.Ready()
}

func (ms *metricsService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	start := time.Now()
	ms.measures.InFlight.Inc()

	return observe(
		ms.next.Execute(ctx, request),
		func(response *httpmodel.Response, err error) {
			ms.measures.InFlight.Dec()
			ms.measures.Duration.Observe(time.Since(start).Seconds())

			code := OutboundErrorCode
			if err == nil && response != nil {
				code = strconv.Itoa(response.StatusCode)
			}

			ms.measures.Requests.With(prometheus.Labels{"code": code}).Inc()
		},
	)
}
