package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// Logging produces a middleware that logs each transaction as it resolves:
// method, target, elapsed time, and either the response status or the
// error.  The core adapter performs no logging of its own, so this is the
// opt-in observation point for pipelines that want one.  A nil logger
// results in no decoration.
func Logging(logger *zap.Logger) service.Middleware {
	if logger == nil {
		return func(next service.Service) service.Service {
			return next
		}
	}

	return func(next service.Service) service.Service {
		return &loggingService{
			next:   next,
			logger: logger,
		}
	}
}

type loggingService struct {
	next   service.Service
	logger *zap.Logger
}

func (ls *loggingService) Ready() error {
	return ls.next.Ready()
}

func (ls *loggingService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	var (
		method, target string
		start          = time.Now()
	)

	if request != nil {
		method, target = request.Method, request.Target
	}

	return observe(
		ls.next.Execute(ctx, request),
		func(response *httpmodel.Response, err error) {
			fields := []zap.Field{
				zap.String("method", method),
				zap.String("target", target),
				zap.Duration("elapsed", time.Since(start)),
			}

			if err != nil {
				ls.logger.Error("transaction failed", append(fields, zap.Error(err))...)
				return
			}

			ls.logger.Debug("transaction complete", append(fields, zap.Int("status", response.StatusCode))...)
		},
	)
}
