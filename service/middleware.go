package service

// Middleware is a chainable decorator for Services.
type Middleware func(Service) Service

// Chain composes middleware into a single Middleware.  The first middleware
// is the outermost: Chain(a, b, c)(svc) produces a(b(c(svc))).
func Chain(outer Middleware, others ...Middleware) Middleware {
	return func(next Service) Service {
		for i := len(others) - 1; i >= 0; i-- {
			next = others[i](next)
		}

		return outer(next)
	}
}
