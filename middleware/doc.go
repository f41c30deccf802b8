/*
Package middleware provides service.Middleware decorators for HTTP client
pipelines: request identifiers, static headers, per-call timeouts, bounded
in-flight calls, transaction logging, and prometheus instrumentation.  Each
decorator is transport-agnostic and composes with any service.Service,
including the client adapter.
*/
package middleware
