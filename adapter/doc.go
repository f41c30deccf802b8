/*
Package adapter bridges the generic service contract to a concrete HTTP
client.  ClientService translates generic requests into native net/http
requests and dispatches them through a service.Executor; the resulting
Execution resolves asynchronously to a generic response or to a unified
Error.

Translation is synchronous and fallible, but Execute never fails
synchronously.  When translation fails the executor is not invoked at all,
and the failure is stored inside the returned Execution, surfacing on the
first Wait.  This preserves the pipeline invariant that submitting a request
always yields exactly one asynchronous outcome.
*/
package adapter
