/*
Package service defines the uniform contract shared by HTTP client pipelines:
a Service accepts a generic request and returns an asynchronous Execution,
while an Executor is the native-request contract of a wrapped HTTP client.
Middleware decorates Services, so the same pipeline machinery works against
any transport that an adapter can translate to.
*/
package service
