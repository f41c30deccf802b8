/*
Package interoptest provides test doubles for the service and adapter
packages: stretchr mocks for executors and services, canned futures, and
bodies that fail on demand.  Production code should not import this package.
*/
package interoptest
