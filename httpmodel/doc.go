/*
Package httpmodel defines the generic HTTP request and response representation
used by service pipelines.  The types in this package are deliberately small:
a method, a target, a header mapping, and a pull-based body stream.  They carry
no transport behavior of their own; adapters translate them to and from the
native types of a concrete HTTP client.
*/
package httpmodel
