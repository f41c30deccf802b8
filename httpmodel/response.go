package httpmodel

import "net/http"

// Response is the generic representation of an HTTP response delivered
// through a service pipeline.
type Response struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Header holds the response headers.
	Header http.Header

	// Body is the response content.  This is never nil; responses without
	// content carry NoBody.
	Body Body
}

// Success tests whether the response carries a non-error HTTP status.
func (r *Response) Success() bool {
	return r.StatusCode < 400
}

// DecodeJSON drains the response body and unmarshals it into value.
func (r *Response) DecodeJSON(value interface{}) error {
	return DecodeJSON(r.Body, value)
}
