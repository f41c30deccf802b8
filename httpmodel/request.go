package httpmodel

import "net/http"

// Request is the generic representation of an outbound HTTP request.  Header
// names are canonicalized (and thus case-insensitive), while the value slice
// for each name preserves the order of duplicates.  Ownership of a Request,
// including its Body, passes to whatever service it is submitted to.
type Request struct {
	// Method is the HTTP verb, e.g. http.MethodGet.
	Method string

	// Target is the absolute URL of the request.
	Target string

	// Header holds the request headers.  This may be nil, which is
	// equivalent to an empty header.
	Header http.Header

	// Body is the request content.  This may be nil, indicating no body.
	Body Body
}

// NewRequest constructs a Request with an initialized, empty Header and the
// given body.  A nil body is permitted.
func NewRequest(method, target string, body Body) *Request {
	return &Request{
		Method: method,
		Target: target,
		Header: make(http.Header),
		Body:   body,
	}
}

// SetHeader is a convenience that replaces the values of the given header,
// initializing the Header map if necessary.
func (r *Request) SetHeader(name, value string) *Request {
	if r.Header == nil {
		r.Header = make(http.Header)
	}

	r.Header.Set(name, value)
	return r
}
