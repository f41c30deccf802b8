package httpmodel

import (
	"bytes"
	"encoding/json"
	"io"
)

// Body is a pull-based stream of request or response content.  A Body may be
// finite or unbounded, and it may fail partway through with an error of its
// own, distinct from a normal end of stream.
type Body interface {
	// Next returns the next chunk of content.  io.EOF signals a normal end
	// of stream, while any other error indicates a stream failure.  The
	// returned slice is only valid until the next call to Next.
	Next() ([]byte, error)

	// Close releases any resources held by this stream.  Close is safe to
	// call before the stream is exhausted.
	Close() error
}

// NoBody is an empty Body, analogous to http.NoBody.  Its Next method
// immediately returns io.EOF.
var NoBody Body = noBody{}

type noBody struct{}

func (noBody) Next() ([]byte, error) { return nil, io.EOF }
func (noBody) Close() error          { return nil }

// bytesBody is a single-chunk, in-memory Body.
type bytesBody struct {
	remaining []byte
}

func (b *bytesBody) Next() ([]byte, error) {
	if len(b.remaining) == 0 {
		return nil, io.EOF
	}

	chunk := b.remaining
	b.remaining = nil
	return chunk, nil
}

func (b *bytesBody) Close() error { return nil }

// Len returns the number of unread bytes.  Translation layers use this to
// set a content length on native requests when one is known up front.
func (b *bytesBody) Len() int { return len(b.remaining) }

// BytesBody returns a Body that yields the given bytes as a single chunk.
// The returned Body exposes a Len() int method, allowing adapters to
// advertise a content length.
func BytesBody(content []byte) Body {
	return &bytesBody{remaining: content}
}

// StringBody is a convenience for BytesBody([]byte(content)).
func StringBody(content string) Body {
	return BytesBody([]byte(content))
}

// JSONBody marshals the given value and returns it as a single-chunk Body.
func JSONBody(value interface{}) (Body, error) {
	content, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return BytesBody(content), nil
}

const readerBodyChunkSize = 32 * 1024

// readerBody adapts an io.Reader to the Body interface.  Reads are lazy:
// no bytes are pulled from the reader until Next is invoked.
type readerBody struct {
	source io.Reader
	buffer []byte
}

func (b *readerBody) Next() ([]byte, error) {
	if b.buffer == nil {
		b.buffer = make([]byte, readerBodyChunkSize)
	}

	for {
		n, err := b.source.Read(b.buffer)
		if n > 0 {
			// defer any error, including io.EOF, until the next call
			return b.buffer[:n], nil
		}

		if err != nil {
			return nil, err
		}
	}
}

func (b *readerBody) Close() error {
	if c, ok := b.source.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// ReaderBody returns a Body that pulls chunks from the given reader.  If the
// reader also implements io.Closer, closing the Body closes the reader.
func ReaderBody(source io.Reader) Body {
	return &readerBody{source: source}
}

// bodyReader adapts a Body to the io.ReadCloser expected by native HTTP
// request and response types.  It buffers at most one chunk and reads
// nothing until Read is invoked.
type bodyReader struct {
	body    Body
	pending []byte
	err     error
}

func (r *bodyReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		r.pending, r.err = r.body.Next()
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *bodyReader) Close() error {
	return r.body.Close()
}

// BodyReader exposes a Body as an io.ReadCloser.  Stream failures from the
// Body surface as read errors, exactly as a native transport would report
// them.  Closing the reader closes the underlying Body.
func BodyReader(body Body) io.ReadCloser {
	return &bodyReader{body: body}
}

// ReadAll drains the Body and returns its full content.  The Body is closed
// regardless of the outcome.
func ReadAll(body Body) ([]byte, error) {
	defer body.Close()

	var output bytes.Buffer
	for {
		chunk, err := body.Next()
		if len(chunk) > 0 {
			output.Write(chunk)
		}

		if err == io.EOF {
			return output.Bytes(), nil
		} else if err != nil {
			return output.Bytes(), err
		}
	}
}

// DecodeJSON drains the Body and unmarshals its content into value.
func DecodeJSON(body Body, value interface{}) error {
	content, err := ReadAll(body)
	if err != nil {
		return err
	}

	return json.Unmarshal(content, value)
}
