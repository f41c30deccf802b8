package interoptest

import (
	"io"

	"github.com/alekseysidorov/http-interop/httpmodel"
)

// errorBody yields its chunks and then fails with a configured error
// instead of a normal end of stream.
type errorBody struct {
	chunks [][]byte
	err    error
}

func (eb *errorBody) Next() ([]byte, error) {
	if len(eb.chunks) > 0 {
		chunk := eb.chunks[0]
		eb.chunks = eb.chunks[1:]
		return chunk, nil
	}

	return nil, eb.err
}

func (eb *errorBody) Close() error { return nil }

// ErrorBody returns a Body that yields the given chunks in order and then
// fails with err rather than io.EOF.  Passing io.EOF as err produces a
// well-behaved multi-chunk body, useful for round-trip tests.
func ErrorBody(err error, chunks ...[]byte) httpmodel.Body {
	if err == nil {
		err = io.EOF
	}

	return &errorBody{chunks: chunks, err: err}
}

// ChunkedBody returns a Body that yields the given chunks in order and then
// ends normally.
func ChunkedBody(chunks ...[]byte) httpmodel.Body {
	return ErrorBody(io.EOF, chunks...)
}
