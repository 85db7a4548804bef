package httpbody

import (
	"io"
	"net/http"

	"github.com/babarinde/mezzio-swoole/pkg/bodystream"
)

// Buffer drains the body of r into a seekable stream and re-arms the request
// so the body stays readable downstream: r.Body becomes a clone of the stream
// with its own cursor, r.GetBody hands out fresh clones and r.ContentLength
// is set to the buffered size.
//
// Callers that need to cap how much is buffered should wrap r.Body with
// http.MaxBytesReader before calling Buffer.
func Buffer(r *http.Request) *bodystream.BufferStream {
	stream := bodystream.NewBufferStream(NewRequestSource(r))

	r.Body = stream.Clone()
	r.GetBody = func() (io.ReadCloser, error) {
		return stream.Clone(), nil
	}
	r.ContentLength = stream.Size()

	return stream
}

// Buffered wraps next so that every request it sees carries a buffered,
// re-readable body.
func Buffered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Buffer(r)
		next.ServeHTTP(w, r)
	})
}
