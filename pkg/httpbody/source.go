package httpbody

import (
	"io"
	"net/http"

	"github.com/babarinde/mezzio-swoole/pkg/bodystream"
	"github.com/babarinde/mezzio-swoole/pkg/logger"
)

// RequestSource adapts the body of an already received *http.Request into a
// bodystream.Source. The body is drained in full and closed on the first
// RawContent call; every later call reports no content.
type RequestSource struct {
	request *http.Request
	drained bool
}

var _ bodystream.Source = (*RequestSource)(nil)

func NewRequestSource(request *http.Request) *RequestSource {
	return &RequestSource{request: request}
}

func (s *RequestSource) RawContent() ([]byte, bool) {
	if s.drained || s.request == nil || s.request.Body == nil {
		return nil, false
	}
	s.drained = true

	data, err := io.ReadAll(s.request.Body)
	s.request.Body.Close()
	if err != nil {
		logger.For(s).WithError(err).Warn("Failed to drain request body")
		return nil, false
	}

	logger.For(s).WithField("bytes", len(data)).Debug("Buffered request body")
	return data, true
}

// Request returns the request the source was built around.
func (s *RequestSource) Request() *http.Request {
	return s.request
}
