package transport

import (
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/internal/stream"
)

// Parser consumes exactly one message off the stream: the start line and the headers.
// The body, if any, is left in the stream and is owned by the returned message.
type Parser interface {
	ParseRequest(src *stream.Stream) (*http.Request, error)
	// ParseResponse takes the method line of the request the response is answering to.
	// It may be nil, meaning the request is unknown.
	ParseResponse(src *stream.Stream, request *http.MethodLine) (*http.Response, error)
}
