package http

import (
	"strconv"
	"strings"

	"github.com/indigo-web/rawhttp/http/headers"
	"github.com/indigo-web/rawhttp/http/status"
)

// StatusLine is the start line of a response.
type StatusLine struct {
	Version string
	Code    status.Code
	Reason  string
}

func (s StatusLine) String() string {
	line := s.Version + " " + strconv.Itoa(int(s.Code))
	if len(s.Reason) > 0 {
		line += " " + s.Reason
	}

	return line
}

// Response is a parsed HTTP response. The body is present only if the response's framing
// (and the originating request method, if known) says it carries one.
type Response struct {
	Line    StatusLine
	Headers *headers.Headers
	body    *Body
}

func NewResponse(line StatusLine, hdrs *headers.Headers, body *Body) *Response {
	return &Response{
		Line:    line,
		Headers: hdrs,
		body:    body,
	}
}

func (r *Response) Code() status.Code {
	return r.Line.Code
}

// Body returns the body and a bool, indicating whether the response has one at all.
func (r *Response) Body() (*Body, bool) {
	return r.body, r.body != nil
}

func (r *Response) HasBody() bool {
	return r.body != nil
}

// Eagerly reads the body (if any) into memory. Returns the response itself for chaining.
func (r *Response) Eagerly() (*Response, error) {
	if r.body != nil {
		if _, err := r.body.Eager(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// String renders the response in its wire form. The body is included only if it was
// already read eagerly.
func (r *Response) String() string {
	var b strings.Builder
	b.WriteString(r.Line.String())
	b.WriteString("\r\n")
	writeHeaders(&b, r.Headers)
	writeBody(&b, r.body)

	return b.String()
}
