package http

import (
	"net/url"
	"strings"

	"github.com/indigo-web/rawhttp/http/headers"
	"github.com/indigo-web/rawhttp/internal/uri"
)

// MethodLine is the start line of a request. It's immutable: WithHost produces a new
// instance instead of changing the existing one.
type MethodLine struct {
	Method string
	// URI is always absolute-form, however its host may be empty while the request's
	// authority isn't reconciled with the Host header yet.
	URI     *url.URL
	Version string
}

// Host returns the host of the target, without a port. Empty string means the target
// doesn't specify any.
func (m MethodLine) Host() string {
	if m.URI == nil {
		return ""
	}

	return m.URI.Hostname()
}

// WithHost returns a new MethodLine with the target's authority set to the host.
func (m MethodLine) WithHost(host string) (MethodLine, error) {
	target := m.URI
	if target == nil {
		target = new(url.URL)
		target.Scheme = uri.PlaceholderScheme
	}

	withHost, err := uri.WithHost(target, host)
	if err != nil {
		return m, err
	}

	m.URI = withHost
	return m, nil
}

// Target returns the request-target in origin-form (path and query).
func (m MethodLine) Target() string {
	if m.URI == nil {
		return "/"
	}

	return m.URI.RequestURI()
}

// String returns the line with the full target URI, so it can be parsed back into an
// equal value. The asterisk-form target is rendered as is.
func (m MethodLine) String() string {
	var target string
	switch {
	case uri.IsAsterisk(m.URI):
		target = uri.Asterisk
	case m.URI != nil:
		target = m.URI.String()
	}

	return m.Method + " " + target + " " + m.Version
}

// Equal compares the lines field by field, the URIs by their string representation.
func (m MethodLine) Equal(other MethodLine) bool {
	return m.Method == other.Method && m.Version == other.Version &&
		m.Host() == other.Host() && m.String() == other.String()
}

// Request is a parsed HTTP request. The body is present only if the request's framing
// says it carries one.
type Request struct {
	Line    MethodLine
	Headers *headers.Headers
	body    *Body
}

func NewRequest(line MethodLine, hdrs *headers.Headers, body *Body) *Request {
	return &Request{
		Line:    line,
		Headers: hdrs,
		body:    body,
	}
}

func (r *Request) Method() string {
	return r.Line.Method
}

func (r *Request) URI() *url.URL {
	return r.Line.URI
}

// Body returns the body and a bool, indicating whether the request has one at all.
func (r *Request) Body() (*Body, bool) {
	return r.body, r.body != nil
}

func (r *Request) HasBody() bool {
	return r.body != nil
}

// Eagerly reads the body (if any) into memory. Returns the request itself for chaining.
func (r *Request) Eagerly() (*Request, error) {
	if r.body != nil {
		if _, err := r.body.Eager(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// String renders the request in its wire form, with the origin-form target. The body is
// included only if it was already read eagerly.
func (r *Request) String() string {
	var b strings.Builder
	b.WriteString(r.Line.Method)
	b.WriteByte(' ')
	b.WriteString(r.Line.Target())
	b.WriteByte(' ')
	b.WriteString(r.Line.Version)
	b.WriteString("\r\n")
	writeHeaders(&b, r.Headers)
	writeBody(&b, r.body)

	return b.String()
}

func writeHeaders(b *strings.Builder, hdrs *headers.Headers) {
	if hdrs != nil {
		for key, value := range hdrs.Pairs() {
			b.WriteString(key)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString("\r\n")
		}
	}

	b.WriteString("\r\n")
}

func writeBody(b *strings.Builder, body *Body) {
	if body != nil && body.state == bodyEager {
		b.Write(body.eager.Bytes())
	}
}
