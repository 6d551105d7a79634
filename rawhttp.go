// Package rawhttp parses HTTP/1.x requests and responses straight off a byte stream and
// decides how their bodies are delimited.
//
// Parsing consumes the start line and the headers only. The body, if the message carries
// one, stays in the stream and is exposed lazily via http.Body: it may be either streamed
// or read into memory, but only once.
package rawhttp

import (
	"io"
	"os"
	"strings"

	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/internal/stream"
	"github.com/indigo-web/rawhttp/internal/transport"
	"github.com/indigo-web/rawhttp/internal/transport/http1"
	"k8s.io/klog/v2"
)

// Parser is safe for concurrent use, as long as every message is parsed from its own reader.
type Parser struct {
	cfg       *config.Config
	transport transport.Parser
}

// New returns a new Parser instance. Nil config means config.Default().
func New(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Parser{
		cfg:       cfg,
		transport: http1.NewParser(cfg),
	}
}

// ParseRequest parses the request. Its body, if any, is left unread. If the reader is
// an io.Closer, the body owns it afterward: closing the body closes the reader.
func (p *Parser) ParseRequest(r io.Reader) (*http.Request, error) {
	request, err := p.transport.ParseRequest(p.stream(r))
	if err != nil {
		return nil, p.rejected(http.KindRequest, err)
	}

	return request, nil
}

// ParseRequestString parses the request and reads its body eagerly.
func (p *Parser) ParseRequestString(request string) (*http.Request, error) {
	return p.eagerRequest(strings.NewReader(request))
}

// ParseRequestFile parses the request stored in the file and reads its body eagerly.
// The file is closed before returning.
func (p *Parser) ParseRequestFile(path string) (*http.Request, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	return p.eagerRequest(file)
}

// ParseResponse parses the response. The method line of the request it answers to
// affects whether it has a body; nil means the request is unknown.
func (p *Parser) ParseResponse(r io.Reader, request *http.MethodLine) (*http.Response, error) {
	response, err := p.transport.ParseResponse(p.stream(r), request)
	if err != nil {
		return nil, p.rejected(http.KindResponse, err)
	}

	return response, nil
}

// ParseResponseString parses the response to an unknown request and reads its body eagerly.
func (p *Parser) ParseResponseString(response string) (*http.Response, error) {
	return p.eagerResponse(strings.NewReader(response), nil)
}

// ParseResponseFile parses the response stored in the file and reads its body eagerly.
// The file is closed before returning.
func (p *Parser) ParseResponseFile(path string, request *http.MethodLine) (*http.Response, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	return p.eagerResponse(file, request)
}

func (p *Parser) eagerRequest(r io.Reader) (*http.Request, error) {
	request, err := p.ParseRequest(r)
	if err != nil {
		return nil, err
	}

	return request.Eagerly()
}

func (p *Parser) eagerResponse(r io.Reader, request *http.MethodLine) (*http.Response, error) {
	response, err := p.ParseResponse(r, request)
	if err != nil {
		return nil, err
	}

	return response.Eagerly()
}

func (p *Parser) stream(r io.Reader) *stream.Stream {
	return stream.NewBuffered(r, p.cfg.Body.ReadBufferSize)
}

func (p *Parser) rejected(kind http.Kind, err error) error {
	klog.V(2).InfoS("rejected message", "message", kind, "err", err)
	return err
}
