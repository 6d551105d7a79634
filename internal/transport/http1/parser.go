package http1

import (
	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/headers"
	"github.com/indigo-web/rawhttp/internal/stream"
	"github.com/indigo-web/rawhttp/internal/transport"
	"k8s.io/klog/v2"
)

var _ transport.Parser = new(Parser)

// Parser runs the whole pipeline over a single message: metadata scanning, start line
// and headers parsing, Host reconciliation (requests only) and body framing resolution.
// It holds no state between calls, so a single instance may serve concurrent parses as
// long as each one owns its stream.
type Parser struct {
	cfg *config.Config
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{cfg: cfg}
}

func (p *Parser) ParseRequest(src *stream.Stream) (*http.Request, error) {
	lines, err := p.scan(src, http.KindRequest)
	if err != nil {
		return nil, err
	}

	line, err := ParseMethodLine(lines[0])
	if err != nil {
		return nil, err
	}

	builder, err := ParseHeaders(lines[1:], http.KindRequest, p.cfg.Headers.Prealloc, p.cfg.Parser.ValidateHeaderNames)
	if err != nil {
		return nil, err
	}

	line, err = ReconcileHost(line, builder, p.cfg.Parser.InsertHostHeaderIfMissing)
	if err != nil {
		return nil, err
	}

	hdrs := builder.Build()
	if !RequestHasBody(hdrs) {
		return http.NewRequest(line, hdrs, nil), nil
	}

	body, err := p.body(src, hdrs, http.KindRequest)
	if err != nil {
		return nil, err
	}

	return http.NewRequest(line, hdrs, body), nil
}

func (p *Parser) ParseResponse(src *stream.Stream, request *http.MethodLine) (*http.Response, error) {
	lines, err := p.scan(src, http.KindResponse)
	if err != nil {
		return nil, err
	}

	line, err := ParseStatusLine(lines[0])
	if err != nil {
		return nil, err
	}

	builder, err := ParseHeaders(lines[1:], http.KindResponse, p.cfg.Headers.Prealloc, p.cfg.Parser.ValidateHeaderNames)
	if err != nil {
		return nil, err
	}

	var requestMethod string
	if request != nil {
		requestMethod = request.Method
	}

	hdrs := builder.Build()
	if !ResponseHasBody(line.Code, requestMethod) {
		return http.NewResponse(line, hdrs, nil), nil
	}

	body, err := p.body(src, hdrs, http.KindResponse)
	if err != nil {
		return nil, err
	}

	return http.NewResponse(line, hdrs, body), nil
}

func (p *Parser) scan(src *stream.Stream, kind http.Kind) ([]string, error) {
	lines, err := ScanMetadata(src, kind, p.cfg.Parser.AllowNewLineWithoutReturn)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, http.NewError(kind, "no content", 0)
	}

	return lines, nil
}

func (p *Parser) body(src *stream.Stream, hdrs *headers.Headers, kind http.Kind) (*http.Body, error) {
	framing, err := ResolveFraming(hdrs, kind, p.cfg.Parser.RejectAmbiguousFraming)
	if err != nil {
		return nil, err
	}

	if klog.V(4).Enabled() {
		klog.InfoS("resolved body framing", "message", kind, "type", framing.Type, "length", framing.Length)
	}

	return NewBody(src, framing, hdrs, p.cfg.Body), nil
}
