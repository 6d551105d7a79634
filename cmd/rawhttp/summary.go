package main

import (
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/headers"
	"github.com/indigo-web/rawhttp/http/proto"
	"github.com/indigo-web/rawhttp/http/status"
	json "github.com/json-iterator/go"
)

type header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type bodySummary struct {
	Framing string `json:"framing"`
	// Length is declared for content-length framed bodies only.
	Length *int64 `json:"length,omitempty"`
	// Read is present only if the body was read.
	Read *int   `json:"read,omitempty"`
	Text string `json:"text,omitempty"`
}

type summary struct {
	Kind       string       `json:"kind"`
	Method     string       `json:"method,omitempty"`
	URI        string       `json:"uri,omitempty"`
	Version    string       `json:"version"`
	Protocol   string       `json:"protocol,omitempty"`
	Status     int          `json:"status,omitempty"`
	Reason     string       `json:"reason,omitempty"`
	StatusText string       `json:"statusText,omitempty"`
	Headers    []header     `json:"headers"`
	Body       *bodySummary `json:"body,omitempty"`
}

func summarizeRequest(request *http.Request, eager bool) (summary, error) {
	body, present := request.Body()
	bs, err := summarizeBody(body, present, eager)

	return summary{
		Kind:     http.KindRequest.String(),
		Method:   request.Method(),
		URI:      request.URI().String(),
		Version:  request.Line.Version,
		Protocol: proto.FromString(request.Line.Version).String(),
		Headers:  summarizeHeaders(request.Headers),
		Body:     bs,
	}, err
}

func summarizeResponse(response *http.Response, eager bool) (summary, error) {
	body, present := response.Body()
	bs, err := summarizeBody(body, present, eager)

	return summary{
		Kind:       http.KindResponse.String(),
		Version:    response.Line.Version,
		Protocol:   proto.FromString(response.Line.Version).String(),
		Status:     int(response.Code()),
		Reason:     response.Line.Reason,
		StatusText: status.Text(response.Code()),
		Headers:    summarizeHeaders(response.Headers),
		Body:       bs,
	}, err
}

func summarizeHeaders(hdrs *headers.Headers) []header {
	pairs := make([]header, 0, hdrs.Len())
	for name, value := range hdrs.Pairs() {
		pairs = append(pairs, header{Name: name, Value: value})
	}

	return pairs
}

func summarizeBody(body *http.Body, present, eager bool) (*bodySummary, error) {
	if !present {
		return nil, nil
	}

	s := &bodySummary{Framing: body.Type().String()}
	if length, ok := body.Length(); ok {
		s.Length = &length
	}

	if !eager {
		return s, nil
	}

	materialized, err := body.Eager()
	if err != nil {
		return nil, err
	}

	read := materialized.Len()
	s.Read = &read
	s.Text = materialized.String()

	return s, nil
}

func render(s summary) ([]byte, error) {
	return json.ConfigCompatibleWithStandardLibrary.MarshalIndent(s, "", "  ")
}
