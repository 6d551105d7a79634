package http1

import (
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/proto"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/internal/strutil"
	"github.com/indigo-web/rawhttp/internal/uri"
)

// maxStatusDigits bounds the status code so it never overflows.
const maxStatusDigits = 9

// ParseMethodLine parses the request line. The version may be omitted, in which case
// it defaults to HTTP/1.1. The target is always turned into an absolute URI.
func ParseMethodLine(line string) (http.MethodLine, error) {
	if len(line) == 0 {
		return http.MethodLine{}, http.NewError(http.KindRequest, "empty method line", 1)
	}

	fields := strutil.SplitFields(line, 0)
	if len(fields) != 2 && len(fields) != 3 {
		return http.MethodLine{}, http.NewError(http.KindRequest, "invalid method line", 1)
	}

	target, err := uri.Parse(fields[1])
	if err != nil {
		return http.MethodLine{}, http.NewError(http.KindRequest, "invalid URI: "+err.Error(), 1)
	}

	version := proto.DefaultVersion
	if len(fields) == 3 {
		version = fields[2]
	}

	return http.MethodLine{
		Method:  fields[0],
		URI:     target,
		Version: version,
	}, nil
}

// ParseStatusLine parses the status line. Both the version and the reason phrase may be
// omitted, however the status code must always be present. The reason phrase is taken
// verbatim, so it may contain spaces.
func ParseStatusLine(line string) (http.StatusLine, error) {
	if len(strutil.StripWS(line)) == 0 {
		return http.StatusLine{}, http.NewError(http.KindResponse, "empty status line", 1)
	}

	var (
		fields  = strutil.SplitFields(line, 3)
		version = proto.DefaultVersion
		code    string
		reason  string
	)

	switch len(fields) {
	case 1:
		code = fields[0]
	case 2:
		version, code = fields[0], fields[1]
	default:
		version, code, reason = fields[0], fields[1], fields[2]
	}

	parsed, ok := parseStatusCode(code)
	if !ok {
		return http.StatusLine{}, http.NewError(http.KindResponse, "invalid status", 1)
	}

	return http.StatusLine{
		Version: version,
		Code:    parsed,
		Reason:  reason,
	}, nil
}

func parseStatusCode(raw string) (code status.Code, ok bool) {
	if len(raw) == 0 || len(raw) > maxStatusDigits {
		return 0, false
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			return 0, false
		}

		code = code*10 + status.Code(c-'0')
	}

	return code, true
}
