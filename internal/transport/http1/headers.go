package http1

import (
	"strings"

	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/headers"
	"github.com/indigo-web/rawhttp/internal/strutil"
	"golang.org/x/net/http/httpguts"
)

// firstHeaderLine is the line number of the first header: the start line is the 1st one.
const firstHeaderLine = 2

// ParseHeaders builds the header table out of the lines following the start line. A line
// which is blank after stripping ends the header block. Every other line must be a
// name-value pair, separated by a colon, with a non-empty name: ": value" is an invalid
// header regardless of validateNames. Header names are additionally checked against
// the RFC 9110 token grammar if validateNames is set. Negative prealloc is treated as zero.
func ParseHeaders(lines []string, kind http.Kind, prealloc int, validateNames bool) (*headers.Builder, error) {
	builder := headers.NewBuilderPrealloc(prealloc)

	for i, line := range lines {
		line = strutil.StripWS(line)
		if len(line) == 0 {
			break
		}

		key, value, found := strings.Cut(line, ":")
		if !found || len(key) == 0 {
			return nil, http.NewError(kind, "invalid header", firstHeaderLine+i)
		}

		if validateNames && !httpguts.ValidHeaderFieldName(key) {
			return nil, http.NewError(kind, "invalid header name", firstHeaderLine+i)
		}

		builder.Add(key, strutil.LStripWS(value))
	}

	return builder, nil
}
