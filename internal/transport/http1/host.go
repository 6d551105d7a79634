package http1

import (
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/headers"
	"golang.org/x/net/http/httpguts"
)

// ReconcileHost makes sure the request's authority comes from exactly one place: either
// the target or the single Host header. In the latter case, the authority is moved into
// the target and the header is normalized to the host part of it. If no authority is
// given by the headers, the Host header is derived from the target, if allowed.
func ReconcileHost(line http.MethodLine, b *headers.Builder, insertIfMissing bool) (http.MethodLine, error) {
	switch hosts := b.Values(headers.Host); len(hosts) {
	case 0:
		if !insertIfMissing {
			return line, http.NewError(http.KindRequest, "Host header is missing", 1)
		}

		host := line.Host()
		if len(host) == 0 {
			return line, http.NewError(http.KindRequest, "Host not given either in method line or Host header", 1)
		}

		b.Add(headers.Host, host)

		return line, nil
	case 1:
		lineNumber := b.IndexOf(headers.Host) + firstHeaderLine
		if len(line.Host()) > 0 {
			return line, http.NewError(
				http.KindRequest, "Host specified both in Host header and in method line", lineNumber,
			)
		}

		if !httpguts.ValidHostHeader(hosts[0]) {
			return line, http.NewError(http.KindRequest, "invalid host header", lineNumber)
		}

		withHost, err := line.WithHost(hosts[0])
		if err != nil {
			return line, http.NewError(http.KindRequest, "invalid host header: "+err.Error(), lineNumber)
		}

		b.Overwrite(headers.Host, withHost.Host())

		return withHost, nil
	default:
		return line, http.NewError(
			http.KindRequest, "More than one Host header specified", b.LastIndexOf(headers.Host)+firstHeaderLine,
		)
	}
}
