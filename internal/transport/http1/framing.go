package http1

import (
	"strings"

	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/headers"
	"github.com/indigo-web/rawhttp/http/method"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/indigo-web/rawhttp/internal/strutil"
)

// maxLengthDigits bounds Content-Length so it never overflows int64.
const maxLengthDigits = 18

// RequestHasBody reports whether the request carries a body. Only the framing headers
// matter, the method doesn't.
func RequestHasBody(h *headers.Headers) bool {
	return h.Has(headers.ContentLength) || h.Has(headers.TransferEncoding)
}

// ResponseHasBody reports whether the response carries a body. Responses to HEAD requests
// and successful responses to CONNECT requests never do, as well as responses with a
// bodiless status code. Empty request method means the request is unknown.
func ResponseHasBody(code status.Code, requestMethod string) bool {
	switch {
	case method.Is(requestMethod, method.HEAD):
		return false
	case method.Is(requestMethod, method.CONNECT) && code.Successful():
		return false
	default:
		return !code.Bodiless()
	}
}

// ResolveFraming decides how the body of a message, which is known to carry one, is
// delimited. Content-Length always takes precedence over Transfer-Encoding. In strict
// mode, messages carrying both of them, or carrying disagreeing Content-Length values,
// are rejected instead.
func ResolveFraming(h *headers.Headers, kind http.Kind, strict bool) (http.Framing, error) {
	if strict {
		if err := checkAmbiguity(h, kind); err != nil {
			return http.Framing{}, err
		}
	}

	if value, found := h.Get(headers.ContentLength); found {
		length, ok := parseContentLength(value)
		if !ok {
			return http.Framing{}, http.NewError(kind, "invalid Content-Length", lineOf(h, headers.ContentLength))
		}

		return http.Framing{Type: http.ContentLength, Length: length}, nil
	}

	if value, found := h.Last(headers.TransferEncoding); found {
		if coding := strutil.LastToken(value); strutil.CmpFold(coding, "chunked") {
			return http.Framing{Type: http.Chunked}, nil
		}

		return http.Framing{}, &http.UnsupportedFramingError{Encoding: value}
	}

	return http.Framing{Type: http.CloseTerminated}, nil
}

func checkAmbiguity(h *headers.Headers, kind http.Kind) error {
	lengths := h.Values(headers.ContentLength)
	if len(lengths) > 0 && h.Has(headers.TransferEncoding) {
		return http.NewError(
			kind, "both Content-Length and Transfer-Encoding are present", lineOf(h, headers.TransferEncoding),
		)
	}

	for _, value := range lengths[min(len(lengths), 1):] {
		if strutil.StripWS(value) != strutil.StripWS(lengths[0]) {
			return http.NewError(kind, "conflicting Content-Length values", lastLineOf(h, headers.ContentLength))
		}
	}

	return nil
}

func parseContentLength(value string) (length int64, ok bool) {
	value = strutil.StripWS(value)
	if len(value) == 0 || len(value) > maxLengthDigits {
		return 0, false
	}

	for i := 0; i < len(value); i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return 0, false
		}

		length = length*10 + int64(c-'0')
	}

	return length, true
}

// lineOf returns the line number of the first header with the key.
func lineOf(h *headers.Headers, key string) int {
	for i, pair := range h.Expose() {
		if strings.EqualFold(pair.Key, key) {
			return i + firstHeaderLine
		}
	}

	return 0
}

func lastLineOf(h *headers.Headers, key string) int {
	pairs := h.Expose()
	for i := len(pairs) - 1; i >= 0; i-- {
		if strings.EqualFold(pairs[i].Key, key) {
			return i + firstHeaderLine
		}
	}

	return 0
}
