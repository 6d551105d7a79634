package http1

import (
	"testing"

	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/stretchr/testify/require"
)

func TestParseMethodLine(t *testing.T) {
	t.Run("full line", func(t *testing.T) {
		line, err := ParseMethodLine("GET /hello?q=1 HTTP/1.0")
		require.NoError(t, err)
		require.Equal(t, "GET", line.Method)
		require.Equal(t, "HTTP/1.0", line.Version)
		require.Equal(t, "/hello?q=1", line.Target())
		require.Empty(t, line.Host())
	})

	t.Run("default version", func(t *testing.T) {
		line, err := ParseMethodLine("GET /")
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1", line.Version)
	})

	t.Run("authority form", func(t *testing.T) {
		line, err := ParseMethodLine("GET localhost:8080")
		require.NoError(t, err)
		require.Equal(t, "localhost", line.Host())
		require.Equal(t, "8080", line.URI.Port())
		require.Equal(t, "http://localhost:8080", line.URI.String())
	})

	t.Run("absolute form", func(t *testing.T) {
		line, err := ParseMethodLine("OPTIONS https://example.com/x HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, "https", line.URI.Scheme)
		require.Equal(t, "example.com", line.Host())
	})

	t.Run("tabs and repeated spaces", func(t *testing.T) {
		line, err := ParseMethodLine("POST\t /a  HTTP/1.1")
		require.NoError(t, err)
		require.Equal(t, "POST", line.Method)
		require.Equal(t, "/a", line.Target())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseMethodLine("")
		requireParseError(t, err, "empty method line", 1)
		require.ErrorIs(t, err, http.ErrMalformedRequest)
	})

	for _, line := range []string{"GET", "GET / HTTP/1.1 extra", "   "} {
		t.Run("invalid "+line, func(t *testing.T) {
			_, err := ParseMethodLine(line)
			requireParseError(t, err, "invalid method line", 1)
		})
	}

	t.Run("invalid URI", func(t *testing.T) {
		_, err := ParseMethodLine("GET http://[::1 HTTP/1.1")
		var perr *http.ParseError
		require.ErrorAs(t, err, &perr)
		require.Contains(t, perr.Reason, "invalid URI: ")
		require.Equal(t, 1, perr.Line)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, raw := range []string{"GET /", "GET http://a.com:81/x?y HTTP/1.0", "DELETE localhost:8080/p"} {
			line, err := ParseMethodLine(raw)
			require.NoError(t, err)
			reparsed, err := ParseMethodLine(line.String())
			require.NoError(t, err)
			require.True(t, line.Equal(reparsed), "%s != %s", line, reparsed)
		}
	})
}

func TestParseStatusLine(t *testing.T) {
	t.Run("full line", func(t *testing.T) {
		line, err := ParseStatusLine("HTTP/1.0 404 Not Found")
		require.NoError(t, err)
		require.Equal(t, http.StatusLine{Version: "HTTP/1.0", Code: status.NotFound, Reason: "Not Found"}, line)
	})

	t.Run("code only", func(t *testing.T) {
		line, err := ParseStatusLine("200")
		require.NoError(t, err)
		require.Equal(t, http.StatusLine{Version: "HTTP/1.1", Code: status.OK}, line)
	})

	t.Run("no reason", func(t *testing.T) {
		line, err := ParseStatusLine("HTTP/1.1 204")
		require.NoError(t, err)
		require.Equal(t, http.StatusLine{Version: "HTTP/1.1", Code: status.NoContent}, line)
	})

	t.Run("reason with spaces", func(t *testing.T) {
		line, err := ParseStatusLine("HTTP/1.1 500 Internal  Server Error")
		require.NoError(t, err)
		require.Equal(t, "Internal  Server Error", line.Reason)
	})

	t.Run("unconventional code", func(t *testing.T) {
		line, err := ParseStatusLine("HTTP/1.1 999 Whatever")
		require.NoError(t, err)
		require.Equal(t, status.Code(999), line.Code)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseStatusLine("  ")
		requireParseError(t, err, "empty status line", 1)
		require.ErrorIs(t, err, http.ErrMalformedResponse)
	})

	for _, line := range []string{"HTTP/1.1 OK", "HTTP/1.1 20x Fine", "HTTP/1.1", "HTTP/1.1 -200", "HTTP/1.1 1234567890 Big"} {
		t.Run("invalid "+line, func(t *testing.T) {
			_, err := ParseStatusLine(line)
			requireParseError(t, err, "invalid status", 1)
		})
	}

	t.Run("round trip", func(t *testing.T) {
		for _, raw := range []string{"200", "HTTP/1.0 301", "HTTP/1.1 418 I'm a teapot"} {
			line, err := ParseStatusLine(raw)
			require.NoError(t, err)
			reparsed, err := ParseStatusLine(line.String())
			require.NoError(t, err)
			require.Equal(t, line, reparsed)
		}
	})
}
