package http1

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/internal/stream"
	"github.com/indigo-web/rawhttp/internal/stream/dummy"
	"github.com/stretchr/testify/require"
)

func requireParseError(t *testing.T, err error, reason string, line int) {
	t.Helper()
	var perr *http.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, reason, perr.Reason)
	require.Equal(t, line, perr.Line)
}

func TestScanMetadata(t *testing.T) {
	scan := func(data string, allowBareLF bool) ([]string, error) {
		return ScanMetadata(stream.New(strings.NewReader(data)), http.KindRequest, allowBareLF)
	}

	t.Run("CRLF", func(t *testing.T) {
		lines, err := scan("A\r\nB\r\n\r\n", false)
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, lines)
	})

	t.Run("bare LF tolerated", func(t *testing.T) {
		lines, err := scan("A\nB\n\n", true)
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, lines)
	})

	t.Run("mixed terminators", func(t *testing.T) {
		lines, err := scan("A\r\nB\n\r\n", true)
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, lines)
	})

	t.Run("bare LF disallowed", func(t *testing.T) {
		reader := dummy.FromString("A\nB\n\n", 1)
		_, err := ScanMetadata(stream.New(reader), http.KindRequest, false)
		requireParseError(t, err, "illegal new-line character without preceding return", 1)
		require.ErrorIs(t, err, http.ErrMalformedRequest)
		require.True(t, reader.Closed())
	})

	t.Run("bare LF on the second line", func(t *testing.T) {
		_, err := scan("A\r\nB\n\r\n", false)
		requireParseError(t, err, "illegal new-line character without preceding return", 2)
	})

	t.Run("illegal character after return", func(t *testing.T) {
		reader := dummy.FromString("A\r\nB\rC\r\n\r\n", 3)
		_, err := ScanMetadata(stream.New(reader), http.KindResponse, true)
		requireParseError(t, err, "illegal character after return", 2)
		require.ErrorIs(t, err, http.ErrMalformedResponse)
		require.True(t, reader.Closed())
	})

	t.Run("empty stream", func(t *testing.T) {
		lines, err := scan("", false)
		require.NoError(t, err)
		require.Empty(t, lines)
	})

	t.Run("leading blank line", func(t *testing.T) {
		lines, err := scan("\r\nA\r\n\r\n", false)
		require.NoError(t, err)
		require.Empty(t, lines)
	})

	t.Run("partial line at the end of stream", func(t *testing.T) {
		lines, err := scan("A\r\nB", false)
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, lines)
	})

	t.Run("trailing return at the end of stream", func(t *testing.T) {
		lines, err := scan("A\r\nB\r", false)
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, lines)
	})

	t.Run("bytes after metadata stay unread", func(t *testing.T) {
		reader := dummy.FromString("A\r\n\r\nBODY", 4)
		lines, err := ScanMetadata(stream.New(reader), http.KindRequest, false)
		require.NoError(t, err)
		require.Equal(t, []string{"A"}, lines)
		require.Equal(t, "BODY", reader.Rest())
		require.False(t, reader.Closed())
	})

	t.Run("lines are independent", func(t *testing.T) {
		lines, err := scan("first\r\nsecond\r\n\r\n", false)
		require.NoError(t, err)
		require.Equal(t, "first", lines[0])
		require.Equal(t, "second", lines[1])
	})

	t.Run("transport failure", func(t *testing.T) {
		boom := errors.New("connection reset")
		reader := dummy.FromString("GET / HT", 2).FailWith(boom)
		_, err := ScanMetadata(stream.New(reader), http.KindRequest, true)
		require.ErrorIs(t, err, boom)
		require.True(t, reader.Closed())
	})

	t.Run("truncated by the closed stream", func(t *testing.T) {
		src := stream.New(dummy.FromString("GET / HTTP/1.1\r\n", 1))
		require.NoError(t, src.Close())
		_, err := ScanMetadata(src, http.KindRequest, true)
		require.ErrorIs(t, err, stream.ErrClosed)
	})

	t.Run("EOF mid-line is not an error", func(t *testing.T) {
		_, err := scan("GET", false)
		require.False(t, errors.Is(err, io.EOF))
	})
}
