package http

import (
	"testing"

	"github.com/indigo-web/rawhttp/http/headers"
	"github.com/indigo-web/rawhttp/http/status"
	"github.com/stretchr/testify/require"
)

func TestStatusLine(t *testing.T) {
	require.Equal(t, "HTTP/1.1 200 OK", StatusLine{Version: "HTTP/1.1", Code: status.OK, Reason: "OK"}.String())
	require.Equal(t, "HTTP/1.0 204", StatusLine{Version: "HTTP/1.0", Code: status.NoContent}.String())
}

func TestResponse(t *testing.T) {
	line := StatusLine{Version: "HTTP/1.1", Code: status.OK, Reason: "OK"}
	hdrs := headers.FromPairs(headers.Pair{Key: "Server", Value: "rawhttp"})

	t.Run("without body", func(t *testing.T) {
		response := NewResponse(line, hdrs, nil)
		require.Equal(t, status.OK, response.Code())
		require.False(t, response.HasBody())
		require.Equal(t, "HTTP/1.1 200 OK\r\nServer: rawhttp\r\n\r\n", response.String())
	})

	t.Run("eagerly", func(t *testing.T) {
		body, _ := newTestBody("[1,2,3]", Framing{Type: CloseTerminated}, 1024)
		response, err := NewResponse(line, hdrs, body).Eagerly()
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1 200 OK\r\nServer: rawhttp\r\n\r\n[1,2,3]", response.String())

		b, ok := response.Body()
		require.True(t, ok)
		eager, err := b.Eager()
		require.NoError(t, err)

		var model []int
		require.NoError(t, eager.JSON(&model))
		require.Equal(t, []int{1, 2, 3}, model)
	})

	t.Run("eagerly fails", func(t *testing.T) {
		body, src := newTestBody("short", Framing{Type: CloseTerminated}, 2)
		_, err := NewResponse(line, hdrs, body).Eagerly()
		require.ErrorIs(t, err, ErrBodyTooLarge)
		require.Equal(t, 1, src.closed)
	})
}
