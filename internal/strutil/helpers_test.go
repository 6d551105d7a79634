package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	require.True(t, CmpFold("HELLO", "hello"))
	require.True(t, CmpFold("Content-Length", "content-length"))
	require.False(t, CmpFold("Host", "Hosts"))
}

func TestStrip(t *testing.T) {
	require.Equal(t, "hello ", LStripWS(" \t hello "))
	require.Equal(t, " hello", RStripWS(" hello \t\r"))
	require.Equal(t, "hello", StripWS("\v hello \f"))
	require.Empty(t, StripWS(" \t "))
}

func TestSplitFields(t *testing.T) {
	t.Run("unlimited", func(t *testing.T) {
		require.Equal(t, []string{"GET", "/", "HTTP/1.1"}, SplitFields("GET  /\tHTTP/1.1", 0))
		require.Equal(t, []string{"GET", "/"}, SplitFields(" GET / ", 0))
		require.Empty(t, SplitFields("   ", 0))
	})

	t.Run("limited", func(t *testing.T) {
		require.Equal(t, []string{"HTTP/1.1", "404", "Not  Found"}, SplitFields("HTTP/1.1 404 Not  Found", 3))
		require.Equal(t, []string{"200"}, SplitFields("200", 3))
		require.Equal(t, []string{"HTTP/1.0", "200"}, SplitFields("HTTP/1.0 200 ", 3))
	})
}

func TestLastToken(t *testing.T) {
	require.Equal(t, "chunked", LastToken("gzip, chunked"))
	require.Equal(t, "chunked", LastToken(" chunked "))
	require.Equal(t, "", LastToken("gzip,"))
}
