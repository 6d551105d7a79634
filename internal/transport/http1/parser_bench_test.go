package http1

import (
	"bytes"
	"strings"
	"testing"

	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/internal/requestgen"
	"github.com/indigo-web/rawhttp/internal/stream"
	"github.com/stretchr/testify/require"
)

func BenchmarkParser(b *testing.B) {
	parser := NewParser(config.Default())

	bench := func(b *testing.B, data []byte) {
		reader := bytes.NewReader(data)
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			reader.Reset(data)
			_, err := parser.ParseRequest(stream.New(reader))
			if err != nil {
				b.Fatal(err)
			}
		}
	}

	b.Run("no headers", func(b *testing.B) {
		bench(b, requestgen.Request("", requestgen.Headers(1)))
	})

	b.Run("10 headers", func(b *testing.B) {
		bench(b, requestgen.Request(strings.Repeat("a", 64), requestgen.Headers(10)))
	})

	b.Run("50 headers", func(b *testing.B) {
		bench(b, requestgen.Request(strings.Repeat("a", 64), requestgen.Headers(50)))
	})
}

func TestGenerated(t *testing.T) {
	parser := NewParser(config.Default())

	t.Run("many headers", func(t *testing.T) {
		data := requestgen.Request("path", requestgen.Headers(50))
		request, err := parser.ParseRequest(stream.New(bytes.NewReader(data)))
		require.NoError(t, err)
		require.Equal(t, 50, request.Headers.Len())
		require.Equal(t, "http://localhost/path", request.URI().String())
	})

	t.Run("large chunked body", func(t *testing.T) {
		payload := strings.Repeat("abcdefgh", 2048)
		data := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n" + requestgen.Chunked(payload, 1000)
		response, err := parser.ParseResponse(stream.New(strings.NewReader(data)), nil)
		require.NoError(t, err)

		response, err = response.Eagerly()
		require.NoError(t, err)
		body, _ := response.Body()
		require.Equal(t, payload, body.String())
	})

	t.Run("response", func(t *testing.T) {
		data := requestgen.Response(201, requestgen.Headers(3), "created")
		response, err := parser.ParseResponse(stream.New(bytes.NewReader(data)), nil)
		require.NoError(t, err)

		response, err = response.Eagerly()
		require.NoError(t, err)
		require.Equal(t, string(data), response.String())
	})
}
