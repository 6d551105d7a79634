package requestgen

import (
	"strconv"
	"strings"

	"github.com/indigo-web/rawhttp/http/headers"
)

// Headers generates n headers, the last one of which is always Host.
func Headers(n int) *headers.Headers {
	hdrs := headers.NewBuilderPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	return hdrs.Add(headers.Host, "localhost").Build()
}

func HeadersBlock(hdrs *headers.Headers) (buff []byte) {
	for key, value := range hdrs.Pairs() {
		buff = append(buff, key+": "+value+"\r\n"...)
	}

	return buff
}

// Request generates a GET request without a body.
func Request(uri string, hdrs *headers.Headers) (request []byte) {
	request = append(request, "GET /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}

// Response generates a response with the Content-Length framed body.
func Response(code int, hdrs *headers.Headers, body string) (response []byte) {
	response = append(response, "HTTP/1.1 "+strconv.Itoa(code)+"\r\n"...)
	response = append(response, HeadersBlock(hdrs)...)
	response = append(response, "Content-Length: "+strconv.Itoa(len(body))+"\r\n\r\n"...)

	return append(response, body...)
}

// Chunked encodes the payload by chunks of the given size, terminated by the last chunk.
func Chunked(payload string, chunkSize int) string {
	var b strings.Builder

	for len(payload) > 0 {
		chunk := payload[:min(chunkSize, len(payload))]
		payload = payload[len(chunk):]
		b.WriteString(strconv.FormatInt(int64(len(chunk)), 16))
		b.WriteString("\r\n")
		b.WriteString(chunk)
		b.WriteString("\r\n")
	}

	b.WriteString("0\r\n\r\n")

	return b.String()
}
