package http1

import (
	"io"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/rawhttp/config"
	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/http/headers"
	"github.com/indigo-web/rawhttp/internal/stream"
)

// NewBody binds the body to the rest of the stream, choosing the framed reader by the
// body type.
func NewBody(src *stream.Stream, framing http.Framing, hdrs *headers.Headers, s config.Body) *http.Body {
	var framed io.Reader

	switch framing.Type {
	case http.ContentLength:
		framed = &lengthReader{src: src, left: framing.Length}
	case http.Chunked:
		framed = newChunkedReader(src, hdrs.Has(headers.Trailer), s.ReadBufferSize)
	default:
		framed = src
	}

	return http.NewBody(framing, src, framed, s.MaxSize)
}

// lengthReader yields exactly the declared number of bytes. The stream ending earlier
// is an error.
type lengthReader struct {
	src  io.Reader
	left int64
}

func (l *lengthReader) Read(b []byte) (n int, err error) {
	if l.left <= 0 {
		return 0, io.EOF
	}

	if int64(len(b)) > l.left {
		b = b[:l.left]
	}

	n, err = l.src.Read(b)
	l.left -= int64(n)

	switch {
	case err == io.EOF && l.left > 0:
		return n, io.ErrUnexpectedEOF
	case err == nil && l.left == 0:
		return n, io.EOF
	}

	return n, err
}

// chunkedReader decodes the chunked transfer coding. As the stream is read by buffers,
// bytes following the terminating chunk may be consumed as well.
type chunkedReader struct {
	src     io.Reader
	parser  *chunkedbody.Parser
	trailer bool
	buff    []byte
	chunk   []byte
	extra   []byte
	done    bool
}

func newChunkedReader(src io.Reader, trailer bool, buffSize int) *chunkedReader {
	if buffSize <= 0 {
		// an empty buffer never yields data, so reading would spin forever
		buffSize = config.Default().Body.ReadBufferSize
	}

	return &chunkedReader{
		src:     src,
		parser:  chunkedbody.NewParser(chunkedbody.DefaultSettings()),
		trailer: trailer,
		buff:    make([]byte, buffSize),
	}
}

func (c *chunkedReader) Read(b []byte) (n int, err error) {
	for len(c.chunk) == 0 {
		if c.done {
			return 0, io.EOF
		}

		if err = c.next(); err != nil {
			return 0, err
		}
	}

	n = copy(b, c.chunk)
	c.chunk = c.chunk[n:]

	return n, nil
}

func (c *chunkedReader) next() error {
	data := c.extra
	if len(data) == 0 {
		n, err := c.src.Read(c.buff)
		switch {
		case n > 0:
		case err == io.EOF:
			return io.ErrUnexpectedEOF
		case err != nil:
			return err
		default:
			return nil
		}

		data = c.buff[:n]
	}

	chunk, extra, err := c.parser.Parse(data, c.trailer)
	switch err {
	case nil:
	case io.EOF:
		c.done = true
	default:
		return err
	}

	c.chunk, c.extra = chunk, extra

	return nil
}
