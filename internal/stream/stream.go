// Package stream adapts arbitrary readers into a sequential byte source with no look-ahead.
//
// Metadata lines are scanned one byte at a time, so whatever follows the blank line that
// terminates the headers stays unread and is handed over to the body as is. Wrap slow
// sources (e.g. net.Conn) into a bufio.Reader beforehand: it's an io.ByteReader, so it's
// consumed directly and the body continues from its buffer.
package stream

import (
	"bufio"
	"errors"
	"io"
)

var ErrClosed = errors.New("stream is closed")

// Stream is exclusively owned by a single message parse, and afterward by the message body.
type Stream struct {
	r      io.Reader
	br     io.ByteReader
	closer io.Closer
	closed bool
	one    [1]byte
}

// New wraps the reader. If it's already a Stream, it's returned as is.
func New(r io.Reader) *Stream {
	if s, ok := r.(*Stream); ok {
		return s
	}

	s := &Stream{r: r}
	s.br, _ = r.(io.ByteReader)
	s.closer, _ = r.(io.Closer)

	return s
}

// NewBuffered is like New, but wraps readers unable to read single bytes into a buffered
// reader of the given size. Closing the stream still closes the original reader.
func NewBuffered(r io.Reader, size int) *Stream {
	if _, ok := r.(io.ByteReader); ok {
		return New(r)
	}

	s := New(bufio.NewReaderSize(r, size))
	s.closer, _ = r.(io.Closer)

	return s
}

// ReadByte reads exactly one byte. io.EOF is returned only if no more bytes are available.
func (s *Stream) ReadByte() (byte, error) {
	if s.closed {
		return 0, ErrClosed
	}

	if s.br != nil {
		return s.br.ReadByte()
	}

	if _, err := io.ReadFull(s.r, s.one[:]); err != nil {
		return 0, err
	}

	return s.one[0], nil
}

func (s *Stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	return s.r.Read(p)
}

// Close closes the underlying reader, if it's closable. Consequent reads fail either way.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}

	return nil
}

func (s *Stream) Closed() bool {
	return s.closed
}
