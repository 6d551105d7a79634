package dummy

import (
	"io"
)

// Reader returns the pieces it was initialised with, one per read, and tracks whether
// it was closed. It makes a universal mock for the byte sources of the most tests.
type Reader struct {
	closed  bool
	closes  int
	pointer int
	pending []byte
	data    [][]byte
	err     error
}

func NewReader(data ...[]byte) *Reader {
	return &Reader{
		data: data,
	}
}

// FromString splits the string into pieces of n bytes.
func FromString(str string, n int) *Reader {
	var pieces [][]byte
	for i := 0; i < len(str); i += n {
		pieces = append(pieces, []byte(str[i:min(i+n, len(str))]))
	}

	return NewReader(pieces...)
}

// FailWith makes the reader return the error instead of io.EOF once the pieces are over.
func (r *Reader) FailWith(err error) *Reader {
	r.err = err
	return r
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if r.closed {
		return 0, io.ErrClosedPipe
	}

	if len(r.pending) == 0 {
		if r.pointer >= len(r.data) {
			if r.err != nil {
				return 0, r.err
			}

			return 0, io.EOF
		}

		r.pending = r.data[r.pointer]
		r.pointer++
	}

	n = copy(p, r.pending)
	r.pending = r.pending[n:]

	return n, nil
}

// Rest returns everything that wasn't read yet.
func (r *Reader) Rest() string {
	rest := string(r.pending)
	for _, piece := range r.data[r.pointer:] {
		rest += string(piece)
	}

	return rest
}

func (r *Reader) Close() error {
	r.closed = true
	r.closes++
	return nil
}

func (r *Reader) Closed() bool {
	return r.closed
}

// Closes returns how many times Close was called.
func (r *Reader) Closes() int {
	return r.closes
}
