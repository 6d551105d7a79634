package http

import (
	"bytes"
	"io"
	"math"

	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// BodyType is the way a message body is delimited.
type BodyType uint8

const (
	// ContentLength means the length is known up front.
	ContentLength BodyType = iota + 1
	// Chunked means the length is discovered incrementally via chunk framing.
	Chunked
	// CloseTerminated means the body ends only when the underlying stream ends.
	CloseTerminated
)

func (b BodyType) String() string {
	switch b {
	case ContentLength:
		return "content-length"
	case Chunked:
		return "chunked"
	case CloseTerminated:
		return "close-terminated"
	default:
		return "unknown"
	}
}

// Framing is the result of body framing resolution for a message that carries a body.
type Framing struct {
	Type BodyType
	// Length is the declared length. Meaningful only when Type is ContentLength.
	Length int64
}

// DeclaredLength returns the declared length, if there's one.
func (f Framing) DeclaredLength() (int64, bool) {
	if f.Type != ContentLength {
		return 0, false
	}

	return f.Length, true
}

// maxPrealloc limits the buffer allocated up front for a body of a declared length.
const maxPrealloc = 64 * 1024

type bodyState uint8

const (
	bodyPending bodyState = iota
	bodyStreamed
	bodyEager
)

// Body is a lazy handle to the message body. It exclusively owns the rest of the stream,
// starting right after the headers. Bytes can be extracted only once: either via one of
// the streaming views (Stream, Reader) or by materializing it with Eager.
type Body struct {
	framing Framing
	stream  io.ReadCloser
	framed  io.Reader
	maxSize int64
	state   bodyState
	eager   *EagerBody
}

// NewBody binds the body to the stream. The framed reader must read from the same stream,
// yielding the body bytes only, according to the framing.
func NewBody(framing Framing, stream io.ReadCloser, framed io.Reader, maxSize int64) *Body {
	return &Body{
		framing: framing,
		stream:  stream,
		framed:  framed,
		maxSize: maxSize,
	}
}

func (b *Body) Type() BodyType {
	return b.framing.Type
}

func (b *Body) Framing() Framing {
	return b.framing
}

// Length returns the declared length of the body, if the body is delimited by one.
func (b *Body) Length() (int64, bool) {
	return b.framing.DeclaredLength()
}

// Stream exposes the remaining stream as is. No bytes are read until the caller reads them,
// and nothing stops the caller from reading past the end of the body. Closing the returned
// value closes the underlying stream.
func (b *Body) Stream() (io.ReadCloser, error) {
	if err := b.take(); err != nil {
		return nil, err
	}

	return b.stream, nil
}

// Reader returns a streaming view which yields the body bytes only: exactly the declared
// length, or the decoded chunks, or everything till the end of the stream. Closing it
// closes the underlying stream.
func (b *Body) Reader() (io.ReadCloser, error) {
	if err := b.take(); err != nil {
		return nil, err
	}

	return framedReadCloser{Reader: b.framed, Closer: b.stream}, nil
}

// Eager reads the whole body into memory. If reading fails, the stream is closed before the
// error is returned, as the connection isn't safe to reuse anymore. Once the body is
// materialized, consequent calls return the same result.
func (b *Body) Eager() (*EagerBody, error) {
	switch b.state {
	case bodyEager:
		return b.eager, nil
	case bodyStreamed:
		return nil, ErrBodyConsumed
	}

	b.state = bodyStreamed

	data, err := b.drain()
	if err != nil {
		_ = b.stream.Close()
		return nil, err
	}

	b.eager = &EagerBody{
		typ:  b.framing.Type,
		data: data,
	}
	b.state = bodyEager

	return b.eager, nil
}

// Close closes the underlying stream.
func (b *Body) Close() error {
	return b.stream.Close()
}

func (b *Body) String() string {
	if b.state == bodyEager {
		return b.eager.String()
	}

	return "<lazy body reader>"
}

func (b *Body) take() error {
	if b.state != bodyPending {
		return ErrBodyConsumed
	}

	b.state = bodyStreamed
	return nil
}

func (b *Body) drain() ([]byte, error) {
	var buff []byte

	if length, ok := b.framing.DeclaredLength(); ok {
		if length > b.maxSize {
			return nil, ErrBodyTooLarge
		}

		// the declared length is untrusted, so the rest is grown on demand
		buff = make([]byte, 0, min(length, maxPrealloc))
	}

	limit := b.maxSize
	if limit < math.MaxInt64 {
		// one more byte to tell an exactly fitting body from an overflowing one
		limit++
	}

	buff, err := readAll(io.LimitReader(b.framed, limit), buff)
	if err != nil {
		return nil, err
	}

	if int64(len(buff)) > b.maxSize {
		return nil, ErrBodyTooLarge
	}

	return buff, nil
}

func readAll(r io.Reader, buff []byte) ([]byte, error) {
	for {
		if len(buff) == cap(buff) {
			buff = append(buff, 0)[:len(buff)]
		}

		n, err := r.Read(buff[len(buff):cap(buff)])
		buff = buff[:len(buff)+n]
		switch err {
		case nil:
		case io.EOF:
			return buff, nil
		default:
			return nil, err
		}
	}
}

type framedReadCloser struct {
	io.Reader
	io.Closer
}

// EagerBody is a fully materialized body. It's re-readable and holds no resources.
type EagerBody struct {
	typ  BodyType
	data []byte
}

// NewEagerBody wraps already available bytes.
func NewEagerBody(typ BodyType, data []byte) *EagerBody {
	return &EagerBody{
		typ:  typ,
		data: data,
	}
}

// Type returns the type the body was originally delimited with.
func (e *EagerBody) Type() BodyType {
	return e.typ
}

func (e *EagerBody) Len() int {
	return len(e.data)
}

// Bytes returns the body. The returned slice must not be modified.
func (e *EagerBody) Bytes() []byte {
	return e.data
}

func (e *EagerBody) String() string {
	return uf.B2S(e.data)
}

// Reader returns a new reader over the body every time it's called.
func (e *EagerBody) Reader() io.Reader {
	return bytes.NewReader(e.data)
}

// JSON unmarshalls the body into the model.
func (e *EagerBody) JSON(model any) error {
	iterator := json.ConfigDefault.BorrowIterator(e.data)
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}

func (e *EagerBody) Close() error {
	return nil
}
