package http

import (
	"errors"
	"fmt"
)

// Kind selects which of the two parse error flavours a shared routine reports.
type Kind uint8

const (
	KindRequest Kind = iota + 1
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindResponse:
		return "response"
	default:
		return "message"
	}
}

var (
	// ErrMalformedRequest and ErrMalformedResponse match every *ParseError of the
	// corresponding kind via errors.Is.
	ErrMalformedRequest  = errors.New("invalid HTTP request")
	ErrMalformedResponse = errors.New("invalid HTTP response")
	// ErrUnsupportedFraming matches every *UnsupportedFramingError.
	ErrUnsupportedFraming = errors.New("unsupported message framing")

	ErrBodyConsumed = errors.New("body has been already read")
	ErrBodyTooLarge = errors.New("body is too large")
)

// ParseError reports a malformed message. Line is 1-based and counts the start line as 1;
// 0 means the defect isn't attributable to any line (e.g. no content at all).
type ParseError struct {
	Kind   Kind
	Reason string
	Line   int
}

// NewError returns a ParseError of the given kind.
func NewError(kind Kind, reason string, line int) *ParseError {
	return &ParseError{
		Kind:   kind,
		Reason: reason,
		Line:   line,
	}
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("invalid HTTP %s: %s (line %d)", p.Kind, p.Reason, p.Line)
}

func (p *ParseError) Is(target error) bool {
	switch target {
	case ErrMalformedRequest:
		return p.Kind == KindRequest
	case ErrMalformedResponse:
		return p.Kind == KindResponse
	default:
		return false
	}
}

// UnsupportedFramingError is returned when the governing Transfer-Encoding isn't chunked,
// so the message body cannot be delimited safely.
type UnsupportedFramingError struct {
	Encoding string
}

func (u *UnsupportedFramingError) Error() string {
	return fmt.Sprintf("Transfer-Encoding is not supported: %q", u.Encoding)
}

func (u *UnsupportedFramingError) Is(target error) bool {
	return target == ErrUnsupportedFraming
}
