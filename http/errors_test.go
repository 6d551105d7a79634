package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	err := NewError(KindRequest, "invalid header", 3)
	require.EqualError(t, err, "invalid HTTP request: invalid header (line 3)")
	require.ErrorIs(t, err, ErrMalformedRequest)
	require.NotErrorIs(t, err, ErrMalformedResponse)

	wrapped := fmt.Errorf("parse: %w", NewError(KindResponse, "invalid status", 1))
	require.ErrorIs(t, wrapped, ErrMalformedResponse)

	var perr *ParseError
	require.True(t, errors.As(wrapped, &perr))
	require.Equal(t, 1, perr.Line)
}

func TestUnsupportedFramingError(t *testing.T) {
	err := error(&UnsupportedFramingError{Encoding: "gzip"})
	require.ErrorIs(t, err, ErrUnsupportedFraming)
	require.Contains(t, err.Error(), "gzip")
}
