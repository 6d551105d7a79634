package http1

import (
	"io"

	"github.com/indigo-web/rawhttp/http"
	"github.com/indigo-web/rawhttp/internal/stream"
	"github.com/indigo-web/utils/uf"
)

// ScanMetadata reads the start line and the header lines off the stream, up to and
// including the blank line terminating them, which isn't returned. Lines are terminated
// by CRLF, or by a bare LF if allowed. If the stream ends in the middle of a line, the
// partial line is returned as the last one. A leading blank line results in no lines.
//
// The stream is closed before any error is returned.
func ScanMetadata(src *stream.Stream, kind http.Kind, allowBareLF bool) ([]string, error) {
	var (
		lines      []string
		line       []byte
		wasNewLine = true
		lineNumber = 1
	)

	for {
		c, err := src.ReadByte()
		switch err {
		case nil:
		case io.EOF:
			if len(line) > 0 {
				lines = append(lines, uf.B2S(line))
			}

			return lines, nil
		default:
			_ = src.Close()
			return nil, err
		}

		switch c {
		case '\r':
			next, err := src.ReadByte()
			switch {
			case err == io.EOF:
				if len(line) > 0 {
					lines = append(lines, uf.B2S(line))
				}

				return lines, nil
			case err != nil:
				_ = src.Close()
				return nil, err
			case next != '\n':
				_ = src.Close()
				return nil, http.NewError(kind, "illegal character after return", lineNumber)
			}
		case '\n':
			if !allowBareLF {
				_ = src.Close()
				return nil, http.NewError(kind, "illegal new-line character without preceding return", lineNumber)
			}
		default:
			line = append(line, c)
			wasNewLine = false
			continue
		}

		if wasNewLine {
			return lines, nil
		}

		// every line owns its buffer, so no copy is needed
		lines = append(lines, uf.B2S(line))
		line = nil
		wasNewLine = true
		lineNumber++
	}
}
