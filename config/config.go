package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

type (
	Parser struct {
		// AllowNewLineWithoutReturn makes the metadata scanner accept a bare LF as a line
		// terminator. Otherwise, only CRLF is accepted.
		AllowNewLineWithoutReturn bool `yaml:"allow_new_line_without_return"`
		// InsertHostHeaderIfMissing synthesizes the Host header from the request target,
		// when the header is missing. Otherwise, requests without Host header are rejected.
		InsertHostHeaderIfMissing bool `yaml:"insert_host_header_if_missing"`
		// RejectAmbiguousFraming rejects messages carrying both Content-Length and
		// Transfer-Encoding, or multiple distinct Content-Length values. By default,
		// Content-Length takes precedence and only its first value is used.
		RejectAmbiguousFraming bool `yaml:"reject_ambiguous_framing" test:"nullable"`
		// ValidateHeaderNames rejects header names which aren't valid tokens (e.g. contain
		// whitespace before the colon). Disabling it is unsafe: a name like "Content-Length "
		// is then stored as is and ignored by body framing, while other implementations may
		// still honor it.
		ValidateHeaderNames bool `yaml:"validate_header_names"`
	}

	Headers struct {
		// Prealloc is the initial capacity of the headers builder.
		Prealloc int `yaml:"prealloc"`
	}

	Body struct {
		// MaxSize describes the maximal size of a body, that can be read eagerly. Bodies
		// with a bigger declared length are rejected without reading them.
		MaxSize int64 `yaml:"max_size"`
		// ReadBufferSize is the size of the buffer chunked bodies are read with.
		ReadBufferSize int `yaml:"read_buffer_size"`
	}
)

// Config holds settings consumed by the parser. Both boolean switches of the framing
// core live in Parser.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Parser  Parser  `yaml:"parser"`
	Headers Headers `yaml:"headers"`
	Body    Body    `yaml:"body"`
}

// Default returns default config. Parsing is tolerant by default: bare LF line terminators
// are accepted and the Host header is synthesized when possible. Header names are
// validated nevertheless.
func Default() *Config {
	return &Config{
		Parser: Parser{
			AllowNewLineWithoutReturn: true,
			InsertHostHeaderIfMissing: true,
			ValidateHeaderNames:       true,
		},
		Headers: Headers{
			Prealloc: 10,
		},
		Body: Body{
			MaxSize:        512 * 1024 * 1024, // 512 megabytes
			ReadBufferSize: 4 * 1024,
		},
	}
}

var (
	ErrNegativePrealloc  = errors.New("headers.prealloc must not be negative")
	ErrNegativeMaxSize   = errors.New("body.max_size must not be negative")
	ErrBadReadBufferSize = errors.New("body.read_buffer_size must be positive")
)

// Validate reports the first value which can't be worked with.
func (c *Config) Validate() error {
	switch {
	case c.Headers.Prealloc < 0:
		return ErrNegativePrealloc
	case c.Body.MaxSize < 0:
		return ErrNegativeMaxSize
	case c.Body.ReadBufferSize <= 0:
		return ErrBadReadBufferSize
	}

	return nil
}

// FromYAML overlays the YAML document onto the defaults. Fields missing in the document
// keep their default values. The resulting config is validated.
func FromYAML(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err = yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads the config from the YAML file.
func LoadFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	return FromYAML(file)
}
