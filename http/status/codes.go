package status

import "strconv"

// Code is a numeric status code. It isn't range-enforced: anything a status line carries
// is kept as is, the predicates below only classify it.
type Code int

const (
	Continue           Code = 100 // RFC 9110, 15.2.1
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2
	Processing         Code = 102 // RFC 2518, 10.1
	EarlyHints         Code = 103 // RFC 8297

	OK                   Code = 200 // RFC 9110, 15.3.1
	Created              Code = 201 // RFC 9110, 15.3.2
	Accepted             Code = 202 // RFC 9110, 15.3.3
	NonAuthoritativeInfo Code = 203 // RFC 9110, 15.3.4
	NoContent            Code = 204 // RFC 9110, 15.3.5
	ResetContent         Code = 205 // RFC 9110, 15.3.6
	PartialContent       Code = 206 // RFC 9110, 15.3.7

	MultipleChoices   Code = 300 // RFC 9110, 15.4.1
	MovedPermanently  Code = 301 // RFC 9110, 15.4.2
	Found             Code = 302 // RFC 9110, 15.4.3
	SeeOther          Code = 303 // RFC 9110, 15.4.4
	NotModified       Code = 304 // RFC 9110, 15.4.5
	TemporaryRedirect Code = 307 // RFC 9110, 15.4.8
	PermanentRedirect Code = 308 // RFC 9110, 15.4.9

	BadRequest            Code = 400 // RFC 9110, 15.5.1
	Unauthorized          Code = 401 // RFC 9110, 15.5.2
	Forbidden             Code = 403 // RFC 9110, 15.5.4
	NotFound              Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed      Code = 405 // RFC 9110, 15.5.6
	ProxyAuthRequired     Code = 407 // RFC 9110, 15.5.8
	RequestTimeout        Code = 408 // RFC 9110, 15.5.9
	LengthRequired        Code = 411 // RFC 9110, 15.5.12
	RequestEntityTooLarge Code = 413 // RFC 9110, 15.5.14
	UnsupportedMediaType  Code = 415 // RFC 9110, 15.5.16
	Teapot                Code = 418 // RFC 9110, 15.5.19 (Unused)
	UpgradeRequired       Code = 426 // RFC 9110, 15.5.22

	InternalServerError     Code = 500 // RFC 9110, 15.6.1
	NotImplemented          Code = 501 // RFC 9110, 15.6.2
	BadGateway              Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable      Code = 503 // RFC 9110, 15.6.4
	GatewayTimeout          Code = 504 // RFC 9110, 15.6.5
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

var texts = map[Code]string{
	Continue:                "Continue",
	SwitchingProtocols:      "Switching Protocols",
	Processing:              "Processing",
	EarlyHints:              "Early Hints",
	OK:                      "OK",
	Created:                 "Created",
	Accepted:                "Accepted",
	NonAuthoritativeInfo:    "Non-Authoritative Information",
	NoContent:               "No Content",
	ResetContent:            "Reset Content",
	PartialContent:          "Partial Content",
	MultipleChoices:         "Multiple Choices",
	MovedPermanently:        "Moved Permanently",
	Found:                   "Found",
	SeeOther:                "See Other",
	NotModified:             "Not Modified",
	TemporaryRedirect:       "Temporary Redirect",
	PermanentRedirect:       "Permanent Redirect",
	BadRequest:              "Bad Request",
	Unauthorized:            "Unauthorized",
	Forbidden:               "Forbidden",
	NotFound:                "Not Found",
	MethodNotAllowed:        "Method Not Allowed",
	ProxyAuthRequired:       "Proxy Authentication Required",
	RequestTimeout:          "Request Timeout",
	LengthRequired:          "Length Required",
	RequestEntityTooLarge:   "Request Entity Too Large",
	UnsupportedMediaType:    "Unsupported Media Type",
	Teapot:                  "I'm a teapot",
	UpgradeRequired:         "Upgrade Required",
	InternalServerError:     "Internal Server Error",
	NotImplemented:          "Not Implemented",
	BadGateway:              "Bad Gateway",
	ServiceUnavailable:      "Service Unavailable",
	GatewayTimeout:          "Gateway Timeout",
	HTTPVersionNotSupported: "HTTP Version Not Supported",
}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) string {
	return texts[code]
}

func (c Code) String() string {
	return strconv.Itoa(int(c))
}

// Class returns the first digit of a three-digit code, or 0 if the code is out of the
// 100-999 range.
func (c Code) Class() int {
	if c < 100 || c > 999 {
		return 0
	}

	return int(c) / 100
}

func (c Code) Informational() bool { return c.Class() == 1 }
func (c Code) Successful() bool    { return c.Class() == 2 }

// Bodiless reports whether responses with the code never carry a body, regardless of
// headers: all 1xx (Informational), 204 (No Content) and 304 (Not Modified).
func (c Code) Bodiless() bool {
	return c.Informational() || c == NoContent || c == NotModified
}
