// Package uri turns request-targets into absolute URLs.
//
// A request-target may come in origin-form (/path?query), authority-form (host:port) or
// absolute-form (scheme://host/path). To parse all of them uniformly, a target lacking a
// scheme is repaired first by prefixing the placeholder scheme: "/path" becomes
// "http:///path" (no host), "host:8080" becomes "http://host:8080". The asterisk-form
// target "*" is kept as the path of a host-less URL.
package uri

import (
	"errors"
	"net"
	"net/url"
	"strings"
)

const (
	PlaceholderScheme = "http"
	Asterisk          = "*"
)

// HasScheme reports whether the target begins with a `scheme "://"` prefix.
func HasScheme(target string) bool {
	sep := strings.Index(target, "://")
	if sep <= 0 {
		return false
	}

	for i := 0; i < sep; i++ {
		c := target[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}

	return true
}

// Repair prefixes the target with the placeholder scheme, unless it already has one.
func Repair(target string) string {
	if HasScheme(target) {
		return target
	}

	return PlaceholderScheme + "://" + target
}

// Parse repairs the target and parses it.
func Parse(target string) (*url.URL, error) {
	if target == Asterisk {
		return &url.URL{Scheme: PlaceholderScheme, Path: Asterisk}, nil
	}

	return url.Parse(Repair(target))
}

// IsAsterisk reports whether the URL was parsed out of the asterisk-form target.
func IsAsterisk(u *url.URL) bool {
	return u != nil && len(u.Opaque) == 0 && u.Path == Asterisk
}

// WithHost returns a copy of the URL with its host replaced. If the new host carries no
// port, the port of the original URL is kept.
func WithHost(u *url.URL, host string) (*url.URL, error) {
	replaced := *u
	replaced.User = nil
	if u.User != nil {
		userinfo := *u.User
		replaced.User = &userinfo
	}

	replaced.Host = host
	if port := u.Port(); port != "" && replaced.Port() == "" {
		replaced.Host = net.JoinHostPort(strings.Trim(host, "[]"), port)
	}

	parsed, err := url.Parse(replaced.String())
	if err != nil {
		return nil, err
	}

	if parsed.Hostname() == "" {
		return nil, &url.Error{Op: "parse", URL: replaced.String(), Err: errEmptyHost}
	}

	if IsAsterisk(u) {
		// the serialized form gains a leading slash once the host is set
		parsed.Path, parsed.RawPath = Asterisk, ""
	}

	return parsed, nil
}

var errEmptyHost = errors.New("empty host")
