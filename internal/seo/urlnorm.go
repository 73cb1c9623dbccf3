package seo

import (
	"errors"
	"net/url"
	"strings"
)

var (
	errURLRequired       = errors.New("URL is required")
	errInvalidURL        = errors.New("Invalid URL format. Please ensure you entered a valid URL (e.g., example.com).") //nolint:staticcheck // shown to users verbatim
	errUnsupportedScheme = errors.New("Only http and https URLs are supported.")                                          //nolint:staticcheck // shown to users verbatim
)

// NormalizeURL turns user input into an absolute http(s) URL. Bare hosts
// such as "example.com" get an https:// prefix.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errURLRequired
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		if scheme, _, ok := strings.Cut(s, "://"); ok && isScheme(scheme) {
			return "", errUnsupportedScheme
		}
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return "", errInvalidURL
	}
	return u.String(), nil
}

// isScheme reports whether s is a syntactically valid URL scheme
// (RFC 3986 section 3.1).
func isScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
