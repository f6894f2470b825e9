// Package netx contains small networking helpers shared by the client:
// base-URL normalization and host classification.
package netx

import (
	"fmt"
	"net/url"
	"strings"
)

// IsLocalHost reports whether host names a loopback or link-local
// development address. The port, if any, must already be stripped.
func IsLocalHost(host string) bool {
	h := strings.ToLower(strings.TrimSpace(host))
	if strings.HasPrefix(h, "[") {
		// bracketed IPv6, possibly with port
		if i := strings.Index(h, "]"); i != -1 {
			h = h[1:i]
		}
	} else if i := strings.LastIndex(h, ":"); i != -1 && strings.Count(h, ":") == 1 {
		h = h[:i]
	}
	switch h {
	case "localhost", "127.0.0.1", "::1", "0.0.0.0":
		return true
	}
	return strings.HasSuffix(h, ".local") || strings.HasSuffix(h, ".localhost")
}

// NormalizeBaseURL validates and canonicalizes the configured backend
// base address.
//
// Rules:
//   - a missing scheme is inferred: http for loopback/local hosts,
//     https for everything else; inferred reports that this happened so
//     the caller can emit a diagnostic
//   - a trailing slash is stripped
//   - an empty address or one without a host is rejected
func NormalizeBaseURL(raw string) (normalized string, inferred bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false, fmt.Errorf("base url is empty")
	}

	if !strings.Contains(s, "://") {
		host := s
		if i := strings.IndexAny(host, "/"); i != -1 {
			host = host[:i]
		}
		if IsLocalHost(host) {
			s = "http://" + s
		} else {
			s = "https://" + s
		}
		inferred = true
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", false, fmt.Errorf("invalid base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("base url %q has no host", raw)
	}

	return strings.TrimRight(u.String(), "/"), inferred, nil
}

// JoinEndpoint appends an endpoint path to a normalized base URL,
// coercing the endpoint to exactly one leading slash.
func JoinEndpoint(base, endpoint string) string {
	e := "/" + strings.TrimLeft(endpoint, "/")
	return base + e
}
