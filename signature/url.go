package signature

import (
	"net/url"
	"strings"
)

// ExtractHost returns the authority component of a URL-like string: host plus
// port when non-default, without scheme, path, query, or fragment.
//
// Inputs without a scheme are treated as already being host[:port][/path...]
// and are cut at the first slash. When no host can be recognized at all, the
// input is returned unchanged; this is a best-effort helper for header
// assembly and logging, not a validator, so it degrades instead of failing.
func ExtractHost(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		return u.Host
	}
	if i := strings.Index(raw, "/"); i > 0 {
		return raw[:i]
	}
	return raw
}

// ExtractPath returns the path plus query string of a URL-like string, with
// any fragment dropped. URLs with no path component yield "/".
//
// Inputs that are already a bare path (leading slash) are returned unchanged.
// Unparseable input falls back to stripping a leading scheme://host prefix
// when one is detectable, else the input is returned unchanged.
func ExtractPath(raw string) string {
	if strings.HasPrefix(raw, "/") {
		return raw
	}
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		p := u.EscapedPath()
		if p == "" {
			p = "/"
		}
		if u.RawQuery != "" {
			p += "?" + u.RawQuery
		}
		return p
	}
	if i := strings.Index(raw, "://"); i >= 0 {
		rest := raw[i+3:]
		if j := strings.Index(rest, "/"); j >= 0 {
			return rest[j:]
		}
		return "/"
	}
	return raw
}
