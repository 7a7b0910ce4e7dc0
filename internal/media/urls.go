// Package media turns stored image references into fetchable URLs.
package media

import (
	"net/url"
	"strings"
)

// NormalizeURL maps a stored image reference to an absolute, fetchable URL.
//
// The core stores whatever reference the upload flow produced: usually a
// relative "/storage/..." path, but historic rows may hold absolute URLs,
// including ones minted against a local host on the wrong port. The cases are:
//
//   - empty reference: returned unchanged
//   - absolute URL on an external host: returned unchanged
//   - absolute URL on localhost/127.0.0.1 with a "/storage/" path: rebased
//     onto baseURL, keeping the path
//   - "/storage/..." relative path: prefixed with baseURL
//   - anything else: returned unchanged
//
// baseURL is the public base URL of this deployment, without a trailing slash.
func NormalizeURL(baseURL, ref string) string {
	if ref == "" {
		return ref
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		parsed, err := url.Parse(ref)
		if err != nil {
			return ref
		}

		host := parsed.Hostname()
		if host != "localhost" && host != "127.0.0.1" && host != "" {
			return ref
		}

		// Local absolute URL minted against the wrong host/port: keep the
		// storage path and rebase it.
		if strings.Contains(parsed.Path, "/storage/") {
			return strings.TrimSuffix(baseURL, "/") + parsed.Path
		}

		return ref
	}

	if strings.HasPrefix(ref, "/storage") {
		return strings.TrimSuffix(baseURL, "/") + ref
	}

	return ref
}
