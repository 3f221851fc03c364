package render

import (
	"net/url"
	"strings"
)

// Href builds the absolute link for a storage key.
// Every path segment is percent-encoded so the link decodes back to key.
func Href(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	href := "/" + strings.Join(segments, "/")
	// A key starting with "/" would otherwise yield a protocol-relative URL.
	if strings.HasPrefix(href, "//") {
		href = "/%2F" + href[2:]
	}
	return href
}

// ParentKey returns the key of the listing one level above displayPrefix.
// The root and top-level prefixes have no parent row.
func ParentKey(displayPrefix string) (string, bool) {
	trimmed := strings.TrimSuffix(displayPrefix, "/")
	i := strings.LastIndex(trimmed, "/")
	if i < 0 {
		return "", false
	}
	return trimmed[:i] + "/", true
}
