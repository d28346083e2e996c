// Package thumbnail resolves content thumbnail URLs and renders thumbnail images.
package thumbnail

import (
	"net/url"
	"strings"
)

// Resolver builds thumbnail image URLs for published content. Content lives at
// <server>/content/<id>/ and its image is served from
// <server>/__api__/applications/<guid>/image.
type Resolver struct {
	// Server overrides the server base derived from the content URL.
	Server string
}

// ResolveURL returns the image URL for the content at contentURL with the
// given guid, or "" when neither a server nor a guid can be determined.
func (r Resolver) ResolveURL(contentURL, guid string) string {
	guid = strings.TrimSpace(guid)
	if guid == "" {
		return ""
	}
	base := strings.TrimRight(strings.TrimSpace(r.Server), "/")
	if base == "" {
		base = serverBase(contentURL)
	}
	if base == "" {
		return ""
	}
	return base + "/__api__/applications/" + url.PathEscape(guid) + "/image"
}

func serverBase(contentURL string) string {
	u, err := url.Parse(strings.TrimSpace(contentURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	prefix := u.Path
	if i := strings.Index(prefix, "/content/"); i >= 0 {
		prefix = prefix[:i]
	} else {
		prefix = ""
	}
	return u.Scheme + "://" + u.Host + strings.TrimRight(prefix, "/")
}
