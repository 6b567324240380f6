package capriblue

import (
	"net/url"
	"path"
)

// JoinURL joins a base URL with path segments.
func JoinURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(segments) > 0 {
		u.Path = path.Join(u.Path, path.Join(segments...))
	}
	return u.String()
}
