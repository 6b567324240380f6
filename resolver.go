package capriblue

import (
	"net/url"
	"strings"
)

// langParam is the query parameter used to select a language.
const langParam = "lang"

// Resolver determines the active language code for a page build.
type Resolver struct {
	// Default is returned when the page URL carries no usable lang
	// parameter. Empty means DefaultLanguage.
	Default string
}

// Resolve returns the value of the lang query parameter when it is
// non-blank after trimming, otherwise the configured default. The value
// is returned verbatim: no normalization and no allow-list check.
//
// Resolution never fails. Malformed query pairs are dropped rather than
// aborting, so a usable lang value is honored regardless of other
// undecodable query content.
func (r Resolver) Resolve(pageURL *url.URL) string {
	if pageURL != nil {
		if lang := strings.TrimSpace(pageURL.Query().Get(langParam)); lang != "" {
			return lang
		}
	}
	if r.Default != "" {
		return r.Default
	}
	return DefaultLanguage
}
