package capriblue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Loader fetches locale documents over HTTP. It is the only
// network-capable stage of the pipeline and holds no cache of its own.
type Loader struct {
	client *http.Client
	base   string // URL prefix locale documents live under, no trailing slash
}

// NewLoader creates a Loader fetching from the given base URL.
func NewLoader(base string, client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{}
	}
	return &Loader{client: client, base: base}
}

// Load fetches and parses the locale document for the given language. It
// issues exactly one GET with caching disabled and returns the parsed
// structure untyped and unvalidated.
//
// A non-success response yields a *ResourceUnavailableError carrying the
// resolved location and status code. An undecodable body yields a
// *MalformedResourceError for the language.
func (l *Loader) Load(ctx context.Context, lang string) (any, error) {
	location := l.base + "/" + url.PathEscape(lang) + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("build locale request for %s: %w", location, err)
	}
	// Locale documents must be fetched fresh on every page build.
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch locale resource %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ResourceUnavailableError{Location: location, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read locale resource %s: %w", location, err)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &MalformedResourceError{Language: lang, err: err}
	}
	return raw, nil
}
