package capriblue

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"golang.org/x/net/html"
)

// Bootstrap runs the full pipeline once for the given page URL: resolve
// the language, load its locale document, validate it, and render the
// page. It returns the serialized page on success.
//
// Every stage error propagates unchanged to the caller. There is no
// retry, no local recovery, and no partial rendering: on failure the
// shell is untouched, with its mount point still marked busy.
func (a *App) Bootstrap(ctx context.Context, pageURL *url.URL) ([]byte, error) {
	lang := a.resolver.Resolve(pageURL)

	raw, err := a.loader.Load(ctx, lang)
	if err != nil {
		return nil, err
	}

	if err := Validate(raw); err != nil {
		return nil, err
	}
	doc := documentFromRaw(raw)

	page, err := parseShell()
	if err != nil {
		return nil, err
	}
	if err := a.renderer.Render(page, doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, page); err != nil {
		return nil, fmt.Errorf("serialize page: %w", err)
	}
	return buf.Bytes(), nil
}
