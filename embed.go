package capriblue

import (
	"bytes"
	"embed"
	"fmt"

	"golang.org/x/net/html"
)

// shellFS contains the static page shell: the pre-render state served
// before a page build succeeds, and in its place when one fails.
//
//go:embed shell/index.html
var shellFS embed.FS

const shellPath = "shell/index.html"

// shellBytes returns the pristine shell markup.
func shellBytes() []byte {
	data, err := shellFS.ReadFile(shellPath)
	if err != nil {
		// The shell is embedded at build time; a missing file is a
		// packaging bug.
		panic(fmt.Sprintf("embedded shell missing: %v", err))
	}
	return data
}

// parseShell returns a fresh shell tree. Rendering mutates the tree, so
// every page build parses its own copy.
func parseShell() (*html.Node, error) {
	page, err := html.Parse(bytes.NewReader(shellBytes()))
	if err != nil {
		return nil, fmt.Errorf("parse shell: %w", err)
	}
	return page, nil
}
