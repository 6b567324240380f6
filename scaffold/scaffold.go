// Package scaffold provides the embedded starter locale document used by
// the capriblue CLI when creating a new language.
package scaffold

import "embed"

// Templates contains the scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed templates
var Templates embed.FS
