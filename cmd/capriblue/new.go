package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/colorvector/capriblue/scaffold"
)

// localeData holds the template variables passed to the locale scaffold.
type localeData struct {
	SiteName string
}

// runNew writes a starter locale document for the given language code
// into the configured i18n directory.
func runNew(lang string) error {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return fmt.Errorf("language code cannot be blank")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outPath := filepath.Join(cfg.I18nDir, lang+".json")
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("locale document %q already exists", outPath)
	}

	content, err := scaffold.Templates.ReadFile("templates/locale.json.tmpl")
	if err != nil {
		return fmt.Errorf("read locale template: %w", err)
	}
	tmpl, err := template.New("locale").Parse(string(content))
	if err != nil {
		return fmt.Errorf("parse locale template: %w", err)
	}

	if err := os.MkdirAll(cfg.I18nDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	name := cfg.Name
	if name == "" {
		name = "capriblue"
	}
	if err := tmpl.Execute(f, localeData{SiteName: name}); err != nil {
		return fmt.Errorf("execute locale template: %w", err)
	}

	fmt.Printf("  created %s\n", outPath)
	fmt.Printf("\nEdit the document, then open /?lang=%s to preview it.\n", lang)
	return nil
}
