package capriblue

import (
	"net/http"
	"time"
)

// DefaultLanguage is the language used when neither the page URL nor the
// configuration supplies one.
const DefaultLanguage = "en"

// SiteConfig holds all configuration for a capriblue site. It is an
// explicit value passed into New rather than ambient process state, so
// the pipeline stays testable in isolation.
type SiteConfig struct {
	Name string `env:"SITE_NAME"` // Site name (default "capriblue")
	URL  string `env:"SITE_URL"`  // Canonical URL, base for relative i18n paths (default "http://localhost:3000")

	Addr string `env:"ADDR"` // Listen address (default ":3000")

	DefaultLanguage string `env:"DEFAULT_LANGUAGE"` // Language when ?lang is absent (default "en")
	I18nPath        string `env:"I18N_PATH"`        // Locale fetch base, relative to URL or absolute (default "i18n")
	I18nDir         string `env:"I18N_DIR"`         // Directory served at /i18n/ (default "i18n")
	MountID         string `env:"MOUNT_ID"`         // id of the mount point element (default "app")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "capriblue"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = DefaultLanguage
	}
	if c.I18nPath == "" {
		c.I18nPath = "i18n"
	}
	if c.I18nDir == "" {
		c.I18nDir = "i18n"
	}
	if c.MountID == "" {
		c.MountID = defaultMountID
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithHTTPClient sets the client used to fetch locale documents.
func WithHTTPClient(client *http.Client) Option {
	return func(a *App) {
		a.httpClient = client
	}
}

// WithClock sets the time source used for the {year} placeholder in the
// footer (default time.Now).
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.clock = now
	}
}
