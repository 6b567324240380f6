// Package capriblue is a localized landing page engine built with Go,
// Echo, and templ. It renders a project showcase page entirely from
// per-language JSON documents fetched at build time.
//
// Every page build runs the same four-stage pipeline exactly once:
// a Resolver picks the active language from the page URL, a Loader
// fetches the locale document for that language, Validate admits or
// rejects the document, and a Renderer builds the page tree off-screen
// before mounting it in a single swap. Any stage failure aborts the
// build and the pristine shell is served instead.
package capriblue

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central capriblue application. It wires together the
// configuration, resolver, loader, renderer, middleware, and routes.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo

	resolver Resolver
	loader   *Loader
	renderer *Renderer

	httpClient   *http.Client
	clock        func() time.Time
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new capriblue App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.httpClient == nil {
		// No client timeout: a hung locale fetch hangs the build. Callers
		// cancel through the request context instead.
		a.httpClient = &http.Client{}
	}

	a.resolver = Resolver{Default: cfg.DefaultLanguage}
	a.loader = NewLoader(localeBase(cfg), a.httpClient)
	a.renderer = NewRenderer(cfg.MountID, a.clock)

	return a
}

// Start sets up middleware and routes and starts the server.
func (a *App) Start() error {
	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Locale documents are served from the configured directory so the
	// default deployment is self-contained.
	e.Static("/i18n", a.Config.I18nDir)

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/", a.handleLanding)
}

// localeBase resolves the configured i18n path against the site URL when
// it is not already an absolute URL.
func localeBase(cfg SiteConfig) string {
	base, err := url.Parse(cfg.I18nPath)
	if err == nil && base.IsAbs() {
		return strings.TrimSuffix(cfg.I18nPath, "/")
	}
	return strings.TrimSuffix(JoinURL(cfg.URL, cfg.I18nPath), "/")
}
