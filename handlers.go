package capriblue

import (
	"github.com/labstack/echo/v4"
)

func (a *App) handleLanding(c echo.Context) error {
	// Locale data is fetched fresh per build, so the rendered page must
	// not be cached either.
	c.Response().Header().Set("Cache-Control", "no-store")

	page, err := a.Bootstrap(c.Request().Context(), c.Request().URL)
	if err != nil {
		// Fail closed: the error goes to diagnostics only, and the user
		// gets the pristine shell with its busy state intact.
		c.Logger().Errorf("page build failed: %v", err)
		return Render(c, RawHTML(shellBytes()))
	}
	return Render(c, RawHTML(page))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}
