package capriblue

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// handleSitemap lists the landing page once per available locale
// document, the default language first without a query parameter.
func (a *App) handleSitemap(c echo.Context) error {
	base := JoinURL(a.Config.URL)
	urls := []sitemapURL{{Loc: base}}
	for _, lang := range a.availableLanguages() {
		if lang == a.Config.DefaultLanguage {
			continue
		}
		urls = append(urls, sitemapURL{Loc: base + "?lang=" + url.QueryEscape(lang)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

// availableLanguages lists the locale documents present in the configured
// i18n directory, sorted by language code.
func (a *App) availableLanguages() []string {
	entries, err := os.ReadDir(a.Config.I18nDir)
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		langs = append(langs, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(langs)
	return langs
}
