package capriblue

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLocaleFiles(t *testing.T, langs ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, lang := range langs {
		path := filepath.Join(dir, lang+".json")
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}

func TestAvailableLanguages(t *testing.T) {
	dir := writeLocaleFiles(t, "fr", "en", "pt-BR")
	app := New(SiteConfig{I18nDir: dir})

	got := app.availableLanguages()
	want := []string{"en", "fr", "pt-BR"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("availableLanguages = %v, want %v", got, want)
	}
}

func TestAvailableLanguagesMissingDir(t *testing.T) {
	app := New(SiteConfig{I18nDir: "does-not-exist"})
	if got := app.availableLanguages(); got != nil {
		t.Fatalf("availableLanguages = %v, want nil", got)
	}
}

func TestSitemapListsLocales(t *testing.T) {
	dir := writeLocaleFiles(t, "en", "fr")
	app := New(SiteConfig{I18nDir: dir, URL: "https://example.org"})
	app.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<loc>https://example.org</loc>") {
		t.Fatalf("sitemap missing default locale URL:\n%s", body)
	}
	if !strings.Contains(body, "?lang=fr") {
		t.Fatalf("sitemap missing fr URL:\n%s", body)
	}
	if strings.Contains(body, "?lang=en") {
		t.Fatalf("default language should not repeat with a query:\n%s", body)
	}
}
