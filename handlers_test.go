package capriblue

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// serveLanding routes one request through the full app stack.
func serveLanding(app *App, target string) *httptest.ResponseRecorder {
	app.setupMiddleware()
	app.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleLandingServesRenderedPage(t *testing.T) {
	srv := newLocaleServer(t, validRaw())
	defer srv.Close()

	rec := serveLanding(newTestApp(srv.URL+"/i18n"), "/?lang=en")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("Cache-Control = %q, want no-store", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Orbit") {
		t.Fatalf("rendered page missing project card:\n%s", body)
	}
	if !strings.Contains(body, `aria-busy="false"`) {
		t.Fatalf("mount point still busy:\n%s", body)
	}
}

func TestHandleLandingFailsClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	rec := serveLanding(newTestApp(srv.URL+"/i18n"), "/?lang=fr")

	// The user gets the pristine shell: no rendered content, no error
	// text, busy state never cleared.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !bytes.Equal(rec.Body.Bytes(), shellBytes()) {
		t.Fatalf("failure response differs from the pristine shell:\n%s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `aria-busy="true"`) {
		t.Fatalf("shell busy state missing:\n%s", rec.Body.String())
	}
}

func TestHandleLandingFailsClosedOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	rec := serveLanding(newTestApp(srv.URL+"/i18n"), "/?lang=fr")

	if !bytes.Equal(rec.Body.Bytes(), shellBytes()) {
		t.Fatalf("failure response differs from the pristine shell:\n%s", rec.Body.String())
	}
}
