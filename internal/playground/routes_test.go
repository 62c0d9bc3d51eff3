package playground

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupRouter() chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r)
	return r
}

func TestComposeEndpoint(t *testing.T) {
	r := setupRouter()
	body := `{"html":"<p>Hi</p>","css":"p{color:red}"}`
	req := httptest.NewRequest(http.MethodPost, "/api/playground/compose", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp composeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Document != ComposeDocument("<p>Hi</p>", "p{color:red}") {
		t.Errorf("document mismatch:\n%s", resp.Document)
	}
}

func TestComposeEndpointBadBody(t *testing.T) {
	r := setupRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/playground/compose", strings.NewReader("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestComposeEndpointTooLarge(t *testing.T) {
	r := setupRouter()
	body := `{"html":"` + strings.Repeat("x", MaxSourceBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/playground/compose", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestNoFormPreviewRoute(t *testing.T) {
	r := setupRouter()
	form := url.Values{"html": {"<p>Hi</p>"}}
	req := httptest.NewRequest(http.MethodPost, "/playground/preview", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestServeDocumentIsSandboxed(t *testing.T) {
	w := httptest.NewRecorder()
	ServeDocument(w, ComposeDocument("<p>Hi</p>", "p{color:red}"))

	if got := w.Header().Get("Content-Security-Policy"); got != SandboxHeader {
		t.Errorf("CSP = %q, want %q", got, SandboxHeader)
	}
	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.Contains(w.Body.String(), "p{color:red}") {
		t.Errorf("preview missing style:\n%s", w.Body.String())
	}
}
