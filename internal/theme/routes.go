package theme

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// VisitorCookie names the cookie carrying the anonymous visitor id.
const VisitorCookie = "webstarter_visitor"

// VisitorID returns the visitor id of the request, or "".
func VisitorID(r *http.Request) string {
	c, err := r.Cookie(VisitorCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

// EnsureVisitor returns the request's visitor id, issuing a new one when
// the request has none.
func EnsureVisitor(w http.ResponseWriter, r *http.Request) string {
	if id := VisitorID(r); id != "" {
		return id
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

type themeResponse struct {
	Theme  Theme   `json:"theme"`
	Saved  bool    `json:"saved"`
	Themes []Theme `json:"themes"`
}

type setRequest struct {
	Theme string `json:"theme"`
}

// RegisterRoutes mounts the theme API and the theme stylesheets.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/theme", func(r chi.Router) {
		r.Get("/", handleGet(store))
		r.Put("/", handleSet(store))
	})
	r.Get("/css/themes/{file}", handleStylesheet)
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, saved, err := store.Preferred(r.Context(), VisitorID(r))
		if err != nil {
			// An unreadable preference falls back to the default theme.
			log.Printf("theme: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(themeResponse{Theme: t, Saved: saved, Themes: All()})
	}
}

func handleSet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		visitor := EnsureVisitor(w, r)
		if err := store.Set(r.Context(), visitor, req.Theme); err != nil {
			if errors.Is(err, ErrUnknownTheme) {
				writeError(w, http.StatusBadRequest, "unknown theme")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(themeResponse{Theme: Resolve(req.Theme), Saved: true, Themes: All()})
	}
}

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSuffix(chi.URLParam(r, "file"), ".css")
	css, ok := StylesheetCSS(key)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(css))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
