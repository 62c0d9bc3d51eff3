package site

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/webstarter/internal/playground"
	"github.com/ziadkadry99/webstarter/internal/theme"
)

// RegisterRoutes mounts the site pages, their assets and the initial
// playground previews. Pages are dressed in the visitor's saved theme.
func RegisterRoutes(r chi.Router, h *Holder, prefs *theme.Store) {
	r.Get("/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", serveAsset("text/javascript; charset=utf-8", jsContent))
	r.Get("/playground/*", handlePlayground(h))
	r.Get("/*", handlePage(h, prefs))
}

func serveAsset(contentType, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(content))
	}
}

// handlePlayground serves /playground/{page}/{id}, where page may itself
// contain slashes.
func handlePlayground(h *Holder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := chi.URLParam(r, "*")
		i := strings.LastIndex(rest, "/")
		if i <= 0 {
			http.NotFound(w, r)
			return
		}
		doc, ok := h.Current().PlaygroundDocument(rest[:i], rest[i+1:])
		if !ok {
			http.NotFound(w, r)
			return
		}
		playground.ServeDocument(w, doc)
	}
}

func handlePage(h *Holder, prefs *theme.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := h.Current()

		p := chi.URLParam(r, "*")
		if p == "" || strings.HasSuffix(p, "/") {
			p += "index.html"
		}
		page, ok := s.Page(p)
		if !ok {
			http.NotFound(w, r)
			return
		}

		t := theme.Resolve(s.opts.DefaultTheme)
		if prefs != nil {
			saved, found, err := prefs.Preferred(r.Context(), theme.VisitorID(r))
			if err != nil {
				log.Printf("site: theme preference: %v", err)
			}
			if found {
				t = saved
			}
		}

		var buf bytes.Buffer
		if err := s.RenderPage(&buf, page, t, true); err != nil {
			log.Printf("site: rendering %s: %v", page.Path, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}
