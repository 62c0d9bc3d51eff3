package search

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// apiGroup is one type group in the JSON search response.
type apiGroup struct {
	Type      DocumentType `json:"type"`
	Documents []Document   `json:"documents"`
}

// apiResponse is the JSON body of GET /api/search.
type apiResponse struct {
	Active bool       `json:"active"`
	Query  string     `json:"query,omitempty"`
	Count  int        `json:"count"`
	Groups []apiGroup `json:"groups,omitempty"`
	HTML   string     `json:"html,omitempty"`
}

// RegisterRoutes mounts the search API.
func RegisterRoutes(r chi.Router, index []Document, cache *Cache, minLength int) {
	if minLength <= 0 {
		minLength = MinQueryLength
	}
	r.Get("/api/search", handleSearch(index, cache, minLength))
}

func handleSearch(index []Document, cache *Cache, minLength int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		w.Header().Set("Content-Type", "application/json")
		if !ActiveWith(q, minLength) {
			json.NewEncoder(w).Encode(apiResponse{Active: false})
			return
		}

		rendered, _, err := cache.Lookup(q, index)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := apiResponse{
			Active: true,
			Query:  rendered.Results.Query,
			Count:  len(rendered.Results.Documents),
			HTML:   string(rendered.HTML),
		}
		for _, g := range GroupByType(rendered.Results.Documents) {
			resp.Groups = append(resp.Groups, apiGroup{Type: g.Type, Documents: g.Documents})
		}
		json.NewEncoder(w).Encode(resp)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
