package playground

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Sandbox settings for preview frames: same-origin only, no scripts or other
// privileges.
const (
	SandboxAttr   = "allow-same-origin"
	SandboxHeader = "sandbox allow-same-origin"
)

// MaxSourceBytes bounds the markup and style a client may send in one request.
const MaxSourceBytes = 256 << 10

type composeRequest struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}

type composeResponse struct {
	Document string `json:"document"`
}

// RegisterRoutes mounts the playground API.
func RegisterRoutes(r chi.Router) {
	r.Post("/api/playground/compose", handleCompose)
}

func handleCompose(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxSourceBytes)
	var req composeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(composeResponse{Document: ComposeDocument(req.HTML, req.CSS)})
}

// ServeDocument writes a preview document inside the sandbox policy.
func ServeDocument(w http.ResponseWriter, document string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", SandboxHeader)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Write([]byte(document))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
