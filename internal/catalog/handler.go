package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nbfc-gateway/pkg/platform/httputil"
	"nbfc-gateway/pkg/requestcontext"
)

// Handler serves the informational endpoints.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register mounts catalog endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleRoot)
	r.Get("/tools", h.HandleTools)
	r.Get("/health", h.HandleHealth)
}

// HandleRoot handles GET /.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"message":          "NBFC loan-origination gateway is running",
		"available_routes": Routes,
		"status":           "ok",
	})
}

// HandleTools handles GET /tools.
func (h *Handler) HandleTools(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"tools": Tools})
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   requestcontext.Now(r.Context()).UTC(),
	})
}
