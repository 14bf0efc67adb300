package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nbfc-gateway/internal/underwriting"
	"nbfc-gateway/pkg/platform/httputil"
	"nbfc-gateway/pkg/requestcontext"
)

// Service defines the interface for underwriting operations.
type Service interface {
	Underwrite(ctx context.Context, req underwriting.Request) (underwriting.Outcome, error)
}

// Handler wires the underwriting endpoint to the underwriting service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an underwriting handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts underwriting endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/call/underwrite_loan", h.HandleUnderwrite)
}

// HandleUnderwrite handles POST /call/underwrite_loan requests.
func (h *Handler) HandleUnderwrite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UnderwriteRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcome, err := h.service.Underwrite(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "underwriting failed",
			"request_id", requestID,
			"customer_id", req.CustomerID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteResult(w, outcome)
}
