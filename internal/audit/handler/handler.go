package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nbfc-gateway/internal/audit"
	dErrors "nbfc-gateway/pkg/domain-errors"
	"nbfc-gateway/pkg/platform/httputil"
	"nbfc-gateway/pkg/requestcontext"
)

const defaultListLimit = 100

// Handler exposes the audit trail: append via the log_event tool and a
// read-only listing for inspection.
type Handler struct {
	publisher *audit.Publisher
	logger    *slog.Logger
}

func New(publisher *audit.Publisher, logger *slog.Logger) *Handler {
	return &Handler{publisher: publisher, logger: logger}
}

// Register mounts audit endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/call/log_event", h.HandleLogEvent)
	r.Get("/audit/events", h.HandleListEvents)
}

// HandleLogEvent handles POST /call/log_event. The payload is an arbitrary
// JSON object recorded verbatim; the timestamp is implicit.
func (h *Handler) HandleLogEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var detail map[string]any
	if err := json.NewDecoder(r.Body).Decode(&detail); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	event := audit.Event{
		Category: audit.CategoryExternal,
		Action:   audit.ActionExternalEventSubmitted,
		Detail:   detail,
	}
	if err := h.publisher.Emit(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "audit emit failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "audit append failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Envelope{Status: "ok"})
}

// HandleListEvents handles GET /audit/events?limit=N.
func (h *Handler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	events, err := h.publisher.List(ctx, limit)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "audit list failed"))
		return
	}
	httputil.WriteResult(w, map[string]any{"events": events, "count": len(events)})
}
