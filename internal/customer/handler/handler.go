package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nbfc-gateway/internal/customer"
	dErrors "nbfc-gateway/pkg/domain-errors"
	"nbfc-gateway/pkg/platform/httputil"
	"nbfc-gateway/pkg/requestcontext"
)

// Handler exposes the customer directory lookup tool.
type Handler struct {
	directory customer.Directory
	logger    *slog.Logger
}

func New(directory customer.Directory, logger *slog.Logger) *Handler {
	return &Handler{directory: directory, logger: logger}
}

// Register mounts customer endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/call/get_customer_info", h.HandleGetCustomerInfo)
}

// InfoRequest is the body for POST /call/get_customer_info.
type InfoRequest struct {
	CustomerID string `json:"customer_id"`
}

func (r *InfoRequest) Validate() error {
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	if r.CustomerID == "" {
		return dErrors.New(dErrors.CodeValidation, "customer_id required")
	}
	return nil
}

// HandleGetCustomerInfo handles POST /call/get_customer_info.
func (h *Handler) HandleGetCustomerInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[InfoRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rec, err := h.directory.FindByID(ctx, req.CustomerID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "customer info served",
		"request_id", requestID,
		"customer_id", rec.ID,
	)
	httputil.WriteResult(w, rec)
}
