package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"nbfc-gateway/internal/kyc"
	dErrors "nbfc-gateway/pkg/domain-errors"
	"nbfc-gateway/pkg/platform/httputil"
	"nbfc-gateway/pkg/requestcontext"
)

// Service defines the interface for KYC operations.
type Service interface {
	Verify(ctx context.Context, customerID, phone string) (kyc.Result, error)
}

// Handler exposes the mock KYC verification tool.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts KYC endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/call/verify_kyc", h.HandleVerify)
}

// VerifyRequest is the body for POST /call/verify_kyc.
type VerifyRequest struct {
	CustomerID string `json:"customer_id"`
	Phone      string `json:"phone"`
}

func (r *VerifyRequest) Validate() error {
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.CustomerID == "" || r.Phone == "" {
		return dErrors.New(dErrors.CodeValidation, "customer_id and phone required")
	}
	if !govalidator.IsNumeric(r.Phone) {
		return dErrors.New(dErrors.CodeValidation, "phone must be numeric")
	}
	return nil
}

// HandleVerify handles POST /call/verify_kyc.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Verify(ctx, req.CustomerID, req.Phone)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteResult(w, result)
}
