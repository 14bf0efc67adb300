package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	dErrors "nbfc-gateway/pkg/domain-errors"
	"nbfc-gateway/pkg/platform/httputil"
	"nbfc-gateway/pkg/requestcontext"
)

// ScoreProvider is implemented by the bureau service.
type ScoreProvider interface {
	Score(ctx context.Context, customerID string) (int, error)
}

// Handler exposes the credit-score retrieval tool.
type Handler struct {
	bureau ScoreProvider
	logger *slog.Logger
}

func New(bureau ScoreProvider, logger *slog.Logger) *Handler {
	return &Handler{bureau: bureau, logger: logger}
}

// Register mounts bureau endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/call/get_credit_score", h.HandleGetCreditScore)
}

// ScoreRequest is the body for POST /call/get_credit_score.
type ScoreRequest struct {
	CustomerID string `json:"customer_id"`
}

func (r *ScoreRequest) Validate() error {
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	if r.CustomerID == "" {
		return dErrors.New(dErrors.CodeValidation, "customer_id required")
	}
	return nil
}

// HandleGetCreditScore handles POST /call/get_credit_score.
func (h *Handler) HandleGetCreditScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ScoreRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	score, err := h.bureau.Score(ctx, req.CustomerID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteResult(w, map[string]int{"credit_score": score})
}
