package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"nbfc-gateway/internal/document"
	dErrors "nbfc-gateway/pkg/domain-errors"
	"nbfc-gateway/pkg/platform/httputil"
	"nbfc-gateway/pkg/requestcontext"
)

// maxUploadBytes bounds salary slip uploads.
const maxUploadBytes = 10 << 20

// Service defines the interface for document operations.
type Service interface {
	StoreSalarySlip(ctx context.Context, customerID, uploadName string, data []byte) (string, error)
	IssueSanctionLetter(ctx context.Context, customerID string, terms document.LetterTerms) (string, error)
}

// Handler exposes upload, letter generation, and resource retrieval.
type Handler struct {
	service Service
	store   document.Store
	logger  *slog.Logger
}

func New(service Service, store document.Store, logger *slog.Logger) *Handler {
	return &Handler{service: service, store: store, logger: logger}
}

// Register mounts document endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/call/upload_salary_slip", h.HandleUpload)
	r.Post("/call/generate_sanction_letter", h.HandleGenerateLetter)
	r.Get("/resource/{filename}", h.HandleFetchResource)
}

// HandleUpload handles POST /call/upload_salary_slip (multipart form with a
// "file" part; customer_id as form field or query parameter).
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "multipart form required"))
		return
	}

	customerID := strings.TrimSpace(r.FormValue("customer_id"))
	if customerID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "customer_id required"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "file part required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "read upload failed"))
		return
	}

	ref, err := h.service.StoreSalarySlip(ctx, customerID, header.Filename, data)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "salary slip stored",
		"request_id", requestID,
		"customer_id", customerID,
		"resource", ref,
		"bytes", len(data),
	)
	httputil.WriteResult(w, map[string]string{"resource": ref})
}

// LetterRequest is the body for POST /call/generate_sanction_letter.
type LetterRequest struct {
	CustomerID   string   `json:"customer_id"`
	Amount       int64    `json:"amount"`
	TenureMonths *int     `json:"tenure_months"`
	InterestRate *float64 `json:"interest_rate"`
}

func (r *LetterRequest) Validate() error {
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	if r.CustomerID == "" {
		return dErrors.New(dErrors.CodeValidation, "customer_id required")
	}
	if r.Amount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must be a positive integer")
	}
	if r.TenureMonths != nil && *r.TenureMonths < 1 {
		return dErrors.New(dErrors.CodeValidation, "tenure_months must be at least 1")
	}
	if r.InterestRate != nil && *r.InterestRate < 0 {
		return dErrors.New(dErrors.CodeValidation, "interest_rate must be non-negative")
	}
	return nil
}

// Terms converts the request, applying the demo defaults.
func (r *LetterRequest) Terms() document.LetterTerms {
	terms := document.LetterTerms{
		Amount:       r.Amount,
		TenureMonths: 36,
		AnnualRate:   12.0,
	}
	if r.TenureMonths != nil {
		terms.TenureMonths = *r.TenureMonths
	}
	if r.InterestRate != nil {
		terms.AnnualRate = *r.InterestRate
	}
	return terms
}

// HandleGenerateLetter handles POST /call/generate_sanction_letter.
func (h *Handler) HandleGenerateLetter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LetterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	ref, err := h.service.IssueSanctionLetter(ctx, req.CustomerID, req.Terms())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "sanction letter issued",
		"request_id", requestID,
		"customer_id", req.CustomerID,
		"resource", ref,
	)
	httputil.WriteResult(w, map[string]string{"resource": ref})
}

// HandleFetchResource handles GET /resource/{filename}.
func (h *Handler) HandleFetchResource(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	rc, err := h.store.Open(r.Context(), filename)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentTypeFor(filename))
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
