package document

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"nbfc-gateway/internal/audit"
	"nbfc-gateway/internal/customer"
	"nbfc-gateway/pkg/requestcontext"
)

// Service orchestrates document operations: uploads land in the store under
// generated names, sanction letters are rendered then stored the same way.
type Service struct {
	directory customer.Directory
	store     Store
	auditor   audit.Emitter
	logger    *slog.Logger
}

func NewService(directory customer.Directory, store Store, auditor audit.Emitter, logger *slog.Logger) *Service {
	return &Service{directory: directory, store: store, auditor: auditor, logger: logger}
}

// StoreSalarySlip persists an uploaded slip for a known customer and returns
// its opaque resource reference. The extension is taken from the upload,
// defaulting to .pdf.
func (s *Service) StoreSalarySlip(ctx context.Context, customerID, uploadName string, data []byte) (string, error) {
	if _, err := s.directory.FindByID(ctx, customerID); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(uploadName))
	if ext == "" {
		ext = ".pdf"
	}
	filename := fmt.Sprintf("salary_%s_%s%s", customerID, newToken(), ext)

	ref, err := s.store.Save(ctx, filename, data)
	if err != nil {
		return "", err
	}

	s.emit(ctx, audit.Event{
		Category:   audit.CategoryDocument,
		Action:     audit.ActionSalarySlipUploaded,
		CustomerID: customerID,
		Resource:   ref,
	})
	return ref, nil
}

// IssueSanctionLetter renders and stores the letter PDF, returning its
// resource reference.
func (s *Service) IssueSanctionLetter(ctx context.Context, customerID string, terms LetterTerms) (string, error) {
	rec, err := s.directory.FindByID(ctx, customerID)
	if err != nil {
		return "", err
	}

	pdfBytes, err := renderSanctionLetter(rec, terms, requestcontext.Now(ctx))
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("sanction_%s_%s.pdf", customerID, newToken())
	ref, err := s.store.Save(ctx, filename, pdfBytes)
	if err != nil {
		return "", err
	}

	s.emit(ctx, audit.Event{
		Category:   audit.CategoryDocument,
		Action:     audit.ActionSanctionLetterIssued,
		CustomerID: customerID,
		Resource:   ref,
		Detail: map[string]any{
			"amount":        terms.Amount,
			"tenure_months": terms.TenureMonths,
			"annual_rate":   terms.AnnualRate,
		},
	})
	return ref, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"request_id", requestcontext.RequestID(ctx),
			"action", event.Action,
			"error", err,
		)
	}
}

// newToken yields the 32-char hex suffix used in stored filenames.
func newToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
