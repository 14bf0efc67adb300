// Package kyc mocks Know Your Customer verification: the phone number is
// checked against the directory record, the address check always passes.
package kyc

import (
	"context"
	"log/slog"

	"nbfc-gateway/internal/audit"
	"nbfc-gateway/internal/customer"
	"nbfc-gateway/pkg/requestcontext"
)

// Result is the verification outcome. A mismatched phone is a normal
// not-verified result, never an error.
type Result struct {
	PhoneVerified   bool `json:"phone_verified"`
	AddressVerified bool `json:"address_verified"`
}

type Service struct {
	directory customer.Directory
	auditor   audit.Emitter
	logger    *slog.Logger
}

func NewService(directory customer.Directory, auditor audit.Emitter, logger *slog.Logger) *Service {
	return &Service{directory: directory, auditor: auditor, logger: logger}
}

// Verify matches the supplied phone against the on-file record. Unknown
// customers fail with the directory's not-found error.
func (s *Service) Verify(ctx context.Context, customerID, phone string) (Result, error) {
	rec, err := s.directory.FindByID(ctx, customerID)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		PhoneVerified:   rec.Phone == phone,
		AddressVerified: true,
	}

	if err := s.auditor.Emit(ctx, audit.Event{
		Category:   audit.CategoryKYC,
		Action:     audit.ActionKYCVerified,
		CustomerID: customerID,
		Detail: map[string]any{
			"phone_verified":   result.PhoneVerified,
			"address_verified": result.AddressVerified,
		},
	}); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			"request_id", requestcontext.RequestID(ctx),
			"customer_id", customerID,
			"error", err,
		)
	}

	return result, nil
}
