package customer

import (
	"context"

	dErrors "nbfc-gateway/pkg/domain-errors"
)

// ErrNotFound keeps directory-level 404s consistent across implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "customer not found")

// Directory is the lookup boundary. Underwriting assumes a lookup succeeded
// before its rule chain runs, so a not-found here must short-circuit the
// caller.
type Directory interface {
	FindByID(ctx context.Context, customerID string) (Record, error)
}
