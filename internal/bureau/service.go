// Package bureau resolves credit scores. The demo implementation is a stub
// that reads the seeded directory record; a real bureau integration would
// slot in behind the same Service surface.
package bureau

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"nbfc-gateway/internal/customer"
)

// Cache is the narrow caching surface the bureau needs. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// Service answers credit-score lookups with an optional read-through cache.
// A nil cache disables caching entirely.
type Service struct {
	directory customer.Directory
	cache     Cache
	ttl       time.Duration
	logger    *slog.Logger
}

func NewService(directory customer.Directory, cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{directory: directory, cache: cache, ttl: ttl, logger: logger}
}

// Score returns the customer's credit score, or customer.ErrNotFound for an
// unknown ID. Cache failures degrade to a directory read; they never fail
// the lookup.
func (s *Service) Score(ctx context.Context, customerID string) (int, error) {
	key := cacheKey(customerID)

	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			if score, err := strconv.Atoi(raw); err == nil {
				return score, nil
			}
		}
	}

	rec, err := s.directory.FindByID(ctx, customerID)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, strconv.Itoa(rec.CreditScore), s.ttl); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "score cache write failed",
				"customer_id", customerID,
				"error", err,
			)
		}
	}
	return rec.CreditScore, nil
}

func cacheKey(customerID string) string {
	return "bureau:score:" + customerID
}
