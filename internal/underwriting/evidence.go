package underwriting

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"nbfc-gateway/internal/customer"
)

// evidenceTimeout bounds the whole gathering phase. The in-memory demo never
// gets close, but the bound holds when real integrations replace the stubs.
const evidenceTimeout = 2 * time.Second

// Evidence is everything the rule chain needs about a customer.
type Evidence struct {
	Customer    customer.Record
	CreditScore int
	FetchedAt   time.Time
}

// gatherEvidence fetches the directory record and the bureau score in
// parallel with shared cancellation: the first failure aborts the other
// fetch.
func (s *Service) gatherEvidence(ctx context.Context, customerID string) (*Evidence, error) {
	ctx, cancel := context.WithTimeout(ctx, evidenceTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	ev := &Evidence{FetchedAt: time.Now()}

	g.Go(func() error {
		start := time.Now()
		rec, err := s.directory.FindByID(ctx, customerID)
		s.metrics.ObserveEvidenceLatency("directory", time.Since(start))
		if err != nil {
			return err
		}
		ev.Customer = rec
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		score, err := s.bureau.Score(ctx, customerID)
		s.metrics.ObserveEvidenceLatency("bureau", time.Since(start))
		if err != nil {
			return err
		}
		ev.CreditScore = score
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ev, nil
}
