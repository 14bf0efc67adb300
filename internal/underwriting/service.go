package underwriting

import (
	"context"
	"log/slog"
	"time"

	"nbfc-gateway/internal/audit"
	"nbfc-gateway/internal/customer"
	"nbfc-gateway/internal/underwriting/metrics"
	"nbfc-gateway/pkg/requestcontext"
)

// ScoreProvider resolves a customer's credit score. The mock bureau
// implements it; underwriting does not care where the score comes from.
type ScoreProvider interface {
	Score(ctx context.Context, customerID string) (int, error)
}

// Service orchestrates one underwriting call: gather evidence, run the pure
// rule chain, record metrics, and emit an audit event. All state lives in
// the arguments; concurrent calls need no coordination.
type Service struct {
	directory customer.Directory
	bureau    ScoreProvider
	auditor   audit.Emitter
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewService(directory customer.Directory, bureau ScoreProvider, auditor audit.Emitter, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		directory: directory,
		bureau:    bureau,
		auditor:   auditor,
		logger:    logger,
		metrics:   m,
	}
}

// Underwrite evaluates a loan request. Unknown customers fail with the
// directory's not-found error before the rule chain runs; every other result
// is a normal Outcome, including rejections and the salary-slip ask.
func (s *Service) Underwrite(ctx context.Context, req Request) (Outcome, error) {
	start := time.Now()

	ev, err := s.gatherEvidence(ctx, req.CustomerID)
	if err != nil {
		return Outcome{}, err
	}

	// The bureau is authoritative for the score even though the demo stub
	// reads the same seed data.
	rec := ev.Customer
	rec.CreditScore = ev.CreditScore

	outcome := Evaluate(rec, req)

	s.metrics.IncrementOutcome(string(outcome.Decision), string(outcome.Reason))
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	if err := s.auditor.Emit(ctx, audit.Event{
		Category:   audit.CategoryDecision,
		Action:     audit.ActionLoanUnderwritten,
		CustomerID: req.CustomerID,
		Decision:   string(outcome.Decision),
		Reason:     string(outcome.Reason),
	}); err != nil {
		// The decision stands even when the trail write fails; surface it in
		// logs instead.
		s.logger.WarnContext(ctx, "audit emit failed",
			"request_id", requestcontext.RequestID(ctx),
			"customer_id", req.CustomerID,
			"error", err,
		)
	}

	s.logger.InfoContext(ctx, "loan underwritten",
		"request_id", requestcontext.RequestID(ctx),
		"customer_id", req.CustomerID,
		"decision", outcome.Decision,
		"reason", outcome.Reason,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return outcome, nil
}
