// Package audit provides the append-only event trail. Events are emitted
// from domain logic and handlers; stores fan them out to memory or the
// JSONL file sink.
package audit

import "time"

// Category classifies events for retention and filtering.
type Category string

const (
	// CategoryDecision covers underwriting outcomes.
	CategoryDecision Category = "decision"

	// CategoryDocument covers uploads and generated letters.
	CategoryDocument Category = "document"

	// CategoryKYC covers verification checks.
	CategoryKYC Category = "kyc"

	// CategoryExternal covers events pushed by clients via the log_event
	// tool. Payloads are opaque to the service.
	CategoryExternal Category = "external"
)

// Well-known actions emitted by the service's own modules.
const (
	ActionLoanUnderwritten       = "loan_underwritten"
	ActionKYCVerified            = "kyc_verified"
	ActionSalarySlipUploaded     = "salary_slip_uploaded"
	ActionSanctionLetterIssued   = "sanction_letter_issued"
	ActionExternalEventSubmitted = "external_event_submitted"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time      `json:"ts"`
	Category   Category       `json:"category,omitempty"`
	Action     string         `json:"action"`
	CustomerID string         `json:"customer_id,omitempty"`
	Decision   string         `json:"decision,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Resource   string         `json:"resource,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Detail     map[string]any `json:"detail,omitempty"`
}
