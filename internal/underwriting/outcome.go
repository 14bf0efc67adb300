// Package underwriting implements the loan decision procedure: a pure,
// ordered rule chain over a customer record and a loan request, plus the EMI
// arithmetic it relies on.
package underwriting

// Decision enumerates the terminal states of the rule chain.
// DecisionRequireSalarySlip is a request for more information, not a
// terminal rejection: callers resubmit with salary evidence.
type Decision string

const (
	DecisionApprove           Decision = "approve"
	DecisionReject            Decision = "reject"
	DecisionRequireSalarySlip Decision = "require_salary_slip"
)

// Reason is the machine-readable code explaining a decision. Keeping these
// an enum (rather than free-form strings) makes outcomes exhaustively
// matchable downstream.
type Reason string

const (
	ReasonCreditScoreBelow700      Reason = "credit_score_below_700"
	ReasonWithinPreApprovedLimit   Reason = "within_pre_approved_limit"
	ReasonSalarySlipRequired       Reason = "salary_slip_required"
	ReasonEMIWithinHalfSalary      Reason = "emi_within_50pct_salary"
	ReasonEMIExceedsHalfSalary     Reason = "emi_exceeds_50pct_salary"
	ReasonAmountExceedsDoubleLimit Reason = "amount_exceeds_2x_pre_approved"
)

// Request is a loan application as seen by the decision procedure. Defaults
// (tenure 36, rate 12.0) are applied at the transport boundary; the rule
// chain takes the fields at face value.
type Request struct {
	CustomerID         string
	RequestedAmount    int64
	TenureMonths       int
	AnnualRate         float64
	SalaryProvided     int64
	SalarySlipResource string
}

// Outcome is the tagged result of the rule chain. Payload fields are set
// per-reason: EMI on approvals and affordability rejections, CreditScore on
// score rejections, PreLimit on amount rejections.
type Outcome struct {
	Decision    Decision `json:"decision"`
	Reason      Reason   `json:"reason"`
	EMI         *float64 `json:"emi,omitempty"`
	CreditScore *int     `json:"credit_score,omitempty"`
	PreLimit    *int64   `json:"pre_limit,omitempty"`
}

func approveOutcome(reason Reason, emi float64) Outcome {
	return Outcome{Decision: DecisionApprove, Reason: reason, EMI: &emi}
}
