package underwriting

import "nbfc-gateway/internal/customer"

// creditFloor is the minimum score eligible for any approval path.
const creditFloor = 700

// Evaluate applies the underwriting policy to produce an outcome.
// This is pure domain logic - no I/O, no side effects. Rules run top to
// bottom and the first match wins; there is no re-evaluation or
// backtracking.
//
// Rule order:
//  1. Credit floor (hard reject) - takes precedence over everything,
//     including a zero requested amount.
//  2. Within pre-approved limit - approve without a salary check;
//     pre-approval already implies affordability.
//  3. Up to double the limit - salary-slip gate, then a 50%-of-salary EMI
//     affordability check.
//  4. Above double the limit - reject.
//
// Boundary amounts equal to the limit or to twice the limit fall into the
// lower bracket (comparisons are <=, not <).
func Evaluate(rec customer.Record, req Request) Outcome {
	if rec.CreditScore < creditFloor {
		score := rec.CreditScore
		return Outcome{
			Decision:    DecisionReject,
			Reason:      ReasonCreditScoreBelow700,
			CreditScore: &score,
		}
	}

	if req.RequestedAmount <= rec.PreApprovedLimit {
		emi := ComputeEMI(float64(req.RequestedAmount), req.AnnualRate, req.TenureMonths)
		return approveOutcome(ReasonWithinPreApprovedLimit, emi)
	}

	if req.RequestedAmount <= 2*rec.PreApprovedLimit {
		if req.SalarySlipResource == "" && req.SalaryProvided == 0 {
			return Outcome{
				Decision: DecisionRequireSalarySlip,
				Reason:   ReasonSalarySlipRequired,
			}
		}

		// A zero salary_provided counts as absent and falls back to the
		// on-file salary.
		salary := req.SalaryProvided
		if salary == 0 {
			salary = rec.SalaryMonthly
		}

		emi := ComputeEMI(float64(req.RequestedAmount), req.AnnualRate, req.TenureMonths)
		if emi <= 0.5*float64(salary) {
			return approveOutcome(ReasonEMIWithinHalfSalary, emi)
		}
		return Outcome{
			Decision: DecisionReject,
			Reason:   ReasonEMIExceedsHalfSalary,
			EMI:      &emi,
		}
	}

	preLimit := rec.PreApprovedLimit
	return Outcome{
		Decision: DecisionReject,
		Reason:   ReasonAmountExceedsDoubleLimit,
		PreLimit: &preLimit,
	}
}
