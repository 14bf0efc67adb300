package handler

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"nbfc-gateway/internal/underwriting"
	dErrors "nbfc-gateway/pkg/domain-errors"
)

const (
	defaultTenureMonths = 36
	defaultAnnualRate   = 12.0
)

// UnderwriteRequest is the HTTP request body for POST /call/underwrite_loan.
// Tenure and rate are pointers so an explicit zero can be told apart from an
// omitted field: omitted gets the default, an explicit bad value is a 400.
type UnderwriteRequest struct {
	CustomerID         string   `json:"customer_id"`
	RequestedAmount    int64    `json:"requested_amount"`
	TenureMonths       *int     `json:"tenure_months"`
	AnnualRate         *float64 `json:"annual_rate"`
	SalaryProvided     int64    `json:"salary_provided"`
	SalarySlipResource string   `json:"salary_slip_resource"`
}

// Validate checks the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *UnderwriteRequest) Validate() error {
	r.CustomerID = strings.TrimSpace(r.CustomerID)
	if !govalidator.StringLength(r.CustomerID, "1", "20") {
		return dErrors.New(dErrors.CodeValidation, "customer_id required")
	}

	if r.RequestedAmount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "requested_amount must be a positive integer")
	}

	if r.TenureMonths != nil && *r.TenureMonths < 1 {
		return dErrors.New(dErrors.CodeValidation, "tenure_months must be at least 1")
	}

	if r.AnnualRate != nil && *r.AnnualRate < 0 {
		return dErrors.New(dErrors.CodeValidation, "annual_rate must be non-negative")
	}

	if r.SalaryProvided < 0 {
		return dErrors.New(dErrors.CodeValidation, "salary_provided must not be negative")
	}

	return nil
}

// ToDomain converts the validated request, applying defaults for omitted
// tenure and rate.
func (r *UnderwriteRequest) ToDomain() underwriting.Request {
	req := underwriting.Request{
		CustomerID:         r.CustomerID,
		RequestedAmount:    r.RequestedAmount,
		TenureMonths:       defaultTenureMonths,
		AnnualRate:         defaultAnnualRate,
		SalaryProvided:     r.SalaryProvided,
		SalarySlipResource: strings.TrimSpace(r.SalarySlipResource),
	}
	if r.TenureMonths != nil {
		req.TenureMonths = *r.TenureMonths
	}
	if r.AnnualRate != nil {
		req.AnnualRate = *r.AnnualRate
	}
	return req
}
