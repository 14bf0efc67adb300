// Package customer holds the read-only customer directory backing every
// tool endpoint. Records are synthetic demo data; nothing here is mutated
// after seeding.
package customer

// Record is a single customer profile. Monetary fields are whole rupees.
type Record struct {
	ID               string `json:"customer_id"`
	Name             string `json:"name"`
	Age              int    `json:"age"`
	City             string `json:"city"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	PreApprovedLimit int64  `json:"pre_approved_limit"`
	SalaryMonthly    int64  `json:"salary_monthly"`
	CreditScore      int    `json:"credit_score"`
}
