// Package catalog serves the service banner, the static tool manifest, and
// the health probe.
package catalog

// Tool describes one callable endpoint in the manifest.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema,omitempty"`
}

// Routes lists every public endpoint for the banner.
var Routes = []string{
	"/",
	"/health",
	"/tools",
	"/resource/{filename}",
	"/audit/events",
	"/metrics",
	"/call/get_customer_info",
	"/call/verify_kyc",
	"/call/get_credit_score",
	"/call/underwrite_loan",
	"/call/upload_salary_slip",
	"/call/generate_sanction_letter",
	"/call/log_event",
}

// Tools is the static manifest returned by /tools.
var Tools = []Tool{
	{
		Name:        "get_customer_info",
		Description: "Fetch customer basic info",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"customer_id": map[string]any{"type": "string"},
			},
			"required": []string{"customer_id"},
		},
	},
	{Name: "verify_kyc", Description: "Verify phone/address (mock)"},
	{Name: "get_credit_score", Description: "Return credit score"},
	{Name: "underwrite_loan", Description: "Loan underwriting"},
	{Name: "upload_salary_slip", Description: "Upload salary slip"},
	{Name: "generate_sanction_letter", Description: "Generate PDF"},
	{Name: "log_event", Description: "Audit log event"},
}
