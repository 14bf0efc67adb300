package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"nbfc-gateway/internal/customer"
)

// LetterTerms carries the sanctioned loan parameters printed on the letter.
type LetterTerms struct {
	Amount       int64
	TenureMonths int
	AnnualRate   float64
}

// renderSanctionLetter draws the one-page demo sanction letter and returns
// the PDF bytes.
func renderSanctionLetter(rec customer.Record, terms LetterTerms, issuedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 24, "Sanction Letter", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Date: %s", issuedAt.UTC().Format("2006-01-02")),
		fmt.Sprintf("Customer: %s (ID: %s)", rec.Name, rec.ID),
		fmt.Sprintf("Approved Amount: INR %d", terms.Amount),
		fmt.Sprintf("Tenure: %d months", terms.TenureMonths),
		fmt.Sprintf("Interest Rate: %.1f%%", terms.AnnualRate),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 18, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(18)
	pdf.CellFormat(0, 18, "This is a demo sanction letter generated by the NBFC gateway.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render sanction letter: %w", err)
	}
	return buf.Bytes(), nil
}
