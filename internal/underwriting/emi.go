package underwriting

import (
	"fmt"
	"math"
)

// ComputeEMI returns the equated monthly installment for an amortizing loan
// using the standard formula P*r*(1+r)^n / ((1+r)^n - 1), where r is the
// monthly decimal rate. A zero annual rate degenerates to straight-line
// principal/tenure. No rounding is applied; currency formatting belongs to
// the caller.
//
// tenureMonths < 1 is a contract violation and panics. Callers validate
// tenure at the transport boundary, so reaching the panic means a bug.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) float64 {
	if tenureMonths < 1 {
		panic(fmt.Sprintf("underwriting: tenure must be at least 1 month, got %d", tenureMonths))
	}
	if annualRatePercent == 0 {
		return principal / float64(tenureMonths)
	}
	r := annualRatePercent / 12 / 100
	growth := math.Pow(1+r, float64(tenureMonths))
	return principal * r * growth / (growth - 1)
}
