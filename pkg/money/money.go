// Package money holds the decimal arithmetic shared by the loan engine:
// cent rounding, integer powers and tolerance comparisons.
package money

import (
	"github.com/shopspring/decimal"
)

// CentPlaces is the number of fractional digits carried by monetary amounts.
const CentPlaces int32 = 2

// WorkingPlaces is the number of fractional digits kept for rates and
// compound factors before they are folded back into a monetary amount.
const WorkingPlaces int32 = 28

var (
	one      = decimal.NewFromInt(1)
	oneCent  = decimal.New(1, -CentPlaces)
	hundred  = decimal.NewFromInt(100)
	monthsPY = decimal.NewFromInt(12)
)

// Round rounds d to whole cents, half away from zero (0.005 -> 0.01,
// -0.005 -> -0.01).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(CentPlaces)
}

// NonNegative returns d, or zero when d is negative.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// MonthlyRate converts an annual percentage (8.5 meaning 8.5%/year) into the
// periodic monthly rate annual/100/12.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.DivRound(hundred.Mul(monthsPY), WorkingPlaces)
}

// PowInt raises base to a non-negative integer power using square-and-multiply.
// Intermediate products are rounded to WorkingPlaces so the digit count stays
// bounded for long tenures. PowInt panics on a negative exponent.
func PowInt(base decimal.Decimal, exp int) decimal.Decimal {
	if exp < 0 {
		panic("money: negative exponent")
	}
	result := one
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(WorkingPlaces)
		}
		exp >>= 1
		if exp > 0 {
			base = base.Mul(base).Round(WorkingPlaces)
		}
	}
	return result
}

// Sum adds all amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// WithinCents reports whether a and b differ by at most cents hundredths.
func WithinCents(a, b decimal.Decimal, cents int64) bool {
	limit := oneCent.Mul(decimal.NewFromInt(cents))
	return a.Sub(b).Abs().LessThanOrEqual(limit)
}
