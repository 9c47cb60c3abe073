package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loan-engine/internal/domain/valueobject"
	"github.com/bibbank/loan-engine/pkg/money"
)

// LoanTerms is the immutable input to every amortization function.
type LoanTerms struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal // 8.5 means 8.5% per year
	TenureMonths      int
}

// NewLoanTerms builds validated loan terms.
func NewLoanTerms(principal, annualRatePercent decimal.Decimal, tenureMonths int) (LoanTerms, error) {
	t := LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TenureMonths:      tenureMonths,
	}
	if err := t.Validate(); err != nil {
		return LoanTerms{}, err
	}
	return t, nil
}

// Validate checks principal > 0, tenure >= 1 and rate >= 0.
func (t LoanTerms) Validate() error {
	if !t.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive, got %s", valueobject.ErrInvalidLoanTerms, t.Principal)
	}
	if t.TenureMonths < 1 {
		return fmt.Errorf("%w: tenure must be at least one month, got %d", valueobject.ErrInvalidLoanTerms, t.TenureMonths)
	}
	if t.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("%w: annual rate must not be negative, got %s", valueobject.ErrInvalidLoanTerms, t.AnnualRatePercent)
	}
	return nil
}

// MonthlyRate returns the periodic rate annualRatePercent/100/12.
func (t LoanTerms) MonthlyRate() decimal.Decimal {
	return money.MonthlyRate(t.AnnualRatePercent)
}
