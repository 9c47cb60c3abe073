package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loan-engine/internal/domain/valueobject"
)

// MaxDebtToIncomePercent is the exclusive upper bound on the installment's
// share of income for a loan to be considered affordable.
var MaxDebtToIncomePercent = decimal.NewFromInt(45)

var (
	rateTierSmall  = decimal.NewFromInt(10_000)
	rateTierMedium = decimal.NewFromInt(50_000)
	rateTierLarge  = decimal.NewFromInt(200_000)
)

// EstimateAnnualRate returns the indicative annual rate for a requested
// amount when the caller has no offer yet.
//
// Tiers:
//
//	amount <= 10K  -> 7.5%
//	amount <= 50K  -> 9.0%
//	amount <= 200K -> 6.5%
//	otherwise      -> 5.0%
func EstimateAnnualRate(amount decimal.Decimal) decimal.Decimal {
	switch {
	case amount.LessThanOrEqual(rateTierSmall):
		return decimal.RequireFromString("7.5")
	case amount.LessThanOrEqual(rateTierMedium):
		return decimal.RequireFromString("9.0")
	case amount.LessThanOrEqual(rateTierLarge):
		return decimal.RequireFromString("6.5")
	default:
		return decimal.RequireFromString("5.0")
	}
}

// DebtToIncomePercent is the yearly installment burden as a percentage of
// annual income, rounded to one decimal place. Zero income yields zero.
func DebtToIncomePercent(monthlyInstallment, annualIncome decimal.Decimal) (decimal.Decimal, error) {
	if annualIncome.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: annual income must not be negative, got %s",
			valueobject.ErrInvalidIncome, annualIncome)
	}
	if annualIncome.IsZero() {
		return decimal.Zero, nil
	}
	yearly := monthlyInstallment.Mul(decimal.NewFromInt(12)).Mul(decimal.NewFromInt(100))
	return yearly.DivRound(annualIncome, 1), nil
}

// IsAffordable reports whether a debt-to-income percentage is below
// MaxDebtToIncomePercent.
func IsAffordable(dtiPercent decimal.Decimal) bool {
	return dtiPercent.LessThan(MaxDebtToIncomePercent)
}
