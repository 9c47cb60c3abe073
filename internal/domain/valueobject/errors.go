package valueobject

import "errors"

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrInvalidLoanTerms reports a non-positive principal or tenure, or a
	// negative interest rate.
	ErrInvalidLoanTerms = errors.New("invalid loan terms")
	// ErrInvalidElapsedPeriod reports a negative number of elapsed months.
	ErrInvalidElapsedPeriod = errors.New("invalid elapsed period")
	// ErrInvalidRiskProfile reports a negative credit score, debt-to-income
	// ratio, years employed or missed-payment count.
	ErrInvalidRiskProfile = errors.New("invalid risk profile")
	// ErrInvalidPaymentRecord reports a payment for a period outside the
	// schedule or with a non-positive amount.
	ErrInvalidPaymentRecord = errors.New("invalid payment record")
	// ErrDuplicatePayment reports a second payment recorded for one period.
	ErrDuplicatePayment = errors.New("payment already recorded for period")
)

// ErrInvalidIncome reports a negative annual income in an affordability check.
var ErrInvalidIncome = errors.New("invalid income")
