package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loan-engine/internal/domain/valueobject"
	"github.com/bibbank/loan-engine/pkg/money"
)

var one = decimal.NewFromInt(1)

// Installment is an immutable value object representing one period of an
// amortization schedule. It is a plan row only: whether it has been paid is
// decided by reconciling against a PaymentLedger.
type Installment struct {
	DueDate          time.Time
	PaymentAmount    decimal.Decimal
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// Total is the cash actually due on the row. It equals PaymentAmount except
// on the final row, whose principal absorbs the rounding residual.
func (i Installment) Total() decimal.Decimal {
	return i.Principal.Add(i.Interest)
}

// Schedule is the ordered list of installments, one per month of tenure.
type Schedule []Installment

// TotalPrincipal sums the principal portions.
func (s Schedule) TotalPrincipal() decimal.Decimal {
	parts := make([]decimal.Decimal, len(s))
	for i, e := range s {
		parts[i] = e.Principal
	}
	return money.Sum(parts...)
}

// TotalInterest sums the interest portions.
func (s Schedule) TotalInterest() decimal.Decimal {
	parts := make([]decimal.Decimal, len(s))
	for i, e := range s {
		parts[i] = e.Interest
	}
	return money.Sum(parts...)
}

// FinalBalance returns the remaining balance after the last row, or zero for
// an empty schedule.
func (s Schedule) FinalBalance() decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1].RemainingBalance
}

// InstallmentAmount computes the level monthly installment (EMI):
//
//	r   = annualRatePercent / 100 / 12
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// or P / n for a zero rate, rounded to the cent half away from zero.
func InstallmentAmount(terms LoanTerms) (decimal.Decimal, error) {
	if err := terms.Validate(); err != nil {
		return decimal.Zero, err
	}
	return installmentAmount(terms), nil
}

func installmentAmount(terms LoanTerms) decimal.Decimal {
	r := terms.MonthlyRate()
	if r.IsZero() {
		return terms.Principal.DivRound(decimal.NewFromInt(int64(terms.TenureMonths)), money.CentPlaces)
	}
	factor := money.PowInt(one.Add(r), terms.TenureMonths)
	numerator := terms.Principal.Mul(r).Mul(factor)
	return numerator.DivRound(factor.Sub(one), money.CentPlaces)
}

// GenerateSchedule expands the terms into one installment per month. For each
// period, starting with balance = principal:
//
//	interest  = round2(balance * r)
//	principal = round2(EMI - interest)
//	balance   = round2(balance - principal), never below zero
//
// Every row carries the same PaymentAmount. The principal portion never
// exceeds the balance still owed, and the final row repays whatever balance
// is left so the schedule always ends at exactly zero.
//
// Due dates are startDate advanced by the period number in calendar months;
// see AddMonths.
func GenerateSchedule(terms LoanTerms, startDate time.Time) (Schedule, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	emi := installmentAmount(terms)
	r := terms.MonthlyRate()

	schedule := make(Schedule, 0, terms.TenureMonths)
	remaining := terms.Principal

	for period := 1; period <= terms.TenureMonths; period++ {
		interest := money.Round(remaining.Mul(r))
		principalPart := money.Round(emi.Sub(interest))

		if period == terms.TenureMonths || principalPart.GreaterThan(remaining) {
			principalPart = remaining
		}

		remaining = money.NonNegative(money.Round(remaining.Sub(principalPart)))

		schedule = append(schedule, Installment{
			Period:           period,
			DueDate:          AddMonths(startDate, period),
			PaymentAmount:    emi,
			Principal:        principalPart,
			Interest:         interest,
			RemainingBalance: remaining,
		})
	}

	return schedule, nil
}

// OutstandingBalance projects the principal still owed after elapsedMonths
// installments without walking the schedule:
//
//	balance = P*(1+r)^k - EMI*((1+r)^k - 1)/r     (r > 0)
//	balance = P - EMI*k                           (r = 0)
//
// The result is rounded to the cent and never negative. Any k at or beyond
// the tenure yields zero.
func OutstandingBalance(terms LoanTerms, elapsedMonths int) (decimal.Decimal, error) {
	if err := terms.Validate(); err != nil {
		return decimal.Zero, err
	}
	if elapsedMonths < 0 {
		return decimal.Zero, fmt.Errorf("%w: elapsed months must not be negative, got %d",
			valueobject.ErrInvalidElapsedPeriod, elapsedMonths)
	}
	if elapsedMonths >= terms.TenureMonths {
		return decimal.Zero, nil
	}

	emi := installmentAmount(terms)
	r := terms.MonthlyRate()

	var balance decimal.Decimal
	if r.IsZero() {
		balance = terms.Principal.Sub(emi.Mul(decimal.NewFromInt(int64(elapsedMonths))))
	} else {
		growth := money.PowInt(one.Add(r), elapsedMonths)
		paid := emi.Mul(growth.Sub(one)).DivRound(r, money.WorkingPlaces)
		balance = terms.Principal.Mul(growth).Sub(paid)
	}

	return money.NonNegative(money.Round(balance)), nil
}

// TotalInterest is round2(EMI * n - principal).
func TotalInterest(terms LoanTerms) (decimal.Decimal, error) {
	if err := terms.Validate(); err != nil {
		return decimal.Zero, err
	}
	emi := installmentAmount(terms)
	total := emi.Mul(decimal.NewFromInt(int64(terms.TenureMonths)))
	return money.Round(total.Sub(terms.Principal)), nil
}

// AddMonths advances t by the given number of calendar months. When the
// day-of-month does not exist in the target month it is clamped to that
// month's last day, so Jan 31 + 1 month is Feb 28 (or 29) rather than
// spilling into March. Time of day and location are preserved.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())

	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
