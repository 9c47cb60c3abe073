package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/loan-engine/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// PaymentLedger – what has actually been paid, keyed by schedule period
// ---------------------------------------------------------------------------

// PaymentRecord is one payment applied to a schedule period.
type PaymentRecord struct {
	PaidOn time.Time
	Amount decimal.Decimal
	ID     string
	Period int
}

// PaymentLedger is immutable. Record returns a new copy.
type PaymentLedger struct {
	records      map[int]PaymentRecord
	tenureMonths int
}

// NewPaymentLedger returns an empty ledger for a loan of the given tenure.
func NewPaymentLedger(tenureMonths int) PaymentLedger {
	return PaymentLedger{
		records:      map[int]PaymentRecord{},
		tenureMonths: tenureMonths,
	}
}

// LedgerFromPaidCount marks the first paid periods of the schedule as paid on
// their due date for the scheduled amount. A paid count larger than the
// schedule marks every period.
func LedgerFromPaidCount(schedule Schedule, paid int) (PaymentLedger, error) {
	if paid < 0 {
		return PaymentLedger{}, fmt.Errorf("%w: paid months must not be negative, got %d",
			valueobject.ErrInvalidElapsedPeriod, paid)
	}

	ledger := NewPaymentLedger(len(schedule))
	for i := 0; i < paid && i < len(schedule); i++ {
		row := schedule[i]
		var err error
		ledger, err = ledger.Record(row.Period, row.Total(), row.DueDate)
		if err != nil {
			return PaymentLedger{}, err
		}
	}
	return ledger, nil
}

// Record applies a payment to a period.
func (l PaymentLedger) Record(period int, amount decimal.Decimal, paidOn time.Time) (PaymentLedger, error) {
	if period < 1 || period > l.tenureMonths {
		return l, fmt.Errorf("%w: period %d outside 1..%d", valueobject.ErrInvalidPaymentRecord, period, l.tenureMonths)
	}
	if !amount.IsPositive() {
		return l, fmt.Errorf("%w: amount must be positive, got %s", valueobject.ErrInvalidPaymentRecord, amount)
	}
	if _, ok := l.records[period]; ok {
		return l, fmt.Errorf("%w: %d", valueobject.ErrDuplicatePayment, period)
	}

	next := PaymentLedger{
		records:      make(map[int]PaymentRecord, len(l.records)+1),
		tenureMonths: l.tenureMonths,
	}
	for k, v := range l.records {
		next.records[k] = v
	}
	next.records[period] = PaymentRecord{
		ID:     uuid.New().String(),
		Period: period,
		Amount: amount,
		PaidOn: paidOn,
	}
	return next, nil
}

// IsPaid reports whether a payment has been recorded for the period.
func (l PaymentLedger) IsPaid(period int) bool {
	_, ok := l.records[period]
	return ok
}

// Records returns the payments ordered by period.
func (l PaymentLedger) Records() []PaymentRecord {
	out := make([]PaymentRecord, 0, len(l.records))
	for _, r := range l.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// PaidCount returns the number of periods with a recorded payment.
func (l PaymentLedger) PaidCount() int { return len(l.records) }

// TotalPaid sums every recorded amount.
func (l PaymentLedger) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.records {
		total = total.Add(r.Amount)
	}
	return total
}

// ---------------------------------------------------------------------------
// Reconciliation
// ---------------------------------------------------------------------------

// ScheduledPayment is a plan row together with its reconciled status.
type ScheduledPayment struct {
	Status valueobject.InstallmentStatus
	Installment
}

// Reconcile zips schedule rows with the ledger. Rows with a recorded payment
// are PAID, the earliest unpaid row is UPCOMING and every other unpaid row is
// PENDING.
func Reconcile(schedule Schedule, ledger PaymentLedger) []ScheduledPayment {
	out := make([]ScheduledPayment, 0, len(schedule))
	upcomingAssigned := false

	for _, row := range schedule {
		status := valueobject.InstallmentStatusPending
		switch {
		case ledger.IsPaid(row.Period):
			status = valueobject.InstallmentStatusPaid
		case !upcomingAssigned:
			status = valueobject.InstallmentStatusUpcoming
			upcomingAssigned = true
		}
		out = append(out, ScheduledPayment{Installment: row, Status: status})
	}
	return out
}
