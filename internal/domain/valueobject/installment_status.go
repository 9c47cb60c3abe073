package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// InstallmentStatus – immutable value object
// ---------------------------------------------------------------------------

// InstallmentStatus is the payment state of a schedule row after it has been
// reconciled against a payment ledger.
type InstallmentStatus struct {
	value string
}

const (
	installmentStatusPaid     = "PAID"
	installmentStatusUpcoming = "UPCOMING"
	installmentStatusPending  = "PENDING"
)

var (
	InstallmentStatusPaid     = InstallmentStatus{value: installmentStatusPaid}
	InstallmentStatusUpcoming = InstallmentStatus{value: installmentStatusUpcoming}
	InstallmentStatusPending  = InstallmentStatus{value: installmentStatusPending}
)

var validInstallmentStatuses = map[string]InstallmentStatus{
	installmentStatusPaid:     InstallmentStatusPaid,
	installmentStatusUpcoming: InstallmentStatusUpcoming,
	installmentStatusPending:  InstallmentStatusPending,
}

// NewInstallmentStatus creates an InstallmentStatus from a raw string.
func NewInstallmentStatus(s string) (InstallmentStatus, error) {
	v, ok := validInstallmentStatuses[s]
	if !ok {
		return InstallmentStatus{}, fmt.Errorf("invalid installment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InstallmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InstallmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InstallmentStatus) Equal(other InstallmentStatus) bool { return s.value == other.value }

// MarshalText renders the status for JSON output.
func (s InstallmentStatus) MarshalText() ([]byte, error) { return []byte(s.value), nil }
