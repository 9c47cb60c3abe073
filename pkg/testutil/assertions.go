// Package testutil holds assertion helpers for decimal amounts.
package testutil

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bibbank/loan-engine/pkg/money"
)

// TestingT is the subset of *testing.T the helpers need.
type TestingT interface {
	assert.TestingT
	Helper()
}

// Dec parses a decimal literal and panics on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// AssertDecimalEqual checks numeric equality, ignoring representation
// (100 equals 100.00).
func AssertDecimalEqual(t TestingT, want, got decimal.Decimal, msgAndArgs ...interface{}) bool {
	t.Helper()
	if want.Equal(got) {
		return true
	}
	return assert.Fail(t, "decimals differ: want "+want.String()+", got "+got.String(), msgAndArgs...)
}

// AssertWithinCents checks that got is within cents hundredths of want.
func AssertWithinCents(t TestingT, want, got decimal.Decimal, cents int64, msgAndArgs ...interface{}) bool {
	t.Helper()
	if money.WithinCents(want, got, cents) {
		return true
	}
	return assert.Fail(t, "decimals differ by more than tolerance: want "+want.String()+
		", got "+got.String(), msgAndArgs...)
}
