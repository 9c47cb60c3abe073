package money

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Round
// ---------------------------------------------------------------------------

func TestRound_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.005", "0.01"},
		{"0.004", "0"},
		{"0.0049999", "0"},
		{"1.125", "1.13"},
		{"1.135", "1.14"},
		{"2.5", "2.5"},
		{"-0.005", "-0.01"},
		{"-1.125", "-1.13"},
		{"8606.6429", "8606.64"},
	}
	for _, tt := range tests {
		got := Round(decimal.RequireFromString(tt.in))
		want := decimal.RequireFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("Round(%s) = %s, want %s", tt.in, got, want)
		}
	}
}

func TestNonNegative(t *testing.T) {
	if got := NonNegative(decimal.RequireFromString("-0.01")); !got.IsZero() {
		t.Errorf("NonNegative(-0.01) = %s, want 0", got)
	}
	if got := NonNegative(decimal.RequireFromString("3.10")); !got.Equal(decimal.RequireFromString("3.1")) {
		t.Errorf("NonNegative(3.10) = %s, want 3.10", got)
	}
}

// ---------------------------------------------------------------------------
// Rates and powers
// ---------------------------------------------------------------------------

func TestMonthlyRate(t *testing.T) {
	got := MonthlyRate(decimal.NewFromInt(6))
	if !got.Equal(decimal.RequireFromString("0.005")) {
		t.Errorf("MonthlyRate(6) = %s, want 0.005", got)
	}
	if got := MonthlyRate(decimal.Zero); !got.IsZero() {
		t.Errorf("MonthlyRate(0) = %s, want 0", got)
	}
}

func TestPowInt(t *testing.T) {
	tests := []struct {
		base string
		exp  int
		want string
	}{
		{"2", 0, "1"},
		{"2", 1, "2"},
		{"2", 10, "1024"},
		{"1.5", 3, "3.375"},
		{"1.005", 2, "1.010025"},
	}
	for _, tt := range tests {
		got := PowInt(decimal.RequireFromString(tt.base), tt.exp)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("PowInt(%s, %d) = %s, want %s", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestPowInt_LongTenureStaysClose(t *testing.T) {
	// 1.005^12 = 1.0616778118644995...
	got := PowInt(decimal.RequireFromString("1.005"), 12).Round(12)
	if !got.Equal(decimal.RequireFromString("1.061677811864")) {
		t.Errorf("PowInt(1.005, 12) = %s", got)
	}
}

func TestPowInt_NegativeExponentPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("PowInt with negative exponent did not panic")
		}
	}()
	PowInt(decimal.NewFromInt(2), -1)
}

// ---------------------------------------------------------------------------
// Sum / WithinCents
// ---------------------------------------------------------------------------

func TestSum(t *testing.T) {
	got := Sum(decimal.RequireFromString("0.10"), decimal.RequireFromString("0.20"), decimal.RequireFromString("0.30"))
	if !got.Equal(decimal.RequireFromString("0.6")) {
		t.Errorf("Sum = %s, want 0.6", got)
	}
	if got := Sum(); !got.IsZero() {
		t.Errorf("Sum() = %s, want 0", got)
	}
}

func TestWithinCents(t *testing.T) {
	a := decimal.RequireFromString("100.00")
	if !WithinCents(a, decimal.RequireFromString("100.03"), 3) {
		t.Error("100.00 and 100.03 should be within 3 cents")
	}
	if WithinCents(a, decimal.RequireFromString("100.04"), 3) {
		t.Error("100.00 and 100.04 should not be within 3 cents")
	}
}

// TestPowInt_Concurrent checks that shared inputs are never mutated when
// the helpers run from many goroutines.
func TestPowInt_Concurrent(t *testing.T) {
	base := decimal.RequireFromString("1.0070833333")
	original := base.String()

	const goroutines = 50
	results := make([]decimal.Decimal, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			results[idx] = Round(PowInt(base, 360))
		}(i)
	}
	wg.Wait()

	if base.String() != original {
		t.Errorf("base mutated: got %s, want %s", base, original)
	}
	for i := 1; i < goroutines; i++ {
		if !results[i].Equal(results[0]) {
			t.Fatalf("result %d = %s, want %s", i, results[i], results[0])
		}
	}
}
