package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/loan-engine/internal/domain/service"
	"github.com/bibbank/loan-engine/internal/domain/valueobject"
)

func TestEstimateAnnualRate(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{5_000, "7.5"},
		{10_000, "7.5"},
		{10_001, "9"},
		{50_000, "9"},
		{150_000, "6.5"},
		{200_000, "6.5"},
		{500_000, "5"},
	}
	for _, tt := range tests {
		got := service.EstimateAnnualRate(decimal.NewFromInt(tt.amount))
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "amount %d: got %s", tt.amount, got)
	}
}

func TestDebtToIncomePercent(t *testing.T) {
	// 635.99 * 12 / 95000 * 100 = 8.0335... -> 8.0
	got, err := service.DebtToIncomePercent(decimal.RequireFromString("635.99"), decimal.NewFromInt(95_000))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("8.0")), "got %s", got)
	assert.True(t, service.IsAffordable(got))

	zero, err := service.DebtToIncomePercent(decimal.NewFromInt(500), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = service.DebtToIncomePercent(decimal.NewFromInt(500), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, valueobject.ErrInvalidIncome)
}

func TestIsAffordable_Boundary(t *testing.T) {
	assert.True(t, service.IsAffordable(decimal.RequireFromString("44.9")))
	assert.False(t, service.IsAffordable(decimal.RequireFromString("45.0")))
}
