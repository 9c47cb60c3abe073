package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/loan-engine/internal/application/dto"
	"github.com/bibbank/loan-engine/internal/application/usecase"
	"github.com/bibbank/loan-engine/internal/domain/service"
	"github.com/bibbank/loan-engine/internal/domain/valueobject"
)

func borrower(name string, credit int, dti, years string, missed int) dto.AssessBorrowerRequest {
	return dto.AssessBorrowerRequest{
		Name:           name,
		CreditScore:    credit,
		DebtToIncome:   dec(dti),
		YearsEmployed:  dec(years),
		MissedPayments: missed,
	}
}

func TestAssessBorrower_Execute(t *testing.T) {
	t.Run("scores and categorizes", func(t *testing.T) {
		h := newHarness(t)
		uc := usecase.NewAssessBorrowerUseCase(service.NewRiskEngine(), h.logger, h.instruments)

		resp, err := uc.Execute(context.Background(), borrower("Emily", 720, "0.32", "4", 0))

		require.NoError(t, err)
		// 50 + 15 + 5 + 5 + 5
		assert.Equal(t, 80, resp.Score)
		assert.Equal(t, "Low Risk", resp.Category)
		assert.Equal(t, "#06d6a0", resp.Color)
		assert.Equal(t, "Emily", resp.Name)
		assert.Equal(t, int64(1), h.counter(t, "loanengine.assessments"))
	})

	t.Run("rejects invalid profile", func(t *testing.T) {
		h := newHarness(t)
		uc := usecase.NewAssessBorrowerUseCase(service.NewRiskEngine(), h.logger, h.instruments)

		_, err := uc.Execute(context.Background(), borrower("Bad", -5, "0.2", "1", 0))

		require.ErrorIs(t, err, valueobject.ErrInvalidRiskProfile)
		assert.Contains(t, h.logs.String(), "borrower assessment rejected")
		assert.Equal(t, int64(1), h.counter(t, "loanengine.rejections"))
	})
}

func TestAssessBorrower_Distribution(t *testing.T) {
	t.Run("buckets every category", func(t *testing.T) {
		h := newHarness(t)
		uc := usecase.NewAssessBorrowerUseCase(service.NewRiskEngine(), h.logger, h.instruments)

		resp, err := uc.Distribution(context.Background(), dto.RiskDistributionRequest{
			Borrowers: []dto.AssessBorrowerRequest{
				borrower("a", 800, "0.10", "10", 0), // 100 low
				borrower("b", 760, "0.35", "3", 0),  // 90 low
				borrower("c", 680, "0.40", "1", 0),  // 75 medium
				borrower("d", 500, "0.50", "0", 2),  // 15 very high
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 4, resp.Total)
		require.Len(t, resp.Assessments, 4)
		require.Len(t, resp.Buckets, 4)

		assert.Equal(t, dto.RiskBucket{Category: "Low Risk", Color: "#06d6a0", Count: 2}, resp.Buckets[0])
		assert.Equal(t, dto.RiskBucket{Category: "Medium Risk", Color: "#ffd166", Count: 1}, resp.Buckets[1])
		assert.Equal(t, dto.RiskBucket{Category: "High Risk", Color: "#ef476f", Count: 0}, resp.Buckets[2])
		assert.Equal(t, dto.RiskBucket{Category: "Very High Risk", Color: "#d62828", Count: 1}, resp.Buckets[3])
		assert.Equal(t, int64(4), h.counter(t, "loanengine.assessments"))
	})

	t.Run("one invalid borrower fails the request", func(t *testing.T) {
		h := newHarness(t)
		uc := usecase.NewAssessBorrowerUseCase(service.NewRiskEngine(), h.logger, h.instruments)

		_, err := uc.Distribution(context.Background(), dto.RiskDistributionRequest{
			Borrowers: []dto.AssessBorrowerRequest{
				borrower("a", 800, "0.10", "10", 0),
				borrower("b", 700, "-0.1", "3", 0),
			},
		})

		require.ErrorIs(t, err, valueobject.ErrInvalidRiskProfile)
		assert.Contains(t, err.Error(), "borrower 1")
	})
}

func TestNopInstruments(t *testing.T) {
	uc := usecase.NewAssessBorrowerUseCase(service.NewRiskEngine(), newHarness(t).logger, usecase.NopInstruments())
	_, err := uc.Execute(context.Background(), borrower("x", 700, "0.2", "3", 0))
	require.NoError(t, err)
}
