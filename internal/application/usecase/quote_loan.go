package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/loan-engine/internal/application/dto"
	"github.com/bibbank/loan-engine/internal/domain/model"
	"github.com/bibbank/loan-engine/internal/domain/service"
)

// QuoteLoanUseCase prices a prospective loan: installment, interest cost and
// whether the installment fits the applicant's income.
type QuoteLoanUseCase struct {
	logger      *slog.Logger
	instruments *Instruments
}

// NewQuoteLoanUseCase wires dependencies.
func NewQuoteLoanUseCase(logger *slog.Logger, instruments *Instruments) *QuoteLoanUseCase {
	return &QuoteLoanUseCase{logger: logger, instruments: instruments}
}

// Execute computes the quote.
func (uc *QuoteLoanUseCase) Execute(ctx context.Context, req dto.QuoteLoanRequest) (dto.QuoteResponse, error) {
	rate, estimated := service.EstimateAnnualRate(req.Amount), true
	if req.AnnualRatePercent != nil {
		rate, estimated = *req.AnnualRatePercent, false
	}

	terms, err := model.NewLoanTerms(req.Amount, rate, req.TenureMonths)
	if err != nil {
		return dto.QuoteResponse{}, uc.reject(ctx, err)
	}

	// 1. Level installment and lifetime interest.
	emi, err := model.InstallmentAmount(terms)
	if err != nil {
		return dto.QuoteResponse{}, uc.reject(ctx, err)
	}
	interest, err := model.TotalInterest(terms)
	if err != nil {
		return dto.QuoteResponse{}, uc.reject(ctx, err)
	}

	// 2. Affordability against income.
	dti, err := service.DebtToIncomePercent(emi, req.AnnualIncome)
	if err != nil {
		return dto.QuoteResponse{}, uc.reject(ctx, err)
	}

	uc.instruments.quotes.Add(ctx, 1)
	uc.logger.DebugContext(ctx, "loan quoted",
		"principal", terms.Principal.String(),
		"rate", rate.String(),
		"tenure_months", terms.TenureMonths,
		"installment", emi.String(),
	)

	return dto.QuoteResponse{
		Principal:           terms.Principal,
		AnnualRatePercent:   rate,
		TenureMonths:        terms.TenureMonths,
		InstallmentAmount:   emi,
		TotalInterest:       interest,
		TotalPayable:        terms.Principal.Add(interest),
		DebtToIncomePercent: dti,
		Eligible:            service.IsAffordable(dti),
		RateEstimated:       estimated,
	}, nil
}

func (uc *QuoteLoanUseCase) reject(ctx context.Context, err error) error {
	uc.instruments.reject(ctx, "quote")
	uc.logger.WarnContext(ctx, "loan quote rejected", "error", err)
	return fmt.Errorf("quote loan: %w", err)
}
