package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loan-engine/internal/application/dto"
	"github.com/bibbank/loan-engine/internal/domain/model"
)

// PortfolioOutstandingUseCase sums the projected outstanding balance of the
// active loans in a portfolio. Inactive loans report zero.
type PortfolioOutstandingUseCase struct {
	logger      *slog.Logger
	instruments *Instruments
}

// NewPortfolioOutstandingUseCase wires dependencies.
func NewPortfolioOutstandingUseCase(logger *slog.Logger, instruments *Instruments) *PortfolioOutstandingUseCase {
	return &PortfolioOutstandingUseCase{logger: logger, instruments: instruments}
}

// Execute projects every loan and sums the active ones.
func (uc *PortfolioOutstandingUseCase) Execute(
	ctx context.Context,
	req dto.PortfolioOutstandingRequest,
) (dto.PortfolioOutstandingResponse, error) {
	resp := dto.PortfolioOutstandingResponse{
		TotalOutstanding: decimal.Zero,
		PerLoan:          make([]decimal.Decimal, 0, len(req.Loans)),
	}

	for i, loan := range req.Loans {
		if !loan.Active {
			resp.PerLoan = append(resp.PerLoan, decimal.Zero)
			continue
		}

		terms, err := model.NewLoanTerms(loan.Principal, loan.AnnualRatePercent, loan.TenureMonths)
		if err != nil {
			return dto.PortfolioOutstandingResponse{}, uc.reject(ctx, i, err)
		}
		balance, err := model.OutstandingBalance(terms, loan.PaidMonths)
		if err != nil {
			return dto.PortfolioOutstandingResponse{}, uc.reject(ctx, i, err)
		}

		resp.PerLoan = append(resp.PerLoan, balance)
		resp.TotalOutstanding = resp.TotalOutstanding.Add(balance)
		resp.ActiveLoans++
	}

	uc.instruments.projections.Add(ctx, 1)
	uc.logger.DebugContext(ctx, "portfolio outstanding projected",
		"loans", len(req.Loans),
		"active", resp.ActiveLoans,
		"total", resp.TotalOutstanding.String(),
	)
	return resp, nil
}

func (uc *PortfolioOutstandingUseCase) reject(ctx context.Context, index int, err error) error {
	uc.instruments.reject(ctx, "portfolio")
	uc.logger.WarnContext(ctx, "portfolio projection rejected", "loan_index", index, "error", err)
	return fmt.Errorf("portfolio outstanding: loan %d: %w", index, err)
}
