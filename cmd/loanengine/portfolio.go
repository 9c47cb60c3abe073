package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bibbank/loan-engine/internal/application/dto"
	"github.com/bibbank/loan-engine/internal/application/usecase"
)

// portfolioInput is the file read by -portfolio. Either list may be empty.
type portfolioInput struct {
	Loans     []dto.PortfolioLoan         `json:"loans"`
	Borrowers []dto.AssessBorrowerRequest `json:"borrowers"`
}

func loadPortfolio(path string) (portfolioInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return portfolioInput{}, fmt.Errorf("read portfolio %s: %w", path, err)
	}

	var in portfolioInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return portfolioInput{}, fmt.Errorf("decode portfolio %s: %w", path, err)
	}
	return in, nil
}

// runPortfolio projects the outstanding balance of the loans and buckets the
// borrowers by risk category.
func runPortfolio(
	ctx context.Context,
	in portfolioInput,
	outstandingUC *usecase.PortfolioOutstandingUseCase,
	assessUC *usecase.AssessBorrowerUseCase,
) (dto.PortfolioOutstandingResponse, dto.RiskDistributionResponse, error) {
	outstanding, err := outstandingUC.Execute(ctx, dto.PortfolioOutstandingRequest{Loans: in.Loans})
	if err != nil {
		return dto.PortfolioOutstandingResponse{}, dto.RiskDistributionResponse{}, err
	}

	distribution, err := assessUC.Distribution(ctx, dto.RiskDistributionRequest{Borrowers: in.Borrowers})
	if err != nil {
		return dto.PortfolioOutstandingResponse{}, dto.RiskDistributionResponse{}, err
	}
	return outstanding, distribution, nil
}
