package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/loan-engine/internal/application/dto"
	"github.com/bibbank/loan-engine/internal/domain/service"
	"github.com/bibbank/loan-engine/internal/domain/valueobject"
)

// AssessBorrowerUseCase scores borrowers and buckets them by risk category.
type AssessBorrowerUseCase struct {
	engine      *service.RiskEngine
	logger      *slog.Logger
	instruments *Instruments
}

// NewAssessBorrowerUseCase wires dependencies.
func NewAssessBorrowerUseCase(
	engine *service.RiskEngine,
	logger *slog.Logger,
	instruments *Instruments,
) *AssessBorrowerUseCase {
	return &AssessBorrowerUseCase{engine: engine, logger: logger, instruments: instruments}
}

// Execute assesses a single borrower.
func (uc *AssessBorrowerUseCase) Execute(ctx context.Context, req dto.AssessBorrowerRequest) (dto.AssessmentResponse, error) {
	resp, err := uc.assess(ctx, req)
	if err != nil {
		uc.instruments.reject(ctx, "assess")
		uc.logger.WarnContext(ctx, "borrower assessment rejected", "error", err)
		return dto.AssessmentResponse{}, fmt.Errorf("assess borrower: %w", err)
	}
	return resp, nil
}

// Distribution assesses every borrower and counts them per category. All four
// categories are always present, safest first. One invalid profile fails the
// whole request.
func (uc *AssessBorrowerUseCase) Distribution(
	ctx context.Context,
	req dto.RiskDistributionRequest,
) (dto.RiskDistributionResponse, error) {
	categories := valueobject.RiskCategories()
	counts := make([]int, len(categories))

	resp := dto.RiskDistributionResponse{
		Assessments: make([]dto.AssessmentResponse, 0, len(req.Borrowers)),
	}
	for i, b := range req.Borrowers {
		a, err := uc.assess(ctx, b)
		if err != nil {
			uc.instruments.reject(ctx, "distribution")
			uc.logger.WarnContext(ctx, "risk distribution rejected", "borrower_index", i, "error", err)
			return dto.RiskDistributionResponse{}, fmt.Errorf("risk distribution: borrower %d: %w", i, err)
		}
		resp.Assessments = append(resp.Assessments, a)

		category, err := valueobject.NewRiskCategory(a.Category)
		if err != nil {
			return dto.RiskDistributionResponse{}, fmt.Errorf("risk distribution: borrower %d: %w", i, err)
		}
		counts[category.Rank()]++
	}

	for i, c := range categories {
		resp.Buckets = append(resp.Buckets, dto.RiskBucket{
			Category: c.Label(),
			Color:    c.Color(),
			Count:    counts[i],
		})
	}
	resp.Total = len(req.Borrowers)

	return resp, nil
}

func (uc *AssessBorrowerUseCase) assess(ctx context.Context, req dto.AssessBorrowerRequest) (dto.AssessmentResponse, error) {
	assessment, err := uc.engine.Assess(service.BorrowerRiskProfile{
		CreditScore:    req.CreditScore,
		DebtToIncome:   req.DebtToIncome,
		YearsEmployed:  req.YearsEmployed,
		MissedPayments: req.MissedPayments,
	})
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	uc.instruments.recordAssessment(ctx, assessment.Score, assessment.Category.Label())
	uc.logger.DebugContext(ctx, "borrower assessed",
		"score", assessment.Score,
		"category", assessment.Category.Label(),
	)

	return dto.AssessmentResponse{
		Name:     req.Name,
		Score:    assessment.Score,
		Category: assessment.Category.Label(),
		Color:    assessment.Category.Color(),
	}, nil
}
