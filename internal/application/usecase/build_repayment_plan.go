package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/loan-engine/internal/application/dto"
	"github.com/bibbank/loan-engine/internal/domain/model"
	"github.com/bibbank/loan-engine/internal/domain/valueobject"
)

// BuildRepaymentPlanUseCase produces the schedule for a loan, reconciled
// against the installments already paid.
type BuildRepaymentPlanUseCase struct {
	logger      *slog.Logger
	instruments *Instruments
}

// NewBuildRepaymentPlanUseCase wires dependencies.
func NewBuildRepaymentPlanUseCase(logger *slog.Logger, instruments *Instruments) *BuildRepaymentPlanUseCase {
	return &BuildRepaymentPlanUseCase{logger: logger, instruments: instruments}
}

// Execute builds the plan.
func (uc *BuildRepaymentPlanUseCase) Execute(
	ctx context.Context,
	req dto.RepaymentPlanRequest,
) (dto.RepaymentPlanResponse, error) {
	terms, err := model.NewLoanTerms(req.Principal, req.AnnualRatePercent, req.TenureMonths)
	if err != nil {
		return dto.RepaymentPlanResponse{}, uc.reject(ctx, err)
	}

	// 1. Plan.
	schedule, err := model.GenerateSchedule(terms, req.StartDate)
	if err != nil {
		return dto.RepaymentPlanResponse{}, uc.reject(ctx, err)
	}

	// 2. Ledger and reconciliation.
	ledger, err := model.LedgerFromPaidCount(schedule, req.PaidMonths)
	if err != nil {
		return dto.RepaymentPlanResponse{}, uc.reject(ctx, err)
	}
	reconciled := model.Reconcile(schedule, ledger)

	// 3. Balance still owed after the paid installments.
	outstanding, err := model.OutstandingBalance(terms, ledger.PaidCount())
	if err != nil {
		return dto.RepaymentPlanResponse{}, uc.reject(ctx, err)
	}

	resp := dto.RepaymentPlanResponse{
		InstallmentAmount:  schedule[0].PaymentAmount,
		TotalInterest:      schedule.TotalInterest(),
		TotalPaid:          ledger.TotalPaid(),
		OutstandingBalance: outstanding,
		PaidCount:          ledger.PaidCount(),
		Rows:               make([]dto.ScheduleRowResponse, 0, len(reconciled)),
	}
	for _, row := range reconciled {
		r := toScheduleRowResponse(row)
		resp.Rows = append(resp.Rows, r)
		if resp.NextDue == nil && row.Status.Equal(valueobject.InstallmentStatusUpcoming) {
			next := r
			resp.NextDue = &next
		}
	}

	uc.instruments.plans.Add(ctx, 1)
	uc.logger.DebugContext(ctx, "repayment plan built",
		"periods", len(schedule),
		"paid", ledger.PaidCount(),
		"outstanding", outstanding.String(),
	)

	return resp, nil
}

func (uc *BuildRepaymentPlanUseCase) reject(ctx context.Context, err error) error {
	uc.instruments.reject(ctx, "plan")
	uc.logger.WarnContext(ctx, "repayment plan rejected", "error", err)
	return fmt.Errorf("build repayment plan: %w", err)
}

func toScheduleRowResponse(row model.ScheduledPayment) dto.ScheduleRowResponse {
	return dto.ScheduleRowResponse{
		Period:           row.Period,
		DueDate:          row.DueDate,
		Status:           row.Status.String(),
		PaymentAmount:    row.PaymentAmount,
		Principal:        row.Principal,
		Interest:         row.Interest,
		Total:            row.Total(),
		RemainingBalance: row.RemainingBalance,
	}
}
