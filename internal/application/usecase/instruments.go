package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Instruments holds the OpenTelemetry instruments shared by the use cases.
type Instruments struct {
	quotes      metric.Int64Counter
	plans       metric.Int64Counter
	projections metric.Int64Counter
	assessments metric.Int64Counter
	rejections  metric.Int64Counter
	riskScores  metric.Int64Histogram
}

// NewInstruments creates the instruments on the given meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	var (
		in  Instruments
		err error
	)
	if in.quotes, err = meter.Int64Counter("loanengine.quotes",
		metric.WithDescription("Loan quotes computed")); err != nil {
		return nil, fmt.Errorf("create quotes counter: %w", err)
	}
	if in.plans, err = meter.Int64Counter("loanengine.plans",
		metric.WithDescription("Repayment plans generated")); err != nil {
		return nil, fmt.Errorf("create plans counter: %w", err)
	}
	if in.projections, err = meter.Int64Counter("loanengine.portfolio_projections",
		metric.WithDescription("Portfolio outstanding projections")); err != nil {
		return nil, fmt.Errorf("create portfolio projections counter: %w", err)
	}
	if in.assessments, err = meter.Int64Counter("loanengine.assessments",
		metric.WithDescription("Borrower risk assessments")); err != nil {
		return nil, fmt.Errorf("create assessments counter: %w", err)
	}
	if in.rejections, err = meter.Int64Counter("loanengine.rejections",
		metric.WithDescription("Requests rejected for invalid input")); err != nil {
		return nil, fmt.Errorf("create rejections counter: %w", err)
	}
	if in.riskScores, err = meter.Int64Histogram("loanengine.risk_score",
		metric.WithDescription("Distribution of computed risk scores"),
		metric.WithExplicitBucketBoundaries(20, 40, 60, 80, 100)); err != nil {
		return nil, fmt.Errorf("create risk score histogram: %w", err)
	}
	return &in, nil
}

// NopInstruments returns instruments that record nothing.
func NopInstruments() *Instruments {
	in, _ := NewInstruments(noop.NewMeterProvider().Meter(""))
	return in
}

func (in *Instruments) reject(ctx context.Context, operation string) {
	in.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (in *Instruments) recordAssessment(ctx context.Context, score int, category string) {
	in.assessments.Add(ctx, 1, metric.WithAttributes(attribute.String("category", category)))
	in.riskScores.Record(ctx, int64(score))
}
