package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loan-engine/internal/application/dto"
	"github.com/bibbank/loan-engine/internal/application/usecase"
	"github.com/bibbank/loan-engine/internal/domain/service"
	"github.com/bibbank/loan-engine/internal/infrastructure/config"
	"github.com/bibbank/loan-engine/pkg/observability"
)

// report is what the command prints.
type report struct {
	Quote      dto.QuoteResponse         `json:"quote"`
	Plan       dto.RepaymentPlanResponse `json:"plan"`
	Assessment *dto.AssessmentResponse   `json:"assessment,omitempty"`

	Portfolio        *dto.PortfolioOutstandingResponse `json:"portfolio,omitempty"`
	RiskDistribution *dto.RiskDistributionResponse     `json:"risk_distribution,omitempty"`
}

type options struct {
	principal string
	rate      string
	income    string
	start     string
	dti       string
	years     string
	portfolio string
	tenure    int
	paid      int
	credit    int
	missed    int
}

func main() {
	cfg := config.Load(time.Now().UTC())

	var opts options
	flag.StringVar(&opts.principal, "principal", "", "loan principal, e.g. 20000")
	flag.StringVar(&opts.rate, "rate", "", "annual rate percent; empty uses the amount tier")
	flag.IntVar(&opts.tenure, "tenure", 36, "tenure in months")
	flag.StringVar(&opts.income, "income", "0", "annual income for the affordability check")
	flag.StringVar(&opts.start, "start", cfg.Loan.StartDate.Format(time.DateOnly), "disbursement date YYYY-MM-DD")
	flag.IntVar(&opts.paid, "paid", cfg.Loan.PaidMonths, "installments already paid")
	flag.IntVar(&opts.credit, "credit-score", 0, "borrower credit score; 0 skips the risk assessment")
	flag.StringVar(&opts.dti, "dti", "0", "borrower debt-to-income ratio, e.g. 0.32")
	flag.StringVar(&opts.years, "years-employed", "0", "borrower years employed")
	flag.IntVar(&opts.missed, "missed", 0, "borrower missed payments")
	flag.StringVar(&opts.portfolio, "portfolio", "", "JSON file with loans and borrowers to project and bucket")
	flag.Parse()

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	if err := run(context.Background(), logger, cfg, opts); err != nil {
		logger.Error("loan engine failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg config.Config, opts options) error {
	// --- Metrics ------------------------------------------------------------
	metrics, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: cfg.ServiceName})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() {
		if names, err := metrics.FamilyNames(); err == nil {
			logger.Debug("metrics recorded", "families", names)
		}
		if err := metrics.Provider.Shutdown(ctx); err != nil {
			logger.Warn("metrics shutdown failed", "error", err)
		}
	}()

	instruments, err := usecase.NewInstruments(metrics.Meter())
	if err != nil {
		return err
	}

	// --- Inputs -------------------------------------------------------------
	principal, err := decimal.NewFromString(opts.principal)
	if err != nil {
		return fmt.Errorf("parse principal %q: %w", opts.principal, err)
	}
	income, err := decimal.NewFromString(opts.income)
	if err != nil {
		return fmt.Errorf("parse income %q: %w", opts.income, err)
	}
	start, err := time.Parse(time.DateOnly, opts.start)
	if err != nil {
		return fmt.Errorf("parse start date %q: %w", opts.start, err)
	}

	quoteReq := dto.QuoteLoanRequest{Amount: principal, TenureMonths: opts.tenure, AnnualIncome: income}
	if opts.rate != "" {
		rate, err := decimal.NewFromString(opts.rate)
		if err != nil {
			return fmt.Errorf("parse rate %q: %w", opts.rate, err)
		}
		quoteReq.AnnualRatePercent = &rate
	}

	// --- Use cases ----------------------------------------------------------
	quoteUC := usecase.NewQuoteLoanUseCase(logger, instruments)
	planUC := usecase.NewBuildRepaymentPlanUseCase(logger, instruments)
	assessUC := usecase.NewAssessBorrowerUseCase(service.NewRiskEngine(), logger, instruments)

	quote, err := quoteUC.Execute(ctx, quoteReq)
	if err != nil {
		return err
	}

	plan, err := planUC.Execute(ctx, dto.RepaymentPlanRequest{
		Principal:         quote.Principal,
		AnnualRatePercent: quote.AnnualRatePercent,
		TenureMonths:      quote.TenureMonths,
		StartDate:         start,
		PaidMonths:        opts.paid,
	})
	if err != nil {
		return err
	}

	out := report{Quote: quote, Plan: plan}

	if opts.credit > 0 {
		dti, err := decimal.NewFromString(opts.dti)
		if err != nil {
			return fmt.Errorf("parse dti %q: %w", opts.dti, err)
		}
		years, err := decimal.NewFromString(opts.years)
		if err != nil {
			return fmt.Errorf("parse years employed %q: %w", opts.years, err)
		}
		assessment, err := assessUC.Execute(ctx, dto.AssessBorrowerRequest{
			CreditScore:    opts.credit,
			DebtToIncome:   dti,
			YearsEmployed:  years,
			MissedPayments: opts.missed,
		})
		if err != nil {
			return err
		}
		out.Assessment = &assessment
	}

	if opts.portfolio != "" {
		in, err := loadPortfolio(opts.portfolio)
		if err != nil {
			return err
		}
		outstanding, distribution, err := runPortfolio(ctx, in,
			usecase.NewPortfolioOutstandingUseCase(logger, instruments), assessUC)
		if err != nil {
			return err
		}
		out.Portfolio = &outstanding
		out.RiskDistribution = &distribution
	}

	logger.Info("loan engine report ready",
		"installment", quote.InstallmentAmount.String(),
		"periods", len(plan.Rows),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
