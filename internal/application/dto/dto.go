package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// QuoteLoanRequest carries the inputs of a loan quote. A nil rate asks for
// the indicative rate of the amount's tier.
type QuoteLoanRequest struct {
	AnnualRatePercent *decimal.Decimal `json:"annual_rate_percent,omitempty"`
	Amount            decimal.Decimal  `json:"amount"`
	AnnualIncome      decimal.Decimal  `json:"annual_income"`
	TenureMonths      int              `json:"tenure_months"`
}

// RepaymentPlanRequest carries loan terms plus how many installments have
// already been paid.
type RepaymentPlanRequest struct {
	StartDate         time.Time       `json:"start_date"`
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TenureMonths      int             `json:"tenure_months"`
	PaidMonths        int             `json:"paid_months"`
}

// PortfolioLoan is one loan in a portfolio outstanding request.
type PortfolioLoan struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TenureMonths      int             `json:"tenure_months"`
	PaidMonths        int             `json:"paid_months"`
	Active            bool            `json:"active"`
}

// PortfolioOutstandingRequest lists the loans to project.
type PortfolioOutstandingRequest struct {
	Loans []PortfolioLoan `json:"loans"`
}

// AssessBorrowerRequest carries a borrower's credit attributes.
type AssessBorrowerRequest struct {
	Name           string          `json:"name,omitempty"`
	DebtToIncome   decimal.Decimal `json:"debt_to_income"`
	YearsEmployed  decimal.Decimal `json:"years_employed"`
	CreditScore    int             `json:"credit_score"`
	MissedPayments int             `json:"missed_payments"`
}

// RiskDistributionRequest lists the borrowers to bucket.
type RiskDistributionRequest struct {
	Borrowers []AssessBorrowerRequest `json:"borrowers"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// QuoteResponse summarises the cost and affordability of a loan.
type QuoteResponse struct {
	Principal           decimal.Decimal `json:"principal"`
	AnnualRatePercent   decimal.Decimal `json:"annual_rate_percent"`
	InstallmentAmount   decimal.Decimal `json:"installment_amount"`
	TotalInterest       decimal.Decimal `json:"total_interest"`
	TotalPayable        decimal.Decimal `json:"total_payable"`
	DebtToIncomePercent decimal.Decimal `json:"debt_to_income_percent"`
	TenureMonths        int             `json:"tenure_months"`
	RateEstimated       bool            `json:"rate_estimated"`
	Eligible            bool            `json:"eligible"`
}

// ScheduleRowResponse represents a single reconciled schedule row.
type ScheduleRowResponse struct {
	DueDate          time.Time       `json:"due_date"`
	Status           string          `json:"status"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Period           int             `json:"period"`
}

// RepaymentPlanResponse is a full schedule with payment status.
type RepaymentPlanResponse struct {
	NextDue            *ScheduleRowResponse  `json:"next_due,omitempty"`
	InstallmentAmount  decimal.Decimal       `json:"installment_amount"`
	TotalInterest      decimal.Decimal       `json:"total_interest"`
	TotalPaid          decimal.Decimal       `json:"total_paid"`
	OutstandingBalance decimal.Decimal       `json:"outstanding_balance"`
	Rows               []ScheduleRowResponse `json:"rows"`
	PaidCount          int                   `json:"paid_count"`
}

// PortfolioOutstandingResponse is the summed projected balance.
type PortfolioOutstandingResponse struct {
	TotalOutstanding decimal.Decimal   `json:"total_outstanding"`
	PerLoan          []decimal.Decimal `json:"per_loan"`
	ActiveLoans      int               `json:"active_loans"`
}

// AssessmentResponse is the external representation of a risk assessment.
type AssessmentResponse struct {
	Name     string `json:"name,omitempty"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Score    int    `json:"score"`
}

// RiskBucket counts borrowers in one category.
type RiskBucket struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Count    int    `json:"count"`
}

// RiskDistributionResponse lists every category, safest first.
type RiskDistributionResponse struct {
	Assessments []AssessmentResponse `json:"assessments"`
	Buckets     []RiskBucket         `json:"buckets"`
	Total       int                  `json:"total"`
}
