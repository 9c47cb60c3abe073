package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loan-engine/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskEngine – domain service for rule-based borrower risk scoring
// ---------------------------------------------------------------------------

// BorrowerRiskProfile holds the credit attributes the score is derived from.
type BorrowerRiskProfile struct {
	DebtToIncome   decimal.Decimal // 0.35 means 35%
	YearsEmployed  decimal.Decimal
	CreditScore    int
	MissedPayments int
}

// RiskAssessment is a derived score and its category.
type RiskAssessment struct {
	Category valueobject.RiskCategory
	Score    int
}

const (
	baseRiskScore = 50
	minRiskScore  = 0
	maxRiskScore  = 100

	maxMissedPayments = maxRiskScore + 1
)

var (
	dtiLowThreshold  = decimal.RequireFromString("0.30")
	dtiHighThreshold = decimal.RequireFromString("0.45")
	yearsStable      = decimal.NewFromInt(5)
	yearsEstablished = decimal.NewFromInt(2)
)

// RiskEngine encapsulates the additive risk scoring rules. It is stateless
// and safe for concurrent use.
type RiskEngine struct{}

// NewRiskEngine returns a new engine instance.
func NewRiskEngine() *RiskEngine {
	return &RiskEngine{}
}

// Score starts at 50, applies one adjustment per factor and clamps to [0,100].
//
//	credit score     >=750 +25 | >=650 +15 | >=550 +5 | else -15
//	debt-to-income   <0.30 +10 | <0.45 +5  | else -10
//	years employed   >=5   +10 | >=2   +5  | else 0
//	missed payments  0     +5  | n > 0 -5n
//
// Negative attributes are rejected with ErrInvalidRiskProfile rather than
// clamped.
func (e *RiskEngine) Score(p BorrowerRiskProfile) (int, error) {
	if err := validateProfile(p); err != nil {
		return 0, err
	}

	score := baseRiskScore
	score += creditScoreAdjustment(p.CreditScore)
	score += debtToIncomeAdjustment(p.DebtToIncome)
	score += employmentAdjustment(p.YearsEmployed)
	score += missedPaymentAdjustment(p.MissedPayments)

	return clampScore(score), nil
}

// Categorize maps a score onto its risk band:
//
//	score >= 80 -> Low Risk
//	score >= 60 -> Medium Risk
//	score >= 40 -> High Risk
//	otherwise   -> Very High Risk
func (e *RiskEngine) Categorize(score int) valueobject.RiskCategory {
	switch {
	case score >= 80:
		return valueobject.RiskCategoryLow
	case score >= 60:
		return valueobject.RiskCategoryMedium
	case score >= 40:
		return valueobject.RiskCategoryHigh
	default:
		return valueobject.RiskCategoryVeryHigh
	}
}

// Assess scores the profile and categorizes the result.
func (e *RiskEngine) Assess(p BorrowerRiskProfile) (RiskAssessment, error) {
	score, err := e.Score(p)
	if err != nil {
		return RiskAssessment{}, err
	}
	return RiskAssessment{Score: score, Category: e.Categorize(score)}, nil
}

func validateProfile(p BorrowerRiskProfile) error {
	switch {
	case p.CreditScore < 0:
		return fmt.Errorf("%w: credit score must not be negative, got %d", valueobject.ErrInvalidRiskProfile, p.CreditScore)
	case p.DebtToIncome.IsNegative():
		return fmt.Errorf("%w: debt-to-income must not be negative, got %s", valueobject.ErrInvalidRiskProfile, p.DebtToIncome)
	case p.YearsEmployed.IsNegative():
		return fmt.Errorf("%w: years employed must not be negative, got %s", valueobject.ErrInvalidRiskProfile, p.YearsEmployed)
	case p.MissedPayments < 0:
		return fmt.Errorf("%w: missed payments must not be negative, got %d", valueobject.ErrInvalidRiskProfile, p.MissedPayments)
	}
	return nil
}

func creditScoreAdjustment(creditScore int) int {
	switch {
	case creditScore >= 750:
		return 25
	case creditScore >= 650:
		return 15
	case creditScore >= 550:
		return 5
	default:
		return -15
	}
}

func debtToIncomeAdjustment(dti decimal.Decimal) int {
	switch {
	case dti.LessThan(dtiLowThreshold):
		return 10
	case dti.LessThan(dtiHighThreshold):
		return 5
	default:
		return -10
	}
}

func employmentAdjustment(years decimal.Decimal) int {
	switch {
	case years.GreaterThanOrEqual(yearsStable):
		return 10
	case years.GreaterThanOrEqual(yearsEstablished):
		return 5
	default:
		return 0
	}
}

// missedPaymentAdjustment saturates the count: anything past
// maxMissedPayments already forces the clamped score to zero, and -5*missed
// must not overflow for huge counts.
func missedPaymentAdjustment(missed int) int {
	if missed == 0 {
		return 5
	}
	if missed > maxMissedPayments {
		missed = maxMissedPayments
	}
	return -5 * missed
}

func clampScore(score int) int {
	if score < minRiskScore {
		return minRiskScore
	}
	if score > maxRiskScore {
		return maxRiskScore
	}
	return score
}
