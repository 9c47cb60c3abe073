package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskCategory – immutable value object
// ---------------------------------------------------------------------------

// RiskCategory is one of four ordered risk bands. Rank 0 is the safest band.
type RiskCategory struct {
	label string
	color string
	rank  int
}

const (
	riskLabelLow      = "Low Risk"
	riskLabelMedium   = "Medium Risk"
	riskLabelHigh     = "High Risk"
	riskLabelVeryHigh = "Very High Risk"
)

var (
	RiskCategoryLow      = RiskCategory{label: riskLabelLow, color: "#06d6a0", rank: 0}
	RiskCategoryMedium   = RiskCategory{label: riskLabelMedium, color: "#ffd166", rank: 1}
	RiskCategoryHigh     = RiskCategory{label: riskLabelHigh, color: "#ef476f", rank: 2}
	RiskCategoryVeryHigh = RiskCategory{label: riskLabelVeryHigh, color: "#d62828", rank: 3}
)

var validRiskCategories = map[string]RiskCategory{
	riskLabelLow:      RiskCategoryLow,
	riskLabelMedium:   RiskCategoryMedium,
	riskLabelHigh:     RiskCategoryHigh,
	riskLabelVeryHigh: RiskCategoryVeryHigh,
}

// RiskCategories returns every category ordered from safest to riskiest.
func RiskCategories() []RiskCategory {
	return []RiskCategory{RiskCategoryLow, RiskCategoryMedium, RiskCategoryHigh, RiskCategoryVeryHigh}
}

// NewRiskCategory looks a category up by its display label.
func NewRiskCategory(label string) (RiskCategory, error) {
	v, ok := validRiskCategories[label]
	if !ok {
		return RiskCategory{}, fmt.Errorf("invalid risk category: %q", label)
	}
	return v, nil
}

// Label returns the display label, e.g. "Medium Risk".
func (c RiskCategory) Label() string { return c.label }

// Color returns the display color as a hex string.
func (c RiskCategory) Color() string { return c.color }

// Rank orders categories; higher means riskier.
func (c RiskCategory) Rank() int { return c.rank }

// String returns the display label.
func (c RiskCategory) String() string { return c.label }

// IsZero returns true if the category has not been initialised.
func (c RiskCategory) IsZero() bool { return c.label == "" }

// Equal returns true when both categories carry the same label.
func (c RiskCategory) Equal(other RiskCategory) bool { return c.label == other.label }
