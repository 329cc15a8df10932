package dto

import (
	"fmt"

	"schemecheck_backend/internal/models"
)

// Income bracket codes offered by the eligibility form, mapped to a
// representative annual income in rupees. The evaluator itself only works
// with numeric income; brackets are converted here at the boundary.
var incomeBrackets = map[string]int64{
	"below_1lakh": 50_000,
	"1_3lakh":     200_000,
	"3_5lakh":     400_000,
	"above_5lakh": 600_000,
}

type EligibilityRequest struct {
	Age *int `json:"age" validate:"required,min=0,max=120"`
	// Exactly one of Income / IncomeBracket is expected; Income wins when
	// both are present.
	Income        *int64 `json:"income" validate:"omitempty,min=0"`
	IncomeBracket string `json:"incomeBracket" validate:"omitempty,oneof=below_1lakh 1_3lakh 3_5lakh above_5lakh"`
	Occupation    string `json:"occupation"`
	Caste         string `json:"caste"`
	Gender        string `json:"gender"`
	State         string `json:"state"`
	District      string `json:"district"`
}

// AnnualIncome resolves the canonical numeric income from either the raw
// number or the bracket code.
func (r *EligibilityRequest) AnnualIncome() (int64, error) {
	if r.Income != nil {
		return *r.Income, nil
	}
	if r.IncomeBracket == "" {
		return 0, fmt.Errorf("either income or incomeBracket is required")
	}
	value, ok := incomeBrackets[r.IncomeBracket]
	if !ok {
		return 0, fmt.Errorf("unknown income bracket %q", r.IncomeBracket)
	}
	return value, nil
}

type EligibilityResponse struct {
	EligibleSchemes []models.SchemeRecord `json:"eligibleSchemes"`
}
