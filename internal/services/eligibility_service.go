package services

import (
	"schemecheck_backend/internal/apperrors"
	"schemecheck_backend/internal/catalog"
	"schemecheck_backend/internal/eligibility"
	"schemecheck_backend/internal/models"
	"schemecheck_backend/internal/services/dto"
)

type EligibilityService interface {
	Check(req *dto.EligibilityRequest) ([]models.SchemeRecord, error)
}

type EligibilityServiceImpl struct {
	cat *catalog.Catalog
}

func NewEligibilityService(cat *catalog.Catalog) EligibilityService {
	return &EligibilityServiceImpl{cat: cat}
}

// Check normalizes the submitted profile and runs it against the catalog.
// The catalog is small and read-only, so each request re-evaluates it; no
// caching is needed. A result of zero schemes is returned as-is.
func (s *EligibilityServiceImpl) Check(req *dto.EligibilityRequest) ([]models.SchemeRecord, error) {
	income, err := req.AnnualIncome()
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{
			"income": err.Error(),
		})
	}

	profile := eligibility.Profile{
		Age:        *req.Age,
		Income:     income,
		Occupation: req.Occupation,
		Caste:      req.Caste,
		Gender:     req.Gender,
		State:      req.State,
		District:   req.District,
	}

	return eligibility.Evaluate(profile, s.cat.Schemes()), nil
}
