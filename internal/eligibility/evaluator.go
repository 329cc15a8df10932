// Package eligibility implements the rule evaluator that filters the scheme
// catalog against a citizen's demographic profile.
package eligibility

import (
	"schemecheck_backend/internal/models"
)

// Profile - the demographic details collected from the eligibility form.
// Income is the annual income in rupees; bracket selections from the UI are
// converted to a representative numeric value before reaching this package.
type Profile struct {
	Age        int
	Income     int64
	Occupation string
	Caste      string
	Gender     string
	State      string
	District   string
}

// Evaluate returns the subset of schemes whose eligibility rules the profile
// satisfies, in catalog order. A dimension absent from a scheme's rule
// imposes no constraint. An empty result means no scheme matched; callers
// must not substitute a fallback scheme for it.
func Evaluate(p Profile, schemes []models.SchemeRecord) []models.SchemeRecord {
	eligible := []models.SchemeRecord{}
	for _, scheme := range schemes {
		if Matches(p, scheme.Eligibility) {
			eligible = append(eligible, scheme)
		}
	}
	return eligible
}

// Matches reports whether the profile satisfies every dimension present on
// the rule. All range checks are inclusive.
func Matches(p Profile, rule models.EligibilityRule) bool {
	if age := rule.Age; age != nil {
		if age.Min != nil && p.Age < *age.Min {
			return false
		}
		if age.Max != nil && p.Age > *age.Max {
			return false
		}
	}

	if inc := rule.Income; inc != nil && inc.Max != nil && p.Income > *inc.Max {
		return false
	}

	if len(rule.Occupation) > 0 && !contains(rule.Occupation, p.Occupation) {
		return false
	}
	if len(rule.Gender) > 0 && !contains(rule.Gender, p.Gender) {
		return false
	}
	if len(rule.Caste) > 0 && !contains(rule.Caste, p.Caste) {
		return false
	}
	// District never constrains eligibility; schemes only filter by state.
	if len(rule.States) > 0 && !contains(rule.States, p.State) {
		return false
	}

	return true
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
