package models

// Language codes used by the catalog data file.
const (
	LangEnglish = "english"
	LangHindi   = "hindi"
)

// LocalizedText maps a language code to localized text.
type LocalizedText map[string]string

// Get returns the text for lang, falling back to English.
func (t LocalizedText) Get(lang string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[LangEnglish]
}

// LocalizedList maps a language code to a list of localized strings.
type LocalizedList map[string][]string

type AgeRule struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

type IncomeRule struct {
	// Max is the annual income ceiling in rupees, inclusive.
	Max *int64 `json:"max,omitempty"`
}

// EligibilityRule - optional constraints a profile must satisfy to qualify
// for a scheme. An absent field imposes no constraint on that dimension.
type EligibilityRule struct {
	Age        *AgeRule    `json:"age,omitempty"`
	Income     *IncomeRule `json:"income,omitempty"`
	Occupation []string    `json:"occupation,omitempty"`
	Gender     []string    `json:"gender,omitempty"`
	Caste      []string    `json:"caste,omitempty"`
	States     []string    `json:"states,omitempty"`
}

// SchemeRecord - a government welfare program. Loaded once at startup from
// the catalog data file and never mutated afterwards.
type SchemeRecord struct {
	ID                 string          `json:"id"`
	Name               LocalizedText   `json:"name"`
	Description        LocalizedText   `json:"description"`
	Benefits           LocalizedList   `json:"benefits,omitempty"`
	ApplicationProcess LocalizedText   `json:"applicationProcess,omitempty"`
	Documents          []string        `json:"documents,omitempty"`
	Category           string          `json:"category,omitempty"`
	Link               string          `json:"link,omitempty"`
	Eligibility        EligibilityRule `json:"eligibility"`
}

// StateLocation - a state with its districts, served to the profile form.
type StateLocation struct {
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}
