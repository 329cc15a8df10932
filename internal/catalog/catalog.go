package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"schemecheck_backend/internal/models"
)

// Catalog holds the scheme records in file order plus the state/district
// directory. It is built once at startup and is read-only afterwards, so it
// is safe for concurrent readers without locking.
type Catalog struct {
	schemes   []models.SchemeRecord
	byID      map[string]*models.SchemeRecord
	locations []models.StateLocation
}

type catalogFile struct {
	Schemes   []models.SchemeRecord  `json:"schemes"`
	Locations []models.StateLocation `json:"locations"`
}

// Load reads and validates the catalog data file. Any malformed record makes
// the whole load fail; downstream evaluation assumes every record is sound,
// so a broken file must stop the process before it serves traffic.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return New(file.Schemes, file.Locations)
}

// New builds a catalog from already-parsed records, applying the same
// validation as Load.
func New(schemes []models.SchemeRecord, locations []models.StateLocation) (*Catalog, error) {
	if len(schemes) == 0 {
		return nil, fmt.Errorf("catalog contains no schemes")
	}

	byID := make(map[string]*models.SchemeRecord, len(schemes))
	for i := range schemes {
		s := &schemes[i]
		if err := validateScheme(s); err != nil {
			return nil, fmt.Errorf("scheme %d (%q): %w", i, s.ID, err)
		}
		if _, exists := byID[s.ID]; exists {
			return nil, fmt.Errorf("scheme %d: duplicate id %q", i, s.ID)
		}
		byID[s.ID] = s
	}

	return &Catalog{
		schemes:   schemes,
		byID:      byID,
		locations: locations,
	}, nil
}

func validateScheme(s *models.SchemeRecord) error {
	if s.ID == "" {
		return fmt.Errorf("missing id")
	}
	for _, lang := range []string{models.LangEnglish, models.LangHindi} {
		if s.Name[lang] == "" {
			return fmt.Errorf("missing %s name", lang)
		}
		if s.Description[lang] == "" {
			return fmt.Errorf("missing %s description", lang)
		}
	}
	if age := s.Eligibility.Age; age != nil {
		if age.Min != nil && *age.Min < 0 {
			return fmt.Errorf("age.min is negative")
		}
		if age.Min != nil && age.Max != nil && *age.Min > *age.Max {
			return fmt.Errorf("age.min %d exceeds age.max %d", *age.Min, *age.Max)
		}
	}
	if inc := s.Eligibility.Income; inc != nil && inc.Max != nil && *inc.Max < 0 {
		return fmt.Errorf("income.max is negative")
	}
	return nil
}

// Schemes returns all records in catalog (insertion) order. Callers must not
// mutate the returned slice.
func (c *Catalog) Schemes() []models.SchemeRecord {
	return c.schemes
}

// ByID returns the scheme with the given id, or nil.
func (c *Catalog) ByID(id string) *models.SchemeRecord {
	return c.byID[id]
}

// ByCategory returns all schemes tagged with the given category, preserving
// catalog order.
func (c *Catalog) ByCategory(category string) []models.SchemeRecord {
	var out []models.SchemeRecord
	for _, s := range c.schemes {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Locations returns the directory of states and their districts.
func (c *Catalog) Locations() []models.StateLocation {
	return c.locations
}

// Len returns the number of schemes in the catalog.
func (c *Catalog) Len() int {
	return len(c.schemes)
}
