package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// ApplicationStatus - lifecycle of a scheme application tracked per user.
type ApplicationStatus string

const (
	ApplicationStatusSaved      ApplicationStatus = "saved"
	ApplicationStatusApplied    ApplicationStatus = "applied"
	ApplicationStatusInProgress ApplicationStatus = "in_progress"
	ApplicationStatusApproved   ApplicationStatus = "approved"
	ApplicationStatusRejected   ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether s is one of the known statuses.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusSaved, ApplicationStatusApplied, ApplicationStatusInProgress,
		ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// SavedScheme - a bookmark reference kept by a user. At most one entry per
// schemeId per account.
type SavedScheme struct {
	SchemeID string    `json:"schemeId"`
	Name     string    `json:"name"`
	Link     string    `json:"link,omitempty"`
	SavedAt  time.Time `json:"savedAt"`
}

// AppliedScheme - a scheme the user has applied to, with status tracking.
// Re-applying updates Status and LastUpdatedAt in place; AppliedAt is set
// once and never changed afterwards.
type AppliedScheme struct {
	SchemeID      string            `json:"schemeId"`
	Name          string            `json:"name"`
	Link          string            `json:"link,omitempty"`
	Status        ApplicationStatus `json:"status"`
	AppliedAt     time.Time         `json:"appliedAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	State        string `gorm:"not null" json:"state"`
	District     string `gorm:"not null" json:"district"`

	// Embedded lists, one JSONB document per column. Every mutation touches
	// exactly one row, so document-level last-write-wins is enough.
	SavedSchemes   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"savedSchemes"`
	AppliedSchemes datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"appliedSchemes"`
}

// SavedList decodes the savedSchemes JSONB column. A decode failure is
// returned rather than read as an empty list, so a corrupt column cannot be
// silently overwritten by the next save.
func (u *User) SavedList() ([]SavedScheme, error) {
	var list []SavedScheme
	if len(u.SavedSchemes) > 0 {
		if err := json.Unmarshal(u.SavedSchemes, &list); err != nil {
			return nil, fmt.Errorf("decode savedSchemes for user %s: %w", u.ID, err)
		}
	}
	if list == nil {
		list = []SavedScheme{}
	}
	return list, nil
}

// AppliedList decodes the appliedSchemes JSONB column.
func (u *User) AppliedList() ([]AppliedScheme, error) {
	var list []AppliedScheme
	if len(u.AppliedSchemes) > 0 {
		if err := json.Unmarshal(u.AppliedSchemes, &list); err != nil {
			return nil, fmt.Errorf("decode appliedSchemes for user %s: %w", u.ID, err)
		}
	}
	if list == nil {
		list = []AppliedScheme{}
	}
	return list, nil
}

func (u *User) SetSavedList(list []SavedScheme) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	u.SavedSchemes = datatypes.JSON(raw)
	return nil
}

func (u *User) SetAppliedList(list []AppliedScheme) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	u.AppliedSchemes = datatypes.JSON(raw)
	return nil
}
