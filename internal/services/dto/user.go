package dto

type SaveSchemeRequest struct {
	SchemeID string `json:"schemeId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Link     string `json:"link" validate:"omitempty,url"`
}

type ApplySchemeRequest struct {
	SchemeID string `json:"schemeId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Link     string `json:"link" validate:"omitempty,url"`
	// Optional; defaults to "applied" on first apply, keeps the stored
	// status on re-apply when omitted.
	Status string `json:"status" validate:"omitempty,oneof=saved applied in_progress approved rejected"`
}
