package dto

import "schemecheck_backend/internal/models"

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	State    string `json:"state" validate:"required"`
	District string `json:"district" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	State          string                 `json:"state"`
	District       string                 `json:"district"`
	SavedSchemes   []models.SavedScheme   `json:"savedSchemes"`
	AppliedSchemes []models.AppliedScheme `json:"appliedSchemes"`
}

// AuthResponse - returned by both signup and login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// NewUserResponse maps a stored user onto the API shape, decoding the JSONB
// lists and hiding the password hash.
func NewUserResponse(user *models.User) (*UserResponse, error) {
	saved, err := user.SavedList()
	if err != nil {
		return nil, err
	}
	applied, err := user.AppliedList()
	if err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		State:          user.State,
		District:       user.District,
		SavedSchemes:   saved,
		AppliedSchemes: applied,
	}, nil
}
