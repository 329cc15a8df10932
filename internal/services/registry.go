package services

import (
	"schemecheck_backend/internal/email"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	EligibilityService EligibilityService
	EmailService       email.Provider
}
