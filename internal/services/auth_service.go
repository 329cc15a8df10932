package services

import (
	"strings"

	"schemecheck_backend/internal/apperrors"
	"schemecheck_backend/internal/auth"
	"schemecheck_backend/internal/email"
	"schemecheck_backend/internal/logger"
	"schemecheck_backend/internal/models"
	"schemecheck_backend/internal/repositories"
	"schemecheck_backend/internal/services/dto"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Signup registers a new account. The raw password is hashed before storage
// and is never logged.
func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashedPassword,
		State:        req.State,
		District:     req.District,
	}
	if err := user.SetSavedList([]models.SavedScheme{}); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := user.SetAppliedList([]models.AppliedScheme{}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userResp, err := dto.NewUserResponse(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user)

	return &dto.AuthResponse{
		Token: token,
		User:  userResp,
	}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userResp, err := dto.NewUserResponse(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  userResp,
	}, nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	if s.emailProvider == nil {
		return
	}

	to, name := user.Email, user.Name
	go func() {
		if err := s.emailProvider.SendWelcome(to, name); err != nil {
			logger.Warn("Failed to send welcome email", "error", err.Error())
		}
	}()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
