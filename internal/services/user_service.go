package services

import (
	"time"

	"schemecheck_backend/internal/apperrors"
	"schemecheck_backend/internal/email"
	"schemecheck_backend/internal/logger"
	"schemecheck_backend/internal/models"
	"schemecheck_backend/internal/repositories"
	"schemecheck_backend/internal/services/dto"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserResponse, error)
	SaveScheme(userID string, req *dto.SaveSchemeRequest) ([]models.SavedScheme, error)
	UnsaveScheme(userID, schemeID string) ([]models.SavedScheme, error)
	ApplyToScheme(userID string, req *dto.ApplySchemeRequest) ([]models.AppliedScheme, error)
}

type UserServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewUserService(userRepo repositories.UserRepository, emailProvider email.Provider) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	profile, err := dto.NewUserResponse(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// SaveScheme bookmarks a scheme. Saving an already-saved scheme is a no-op;
// the list never holds two entries for the same schemeId.
func (s *UserServiceImpl) SaveScheme(userID string, req *dto.SaveSchemeRequest) ([]models.SavedScheme, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	saved, err := user.SavedList()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, entry := range saved {
		if entry.SchemeID == req.SchemeID {
			return saved, nil
		}
	}

	saved = append(saved, models.SavedScheme{
		SchemeID: req.SchemeID,
		Name:     req.Name,
		Link:     req.Link,
		SavedAt:  time.Now(),
	})

	if err := s.userRepo.UpdateSavedSchemes(userID, saved); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

// UnsaveScheme removes a bookmark. Removing an id that was never saved
// leaves the list unchanged and is not an error.
func (s *UserServiceImpl) UnsaveScheme(userID, schemeID string) ([]models.SavedScheme, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	saved, err := user.SavedList()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	filtered := make([]models.SavedScheme, 0, len(saved))
	for _, entry := range saved {
		if entry.SchemeID != schemeID {
			filtered = append(filtered, entry)
		}
	}

	if len(filtered) == len(saved) {
		return saved, nil
	}

	if err := s.userRepo.UpdateSavedSchemes(userID, filtered); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return filtered, nil
}

// ApplyToScheme records an application. The first apply appends an entry
// (status defaults to "applied"); a re-apply updates the status and
// lastUpdatedAt in place, keeping the original appliedAt.
func (s *UserServiceImpl) ApplyToScheme(userID string, req *dto.ApplySchemeRequest) ([]models.AppliedScheme, error) {
	status := models.ApplicationStatus(req.Status)
	if req.Status != "" && !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	applied, err := user.AppliedList()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	now := time.Now()

	idx := -1
	for i, entry := range applied {
		if entry.SchemeID == req.SchemeID {
			idx = i
			break
		}
	}

	statusChanged := false
	if idx == -1 {
		if status == "" {
			status = models.ApplicationStatusApplied
		}
		applied = append(applied, models.AppliedScheme{
			SchemeID:      req.SchemeID,
			Name:          req.Name,
			Link:          req.Link,
			Status:        status,
			AppliedAt:     now,
			LastUpdatedAt: now,
		})
	} else {
		if status != "" && status != applied[idx].Status {
			applied[idx].Status = status
			statusChanged = true
		}
		applied[idx].LastUpdatedAt = now
	}

	if err := s.userRepo.UpdateAppliedSchemes(userID, applied); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if statusChanged {
		s.sendStatusEmail(user, req.Name, string(status))
	}

	return applied, nil
}

func (s *UserServiceImpl) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) sendStatusEmail(user *models.User, schemeName, status string) {
	if s.emailProvider == nil {
		return
	}

	to, name := user.Email, user.Name
	go func() {
		if err := s.emailProvider.SendStatusUpdate(to, name, schemeName, status); err != nil {
			logger.Warn("Failed to send status update email", "error", err.Error())
		}
	}()
}
