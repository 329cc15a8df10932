package repositories

import (
	"errors"
	"time"

	"schemecheck_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	UpdateSavedSchemes(userID string, list []models.SavedScheme) error
	UpdateAppliedSchemes(userID string, list []models.AppliedScheme) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	// Email uniqueness is also enforced by the unique index; this check
	// turns the common case into a typed error instead of a driver error.
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	if err := r.db.Create(user).Error; err != nil {
		// Two concurrent signups can both pass the check above; the loser
		// hits the unique index instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateSavedSchemes(userID string, list []models.SavedScheme) error {
	user := &models.User{}
	if err := user.SetSavedList(list); err != nil {
		return err
	}
	return r.updateColumn(userID, "saved_schemes", user.SavedSchemes)
}

func (r *UserRepositoryImpl) UpdateAppliedSchemes(userID string, list []models.AppliedScheme) error {
	user := &models.User{}
	if err := user.SetAppliedList(list); err != nil {
		return err
	}
	return r.updateColumn(userID, "applied_schemes", user.AppliedSchemes)
}

func (r *UserRepositoryImpl) updateColumn(userID, column string, value interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		column:       value,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
