package services_test

import (
	"fmt"
	"sync"
	"testing"

	"schemecheck_backend/internal/config"
	"schemecheck_backend/internal/models"
	"schemecheck_backend/internal/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// fakeUserRepo - in-memory UserRepository for service tests.
type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	nextSeq int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		r.nextSeq++
		user.ID = fmt.Sprintf("user-%d", r.nextSeq)
	}
	copied := *user
	r.byID[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateSavedSchemes(userID string, list []models.SavedScheme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	return user.SetSavedList(list)
}

func (r *fakeUserRepo) UpdateAppliedSchemes(userID string, list []models.AppliedScheme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	return user.SetAppliedList(list)
}

// corruptSavedSchemes simulates a broken JSONB document in storage.
func (r *fakeUserRepo) corruptSavedSchemes(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[userID].SavedSchemes = datatypes.JSON("{not json")
}

// fakeEmailProvider records sent emails; safe for the async send goroutines.
type fakeEmailProvider struct {
	mu            sync.Mutex
	welcomes      []string
	statusUpdates []string
}

func (p *fakeEmailProvider) SendWelcome(to, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.welcomes = append(p.welcomes, to)
	return nil
}

func (p *fakeEmailProvider) SendStatusUpdate(to, name, schemeName, status string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statusUpdates = append(p.statusUpdates, fmt.Sprintf("%s:%s:%s", to, schemeName, status))
	return nil
}

func (p *fakeEmailProvider) welcomeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.welcomes)
}

func (p *fakeEmailProvider) statusUpdateCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.statusUpdates)
}

// setTestConfig installs a config so token generation works without a
// config file or environment.
func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func seedUser(t *testing.T, repo *fakeUserRepo, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Asha Kumari",
		Email:        email,
		PasswordHash: "irrelevant",
		State:        "Bihar",
		District:     "Araria",
	}
	require.NoError(t, user.SetSavedList([]models.SavedScheme{}))
	require.NoError(t, user.SetAppliedList([]models.AppliedScheme{}))
	require.NoError(t, repo.Create(user))
	return user
}
