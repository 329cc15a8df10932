package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"schemecheck_backend/internal/apperrors"
	"schemecheck_backend/internal/auth"
	"schemecheck_backend/internal/config"
	"schemecheck_backend/internal/handlers"
	"schemecheck_backend/internal/models"
	"schemecheck_backend/internal/services"
	"schemecheck_backend/internal/services/dto"
	"schemecheck_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func newBaseHandler() *handlers.BaseHandler {
	return handlers.NewBaseHandler(validator.New())
}

func newRouter(register func(rg *gin.RouterGroup)) *gin.Engine {
	engine := gin.New()
	api := engine.Group("/api")
	register(api)
	return engine
}

func sendJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID)
	require.NoError(t, err)
	return token
}

// stubUserService - canned UserService for handler tests.
type stubUserService struct {
	profile     *dto.UserResponse
	saved       []models.SavedScheme
	applied     []models.AppliedScheme
	err         *apperrors.AppError
	lastUserID  string
	lastUnsaved string
}

var _ services.UserService = (*stubUserService)(nil)

func (s *stubUserService) GetProfile(userID string) (*dto.UserResponse, error) {
	s.lastUserID = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubUserService) SaveScheme(userID string, req *dto.SaveSchemeRequest) ([]models.SavedScheme, error) {
	s.lastUserID = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.saved, nil
}

func (s *stubUserService) UnsaveScheme(userID, schemeID string) ([]models.SavedScheme, error) {
	s.lastUserID = userID
	s.lastUnsaved = schemeID
	if s.err != nil {
		return nil, s.err
	}
	return s.saved, nil
}

func (s *stubUserService) ApplyToScheme(userID string, req *dto.ApplySchemeRequest) ([]models.AppliedScheme, error) {
	s.lastUserID = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.applied, nil
}

// stubAuthService - canned AuthService for handler tests.
type stubAuthService struct {
	res *dto.AuthResponse
	err *apperrors.AppError
}

var _ services.AuthService = (*stubAuthService)(nil)

func (s *stubAuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.res, nil
}

func (s *stubAuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.res, nil
}
