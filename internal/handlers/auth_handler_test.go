package handlers_test

import (
	"net/http"
	"testing"

	"schemecheck_backend/internal/apperrors"
	"schemecheck_backend/internal/handlers"
	"schemecheck_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authRouter(svc *stubAuthService) *gin.Engine {
	h := handlers.NewAuthHandler(newBaseHandler(), svc)
	return newRouter(func(rg *gin.RouterGroup) { h.RegisterRoutes(rg) })
}

func TestSignup_Created(t *testing.T) {
	engine := authRouter(&stubAuthService{
		res: &dto.AuthResponse{
			Token: "token-123",
			User:  &dto.UserResponse{ID: "user-1", Email: "asha@test.com"},
		},
	})

	rec := sendJSON(t, engine, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"name":     "Asha Kumari",
		"email":    "asha@test.com",
		"password": "secret123",
		"state":    "Bihar",
		"district": "Araria",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "token-123")
	assert.Contains(t, rec.Body.String(), "asha@test.com")
}

func TestSignup_ValidationFailure(t *testing.T) {
	engine := authRouter(&stubAuthService{})

	// Missing state/district and a malformed email.
	rec := sendJSON(t, engine, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"name":     "Asha Kumari",
		"email":    "not-an-email",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), string(apperrors.CodeValidationFailed))
}

func TestSignup_DuplicateEmailConflict(t *testing.T) {
	engine := authRouter(&stubAuthService{err: apperrors.ErrEmailAlreadyExists})

	rec := sendJSON(t, engine, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"name":     "Asha Kumari",
		"email":    "asha@test.com",
		"password": "secret123",
		"state":    "Bihar",
		"district": "Araria",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), string(apperrors.CodeEmailAlreadyExists))
}

func TestLogin_Success(t *testing.T) {
	engine := authRouter(&stubAuthService{
		res: &dto.AuthResponse{
			Token: "token-456",
			User:  &dto.UserResponse{ID: "user-1", Email: "asha@test.com"},
		},
	})

	rec := sendJSON(t, engine, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "asha@test.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token-456")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	engine := authRouter(&stubAuthService{err: apperrors.ErrInvalidCredentials})

	rec := sendJSON(t, engine, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "asha@test.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), string(apperrors.CodeInvalidCredentials))
}
