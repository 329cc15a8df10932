package services_test

import (
	"testing"
	"time"

	"schemecheck_backend/internal/apperrors"
	"schemecheck_backend/internal/auth"
	"schemecheck_backend/internal/services"
	"schemecheck_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupRequest(email string) *dto.SignupRequest {
	return &dto.SignupRequest{
		Name:     "Asha Kumari",
		Email:    email,
		Password: "secret123",
		State:    "Bihar",
		District: "Araria",
	}
}

func TestSignup_CreatesUserAndToken(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	emails := &fakeEmailProvider{}
	svc := services.NewAuthService(repo, emails)

	res, err := svc.Signup(signupRequest("Asha@Test.com "))

	require.NoError(t, err)
	require.NotNil(t, res.User)
	assert.NotEmpty(t, res.Token)

	// Email is stored normalized and the response never carries the hash.
	assert.Equal(t, "asha@test.com", res.User.Email)
	assert.Empty(t, res.User.SavedSchemes)
	assert.Empty(t, res.User.AppliedSchemes)

	claims, err := auth.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)

	assert.Eventually(t, func() bool {
		return emails.welcomeCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	svc := services.NewAuthService(repo, nil)

	_, err := svc.Signup(signupRequest("asha@test.com"))
	require.NoError(t, err)

	_, err = svc.Signup(signupRequest("asha@test.com"))

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeEmailAlreadyExists, appErr.Code)
}

func TestSignup_WeakPassword(t *testing.T) {
	setTestConfig(t)
	svc := services.NewAuthService(newFakeUserRepo(), nil)

	req := signupRequest("asha@test.com")
	req.Password = "12345"

	_, err := svc.Signup(req)

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeWeakPassword, appErr.Code)
}

func TestLogin_Success(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	svc := services.NewAuthService(repo, nil)

	_, err := svc.Signup(signupRequest("asha@test.com"))
	require.NoError(t, err)

	res, err := svc.Login(&dto.LoginRequest{Email: "ASHA@test.com", Password: "secret123"})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "asha@test.com", res.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	setTestConfig(t)
	repo := newFakeUserRepo()
	svc := services.NewAuthService(repo, nil)

	_, err := svc.Signup(signupRequest("asha@test.com"))
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "asha@test.com", Password: "wrong-password"})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	setTestConfig(t)
	svc := services.NewAuthService(newFakeUserRepo(), nil)

	_, err := svc.Login(&dto.LoginRequest{Email: "nobody@test.com", Password: "secret123"})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}
