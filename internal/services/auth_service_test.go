package services_test

import (
	"net/http"
	"testing"

	"fitpath_backend/internal/auth"
	"fitpath_backend/internal/config"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func newAuthFixture() (services.AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	return services.NewAuthService(users), users
}

func TestRegister_IssuesToken(t *testing.T) {
	svc, users := newAuthFixture()

	resp, err := svc.Register(nil, &dto.RegisterRequest{
		Name:     "Member",
		Email:    "member@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "member", resp.User.Role)

	stored := users.byEmail["member@example.com"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "long-enough-password", stored.PasswordHash)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, users := newAuthFixture()

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Name:     "Member",
		Email:    "member@example.com",
		Password: "short",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Empty(t, users.byEmail)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Name:     "Member",
		Email:    "member@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	_, err = svc.Register(nil, &dto.RegisterRequest{
		Name:     "Someone Else",
		Email:    "member@example.com",
		Password: "another-password-1",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestRegister_AttachesPasswordToSocialAccount(t *testing.T) {
	svc, users := newAuthFixture()
	// Social signup creates the user without a password hash.
	users.add(&models.User{Email: "social@example.com", Name: "S", Role: models.UserRoleMember})

	resp, err := svc.Register(nil, &dto.RegisterRequest{
		Name:     "S",
		Email:    "social@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, users.byEmail["social@example.com"].PasswordHash)
	assert.Len(t, users.byEmail, 1)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Name:     "Member",
		Email:    "member@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	resp, err := svc.Login(nil, &dto.LoginRequest{
		Email:    "member@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "member@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Name:     "Member",
		Email:    "member@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(nil, &dto.LoginRequest{
		Email:    "member@example.com",
		Password: "wrong-password-123",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(nil, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}
