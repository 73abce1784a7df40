package services

import (
	"testing"
	"time"

	"jobdesk_backend/internal/config"
	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeProfileRepo, *fakeEmailProvider) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.JWT.RefreshTTL = 24
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = nil })

	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	emailProvider := &fakeEmailProvider{}
	return NewAuthService(userRepo, profileRepo, emailProvider), userRepo, profileRepo, emailProvider
}

func TestRegister_CreatesUserAndProfile(t *testing.T) {
	svc, userRepo, profileRepo, emailProvider := newAuthFixture(t)

	err := svc.Register(&dto.RegisterRequest{
		Email:    "aida@example.com",
		Password: "super_password",
		Role:     models.UserRoleCandidate,
		Name:     "Аида",
	})
	require.NoError(t, err)

	user, err := userRepo.FindByEmail("aida@example.com")
	require.NoError(t, err)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "super_password", user.PasswordHash)

	profile, err := profileRepo.FindCandidateProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Аида", profile.Name)

	assert.Equal(t, []string{"aida@example.com"}, emailProvider.sent)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	req := &dto.RegisterRequest{
		Email:       "dup@example.com",
		Password:    "super_password",
		Role:        models.UserRoleEmployer,
		CompanyName: "Acme",
	}
	require.NoError(t, svc.Register(req))

	err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	err := svc.Register(&dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "super_password",
		Role:     models.UserRole("admin"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestLogin_Success(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	require.NoError(t, svc.Register(&dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "super_password",
		Role:     models.UserRoleCandidate,
		Name:     "User",
	}))

	resp, err := svc.Login(&dto.LoginRequest{Email: "user@example.com", Password: "super_password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.UserRoleCandidate, resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	require.NoError(t, svc.Register(&dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "super_password",
		Role:     models.UserRoleCandidate,
		Name:     "User",
	}))

	_, err := svc.Login(&dto.LoginRequest{Email: "user@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Неизвестный email дает ровно ту же ошибку
	_, err = svc.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshToken_RotatesToken(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)

	require.NoError(t, svc.Register(&dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "super_password",
		Role:     models.UserRoleCandidate,
		Name:     "User",
	}))
	first, err := svc.Login(&dto.LoginRequest{Email: "user@example.com", Password: "super_password"})
	require.NoError(t, err)

	second, err := svc.RefreshToken(first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Старый токен одноразовый
	_, err = svc.RefreshToken(first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, hasOld := userRepo.tokens[first.RefreshToken]
	assert.False(t, hasOld)
}

func TestRefreshToken_Expired(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)

	require.NoError(t, svc.Register(&dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "super_password",
		Role:     models.UserRoleCandidate,
		Name:     "User",
	}))
	resp, err := svc.Login(&dto.LoginRequest{Email: "user@example.com", Password: "super_password"})
	require.NoError(t, err)

	userRepo.tokens[resp.RefreshToken].ExpiresAt = time.Now().Add(-time.Hour)

	_, err = svc.RefreshToken(resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyEmail(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)

	require.NoError(t, svc.Register(&dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "super_password",
		Role:     models.UserRoleCandidate,
		Name:     "User",
	}))

	user, err := userRepo.FindByEmail("user@example.com")
	require.NoError(t, err)
	token := user.VerificationToken
	require.NotEmpty(t, token)

	require.NoError(t, svc.VerifyEmail(token))
	assert.True(t, user.IsVerified)

	// Использованный токен больше не действует
	err = svc.VerifyEmail(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
