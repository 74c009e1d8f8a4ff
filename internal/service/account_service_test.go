package service

import (
	"testing"

	"hosteldesk/internal/auth"
	"hosteldesk/internal/config"
	"hosteldesk/internal/models"
	"hosteldesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test_jwt_secret",
		AdminSecretKey: "test_admin_secret",
		TokenHeader:    "x-token",
	}
}

func userRegistration() *models.RegisterRequest {
	return &models.RegisterRequest{
		UserType:        models.UserTypeUser,
		FullName:        "Asha Rao",
		Email:           "asha@example.com",
		Mobile:          "9876543210",
		Password:        "password123",
		ConfirmPassword: "password123",
		HostelBlock:     "B",
		RoomNo:          "214",
	}
}

func TestRegisterMissingFields(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAccountService(repo, testConfig())

	req := userRegistration()
	req.Email = ""

	err := svc.Register(req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAccountService(repo, testConfig())

	req := userRegistration()
	req.ConfirmPassword = "different"

	err := svc.Register(req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterInvalidUserType(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAccountService(repo, testConfig())

	req := userRegistration()
	req.UserType = "superuser"

	err := svc.Register(req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAccountService(repo, testConfig())

	require.NoError(t, svc.Register(userRegistration()))

	stored, err := repo.GetUserByEmail("asha@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.Password)
	assert.Equal(t, stored.Password, stored.ConfirmPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAccountService(repo, testConfig())

	require.NoError(t, svc.Register(userRegistration()))
	err := svc.Register(userRegistration())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterAdminSecretKey(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAccountService(repo, testConfig())

	req := &models.RegisterRequest{
		UserType:        models.UserTypeAdmin,
		SecretKey:       "wrong",
		FullName:        "Warden",
		Email:           "warden@example.com",
		Mobile:          "9000000000",
		Password:        "adminpass",
		ConfirmPassword: "adminpass",
	}
	assert.ErrorIs(t, svc.Register(req), ErrValidation)

	req.SecretKey = "test_admin_secret"
	// Admins are accepted even when confirmpassword differs from password.
	req.ConfirmPassword = "somethingelse"
	require.NoError(t, svc.Register(req))

	stored, err := repo.GetUserByEmail("warden@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.UserTypeAdmin, stored.UserType)
}

func TestLoginIssuesDecodableToken(t *testing.T) {
	cfg := testConfig()
	repo := repository.NewMemoryUserRepository()
	svc := NewAccountService(repo, cfg)

	require.NoError(t, svc.Register(userRegistration()))
	stored, err := repo.GetUserByEmail("asha@example.com")
	require.NoError(t, err)

	token, usertype, err := svc.Login("asha@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeUser, usertype)

	claims, err := auth.ParseToken(token, []byte(cfg.JWTSecret))
	require.NoError(t, err)
	assert.Equal(t, stored.ID.Hex(), claims.UserID)
	assert.Equal(t, models.UserTypeUser, claims.UserType)
}

func TestLoginUniformFailure(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAccountService(repo, testConfig())

	require.NoError(t, svc.Register(userRegistration()))

	_, _, wrongPassword := svc.Login("asha@example.com", "nope")
	_, _, unknownEmail := svc.Login("ghost@example.com", "password123")

	assert.ErrorIs(t, wrongPassword, ErrAuth)
	assert.ErrorIs(t, unknownEmail, ErrAuth)
	// Both causes fail with the exact same error value.
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestGetProfile(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAccountService(repo, testConfig())

	require.NoError(t, svc.Register(userRegistration()))
	stored, err := repo.GetUserByEmail("asha@example.com")
	require.NoError(t, err)

	user, err := svc.GetProfile(stored.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", user.FullName)

	_, err = svc.GetProfile("not-an-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
