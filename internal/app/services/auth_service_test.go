package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "test",
	})
}

type authFixture struct {
	service  *AuthService
	users    *fakeUserStore
	tokens   *fakeTokenStore
	profiles *fakeProfileStore
	roles    *fakeRoleStore
	storage  *fakeFileStorage
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    newFakeUserStore(),
		tokens:   newFakeTokenStore(),
		profiles: newFakeProfileStore(),
		roles:    newFakeRoleStore(),
		storage:  &fakeFileStorage{},
	}
	f.service = NewAuthService(f.users, f.tokens, f.profiles, f.roles, testJWTService(), f.storage)
	return f
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:         "jane@alumni.edu",
		Password:      "secret123",
		FullName:      "Jane Doe",
		RequestedRole: "alumni",
	}
}

func TestRegisterCreatesPendingProfile(t *testing.T) {
	f := newAuthFixture()

	resp, err := f.service.Register(context.Background(), registerRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, resp.Profile.Status)
	assert.Equal(t, models.RoleAlumni, resp.Profile.RequestedRole)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, "Bearer", resp.Tokens.TokenType)

	// The fresh account has no elevated role yet
	jwtSvc := testJWTService()
	claims, err := jwtSvc.ValidateToken(resp.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleUser), claims.Role)
}

func TestRegisterRejectsNonRequestableRole(t *testing.T) {
	f := newAuthFixture()

	req := registerRequest()
	req.RequestedRole = "admin"

	_, err := f.service.Register(context.Background(), req, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequestedRole)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	f.users.addUser("jane@alumni.edu", "irrelevant")

	_, err := f.service.Register(context.Background(), registerRequest(), nil)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginSucceedsWithEffectiveRole(t *testing.T) {
	f := newAuthFixture()

	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	user := f.users.addUser("jane@alumni.edu", hashed)
	f.roles.roles[user.ID] = []models.AppRole{models.RoleUser, models.RoleAlumni}

	tokens, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@alumni.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := testJWTService().ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleAlumni), claims.Role)
	assert.NotNil(t, f.users.users[user.ID].LastLoginAt)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture()

	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	f.users.addUser("jane@alumni.edu", hashed)

	_, err = f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@alumni.edu",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailMapsToInvalidCredentials(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@alumni.edu",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotates(t *testing.T) {
	f := newAuthFixture()

	user := f.users.addUser("jane@alumni.edu", "hash")
	f.tokens.tokens["old-refresh"] = user.ID

	tokens, err := f.service.RefreshToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.NotEqual(t, "old-refresh", tokens.RefreshToken)
	assert.True(t, f.tokens.revoked["old-refresh"])

	// Reusing the rotated token fails
	_, err = f.service.RefreshToken(context.Background(), "old-refresh")
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshTokenRejectsEmptyAndUnknown(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.RefreshToken(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = f.service.RefreshToken(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestMeToleratesMissingProfile(t *testing.T) {
	f := newAuthFixture()

	user := f.users.addUser("admin@alumni.edu", "hash")
	f.roles.roles[user.ID] = []models.AppRole{models.RoleAdmin}

	resp, err := f.service.Me(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.Profile)
	assert.Equal(t, models.RoleAdmin, resp.EffectiveRole)
}

func TestMeIncludesProfileWhenPresent(t *testing.T) {
	f := newAuthFixture()

	user := f.users.addUser("jane@alumni.edu", "hash")
	f.profiles.add(&models.Profile{ID: 10, UserID: user.ID, FullName: "Jane Doe", Status: models.StatusPending})

	resp, err := f.service.Me(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "Jane Doe", resp.Profile.FullName)
	assert.Equal(t, models.RoleUser, resp.EffectiveRole)
}
