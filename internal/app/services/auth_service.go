package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/auth"
	"github.com/alumnihub/portal-api/internal/pkg/filestorage"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

const profilePhotoDir = "profiles"

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userStore    UserStore
	tokenStore   TokenStore
	profileStore ProfileStore
	roleStore    RoleStore
	jwtService   *auth.JWTService
	storage      filestorage.FileStorage
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore UserStore,
	tokenStore TokenStore,
	profileStore ProfileStore,
	roleStore RoleStore,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
) *AuthService {
	return &AuthService{
		userStore:    userStore,
		tokenStore:   tokenStore,
		profileStore: profileStore,
		roleStore:    roleStore,
		jwtService:   jwtService,
		storage:      storage,
	}
}

// Register creates a user account together with its pending profile. The
// caller is authenticated immediately but carries only the base role until
// an admin adjudicates the profile.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, photo *multipart.FileHeader) (*dto.RegisterResponse, error) {
	requestedRole := models.AppRole(req.RequestedRole)
	if !requestedRole.Requestable() {
		return nil, apperrors.ErrInvalidRequestedRole
	}

	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	// Save the photo before the transaction; remove it again if the
	// transaction does not commit.
	var photoURL *string
	if photo != nil {
		savedPath, err := s.storage.SaveFileWithPath(photo, profilePhotoDir)
		if err != nil {
			return nil, fmt.Errorf("error saving profile photo: %w", err)
		}
		if savedPath != "" {
			photoURL = &savedPath
		}
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
	}
	profile := &models.Profile{
		Email:           req.Email,
		FullName:        req.FullName,
		Phone:           req.Phone,
		Department:      req.Department,
		Batch:           req.Batch,
		Company:         req.Company,
		CurrentPosition: req.CurrentPosition,
		LinkedinURL:     req.LinkedinURL,
		PhotoURL:        photoURL,
		Bio:             req.Bio,
		RollNo:          req.RollNo,
		LPA:             req.LPA,
		RequestedRole:   requestedRole,
		Status:          models.StatusPending,
	}

	if err := s.userStore.CreateUserWithProfile(ctx, user, profile); err != nil {
		if photoURL != nil {
			if delErr := s.storage.DeleteFile(*photoURL); delErr != nil {
				logger.Warn().Err(delErr).Str("path", *photoURL).Msg("Could not remove orphaned profile photo")
			}
		}
		return nil, err
	}

	tokens, err := s.generateTokenResponse(ctx, user, models.RoleUser)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("requestedRole", string(requestedRole)).Msg("User registered")
	return &dto.RegisterResponse{
		Profile: profile,
		Tokens:  tokens,
	}, nil
}

// Login authenticates a user and stamps the login time
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userStore.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	role, err := s.effectiveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	tokens, err := s.generateTokenResponse(ctx, user, role)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Could not update last login time")
	}

	return tokens, nil
}

// RefreshToken rotates a refresh token: the old token is revoked and a new
// pair is issued with the user's current effective role.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, err := s.tokenStore.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenStore.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	role, err := s.effectiveRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return s.generateTokenResponse(ctx, user, role)
}

// Me returns the authenticated user with profile and roles resolved
func (s *AuthService) Me(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	user, err := s.userStore.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roles, err := s.roleStore.GetRolesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.MeResponse{
		User:          user,
		Roles:         roles,
		EffectiveRole: models.EffectiveRole(roles),
	}

	profile, err := s.profileStore.GetProfileByUserID(ctx, userID)
	if err != nil {
		// Admin accounts seeded without a registration profile are fine.
		if !errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, err
		}
	} else {
		resp.Profile = profile
	}

	return resp, nil
}

func (s *AuthService) effectiveRole(ctx context.Context, userID int64) (models.AppRole, error) {
	roles, err := s.roleStore.GetRolesByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error resolving roles: %w", err)
	}
	return models.EffectiveRole(roles), nil
}

// generateTokenResponse creates and persists a token pair
func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User, role models.AppRole) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user, role)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	if err := s.tokenStore.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        int64(expiresIn),
		RefreshExpiresIn: int64(refreshExpiresIn),
	}, nil
}
