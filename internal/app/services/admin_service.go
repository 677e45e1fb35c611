package services

import (
	"context"
	"fmt"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/auth"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

// AdminService manages administrator accounts
type AdminService struct {
	userStore UserStore
	roleStore RoleStore
}

// NewAdminService creates a new AdminService
func NewAdminService(userStore UserStore, roleStore RoleStore) *AdminService {
	return &AdminService{
		userStore: userStore,
		roleStore: roleStore,
	}
}

// AddAdmin creates a new administrator account. Admin accounts skip the
// approval workflow: their profile is created already approved and the
// admin role is granted immediately.
func (s *AdminService) AddAdmin(ctx context.Context, req *dto.AddAdminRequest) (*models.User, error) {
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

	fullName := req.FullName
	if fullName == "" {
		fullName = req.Email
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
	}
	profile := &models.Profile{
		Email:         req.Email,
		FullName:      fullName,
		RequestedRole: models.RoleAdmin,
		Status:        models.StatusApproved,
	}

	// User, approved profile and admin role land in one transaction. A
	// partially created admin account would be unrecoverable through the
	// API because the email is taken.
	if err := s.userStore.CreateUserWithProfile(ctx, user, profile, models.RoleAdmin); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("Administrator account created")
	return user, nil
}

// ListAdmins retrieves all users holding the admin role
func (s *AdminService) ListAdmins(ctx context.Context) ([]*models.RoleHolder, error) {
	return s.roleStore.ListUsersWithRole(ctx, models.RoleAdmin)
}

// RevokeAdmin removes the admin role from a user. The last administrator
// cannot be demoted.
func (s *AdminService) RevokeAdmin(ctx context.Context, userID int64) error {
	admins, err := s.roleStore.ListUsersWithRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if len(admins) <= 1 {
		return apperrors.NewConflictError("cannot remove the last administrator")
	}

	return s.roleStore.RevokeRole(ctx, userID, models.RoleAdmin)
}
