package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/alumnihub/portal-api/internal/app/models"
	appRepos "github.com/alumnihub/portal-api/internal/app/repositories"
	"github.com/alumnihub/portal-api/internal/config"
	"github.com/alumnihub/portal-api/internal/db"
	"github.com/alumnihub/portal-api/internal/pkg/auth"
)

// EnsureAdminAccount creates the configured administrator account when no
// admin role assignment exists yet. Without it a fresh deployment has no way
// to approve registrations.
func EnsureAdminAccount(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(database)

	admins, err := repos.RoleRepository.ListUsersWithRole(ctx, appModels.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check for existing admins: %w", err)
	}
	if len(admins) > 0 {
		lgr.Debug().Int("count", len(admins)).Msg("Administrator account already present, skipping seed")
		return nil
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("No administrator exists and no admin credentials configured; skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	fullName := cfg.Admin.FullName
	if fullName == "" {
		fullName = cfg.Admin.Email
	}

	user := &appModels.User{Email: cfg.Admin.Email, Password: hashed}
	profile := &appModels.Profile{
		Email:         cfg.Admin.Email,
		FullName:      fullName,
		RequestedRole: appModels.RoleAdmin,
		Status:        appModels.StatusApproved,
	}

	if err := repos.UserRepository.CreateUserWithProfile(ctx, user, profile, appModels.RoleAdmin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Seeded initial administrator account")
	return nil
}
