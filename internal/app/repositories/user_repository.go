package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/db"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/dberrors"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

// UserRepository handles user database operations. It holds the full
// database handle because registration and deletion span multiple tables
// and must run inside a single transaction.
type UserRepository struct {
	database *db.PostgresDB
	sb       squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		database: database,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUserWithProfile creates the user row, its profile, the base role row
// and any extra role rows in one transaction. Either the whole account
// exists afterwards or none of it does.
func (r *UserRepository) CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile, extraRoles ...models.AppRole) error {
	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userSQL, userArgs, err := r.sb.Insert("users").
			Columns("email", "password").
			Values(user.Email, user.Password).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create user query: %w", err)
		}

		if err := tx.QueryRow(ctx, userSQL, userArgs...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		profile.UserID = user.ID
		profileSQL, profileArgs, err := r.sb.Insert("profiles").
			Columns("user_id", "email", "full_name", "phone", "department", "batch",
				"company", "current_position", "linkedin_url", "photo_url", "bio",
				"roll_no", "lpa", "requested_role", "status").
			Values(profile.UserID, profile.Email, profile.FullName, profile.Phone,
				profile.Department, profile.Batch, profile.Company, profile.CurrentPosition,
				profile.LinkedinURL, profile.PhotoURL, profile.Bio, profile.RollNo,
				profile.LPA, profile.RequestedRole, profile.Status).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create profile query: %w", err)
		}

		if err := tx.QueryRow(ctx, profileSQL, profileArgs...).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
			if dberrors.IsDuplicateKeyError(err) {
				return apperrors.ErrProfileAlreadyExists
			}
			return fmt.Errorf("error creating profile: %w", err)
		}

		roleInsert := r.sb.Insert("user_roles").
			Columns("user_id", "role").
			Values(user.ID, models.RoleUser)
		for _, role := range extraRoles {
			if role == models.RoleUser {
				continue
			}
			roleInsert = roleInsert.Values(user.ID, role)
		}
		roleSQL, roleArgs, err := roleInsert.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build role rows query: %w", err)
		}

		if _, err := tx.Exec(ctx, roleSQL, roleArgs...); err != nil {
			return fmt.Errorf("error granting roles: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrProfileAlreadyExists) {
			return err
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Registration transaction failed")
		return err
	}
	return nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "email", "password", "created_at", "updated_at", "last_login_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "email", "password", "created_at", "updated_at", "last_login_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// EmailExists checks whether a user with the given email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building email exists SQL")
		return false, fmt.Errorf("failed to build email existence query: %w", err)
	}

	var exists bool
	err = r.database.Pool.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("email", email).Msg("Error checking email existence")
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// UpdateLastLogin stamps the user's last successful login
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Update("users").
		Set("last_login_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update last login SQL")
		return fmt.Errorf("failed to build update last login query: %w", err)
	}

	cmdTag, err := r.database.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing update last login query")
		return fmt.Errorf("error updating last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteUserCascade removes the user's roles, profile, refresh tokens and
// finally the user row itself in a single transaction. It returns the
// profile photo URL (if any) so the caller can remove the stored file
// after the commit.
func (r *UserRepository) DeleteUserCascade(ctx context.Context, userID int64) (*string, error) {
	var photoURL *string

	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		photoSQL, photoArgs, err := r.sb.Select("photo_url").
			From("profiles").
			Where(squirrel.Eq{"user_id": userID}).
			Limit(1).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build photo lookup query: %w", err)
		}
		if err := tx.QueryRow(ctx, photoSQL, photoArgs...).Scan(&photoURL); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error reading profile photo: %w", err)
		}

		for _, table := range []string{"user_roles", "refresh_tokens", "profiles"} {
			delSQL, delArgs, err := r.sb.Delete(table).
				Where(squirrel.Eq{"user_id": userID}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build delete query for %s: %w", table, err)
			}
			if _, err := tx.Exec(ctx, delSQL, delArgs...); err != nil {
				return fmt.Errorf("error deleting from %s: %w", table, err)
			}
		}

		userSQL, userArgs, err := r.sb.Delete("users").
			Where(squirrel.Eq{"id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete user query: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, userSQL, userArgs...)
		if err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("User deletion transaction failed")
		return nil, err
	}

	logger.Info().Int64("userID", userID).Msg("User and dependent rows deleted")
	return photoURL, nil
}
