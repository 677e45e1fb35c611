package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/dberrors"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

// RoleRepository handles user role assignments
type RoleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetRolesByUserID retrieves all roles held by a user
func (r *RoleRepository) GetRolesByUserID(ctx context.Context, userID int64) ([]models.AppRole, error) {
	sql, args, err := r.sb.Select("role").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get roles SQL")
		return nil, fmt.Errorf("failed to build get roles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing get roles query")
		return nil, fmt.Errorf("error querying roles: %w", err)
	}
	defer rows.Close()

	roles := []models.AppRole{}
	for rows.Next() {
		var role models.AppRole
		if err := rows.Scan(&role); err != nil {
			logger.Error().Err(err).Msg("Error scanning role row")
			return nil, fmt.Errorf("error scanning role row: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating role rows")
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}

	return roles, nil
}

// HasRole checks whether a user holds a specific role
func (r *RoleRepository) HasRole(ctx context.Context, userID int64, role models.AppRole) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userID, "role": role}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building has role SQL")
		return false, fmt.Errorf("failed to build has role query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error checking role")
		return false, fmt.Errorf("error checking role: %w", err)
	}

	return exists, nil
}

// GrantRole assigns a role to a user
func (r *RoleRepository) GrantRole(ctx context.Context, userID int64, role models.AppRole) error {
	sql, args, err := r.sb.Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, role).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building grant role SQL")
		return fmt.Errorf("failed to build grant role query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "user_roles_user_id_role_key") {
			return apperrors.ErrRoleAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Str("role", string(role)).Msg("Error executing grant role query")
		return fmt.Errorf("error granting role: %w", err)
	}

	logger.Info().Int64("userID", userID).Str("role", string(role)).Msg("Role granted")
	return nil
}

// RevokeRole removes a role from a user
func (r *RoleRepository) RevokeRole(ctx context.Context, userID int64, role models.AppRole) error {
	sql, args, err := r.sb.Delete("user_roles").
		Where(squirrel.Eq{"user_id": userID, "role": role}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building revoke role SQL")
		return fmt.Errorf("failed to build revoke role query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Str("role", string(role)).Msg("Error executing revoke role query")
		return fmt.Errorf("error revoking role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoleNotFound
	}

	logger.Info().Int64("userID", userID).Str("role", string(role)).Msg("Role revoked")
	return nil
}

// ListUsersWithRole retrieves the users holding a role, joined with their
// profile names for the admin management screen.
func (r *RoleRepository) ListUsersWithRole(ctx context.Context, role models.AppRole) ([]*models.RoleHolder, error) {
	sql, args, err := r.sb.Select("u.id", "u.email", "p.full_name", "ur.created_at").
		From("user_roles ur").
		Join("users u ON u.id = ur.user_id").
		LeftJoin("profiles p ON p.user_id = u.id").
		Where(squirrel.Eq{"ur.role": role}).
		OrderBy("ur.created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list role holders SQL")
		return nil, fmt.Errorf("failed to build list role holders query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("role", string(role)).Msg("Error executing list role holders query")
		return nil, fmt.Errorf("error querying role holders: %w", err)
	}
	defer rows.Close()

	holders := []*models.RoleHolder{}
	for rows.Next() {
		h := &models.RoleHolder{}
		if err := rows.Scan(&h.UserID, &h.Email, &h.FullName, &h.GrantedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning role holder row")
			return nil, fmt.Errorf("error scanning role holder row: %w", err)
		}
		holders = append(holders, h)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating role holder rows")
		return nil, fmt.Errorf("error iterating role holder rows: %w", err)
	}

	return holders, nil
}
