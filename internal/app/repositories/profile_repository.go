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
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

var profileColumns = []string{
	"id", "user_id", "email", "full_name", "phone", "department", "batch",
	"company", "current_position", "linkedin_url", "photo_url", "bio",
	"roll_no", "lpa", "requested_role", "status", "created_at", "updated_at",
}

// ProfileRepository handles profile database operations. Approval spans the
// profiles and user_roles tables, so it holds the full database handle.
type ProfileRepository struct {
	database *db.PostgresDB
	sb       squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(database *db.PostgresDB) *ProfileRepository {
	return &ProfileRepository{
		database: database,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Email, &p.FullName, &p.Phone, &p.Department, &p.Batch,
		&p.Company, &p.CurrentPosition, &p.LinkedinURL, &p.PhotoURL, &p.Bio,
		&p.RollNo, &p.LPA, &p.RequestedRole, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetProfileByID retrieves a profile by its ID
func (r *ProfileRepository) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile by ID SQL")
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile, err := scanProfile(r.database.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("profileID", id).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile by ID: %w", err)
	}

	return profile, nil
}

// GetProfileByUserID retrieves the profile belonging to a user
func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile by user ID SQL")
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile, err := scanProfile(r.database.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile by user ID: %w", err)
	}

	return profile, nil
}

// ListProfiles retrieves profiles newest first, optionally filtered by
// status, along with the total count for pagination.
func (r *ProfileRepository) ListProfiles(ctx context.Context, status *models.ProfileStatus, offset uint64, limit int) ([]*models.Profile, int64, error) {
	countBuilder := r.sb.Select("COUNT(*)").From("profiles")
	listBuilder := r.sb.Select(profileColumns...).
		From("profiles").
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit))

	if status != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"status": *status})
		listBuilder = listBuilder.Where(squirrel.Eq{"status": *status})
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count profiles SQL")
		return nil, 0, fmt.Errorf("failed to build count profiles query: %w", err)
	}

	var total int64
	if err := r.database.Pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting profiles")
		return nil, 0, fmt.Errorf("error counting profiles: %w", err)
	}

	listSQL, listArgs, err := listBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list profiles SQL")
		return nil, 0, fmt.Errorf("failed to build list profiles query: %w", err)
	}

	rows, err := r.database.Pool.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list profiles query")
		return nil, 0, fmt.Errorf("error querying profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*models.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning profile row during list")
			return nil, 0, fmt.Errorf("error scanning profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating profile rows")
		return nil, 0, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, total, nil
}

// UpdateProfileFields applies a partial update to a profile. The updates map
// must contain column names; status and requested_role are never accepted
// here so the admin edit path cannot bypass the approval workflow.
func (r *ProfileRepository) UpdateProfileFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	delete(updates, "status")
	delete(updates, "requested_role")
	updates["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("profiles").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update profile SQL")
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.database.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("profileID", id).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// ApproveProfile marks a pending profile approved and grants the requested
// role in the same transaction. The WHERE clause on status makes concurrent
// adjudications race-safe: the second one affects zero rows.
func (r *ProfileRepository) ApproveProfile(ctx context.Context, profileID, userID int64, role models.AppRole) error {
	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		updateSQL, updateArgs, err := r.sb.Update("profiles").
			Set("status", models.StatusApproved).
			Set("updated_at", time.Now()).
			Where(squirrel.Eq{"id": profileID, "status": models.StatusPending}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build approve profile query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, updateSQL, updateArgs...)
		if err != nil {
			return fmt.Errorf("error approving profile: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrIllegalTransition
		}

		roleSQL, roleArgs, err := r.sb.Insert("user_roles").
			Columns("user_id", "role").
			Values(userID, role).
			Suffix("ON CONFLICT (user_id, role) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build grant role query: %w", err)
		}
		if _, err := tx.Exec(ctx, roleSQL, roleArgs...); err != nil {
			return fmt.Errorf("error granting role: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrIllegalTransition) {
			return err
		}
		logger.Error().Err(err).Int64("profileID", profileID).Msg("Approval transaction failed")
		return err
	}

	logger.Info().Int64("profileID", profileID).Int64("userID", userID).Str("role", string(role)).Msg("Profile approved")
	return nil
}

// RejectProfile marks a pending profile rejected. No role is granted.
func (r *ProfileRepository) RejectProfile(ctx context.Context, profileID int64) error {
	sql, args, err := r.sb.Update("profiles").
		Set("status", models.StatusRejected).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": profileID, "status": models.StatusPending}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building reject profile SQL")
		return fmt.Errorf("failed to build reject profile query: %w", err)
	}

	cmdTag, err := r.database.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("profileID", profileID).Msg("Error executing reject profile query")
		return fmt.Errorf("error rejecting profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrIllegalTransition
	}

	logger.Info().Int64("profileID", profileID).Msg("Profile rejected")
	return nil
}
