package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

var alumniColumns = []string{
	"id", "name", "batch", "department", "email", "photo_url",
	"current_position", "company", "linkedin", "lpa", "message", "roll_no",
	"created_at", "updated_at",
}

// AlumniRepository handles the curated alumni directory
type AlumniRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAlumnus(row pgx.Row) (*models.Alumnus, error) {
	a := &models.Alumnus{}
	err := row.Scan(
		&a.ID, &a.Name, &a.Batch, &a.Department, &a.Email, &a.PhotoURL,
		&a.CurrentPosition, &a.Company, &a.Linkedin, &a.LPA, &a.Message, &a.RollNo,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListAlumni retrieves all directory entries, newest batch first
func (r *AlumniRepository) ListAlumni(ctx context.Context) ([]*models.Alumnus, error) {
	sql, args, err := r.sb.Select(alumniColumns...).
		From("alumni").
		OrderBy("batch DESC", "name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list alumni SQL")
		return nil, fmt.Errorf("failed to build list alumni query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list alumni query")
		return nil, fmt.Errorf("error querying alumni: %w", err)
	}
	defer rows.Close()

	alumni := []*models.Alumnus{}
	for rows.Next() {
		alumnus, err := scanAlumnus(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning alumnus row")
			return nil, fmt.Errorf("error scanning alumnus row: %w", err)
		}
		alumni = append(alumni, alumnus)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating alumni rows")
		return nil, fmt.Errorf("error iterating alumni rows: %w", err)
	}

	return alumni, nil
}

// GetAlumnusByID retrieves a directory entry by ID
func (r *AlumniRepository) GetAlumnusByID(ctx context.Context, id int64) (*models.Alumnus, error) {
	sql, args, err := r.sb.Select(alumniColumns...).
		From("alumni").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get alumnus SQL")
		return nil, fmt.Errorf("failed to build get alumnus query: %w", err)
	}

	alumnus, err := scanAlumnus(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumnusNotFound
		}
		logger.Error().Err(err).Int64("alumnusID", id).Msg("Error scanning alumnus row")
		return nil, fmt.Errorf("error getting alumnus by ID: %w", err)
	}

	return alumnus, nil
}

// CreateAlumnus inserts a new directory entry
func (r *AlumniRepository) CreateAlumnus(ctx context.Context, alumnus *models.Alumnus) (int64, error) {
	sql, args, err := r.sb.Insert("alumni").
		Columns("name", "batch", "department", "email", "photo_url",
			"current_position", "company", "linkedin", "lpa", "message", "roll_no").
		Values(alumnus.Name, alumnus.Batch, alumnus.Department, alumnus.Email, alumnus.PhotoURL,
			alumnus.CurrentPosition, alumnus.Company, alumnus.Linkedin, alumnus.LPA, alumnus.Message, alumnus.RollNo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create alumnus SQL")
		return 0, fmt.Errorf("failed to build create alumnus query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create alumnus query")
		return 0, fmt.Errorf("error creating alumnus: %w", err)
	}

	return id, nil
}

// UpdateAlumnus applies a partial update to a directory entry
func (r *AlumniRepository) UpdateAlumnus(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("alumni").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update alumnus SQL")
		return fmt.Errorf("failed to build update alumnus query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("alumnusID", id).Msg("Error executing update alumnus query")
		return fmt.Errorf("error updating alumnus: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlumnusNotFound
	}

	return nil
}

// DeleteAlumnus removes a directory entry
func (r *AlumniRepository) DeleteAlumnus(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("alumni").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete alumnus SQL")
		return fmt.Errorf("failed to build delete alumnus query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("alumnusID", id).Msg("Error executing delete alumnus query")
		return fmt.Errorf("error deleting alumnus: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlumnusNotFound
	}

	return nil
}
