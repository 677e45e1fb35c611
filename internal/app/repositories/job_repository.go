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
	"github.com/alumnihub/portal-api/internal/pkg/dberrors"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

// JobRepository handles job postings
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *JobRepository) selectWithPoster() squirrel.SelectBuilder {
	return r.sb.Select(
		"j.id", "j.alumni_id", "j.title", "j.company", "j.description",
		"j.location", "j.apply_link", "j.is_active", "j.created_at", "j.updated_at",
		"p.full_name", "p.photo_url", "p.company", "p.current_position").
		From("job_postings j").
		Join("profiles p ON p.id = j.alumni_id")
}

func scanJobWithPoster(row pgx.Row) (*models.JobPosting, error) {
	j := &models.JobPosting{Poster: &models.ProfileSummary{}}
	err := row.Scan(
		&j.ID, &j.AlumniID, &j.Title, &j.Company, &j.Description,
		&j.Location, &j.ApplyLink, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
		&j.Poster.FullName, &j.Poster.PhotoURL, &j.Poster.Company, &j.Poster.CurrentPosition)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// ListActiveJobs retrieves active postings with poster details, newest first
func (r *JobRepository) ListActiveJobs(ctx context.Context) ([]*models.JobPosting, error) {
	sql, args, err := r.selectWithPoster().
		Where(squirrel.Eq{"j.is_active": true}).
		OrderBy("j.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list active jobs SQL")
		return nil, fmt.Errorf("failed to build list active jobs query: %w", err)
	}

	return r.queryJobs(ctx, sql, args)
}

// ListJobsByProfile retrieves every posting owned by a profile, active or not
func (r *JobRepository) ListJobsByProfile(ctx context.Context, profileID int64) ([]*models.JobPosting, error) {
	sql, args, err := r.selectWithPoster().
		Where(squirrel.Eq{"j.alumni_id": profileID}).
		OrderBy("j.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list jobs by profile SQL")
		return nil, fmt.Errorf("failed to build list jobs by profile query: %w", err)
	}

	return r.queryJobs(ctx, sql, args)
}

func (r *JobRepository) queryJobs(ctx context.Context, sql string, args []interface{}) ([]*models.JobPosting, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing jobs query")
		return nil, fmt.Errorf("error querying job postings: %w", err)
	}
	defer rows.Close()

	jobs := []*models.JobPosting{}
	for rows.Next() {
		job, err := scanJobWithPoster(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning job posting row")
			return nil, fmt.Errorf("error scanning job posting row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating job posting rows")
		return nil, fmt.Errorf("error iterating job posting rows: %w", err)
	}

	return jobs, nil
}

// GetJobByID retrieves a single posting with poster details
func (r *JobRepository) GetJobByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	sql, args, err := r.selectWithPoster().
		Where(squirrel.Eq{"j.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get job SQL")
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	job, err := scanJobWithPoster(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job posting row")
		return nil, fmt.Errorf("error getting job posting by ID: %w", err)
	}

	return job, nil
}

// CreateJob inserts a new posting owned by the given profile
func (r *JobRepository) CreateJob(ctx context.Context, job *models.JobPosting) (int64, error) {
	sql, args, err := r.sb.Insert("job_postings").
		Columns("alumni_id", "title", "company", "description", "location", "apply_link", "is_active").
		Values(job.AlumniID, job.Title, job.Company, job.Description, job.Location, job.ApplyLink, job.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create job SQL")
		return 0, fmt.Errorf("failed to build create job query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("profileID", job.AlumniID).Msg("Error executing create job query")
		return 0, fmt.Errorf("error creating job posting: %w", err)
	}

	return id, nil
}

// UpdateJob applies a partial update to a posting. Ownership is checked by
// the service before this is called.
func (r *JobRepository) UpdateJob(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	delete(updates, "alumni_id")
	updates["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("job_postings").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update job SQL")
		return fmt.Errorf("failed to build update job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error executing update job query")
		return fmt.Errorf("error updating job posting: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobPostingNotFound
	}

	return nil
}

// DeleteJob removes a posting
func (r *JobRepository) DeleteJob(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("job_postings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete job SQL")
		return fmt.Errorf("failed to build delete job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error executing delete job query")
		return fmt.Errorf("error deleting job posting: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobPostingNotFound
	}

	return nil
}
