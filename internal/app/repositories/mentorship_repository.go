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

// MentorshipRepository handles mentorship offers
type MentorshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *MentorshipRepository) selectWithPoster() squirrel.SelectBuilder {
	return r.sb.Select(
		"m.id", "m.alumni_id", "m.title", "m.description", "m.expertise_areas",
		"m.contact_email", "m.contact_phone", "m.is_available", "m.created_at", "m.updated_at",
		"p.full_name", "p.photo_url", "p.company", "p.current_position").
		From("mentorship_offers m").
		Join("profiles p ON p.id = m.alumni_id")
}

func scanOfferWithPoster(row pgx.Row) (*models.MentorshipOffer, error) {
	o := &models.MentorshipOffer{Poster: &models.ProfileSummary{}}
	err := row.Scan(
		&o.ID, &o.AlumniID, &o.Title, &o.Description, &o.ExpertiseAreas,
		&o.ContactEmail, &o.ContactPhone, &o.IsAvailable, &o.CreatedAt, &o.UpdatedAt,
		&o.Poster.FullName, &o.Poster.PhotoURL, &o.Poster.Company, &o.Poster.CurrentPosition)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListAvailableOffers retrieves available offers with poster details
func (r *MentorshipRepository) ListAvailableOffers(ctx context.Context) ([]*models.MentorshipOffer, error) {
	sql, args, err := r.selectWithPoster().
		Where(squirrel.Eq{"m.is_available": true}).
		OrderBy("m.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list available offers SQL")
		return nil, fmt.Errorf("failed to build list available offers query: %w", err)
	}

	return r.queryOffers(ctx, sql, args)
}

// ListOffersByProfile retrieves every offer owned by a profile
func (r *MentorshipRepository) ListOffersByProfile(ctx context.Context, profileID int64) ([]*models.MentorshipOffer, error) {
	sql, args, err := r.selectWithPoster().
		Where(squirrel.Eq{"m.alumni_id": profileID}).
		OrderBy("m.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list offers by profile SQL")
		return nil, fmt.Errorf("failed to build list offers by profile query: %w", err)
	}

	return r.queryOffers(ctx, sql, args)
}

func (r *MentorshipRepository) queryOffers(ctx context.Context, sql string, args []interface{}) ([]*models.MentorshipOffer, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing offers query")
		return nil, fmt.Errorf("error querying mentorship offers: %w", err)
	}
	defer rows.Close()

	offers := []*models.MentorshipOffer{}
	for rows.Next() {
		offer, err := scanOfferWithPoster(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning mentorship offer row")
			return nil, fmt.Errorf("error scanning mentorship offer row: %w", err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating mentorship offer rows")
		return nil, fmt.Errorf("error iterating mentorship offer rows: %w", err)
	}

	return offers, nil
}

// GetOfferByID retrieves a single offer with poster details
func (r *MentorshipRepository) GetOfferByID(ctx context.Context, id int64) (*models.MentorshipOffer, error) {
	sql, args, err := r.selectWithPoster().
		Where(squirrel.Eq{"m.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get offer SQL")
		return nil, fmt.Errorf("failed to build get offer query: %w", err)
	}

	offer, err := scanOfferWithPoster(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipNotFound
		}
		logger.Error().Err(err).Int64("offerID", id).Msg("Error scanning mentorship offer row")
		return nil, fmt.Errorf("error getting mentorship offer by ID: %w", err)
	}

	return offer, nil
}

// CreateOffer inserts a new offer owned by the given profile
func (r *MentorshipRepository) CreateOffer(ctx context.Context, offer *models.MentorshipOffer) (int64, error) {
	sql, args, err := r.sb.Insert("mentorship_offers").
		Columns("alumni_id", "title", "description", "expertise_areas",
			"contact_email", "contact_phone", "is_available").
		Values(offer.AlumniID, offer.Title, offer.Description, offer.ExpertiseAreas,
			offer.ContactEmail, offer.ContactPhone, offer.IsAvailable).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create offer SQL")
		return 0, fmt.Errorf("failed to build create offer query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("profileID", offer.AlumniID).Msg("Error executing create offer query")
		return 0, fmt.Errorf("error creating mentorship offer: %w", err)
	}

	return id, nil
}

// UpdateOffer applies a partial update to an offer
func (r *MentorshipRepository) UpdateOffer(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	delete(updates, "alumni_id")
	updates["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("mentorship_offers").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update offer SQL")
		return fmt.Errorf("failed to build update offer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("offerID", id).Msg("Error executing update offer query")
		return fmt.Errorf("error updating mentorship offer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipNotFound
	}

	return nil
}

// DeleteOffer removes an offer
func (r *MentorshipRepository) DeleteOffer(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("mentorship_offers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete offer SQL")
		return fmt.Errorf("failed to build delete offer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("offerID", id).Msg("Error executing delete offer query")
		return fmt.Errorf("error deleting mentorship offer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipNotFound
	}

	return nil
}
