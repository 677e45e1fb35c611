package repositories

import (
	"context"
	"encoding/json"
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

// ContentRepository handles the hero section and key/value site settings
type ContentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetHeroContent retrieves the singleton hero row
func (r *ContentRepository) GetHeroContent(ctx context.Context) (*models.HeroContent, error) {
	sql, args, err := r.sb.Select("id", "badge_text", "title", "subtitle", "primary_btn",
		"secondary_btn", "bg_type", "bg_images", "bg_video", "stats", "updated_at").
		From("hero_content").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get hero content SQL")
		return nil, fmt.Errorf("failed to build get hero content query: %w", err)
	}

	hero := &models.HeroContent{}
	var statsRaw []byte
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&hero.ID, &hero.BadgeText, &hero.Title, &hero.Subtitle, &hero.PrimaryBtn,
		&hero.SecondaryBtn, &hero.BgType, &hero.BgImages, &hero.BgVideo, &statsRaw, &hero.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHeroContentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning hero content row")
		return nil, fmt.Errorf("error getting hero content: %w", err)
	}

	if len(statsRaw) > 0 {
		if err := json.Unmarshal(statsRaw, &hero.Stats); err != nil {
			logger.Error().Err(err).Msg("Error decoding hero stats")
			return nil, fmt.Errorf("error decoding hero stats: %w", err)
		}
	}

	return hero, nil
}

// UpdateHeroContent applies a partial update to the hero row. A stats value
// in the map is marshalled to jsonb.
func (r *ContentRepository) UpdateHeroContent(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	if stats, ok := updates["stats"]; ok {
		raw, err := json.Marshal(stats)
		if err != nil {
			return fmt.Errorf("error encoding hero stats: %w", err)
		}
		updates["stats"] = raw
	}
	updates["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("hero_content").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update hero content SQL")
		return fmt.Errorf("failed to build update hero content query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("heroID", id).Msg("Error executing update hero content query")
		return fmt.Errorf("error updating hero content: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHeroContentNotFound
	}

	return nil
}

// GetSetting retrieves a site setting by its key
func (r *ContentRepository) GetSetting(ctx context.Context, id string) (*models.SiteSetting, error) {
	sql, args, err := r.sb.Select("id", "value", "updated_at").
		From("site_settings").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get setting SQL")
		return nil, fmt.Errorf("failed to build get setting query: %w", err)
	}

	setting := &models.SiteSetting{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&setting.ID, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingNotFound
		}
		logger.Error().Err(err).Str("settingID", id).Msg("Error scanning setting row")
		return nil, fmt.Errorf("error getting setting: %w", err)
	}

	return setting, nil
}

// ListSettings retrieves all site settings
func (r *ContentRepository) ListSettings(ctx context.Context) ([]*models.SiteSetting, error) {
	sql, args, err := r.sb.Select("id", "value", "updated_at").
		From("site_settings").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list settings SQL")
		return nil, fmt.Errorf("failed to build list settings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list settings query")
		return nil, fmt.Errorf("error querying settings: %w", err)
	}
	defer rows.Close()

	settings := []*models.SiteSetting{}
	for rows.Next() {
		setting := &models.SiteSetting{}
		if err := rows.Scan(&setting.ID, &setting.Value, &setting.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning setting row")
			return nil, fmt.Errorf("error scanning setting row: %w", err)
		}
		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating setting rows")
		return nil, fmt.Errorf("error iterating setting rows: %w", err)
	}

	return settings, nil
}

// UpsertSetting creates or replaces a site setting value
func (r *ContentRepository) UpsertSetting(ctx context.Context, id, value string) error {
	sql, args, err := r.sb.Insert("site_settings").
		Columns("id", "value", "updated_at").
		Values(id, value, time.Now()).
		Suffix("ON CONFLICT (id) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert setting SQL")
		return fmt.Errorf("failed to build upsert setting query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("settingID", id).Msg("Error executing upsert setting query")
		return fmt.Errorf("error upserting setting: %w", err)
	}

	return nil
}
