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

// GalleryRepository handles gallery images and the gallery header block
type GalleryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListImages retrieves all gallery images, newest first
func (r *GalleryRepository) ListImages(ctx context.Context) ([]*models.GalleryImage, error) {
	sql, args, err := r.sb.Select("id", "image_url", "title", "description", "category", "created_at").
		From("gallery_images").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list gallery images SQL")
		return nil, fmt.Errorf("failed to build list gallery images query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list gallery images query")
		return nil, fmt.Errorf("error querying gallery images: %w", err)
	}
	defer rows.Close()

	images := []*models.GalleryImage{}
	for rows.Next() {
		img := &models.GalleryImage{}
		if err := rows.Scan(&img.ID, &img.ImageURL, &img.Title, &img.Description, &img.Category, &img.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning gallery image row")
			return nil, fmt.Errorf("error scanning gallery image row: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating gallery image rows")
		return nil, fmt.Errorf("error iterating gallery image rows: %w", err)
	}

	return images, nil
}

// GetImageByID retrieves a single gallery image
func (r *GalleryRepository) GetImageByID(ctx context.Context, id int64) (*models.GalleryImage, error) {
	sql, args, err := r.sb.Select("id", "image_url", "title", "description", "category", "created_at").
		From("gallery_images").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get gallery image SQL")
		return nil, fmt.Errorf("failed to build get gallery image query: %w", err)
	}

	img := &models.GalleryImage{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&img.ID, &img.ImageURL, &img.Title, &img.Description, &img.Category, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGalleryImageNotFound
		}
		logger.Error().Err(err).Int64("imageID", id).Msg("Error scanning gallery image row")
		return nil, fmt.Errorf("error getting gallery image by ID: %w", err)
	}

	return img, nil
}

// CreateImage inserts a new gallery image
func (r *GalleryRepository) CreateImage(ctx context.Context, img *models.GalleryImage) (int64, error) {
	sql, args, err := r.sb.Insert("gallery_images").
		Columns("image_url", "title", "description", "category").
		Values(img.ImageURL, img.Title, img.Description, img.Category).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create gallery image SQL")
		return 0, fmt.Errorf("failed to build create gallery image query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create gallery image query")
		return 0, fmt.Errorf("error creating gallery image: %w", err)
	}

	return id, nil
}

// DeleteImage removes a gallery image row
func (r *GalleryRepository) DeleteImage(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("gallery_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete gallery image SQL")
		return fmt.Errorf("failed to build delete gallery image query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("imageID", id).Msg("Error executing delete gallery image query")
		return fmt.Errorf("error deleting gallery image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGalleryImageNotFound
	}

	return nil
}

// GetContent retrieves the gallery page header block
func (r *GalleryRepository) GetContent(ctx context.Context) (*models.GalleryContent, error) {
	sql, args, err := r.sb.Select("id", "tag", "title", "description", "updated_at").
		From("gallery_content").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get gallery content SQL")
		return nil, fmt.Errorf("failed to build get gallery content query: %w", err)
	}

	content := &models.GalleryContent{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&content.ID, &content.Tag, &content.Title, &content.Description, &content.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGalleryContentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning gallery content row")
		return nil, fmt.Errorf("error getting gallery content: %w", err)
	}

	return content, nil
}

// UpdateContent applies a partial update to the gallery header block
func (r *GalleryRepository) UpdateContent(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("gallery_content").
		SetMap(updates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update gallery content SQL")
		return fmt.Errorf("failed to build update gallery content query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("contentID", id).Msg("Error executing update gallery content query")
		return fmt.Errorf("error updating gallery content: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGalleryContentNotFound
	}

	return nil
}
