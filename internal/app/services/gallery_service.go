package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/filestorage"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

const galleryImageDir = "gallery"

// GalleryService manages gallery images and the gallery header block
type GalleryService struct {
	galleryStore GalleryStore
	storage      filestorage.FileStorage
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(galleryStore GalleryStore, storage filestorage.FileStorage) *GalleryService {
	return &GalleryService{
		galleryStore: galleryStore,
		storage:      storage,
	}
}

// ListImages retrieves all gallery images
func (s *GalleryService) ListImages(ctx context.Context) ([]*models.GalleryImage, error) {
	return s.galleryStore.ListImages(ctx)
}

// AddImage stores the uploaded file and records it in the gallery
func (s *GalleryService) AddImage(ctx context.Context, req *dto.AddGalleryImageRequest, file *multipart.FileHeader) (*models.GalleryImage, error) {
	if file == nil {
		return nil, apperrors.NewBadRequestError("image file is required")
	}

	imageURL, err := s.storage.SaveFileWithPath(file, galleryImageDir)
	if err != nil {
		return nil, fmt.Errorf("error saving gallery image: %w", err)
	}

	img := &models.GalleryImage{
		ImageURL:    imageURL,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	id, err := s.galleryStore.CreateImage(ctx, img)
	if err != nil {
		if delErr := s.storage.DeleteFile(imageURL); delErr != nil {
			logger.Warn().Err(delErr).Str("path", imageURL).Msg("Could not remove orphaned gallery image")
		}
		return nil, err
	}

	return s.galleryStore.GetImageByID(ctx, id)
}

// DeleteImage removes a gallery row and its stored file. The file removal
// is best-effort after the row is gone.
func (s *GalleryService) DeleteImage(ctx context.Context, id int64) error {
	img, err := s.galleryStore.GetImageByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.galleryStore.DeleteImage(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(img.ImageURL); err != nil {
		logger.Warn().Err(err).Str("path", img.ImageURL).Msg("Could not remove gallery image file")
	}

	return nil
}

// GetContent retrieves the gallery header block
func (s *GalleryService) GetContent(ctx context.Context) (*models.GalleryContent, error) {
	return s.galleryStore.GetContent(ctx)
}

// UpdateContent partially updates the gallery header block
func (s *GalleryService) UpdateContent(ctx context.Context, req *dto.UpdateGalleryContentRequest) (*models.GalleryContent, error) {
	current, err := s.galleryStore.GetContent(ctx)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Tag != nil {
		updates["tag"] = *req.Tag
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return current, nil
	}

	if err := s.galleryStore.UpdateContent(ctx, current.ID, updates); err != nil {
		return nil, err
	}

	return s.galleryStore.GetContent(ctx)
}
