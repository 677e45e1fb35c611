package services

import (
	"context"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
)

// ContentService manages the landing-page hero row and site settings
type ContentService struct {
	contentStore ContentStore
}

// NewContentService creates a new ContentService
func NewContentService(contentStore ContentStore) *ContentService {
	return &ContentService{contentStore: contentStore}
}

// GetHero retrieves the hero row
func (s *ContentService) GetHero(ctx context.Context) (*models.HeroContent, error) {
	return s.contentStore.GetHeroContent(ctx)
}

// UpdateHero partially updates the hero row
func (s *ContentService) UpdateHero(ctx context.Context, req *dto.UpdateHeroRequest) (*models.HeroContent, error) {
	current, err := s.contentStore.GetHeroContent(ctx)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.BadgeText != nil {
		updates["badge_text"] = *req.BadgeText
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Subtitle != nil {
		updates["subtitle"] = *req.Subtitle
	}
	if req.PrimaryBtn != nil {
		updates["primary_btn"] = *req.PrimaryBtn
	}
	if req.SecondaryBtn != nil {
		updates["secondary_btn"] = *req.SecondaryBtn
	}
	if req.BgType != nil {
		updates["bg_type"] = *req.BgType
	}
	if req.BgImages != nil {
		updates["bg_images"] = req.BgImages
	}
	if req.BgVideo != nil {
		updates["bg_video"] = *req.BgVideo
	}
	if req.Stats != nil {
		updates["stats"] = *req.Stats
	}
	if len(updates) == 0 {
		return current, nil
	}

	if err := s.contentStore.UpdateHeroContent(ctx, current.ID, updates); err != nil {
		return nil, err
	}

	return s.contentStore.GetHeroContent(ctx)
}

// GetSetting retrieves a site setting by key
func (s *ContentService) GetSetting(ctx context.Context, id string) (*models.SiteSetting, error) {
	return s.contentStore.GetSetting(ctx, id)
}

// ListSettings retrieves all site settings
func (s *ContentService) ListSettings(ctx context.Context) ([]*models.SiteSetting, error) {
	return s.contentStore.ListSettings(ctx)
}

// UpsertSetting creates or replaces a site setting
func (s *ContentService) UpsertSetting(ctx context.Context, id, value string) (*models.SiteSetting, error) {
	if err := s.contentStore.UpsertSetting(ctx, id, value); err != nil {
		return nil, err
	}
	return s.contentStore.GetSetting(ctx, id)
}
