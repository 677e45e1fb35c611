package dto

import "github.com/alumnihub/portal-api/internal/app/models"

// UpdateHeroRequest partially updates the landing-page hero row.
type UpdateHeroRequest struct {
	BadgeText    *string           `json:"badgeText"`
	Title        *string           `json:"title"`
	Subtitle     *string           `json:"subtitle"`
	PrimaryBtn   *string           `json:"primaryBtn"`
	SecondaryBtn *string           `json:"secondaryBtn"`
	BgType       *string           `json:"bgType" binding:"omitempty,oneof=image video gradient"`
	BgImages     []string          `json:"bgImages"`
	BgVideo      *string           `json:"bgVideo"`
	Stats        *models.HeroStats `json:"stats"`
}

// UpdateSettingRequest sets a site setting value by key.
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
