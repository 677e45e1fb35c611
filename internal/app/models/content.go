package models

import "time"

// HeroBackgroundType enumerates the hero section background modes.
type HeroBackgroundType string

const (
	HeroBackgroundImage    HeroBackgroundType = "image"
	HeroBackgroundVideo    HeroBackgroundType = "video"
	HeroBackgroundGradient HeroBackgroundType = "gradient"
)

// HeroStats is the typed stats block embedded in the hero row.
type HeroStats struct {
	AlumniCount       string `json:"alumniCount"`
	YearsOfExcellence string `json:"yearsOfExcellence"`
	Achievements      string `json:"achievements"`
	Departments       string `json:"departments"`
}

// HeroContent is the singleton landing-page hero row based on the
// 'hero_content' table. Stats is stored as jsonb, BgImages as text[].
type HeroContent struct {
	ID           int64              `json:"id" db:"id"`
	BadgeText    string             `json:"badgeText" db:"badge_text"`
	Title        string             `json:"title" db:"title"`
	Subtitle     string             `json:"subtitle" db:"subtitle"`
	PrimaryBtn   string             `json:"primaryBtn" db:"primary_btn"`
	SecondaryBtn string             `json:"secondaryBtn" db:"secondary_btn"`
	BgType       HeroBackgroundType `json:"bgType" db:"bg_type"`
	BgImages     []string           `json:"bgImages,omitempty" db:"bg_images"`
	BgVideo      *string            `json:"bgVideo,omitempty" db:"bg_video"`
	Stats        HeroStats          `json:"stats" db:"stats"`
	UpdatedAt    time.Time          `json:"updatedAt" db:"updated_at"`
}

// SiteSetting is a key/value content row based on the 'site_settings' table.
type SiteSetting struct {
	ID        string    `json:"id" db:"id"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
