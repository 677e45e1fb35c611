package models

import "time"

// GalleryImage defines a gallery entry based on the 'gallery_images' table.
type GalleryImage struct {
	ID          int64     `json:"id" db:"id"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	Title       *string   `json:"title,omitempty" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	Category    *string   `json:"category,omitempty" db:"category"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// GalleryContent is the singleton header block for the gallery page,
// based on the 'gallery_content' table.
type GalleryContent struct {
	ID          int64     `json:"id" db:"id"`
	Tag         *string   `json:"tag,omitempty" db:"tag"`
	Title       *string   `json:"title,omitempty" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
