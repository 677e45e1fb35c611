package dto

import "github.com/alumnihub/portal-api/internal/app/models"

// CreateAlumnusRequest adds an entry to the curated alumni directory.
type CreateAlumnusRequest struct {
	Name            string   `json:"name" binding:"required"`
	Batch           string   `json:"batch" binding:"required"`
	Department      string   `json:"department" binding:"required"`
	Email           *string  `json:"email"`
	PhotoURL        *string  `json:"photoUrl"`
	CurrentPosition *string  `json:"currentPosition"`
	Company         *string  `json:"company"`
	Linkedin        *string  `json:"linkedin"`
	LPA             *float64 `json:"lpa"`
	Message         *string  `json:"message"`
	RollNo          *string  `json:"rollNo"`
}

// UpdateAlumnusRequest partially updates a directory entry.
type UpdateAlumnusRequest struct {
	Name            *string  `json:"name"`
	Batch           *string  `json:"batch"`
	Department      *string  `json:"department"`
	Email           *string  `json:"email"`
	PhotoURL        *string  `json:"photoUrl"`
	CurrentPosition *string  `json:"currentPosition"`
	Company         *string  `json:"company"`
	Linkedin        *string  `json:"linkedin"`
	LPA             *float64 `json:"lpa"`
	Message         *string  `json:"message"`
	RollNo          *string  `json:"rollNo"`
}

// AlumniListResponse pairs the directory with its configurable section title.
type AlumniListResponse struct {
	Alumni       []*models.Alumnus `json:"alumni"`
	SectionTitle string            `json:"sectionTitle" example:"Distinguished Alumni"`
}
