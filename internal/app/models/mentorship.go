package models

import "time"

// MentorshipOffer defines a mentorship offer based on the
// 'mentorship_offers' table. AlumniID references the owning profile.
type MentorshipOffer struct {
	ID             int64     `json:"id" db:"id"`
	AlumniID       int64     `json:"alumniId" db:"alumni_id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	ExpertiseAreas []string  `json:"expertiseAreas,omitempty" db:"expertise_areas"`
	ContactEmail   *string   `json:"contactEmail,omitempty" db:"contact_email"`
	ContactPhone   *string   `json:"contactPhone,omitempty" db:"contact_phone"`
	IsAvailable    bool      `json:"isAvailable" db:"is_available"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	Poster *ProfileSummary `json:"poster,omitempty"`
}
