package models

import "time"

// JobPosting defines a job posting based on the 'job_postings' table.
// AlumniID references the owning profile.
type JobPosting struct {
	ID          int64     `json:"id" db:"id"`
	AlumniID    int64     `json:"alumniId" db:"alumni_id"`
	Title       string    `json:"title" db:"title"`
	Company     string    `json:"company" db:"company"`
	Description string    `json:"description" db:"description"`
	Location    *string   `json:"location,omitempty" db:"location"`
	ApplyLink   *string   `json:"applyLink,omitempty" db:"apply_link"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Poster carries the joined profile summary on public listings
	Poster *ProfileSummary `json:"poster,omitempty"`
}

// ProfileSummary is the slice of profile fields joined onto public
// job and mentorship listings.
type ProfileSummary struct {
	FullName        string  `json:"fullName" db:"full_name"`
	PhotoURL        *string `json:"photoUrl,omitempty" db:"photo_url"`
	Company         *string `json:"company,omitempty" db:"company"`
	CurrentPosition *string `json:"currentPosition,omitempty" db:"current_position"`
}
