package dto

import "time"

// CreateEventRequest adds an event. The section header row is managed
// through its own update endpoint and cannot be created here.
type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	EventDate   *time.Time `json:"eventDate"`
	Venue       *string    `json:"venue"`
}

// UpdateEventRequest partially updates an event row.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	EventDate   *time.Time `json:"eventDate"`
	Venue       *string    `json:"venue"`
}

// UpdateSectionRequest updates the singleton section header row.
type UpdateSectionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
