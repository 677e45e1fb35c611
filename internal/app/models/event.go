package models

import "time"

// EventType distinguishes the singleton section header row from real events.
type EventType string

const (
	EventTypeSection EventType = "section"
	EventTypeEvent   EventType = "event"
)

// Event defines an event row based on the 'events' table. Rows of type
// "section" carry the section heading shown above the events list.
type Event struct {
	ID          int64      `json:"id" db:"id"`
	Type        EventType  `json:"type" db:"type" example:"event"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	EventDate   *time.Time `json:"eventDate,omitempty" db:"event_date"`
	Venue       *string    `json:"venue,omitempty" db:"venue"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}
