package models

import "time"

// Alumnus defines a curated alumni directory entry based on the 'alumni'
// table. These rows are managed by admins and are independent of the
// self-service registration profiles.
type Alumnus struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Batch           string    `json:"batch" db:"batch"`
	Department      string    `json:"department" db:"department"`
	Email           *string   `json:"email,omitempty" db:"email"`
	PhotoURL        *string   `json:"photoUrl,omitempty" db:"photo_url"`
	CurrentPosition *string   `json:"currentPosition,omitempty" db:"current_position"`
	Company         *string   `json:"company,omitempty" db:"company"`
	Linkedin        *string   `json:"linkedin,omitempty" db:"linkedin"`
	LPA             *float64  `json:"lpa,omitempty" db:"lpa"`
	Message         *string   `json:"message,omitempty" db:"message"`
	RollNo          *string   `json:"rollNo,omitempty" db:"roll_no"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
