package models

import (
	"time"
)

// User defines the identity account model based on the 'users' table.
// The application owns identity directly; profile data lives in Profile.
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"jane@alumni.edu"`
	Password    string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}
