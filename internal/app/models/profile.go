package models

import (
	"time"
)

// ProfileStatus is the admission lifecycle state of a profile.
type ProfileStatus string

const (
	StatusPending  ProfileStatus = "pending"
	StatusApproved ProfileStatus = "approved"
	StatusRejected ProfileStatus = "rejected"
)

// CanTransitionTo reports whether moving to the target status is a legal
// lifecycle edge. The only legal edges are pending→approved and
// pending→rejected; approved and rejected are terminal.
func (s ProfileStatus) CanTransitionTo(target ProfileStatus) bool {
	if s != StatusPending {
		return false
	}
	return target == StatusApproved || target == StatusRejected
}

// Valid reports whether the status is one of the three lifecycle states.
func (s ProfileStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Profile defines the profile model based on the 'profiles' table.
// Exactly one profile exists per user; requested_role is declared at
// registration and immutable afterward.
type Profile struct {
	ID              int64         `json:"id" db:"id"`
	UserID          int64         `json:"userId" db:"user_id"`
	Email           string        `json:"email" db:"email"`
	FullName        string        `json:"fullName" db:"full_name"`
	Phone           *string       `json:"phone,omitempty" db:"phone"`
	Department      *string       `json:"department,omitempty" db:"department"`
	Batch           *string       `json:"batch,omitempty" db:"batch"`
	Company         *string       `json:"company,omitempty" db:"company"`
	CurrentPosition *string       `json:"currentPosition,omitempty" db:"current_position"`
	LinkedinURL     *string       `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	PhotoURL        *string       `json:"photoUrl,omitempty" db:"photo_url"`
	Bio             *string       `json:"bio,omitempty" db:"bio"`
	RollNo          *string       `json:"rollNo,omitempty" db:"roll_no"`
	LPA             *float64      `json:"lpa,omitempty" db:"lpa"`
	RequestedRole   AppRole       `json:"requestedRole" db:"requested_role" example:"alumni"`
	Status          ProfileStatus `json:"status" db:"status" example:"pending"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}
