package models

import "time"

// AppRole is a named permission role a user can hold.
type AppRole string

const (
	RoleAdmin   AppRole = "admin"
	RoleAlumni  AppRole = "alumni"
	RoleStudent AppRole = "student"
	RoleUser    AppRole = "user"
)

// Valid reports whether the role is one of the defined application roles.
func (r AppRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleAlumni, RoleStudent, RoleUser:
		return true
	}
	return false
}

// Requestable reports whether the role may be self-declared at registration.
func (r AppRole) Requestable() bool {
	return r == RoleStudent || r == RoleAlumni
}

// rolePriority orders roles for effective-role resolution.
// Higher wins: admin > alumni > student > user.
var rolePriority = map[AppRole]int{
	RoleAdmin:   4,
	RoleAlumni:  3,
	RoleStudent: 2,
	RoleUser:    1,
}

// EffectiveRole resolves the single role used for access gating from the set
// of assignments a user holds. A user with no assignments is a plain user.
func EffectiveRole(roles []AppRole) AppRole {
	effective := RoleUser
	for _, r := range roles {
		if rolePriority[r] > rolePriority[effective] {
			effective = r
		}
	}
	return effective
}

// UserRole defines a role assignment row based on the 'user_roles' table.
// The (user_id, role) pair is unique; a user may hold multiple roles.
type UserRole struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Role      AppRole   `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// RoleHolder is a user listed on the admin role management screen,
// joined with the profile name when one exists.
type RoleHolder struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	FullName  *string   `json:"fullName,omitempty"`
	GrantedAt time.Time `json:"grantedAt"`
}
