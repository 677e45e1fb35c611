package dto

import "github.com/alumnihub/portal-api/internal/app/models"

// RegisterRequest carries the registration form. It binds from multipart
// form data because the submission may include a profile photo.
type RegisterRequest struct {
	Email           string   `form:"email" binding:"required,email"`
	Password        string   `form:"password" binding:"required,min=6"`
	FullName        string   `form:"fullName" binding:"required"`
	RequestedRole   string   `form:"requestedRole" binding:"required,oneof=student alumni"`
	Phone           *string  `form:"phone"`
	Department      *string  `form:"department"`
	Batch           *string  `form:"batch"`
	Company         *string  `form:"company"`
	CurrentPosition *string  `form:"currentPosition"`
	LinkedinURL     *string  `form:"linkedinUrl"`
	Bio             *string  `form:"bio"`
	RollNo          *string  `form:"rollNo"`
	LPA             *float64 `form:"lpa"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token to be rotated
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is returned on successful authentication
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn"`
}

// RegisterResponse pairs the created pending profile with its tokens.
type RegisterResponse struct {
	Profile *models.Profile `json:"profile"`
	Tokens  *TokenResponse  `json:"tokens"`
}

// MeResponse describes the authenticated user with roles resolved.
type MeResponse struct {
	User          *models.User     `json:"user"`
	Profile       *models.Profile  `json:"profile,omitempty"`
	Roles         []models.AppRole `json:"roles"`
	EffectiveRole models.AppRole   `json:"effectiveRole"`
}
