package dto

// CreateMentorshipOfferRequest creates an offer owned by the caller's profile.
type CreateMentorshipOfferRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	ExpertiseAreas []string `json:"expertiseAreas"`
	ContactEmail   *string  `json:"contactEmail"`
	ContactPhone   *string  `json:"contactPhone"`
}

// UpdateMentorshipOfferRequest partially updates a mentorship offer.
type UpdateMentorshipOfferRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	ExpertiseAreas []string `json:"expertiseAreas"`
	ContactEmail   *string  `json:"contactEmail"`
	ContactPhone   *string  `json:"contactPhone"`
	IsAvailable    *bool    `json:"isAvailable"`
}
