package dto

// CreateJobPostingRequest creates a job posting owned by the caller's profile.
type CreateJobPostingRequest struct {
	Title       string  `json:"title" binding:"required"`
	Company     string  `json:"company" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    *string `json:"location"`
	ApplyLink   *string `json:"applyLink"`
}

// UpdateJobPostingRequest partially updates a job posting.
type UpdateJobPostingRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	ApplyLink   *string `json:"applyLink"`
	IsActive    *bool   `json:"isActive"`
}
