package dto

// UpdateProfileRequest is the admin edit of declared profile fields.
// Status and requestedRole are deliberately absent: lifecycle state only
// moves through the approve/reject operations.
type UpdateProfileRequest struct {
	FullName        *string  `json:"fullName"`
	Phone           *string  `json:"phone"`
	Department      *string  `json:"department"`
	Batch           *string  `json:"batch"`
	Company         *string  `json:"company"`
	CurrentPosition *string  `json:"currentPosition"`
	LinkedinURL     *string  `json:"linkedinUrl"`
	Bio             *string  `json:"bio"`
	RollNo          *string  `json:"rollNo"`
	LPA             *float64 `json:"lpa"`
}

// HasChanges reports whether any field was supplied.
func (r *UpdateProfileRequest) HasChanges() bool {
	return r.FullName != nil || r.Phone != nil || r.Department != nil ||
		r.Batch != nil || r.Company != nil || r.CurrentPosition != nil ||
		r.LinkedinURL != nil || r.Bio != nil || r.RollNo != nil || r.LPA != nil
}
