package dto

// AddAdminRequest creates a new administrator account.
type AddAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName"`
}

// DeleteUserRequest is the legacy delete-user contract: the id arrives as a
// string on the wire.
type DeleteUserRequest struct {
	UserID string `json:"userId"`
}

// DeleteUserResponse mirrors the legacy success shape.
type DeleteUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteUserError mirrors the legacy failure shape.
type DeleteUserError struct {
	Error string `json:"error"`
}
