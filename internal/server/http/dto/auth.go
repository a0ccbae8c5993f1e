package dto

// RegisterRequest describes the registration payload. Absent fields decode
// as empty strings and fail the presence checks downstream.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the body of successful operations without data.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse is the body of every failure path.
type ErrorResponse struct {
	Error string `json:"error"`
}
