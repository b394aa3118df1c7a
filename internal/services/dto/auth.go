package dto

import (
	"anchors_backend/internal/models"
)

// BeginRegistrationRequest starts the OTP handshake.
type BeginRegistrationRequest struct {
	Name  string          `json:"name" binding:"required"`
	Email string          `json:"email" binding:"required,email"`
	Role  models.UserRole `json:"role" binding:"required,oneof=student company"`
}

// BeginRegistrationResponse returns the continuation token for VerifyOTP.
// OTP is populated only in development environments; production responses
// never echo the code.
type BeginRegistrationResponse struct {
	Message        string `json:"message"`
	RegistrationID string `json:"registration_id"`
	OTP            string `json:"otp,omitempty"`
}

// VerifyOTPRequest completes the handshake and creates the account.
type VerifyOTPRequest struct {
	RegistrationID string `json:"registration_id" binding:"required"`
	OTP            string `json:"otp" binding:"required"`
	Password       string `json:"password" binding:"required,min=6"`
}

// VerifiedUserResponse is the public view of a freshly created account.
type VerifiedUserResponse struct {
	Message string          `json:"message"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Role    models.UserRole `json:"role"`
	Balance int             `json:"balance"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed session token.
type LoginResponse struct {
	Token string `json:"token"`
}
