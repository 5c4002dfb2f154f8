package dto

import "time"

// AuthRequest describes email/password payload.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the public projection of a created user. The password
// hash is never part of any response type.
type RegisterResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform error payload for every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ClaimsResponse echoes the authenticated identity.
type ClaimsResponse struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// ProtectedResponse is returned by the sample protected endpoint.
type ProtectedResponse struct {
	Message string         `json:"message"`
	User    ClaimsResponse `json:"user"`
}
