package model

import "time"

// User represents a registered account identified by email.
// PasswordHash never leaves the server.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
