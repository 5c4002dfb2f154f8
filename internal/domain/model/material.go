package model

import "time"

// Material is a personal note owned by a single user. PublicID is an opaque
// identifier that exposes a read-only projection without authentication.
type Material struct {
	ID        int64
	UserID    int64
	PublicID  string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
