package auth

import "time"

// Claims is the decoded identity payload carried by a bearer token.
type Claims struct {
	UserID int64
	Email  string
}

// Strategy issues and verifies bearer tokens.
type Strategy interface {
	IssueToken(userID int64, email string) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
