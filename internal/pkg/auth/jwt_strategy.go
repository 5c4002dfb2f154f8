package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid auth token")
	ErrExpiredToken = errors.New("expired auth token")
	ErrEmptySecret  = errors.New("signing secret is empty")
)

type tokenClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTStrategy implements token creation/verification with HS256 signatures.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTStrategy builds JWTStrategy with provided secret and options. An empty
// secret is rejected so tokens are never signed with a blank key.
func NewJWTStrategy(secret string, opts Options) (*JWTStrategy, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl}, nil
}

// IssueToken generates a signed token carrying user identity claims.
func (s *JWTStrategy) IssueToken(userID int64, email string) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates the token signature and expiry and returns the claims.
// Expired tokens are reported distinctly from malformed or tampered ones.
func (s *JWTStrategy) ParseToken(token string) (*Claims, error) {
	parsed := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return &Claims{UserID: parsed.UserID, Email: parsed.Email}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt-hs256"
}
