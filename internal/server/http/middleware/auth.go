package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/onyxlab/onyx/internal/pkg/auth"
	"github.com/onyxlab/onyx/internal/server/http/dto"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user identifier.
	UserIDContextKey = "userID"
	// UserEmailContextKey is a gin context key for the authenticated user email.
	UserEmailContextKey = "userEmail"
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// AuthRequired ensures the request carries a valid bearer token before any
// handler runs. Missing or malformed tokens yield 401, expired ones 403.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			switch {
			case errors.Is(err, pkgAuth.ErrExpiredToken):
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "token expired"})
			case errors.Is(err, pkgAuth.ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
			}
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(UserEmailContextKey, claims.Email)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
