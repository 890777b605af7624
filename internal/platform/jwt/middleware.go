package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/domain/entity"
)

const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// Authenticator resolves a bearer token to the identity of an existing user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
// Rejections never reveal why the token was refused.
func AuthRequired(auth Authenticator, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		// 2. Verify the token and re-resolve the user it refers to
		identity, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidToken) || errors.Is(err, domain.ErrUnauthorized) {
				logger.WarnContext(c.Request.Context(), "rejected bearer token",
					"error", err, "remote_addr", c.ClientIP())
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			logger.ErrorContext(c.Request.Context(), "failed to authenticate request", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		// 3. Attach the identity and pass control to the next handler
		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextEmail, identity.Email)
		c.Next()
	}
}

// CurrentIdentity returns the identity attached by AuthRequired.
func CurrentIdentity(c *gin.Context) (entity.Identity, bool) {
	id, idOK := c.Get(ContextUserID)
	email, emailOK := c.Get(ContextEmail)
	if !idOK || !emailOK {
		return entity.Identity{}, false
	}
	userID, ok1 := id.(uint)
	addr, ok2 := email.(string)
	if !ok1 || !ok2 {
		return entity.Identity{}, false
	}
	return entity.Identity{UserID: userID, Email: addr}, true
}
