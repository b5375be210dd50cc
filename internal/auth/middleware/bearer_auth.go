package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

// TokenVerifier is satisfied by *service.AuthService.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// BearerAuthMiddleware rejects requests without a valid admin token.
// A missing token is 401; a bad or expired one is 403.
func BearerAuthMiddleware(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := v.Verify(extractToken(c))
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrMissingToken):
			httpapi.Error(c, http.StatusUnauthorized, "missing_token", "Access denied. No token provided.")
			return
		default:
			httpapi.Error(c, http.StatusForbidden, "invalid_token", "Invalid or expired token.")
			return
		}

		c.Set(auth.CtxUsername, id.Username)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.EqualFold(bearerToken[:7], "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
