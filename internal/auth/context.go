package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUsername = "auth_username"
)

// Username returns the admin name stored by the bearer middleware.
func Username(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUsername))
}
