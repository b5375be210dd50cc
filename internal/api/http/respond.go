package http

import "github.com/gin-gonic/gin"

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error aborts the chain and writes an ErrorResponse.
func Error(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Code: code})
}
