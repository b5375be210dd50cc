package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

func (h *Handler) Login(c *gin.Context) {
	// A body that is not valid JSON counts as empty credentials.
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		req = loginReq{}
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httpapi.Error(c, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials.")
			return
		}
		h.log.Error(c.Request.Context(), "login failed", "error", err)
		httpapi.Error(c, http.StatusInternalServerError, "unexpected_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, loginResp{Token: token})
}
