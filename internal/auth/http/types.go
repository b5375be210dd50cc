package http

import (
	"context"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
)

// Authenticator is satisfied by *service.AuthService.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type Handler struct {
	authService Authenticator
	log         logging.Logger
}

func New(authService Authenticator, log logging.Logger) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{
		authService: authService,
		log:         log,
	}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string `json:"token"`
}
