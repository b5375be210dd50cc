package http

import (
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc       *service.ProjectService
	log       logging.Logger
	bodyLimit int64
}

// New builds the handler. bodyLimit caps multipart request bodies; zero disables the cap.
func New(svc *service.ProjectService, log logging.Logger, bodyLimit int64) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{svc: svc, log: log, bodyLimit: bodyLimit}
}

type messageResp struct {
	Message string `json:"message"`
}
