package bootstrap

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	authhttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/http"
	authmw "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/middleware"
	authsvc "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
	projecthttp "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/http"
	projectsvc "github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName   string
	Version       string
	AllowedOrigin string
	Log           logging.Logger

	DBPing    httpapi.PingFunc
	CachePing httpapi.PingFunc

	Auth     *authsvc.AuthService
	Projects *projectsvc.ProjectService

	// UploadDir is served at /uploads when set (local upload backend only).
	UploadDir string
	// FrontendDir holds a built single-page app served for unmatched GETs.
	FrontendDir string
	// BodyLimit caps project create/update request bodies.
	BodyLimit int64
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(corsConfig(dep.AllowedOrigin)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DBPing, dep.CachePing)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	authhttp.New(dep.Auth, dep.Log).Register(api.Group("/auth"))

	guard := authmw.BearerAuthMiddleware(dep.Auth)
	projecthttp.New(dep.Projects, dep.Log, dep.BodyLimit).Register(api.Group("/project"), guard)

	if dep.UploadDir != "" {
		r.Static("/uploads", dep.UploadDir)
	}
	if dep.FrontendDir != "" {
		r.NoRoute(spaHandler(dep.FrontendDir))
	}

	return r
}

func corsConfig(origin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = strings.Split(origin, ",")
	}
	return cfg
}

// spaHandler serves files from dir and falls back to index.html so client-side
// routes resolve. API paths keep their JSON 404.
func spaHandler(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			httpapi.Error(c, http.StatusNotFound, "not_found", "Not found.")
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}
		c.File(index)
	}
}
