package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("refused") }

	tests := []struct {
		name      string
		db, cache PingFunc
		wantDB    string
		wantCache string
	}{
		{name: "all up", db: up, cache: up, wantDB: "up", wantCache: "up"},
		{name: "cache disabled", db: up, wantDB: "up", wantCache: "disabled"},
		{name: "db down", db: down, cache: up, wantDB: "down", wantCache: "up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler("portfolio-backend", "1.2.3", tt.db, tt.cache).RegisterRoutes(r)

			for _, path := range []string{"/health", "/healthz"} {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
				require.Equal(t, http.StatusOK, w.Code)

				var resp HealthResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "healthy", resp.Status)
				assert.Equal(t, "1.2.3", resp.Version)
				assert.Equal(t, tt.wantDB, resp.DB)
				assert.Equal(t, tt.wantCache, resp.Cache)
			}
		})
	}
}
