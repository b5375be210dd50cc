package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(service.NewAuthService("admin", "pw", "key", time.Hour, nil), nil)
	h.Register(r.Group("/api/auth"))
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r := setupRouter()

	t.Run("issues a token", func(t *testing.T) {
		w := postLogin(r, `{"username":"admin","password":"pw"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp loginResp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postLogin(r, `{"username":"admin","password":"x"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"invalid_credentials"`)
	})

	t.Run("malformed json is a failed login", func(t *testing.T) {
		w := postLogin(r, `{`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"invalid_credentials"`)
	})
}
