package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"patient-transport-backend/internal/permission"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTokenFromRequest(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"access header", map[string]string{TokenHeader: "abc"}, "abc"},
		{"bearer", map[string]string{"Authorization": "Bearer xyz"}, "xyz"},
		{"lowercase bearer", map[string]string{"Authorization": "bearer xyz"}, "xyz"},
		{"access header wins", map[string]string{TokenHeader: "abc", "Authorization": "Bearer xyz"}, "abc"},
		{"basic auth ignored", map[string]string{"Authorization": "Basic dXNlcg=="}, ""},
		{"none", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, TokenFromRequest(c))
		})
	}
}

type grants map[string]bool

func (g grants) UserHasPermission(ctx context.Context, userID uint, name string) (bool, error) {
	return g[name], nil
}

func TestRequirePermission(t *testing.T) {
	checker := permission.NewChecker(grants{permission.ViewDrivers: true}, zap.NewNop())
	access := NewAccessControlMiddleware(checker)

	newRouter := func(userID uint) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if userID != 0 {
				c.Set("userID", userID)
			}
		})
		r.GET("/drivers", access.RequirePermission(permission.ViewDrivers), func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/vehicles", access.RequirePermission(permission.ViewVehicles), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	w := httptest.NewRecorder()
	newRouter(3).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/drivers", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	newRouter(3).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vehicles", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message err":"user is not allowed to perform this operation"}`, w.Body.String())

	w = httptest.NewRecorder()
	newRouter(0).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/drivers", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
	}
}
