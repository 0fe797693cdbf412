package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/smart-selector/config"
	"github.com/gcbaptista/smart-selector/internal/analytics"
	"github.com/gcbaptista/smart-selector/internal/association"
	"github.com/gcbaptista/smart-selector/internal/testutil"
)

func newMiddlewareRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})
	return router
}

func get(router *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestIDMiddleware(t *testing.T) {
	router := newMiddlewareRouter(RequestIDMiddleware())

	t.Run("generates an ID", func(t *testing.T) {
		w := get(router, nil)
		require.Equal(t, http.StatusOK, w.Code)

		id := w.Header().Get(requestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses a caller ID", func(t *testing.T) {
		w := get(router, http.Header{requestIDHeader: {"launcher-42"}})
		assert.Equal(t, "launcher-42", w.Header().Get(requestIDHeader))
		assert.Equal(t, "launcher-42", w.Body.String())
	})
}

func TestCORSMiddleware(t *testing.T) {
	router := newMiddlewareRouter(CORSMiddleware())

	w := get(router, nil)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req, _ := http.NewRequest(http.MethodOptions, "/ping", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("rejects beyond burst", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(0.001, 2))

		assert.Equal(t, http.StatusOK, get(router, nil).Code)
		assert.Equal(t, http.StatusOK, get(router, nil).Code)

		w := get(router, nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, ErrorCodeRateLimited, decodeAPIError(t, w).Code)
	})

	t.Run("disabled when rate is zero", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(0, 0))
		for i := 0; i < 20; i++ {
			assert.Equal(t, http.StatusOK, get(router, nil).Code)
		}
	})
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(
		config.ServerSettings{MaxRequestBytes: 64},
		association.NewService(config.MatcherSettings{}, testutil.FixedSource(0)),
		analytics.NewService(),
	)

	w := postJSON(router, "/associate", `{"strings": ["dog"], "files": ["dog.png"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = postJSON(router, "/associate", `{"strings": ["`+strings.Repeat("dog ", 40)+`"], "files": []}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
