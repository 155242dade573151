package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/openepi/covid-dashboard/store"
)

func TestApikeyAuthentication(t *testing.T) {
	s := &Server{cache: store.NewTableCache(time.Hour)}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.apikeyAuthentication("secret"))
	router.GET("/metrics/cache", s.metricCacheStats)

	req := httptest.NewRequest("GET", "/metrics/cache", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "missing token should be rejected")

	req = httptest.NewRequest("GET", "/metrics/cache", nil)
	req.Header.Set("Api-Token", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong token should be rejected")

	req = httptest.NewRequest("GET", "/metrics/cache", nil)
	req.Header.Set("Api-Token", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "valid token should pass")
}

func TestHealthz(t *testing.T) {
	s := &Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/healthz", s.healthz)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), `"status":"OK"`, "wrong body")
}
