package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"samplehub/internal/config"
)

func TestNewAppliesConfig(t *testing.T) {
	cfg := config.ServerConfig{
		Port:           "9090",
		AllowedOrigins: []string{"https://admin.example.com"},
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   7 * time.Second,
		IdleTimeout:    11 * time.Second,
	}
	srv := New(cfg, http.NotFoundHandler())

	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, 3*time.Second, srv.ReadTimeout)
	assert.Equal(t, 7*time.Second, srv.WriteTimeout)
	assert.Equal(t, 11*time.Second, srv.IdleTimeout)
}

func TestNewCORSPreflight(t *testing.T) {
	cfg := config.ServerConfig{AllowedOrigins: []string{"https://admin.example.com"}}
	srv := New(cfg, http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/samples", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
