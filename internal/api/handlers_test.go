package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-agents/internal/config"
	"github.com/gin-gonic/gin"
)

func TestHealthHandler_ReturnsOk(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", healthHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("expected response to contain 'ok', got: %s", w.Body.String())
	}
}

func TestConfigHandler_HidesAPIKey(t *testing.T) {
	cfg := config.Default()
	cfg.Gemini.APIKey = "super-secret-key"
	cfg.Server.Subpath = "/blog"

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/config", configHandler(&cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/config", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "super-secret-key") {
		t.Fatalf("config response leaks the API key: %s", w.Body.String())
	}

	var resp struct {
		Server struct {
			Subpath string `json:"subpath"`
		} `json:"server"`
		Gemini struct {
			Model           string `json:"model"`
			MaxOutputTokens int    `json:"max_output_tokens"`
		} `json:"gemini"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if resp.Server.Subpath != "/blog" || resp.Gemini.Model != "gemini-1.5-pro" || resp.Gemini.MaxOutputTokens != 2048 {
		t.Errorf("unexpected config payload: %+v", resp)
	}
}
