package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-agents/internal/config"
	"github.com/gin-gonic/gin"
)

type fixedWriter struct{ text string }

func (f fixedWriter) Write(context.Context, string) (string, error) { return f.text, nil }

func TestSetupRouter_BasicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	r := SetupRouter(&cfg, fixedWriter{text: "<p>hi</p>"})

	// Health route should exist and return 200
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /health should return 200, got %d", w.Code)
	}

	// Config route should exist and return 200
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest("GET", "/config", nil)
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Errorf("GET /config should return 200, got %d", w2.Code)
	}

	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest("POST", "/generate", bytes.NewReader([]byte(`{"prompt":"x"}`)))
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusOK || !strings.Contains(w3.Body.String(), "<p>hi</p>") {
		t.Errorf("POST /generate should return the writer output, got %d: %s", w3.Code, w3.Body.String())
	}
}

func TestSetupRouter_ServesIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	r := SetupRouter(&cfg, fixedWriter{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET / should return 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), `id="generate-form"`) {
		t.Errorf("index page missing form: %s", w.Body.String())
	}
}

func TestSetupRouter_Subpath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Server.Subpath = "/blog"
	r := SetupRouter(&cfg, fixedWriter{})

	// Should correctly prefix routes with subpath
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/blog/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /blog/health should return 200, got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("GET", "/blog", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("GET /blog should return 200, got %d", w2.Code)
	}
	// The page script builds the generate URL from the injected subpath.
	if !strings.Contains(w2.Body.String(), `\/blog`) && !strings.Contains(w2.Body.String(), `"/blog"`) {
		t.Errorf("index page should embed the subpath, got: %s", w2.Body.String())
	}
}

func TestSetupRouter_RequestIDHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	r := SetupRouter(&cfg, fixedWriter{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	id := w.Header().Get("X-Request-ID")
	if len(id) != 36 {
		t.Errorf("expected a UUID request id, got %q", id)
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("GET", "/health", nil))
	if w2.Header().Get("X-Request-ID") == id {
		t.Errorf("request ids should differ between requests")
	}
}
