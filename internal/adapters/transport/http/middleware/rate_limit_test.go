package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func req(r *gin.Engine, addr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)
	request.RemoteAddr = addr
	r.ServeHTTP(w, request)
	return w
}

func TestRateLimitPerIP_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(1, 1, 100, time.Hour))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	if w := req(r, "1.2.3.4:12345"); w.Code != 200 {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if w := req(r, "1.2.3.4:12345"); w.Code != 429 {
		t.Fatalf("want 429, got %d", w.Code)
	}
}

func TestRateLimitPerIP_DifferentHosts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(1, 1, 100, time.Hour))
	r.GET("/", func(c *gin.Context) { c.Status(200) })

	if w := req(r, "10.0.0.1:1111"); w.Code != 200 {
		t.Fatalf("host A first request must pass, got %d", w.Code)
	}
	if w := req(r, "10.0.0.2:2222"); w.Code != 200 {
		t.Fatalf("host B first request must pass independently, got %d", w.Code)
	}
}
