package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sapdoc/config"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doPing(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	saved := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 2
	defer func() { config.AppConfig.MaxRequestsPerMin = saved }()

	router := newLimitedRouter()

	for i := 0; i < 2; i++ {
		if w := doPing(router, "203.0.113.10"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
		}
	}
	if w := doPing(router, "203.0.113.10"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429 once the limit is spent", w.Code)
	}

	// Limits are per IP; a different caller is unaffected.
	if w := doPing(router, "203.0.113.11"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a fresh ip", w.Code)
	}
}

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"forwarded-for wins", "198.51.100.7, 10.0.0.1", "198.51.100.8", "192.0.2.1:5000", "198.51.100.7"},
		{"real-ip next", "", "198.51.100.8", "192.0.2.1:5000", "198.51.100.8"},
		{"remote addr stripped of port", "", "", "192.0.2.1:5000", "192.0.2.1"},
		{"remote addr without port", "", "", "192.0.2.1", "192.0.2.1"},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.RemoteAddr = tc.remoteAddr
		if tc.xff != "" {
			c.Request.Header.Set("X-Forwarded-For", tc.xff)
		}
		if tc.xri != "" {
			c.Request.Header.Set("X-Real-IP", tc.xri)
		}
		if got := clientIP(c); got != tc.want {
			t.Fatalf("%s: clientIP = %q, want %q", tc.name, got, tc.want)
		}
	}
}
