package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hostnhome/models"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/private", JWTAuth(), RequireRole(roles...), func(c *gin.Context) {
		session, _ := GetAuthSession(c)
		c.JSON(http.StatusOK, gin.H{"vendorId": session.VendorID})
	})
	return r
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	protectedRouter(models.RoleVendor).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthAndRole(t *testing.T) {
	token, err := utils.GenerateToken(models.AuthSession{UserID: "u1", Role: models.RoleStaff, VendorID: "v1"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter(models.RoleVendor, models.RoleStaff).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter(models.RoleSuperAdmin).ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		if _, ok := c.Get(LoggerKey); !ok {
			t.Error("logger missing from context")
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("request id header = %q", got)
	}
}

func TestClientIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "198.51.100.4:5555"
	if ip := clientIP(c); ip != "198.51.100.4" {
		t.Errorf("remote addr ip = %q", ip)
	}
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.1, 10.0.0.1")
	if ip := clientIP(c); ip != "203.0.113.1" {
		t.Errorf("forwarded ip = %q", ip)
	}
	c.Request.Header.Del("X-Forwarded-For")
	c.Request.Header.Set("X-Real-IP", " 192.0.2.9 ")
	if ip := clientIP(c); ip != "192.0.2.9" {
		t.Errorf("real ip = %q", ip)
	}
}
