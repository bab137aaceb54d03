package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newGatedRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AdminAuth(token), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func requestWithAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthAcceptsExactToken(t *testing.T) {
	r := newGatedRouter("admin123")

	if w := requestWithAuth(r, "Bearer admin123"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with correct token, got %d", w.Code)
	}
}

func TestAdminAuthRejectsMissingHeader(t *testing.T) {
	r := newGatedRouter("admin123")

	if w := requestWithAuth(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}
}

func TestAdminAuthRejectsWrongToken(t *testing.T) {
	r := newGatedRouter("admin123")

	cases := []string{
		"Bearer wrong",
		"Bearer admin1234",
		"Bearer ADMIN123",
		"Basic admin123",
		"admin123",
	}
	for _, header := range cases {
		if w := requestWithAuth(r, header); w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}
