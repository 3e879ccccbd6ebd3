package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Shiva-026/Samvidhaan/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "unit-test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func guardedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"user_id":  ctx.MustGet(ContextUserIDKey),
			"username": ctx.MustGet(ContextUsernameKey),
		})
	})
	return r
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	r := guardedRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	r := guardedRouter()
	for _, header := range []string{"Bearer", "Token abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want %d", header, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestAuthRequiredInvalidTokenIsForbidden(t *testing.T) {
	r := guardedRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestAuthRequiredExpiredTokenIsForbidden(t *testing.T) {
	token, err := utils.GenerateToken(9, "ghost", -utils.TokenLifetime)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	r := guardedRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestAuthRequiredValidTokenAttachesIdentity(t *testing.T) {
	token, err := utils.GenerateToken(42, "shiva", utils.TokenLifetime)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	r := guardedRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	body := rec.Body.String()
	if !containsAll(body, `"user_id":42`, `"username":"shiva"`) {
		t.Fatalf("unexpected identity payload: %s", body)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
