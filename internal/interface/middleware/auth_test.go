package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qaboard/qa-backend/pkg/helpers"
)

func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Auth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	return r
}

func TestAuthBearerToken(t *testing.T) {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, time.Hour)
	r := newAuthRouter(jwt)

	token, _, err := jwt.GenerateAccessToken("user-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "user-1" {
		t.Fatalf("expected subject user-1, got %q", w.Body.String())
	}
}

func TestAuthCookieFallback(t *testing.T) {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, time.Hour)
	r := newAuthRouter(jwt)

	token, _, err := jwt.GenerateAccessToken("user-2")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "user-2" {
		t.Fatalf("expected 200/user-2, got %d %q", w.Code, w.Body.String())
	}
}

func TestAuthRejectsMissingAndBadTokens(t *testing.T) {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, time.Hour)
	r := newAuthRouter(jwt)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", w.Code)
	}

	// refresh tokens are signed with a different secret and must not pass
	refresh, _, err := jwt.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("refresh as access: expected 401, got %d", w.Code)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", -time.Minute, time.Hour)
	r := newAuthRouter(jwt)

	token, _, err := jwt.GenerateAccessToken("user-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: expected 401, got %d", w.Code)
	}
}
