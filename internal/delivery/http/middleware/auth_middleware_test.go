package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smilehub-server/config"
	"smilehub-server/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func testRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func protectedHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if _, ok := GetTenantIDFromContext(r.Context()); !ok {
			t.Error("tenant ID missing from context")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(testJWTService(), nil)
	called := false

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(t, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler must not run without a token")
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(testJWTService(), nil)
	called := false

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(t, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler must not run with a malformed header")
	}
}

func TestAuthenticateGarbageToken(t *testing.T) {
	m := NewAuthMiddleware(testJWTService(), nil)
	called := false

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(t, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if called {
		t.Error("handler must not run with an invalid token")
	}
}

func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	svc := testJWTService()
	m := NewAuthMiddleware(svc, nil)
	called := false

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "demo@x.com")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(t, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if called {
		t.Error("handler must not run with a refresh token")
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	expired := jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})
	m := NewAuthMiddleware(testJWTService(), nil)
	called := false

	token, _, err := expired.GenerateAccessToken(uuid.New(), "demo@x.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(t, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if called {
		t.Error("handler must not run with an expired token")
	}
}

func TestAuthenticateRevokedToken(t *testing.T) {
	svc := testJWTService()
	m := NewAuthMiddleware(svc, testRedisClient(t))
	called := false

	// Well-formed, well-signed token whose ID was never stored (or has been
	// deleted by logout). Must be rejected as revoked, not as invalid.
	token, _, err := svc.GenerateAccessToken(uuid.New(), "demo@x.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(t, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler must not run with a revoked token")
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	svc := testJWTService()
	client := testRedisClient(t)
	m := NewAuthMiddleware(svc, client)
	called := false

	tenantID := uuid.New()
	token, tokenID, err := svc.GenerateAccessToken(tenantID, "demo@x.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	key := fmt.Sprintf("access_token:%s:%s", tenantID.String(), tokenID)
	if err := client.Set(context.Background(), key, "valid", time.Minute).Err(); err != nil {
		t.Fatalf("seed token key: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	m.Authenticate(protectedHandler(t, &called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Error("handler must run when the token is live")
	}
}
