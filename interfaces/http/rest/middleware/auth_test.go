package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lucidlog-backend/infrastructure/config"
	"lucidlog-backend/pkg/common"
)

func signTestToken(t *testing.T, secret, subject string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": subject,
		"iss": "lucidlog-backend",
		"aud": "lucidlog-api",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func userEcho(t *testing.T, wantUser string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := common.GetUserID(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUser, userID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTIssuer: "lucidlog-backend"}
	mw := Authenticate(cfg, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", "user-1"))
	rec := httptest.NewRecorder()

	mw(userEcho(t, "user-1")).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTIssuer: "lucidlog-backend"}
	mw := Authenticate(cfg, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unauthenticated request reached the handler")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTIssuer: "lucidlog-backend"}
	mw := Authenticate(cfg, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "other-secret", "user-1"))
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("forged token reached the handler")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MissingSecretAlwaysRejects(t *testing.T) {
	cfg := &config.Config{JWTIssuer: "lucidlog-backend"}
	mw := Authenticate(cfg, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "anything", "user-1"))
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request reached the handler with no validator")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateForLambda(t *testing.T) {
	mw := AuthenticateForLambda(zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.Header.Set("X-API-Gateway-Authorized", "true")
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()
	mw(userEcho(t, "user-1")).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec = httptest.NewRecorder()
	mw(userEcho(t, "user-1")).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "authorized flag is required")

	req = httptest.NewRequest(http.MethodGet, "/patterns", nil)
	req.Header.Set("X-API-Gateway-Authorized", "true")
	rec = httptest.NewRecorder()
	mw(userEcho(t, "user-1")).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "user header is required")
}

func TestExtractToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, extractToken(req))

	req.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", extractToken(req))

	req.Header.Set("Authorization", "bearer abc123")
	assert.Equal(t, "abc123", extractToken(req))

	req.Header.Set("Authorization", "abc123")
	assert.Equal(t, "abc123", extractToken(req))
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	assert.Equal(t, "10.0.0.1", getClientIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "10.0.0.3, 10.0.0.4")
	assert.Equal(t, "10.0.0.3", getClientIP(req))
}
