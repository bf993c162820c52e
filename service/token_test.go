package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docchat/platform"
)

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestTokenRoundTrip(t *testing.T) {
	platform.Cfg.AccessSecret = "test-secret"
	ts := &TokenService{}

	td, err := ts.CreateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, td.AccessToken)

	details, err := ts.ExtractTokenMetadata(requestWithToken(td.AccessToken))
	require.NoError(t, err)
	assert.Equal(t, uint(42), details.UserID)
	assert.Equal(t, td.AccessUUID, details.AccessUUID)
}

func TestTokenMissing(t *testing.T) {
	platform.Cfg.AccessSecret = "test-secret"
	ts := &TokenService{}

	_, err := ts.ExtractTokenMetadata(requestWithToken(""))
	assert.Error(t, err)
}

func TestTokenTampered(t *testing.T) {
	platform.Cfg.AccessSecret = "test-secret"
	ts := &TokenService{}

	td, err := ts.CreateToken(42)
	require.NoError(t, err)

	_, err = ts.ExtractTokenMetadata(requestWithToken(td.AccessToken + "x"))
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	platform.Cfg.AccessSecret = "test-secret"
	ts := &TokenService{}

	claims := jwt.MapClaims{
		"authorized":  true,
		"access_uuid": "stale",
		"user_id":     42,
		"exp":         time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(platform.Cfg.AccessSecret))
	require.NoError(t, err)

	assert.Error(t, ts.TokenValid(requestWithToken(expired)))
	_, err = ts.ExtractTokenMetadata(requestWithToken(expired))
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	platform.Cfg.AccessSecret = "test-secret"
	ts := &TokenService{}
	td, err := ts.CreateToken(42)
	require.NoError(t, err)

	platform.Cfg.AccessSecret = "other-secret"
	_, err = ts.ExtractTokenMetadata(requestWithToken(td.AccessToken))
	assert.Error(t, err)
}
