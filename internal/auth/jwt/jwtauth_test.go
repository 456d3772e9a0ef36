package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth, err := New(&Config{JWTSecret: "secret"})
	require.NoError(t, err)

	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "admin")
	require.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)

	other, err := New(&Config{JWTSecret: "other"})
	require.NoError(t, err)
	_, err = VerifyToken(other, tok)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	jwtAuth, err := New(&Config{JWTSecret: "secret"})
	require.NoError(t, err)

	tok, err := NewToken(jwtAuth, -time.Hour)
	require.NoError(t, err)
	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}

func TestWithAuth(t *testing.T) {
	jwtAuth, err := New(&Config{JWTSecret: "secret"})
	require.NoError(t, err)

	var gotSub string
	h := WithAuth(jwtAuth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = Subject(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "ops")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "ops", gotSub)
}
