package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-booking/models"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, ComparePasswords(hash, []byte("secret123")))
	assert.False(t, ComparePasswords(hash, []byte("wrong")))
}

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{ID: 42, Email: "student@example.com", Role: "student"}
	token, err := GenerateToken(user, time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/api/validate-session", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	claims, err := VerifyToken(r)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.ID)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
}

func TestVerifyTokenRejects(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if _, err := VerifyToken(r); err == nil {
		t.Fatal("ожидали ошибку без заголовка Authorization")
	}

	r.Header.Set("Authorization", "Basic abc")
	if _, err := VerifyToken(r); err == nil {
		t.Fatal("ожидали ошибку при неверном формате заголовка")
	}

	r.Header.Set("Authorization", "Bearer not-a-token")
	if _, err := VerifyToken(r); err == nil {
		t.Fatal("ожидали ошибку при мусорном токене")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	user := models.User{ID: 1, Email: "a@b.c", Role: "teacher"}
	token, err := GenerateToken(user, -time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	_, err = VerifyToken(r)
	assert.Error(t, err)
}
