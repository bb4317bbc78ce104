package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-booking/models"
	"assistant-booking/utils"
)

func TestTokenVerifyMiddlewareRejectsAnonymous(t *testing.T) {
	called := false
	handler := AuthController{}.TokenVerifyMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	r := httptest.NewRequest("GET", "/api/students", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestTokenVerifyMiddlewarePassesValidToken(t *testing.T) {
	token, err := utils.GenerateToken(models.User{ID: 5, Email: "t@e.ru", Role: "teacher"}, time.Hour)
	require.NoError(t, err)

	called := false
	handler := AuthController{}.TokenVerifyMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest("GET", "/api/students", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestValidateSession(t *testing.T) {
	handler := AuthController{}.ValidateSession()

	r := httptest.NewRequest("GET", "/api/validate-session", nil)
	w := httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateToken(models.User{ID: 9, Email: "s@e.ru", Role: "student"}, time.Hour)
	require.NoError(t, err)
	r = httptest.NewRequest("GET", "/api/validate-session", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAvailabilityRequiresProgram(t *testing.T) {
	handler := StudentController{}.Availability(nil)

	r := httptest.NewRequest("GET", "/api/students/1/availability", nil)
	r = mux.SetURLVars(r, map[string]string{"studentId": "1"})
	w := httptest.NewRecorder()
	handler(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginLimiter(t *testing.T) {
	limiter := NewLoginLimiter()
	handler := limiter.Middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Первая сотня запросов с одного IP проходит, дальше — 429.
	var last int
	for i := 0; i < 101; i++ {
		r := httptest.NewRequest("POST", "/api/login", nil)
		r.RemoteAddr = "10.0.0.1:12345"
		w := httptest.NewRecorder()
		handler(w, r)
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)

	// Другой IP не задет.
	r := httptest.NewRequest("POST", "/api/login", nil)
	r.RemoteAddr = "10.0.0.2:12345"
	w := httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
