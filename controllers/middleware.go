package controllers

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"assistant-booking/models"
	"assistant-booking/utils"
)

// TokenVerifyMiddleware пропускает запрос дальше только с валидным
// bearer-токеном.
func (c AuthController) TokenVerifyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Недействительный или истёкший токен"})
			return
		}
		next(w, r)
	}
}

// LoginLimiter — ограничение попыток входа по IP (примерно 100 за 15 минут).
type LoginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		visitors: make(map[string]*rate.Limiter),
		rate:     rate.Every(9 * time.Second),
		burst:    100,
	}
}

func (l *LoginLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.visitors[ip]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.visitors[ip] = limiter
	}
	return limiter
}

func (l *LoginLimiter) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !l.limiterFor(ip).Allow() {
			utils.RespondWithError(w, http.StatusTooManyRequests, models.Error{Message: "Слишком много попыток входа. Попробуйте позже."})
			return
		}
		next(w, r)
	}
}
