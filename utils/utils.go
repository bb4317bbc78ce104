package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"assistant-booking/models"
)

// Validate — общий инстанс валидатора для DTO запросов.
var Validate = validator.New()

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "default_secret"
	}
	return []byte(s)
}

func RespondWithError(w http.ResponseWriter, status int, apiErr models.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Error("Не удалось отправить JSON ошибки")
	}
}

func ResponseJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Не удалось сформировать JSON", http.StatusInternalServerError)
	}
}

func ResponseJSONStatus(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("Не удалось сформировать JSON")
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), password)
	if err != nil {
		return false
	}
	return true
}

// Claims — полезная нагрузка bearer-токена: {id, email, role}.
type Claims struct {
	ID    int
	Email string
	Role  string
}

// GenerateToken выпускает подписанный HS256 токен с фиксированным сроком жизни.
func GenerateToken(user models.User, expiration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(expiration).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errors.New("токен истёк")
		}
		return nil, err
	}
	return token, nil
}

// VerifyToken достаёт и проверяет bearer-токен из заголовка Authorization.
func VerifyToken(r *http.Request) (Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return Claims{}, errors.New("токен не предоставлен")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Claims{}, errors.New("неверный формат заголовка Authorization")
	}

	token, err := ParseToken(parts[1])
	if err != nil || !token.Valid {
		return Claims{}, errors.New("недействительный или истёкший токен")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("неверные claims токена")
	}

	idFloat, ok := mapClaims["id"].(float64)
	if !ok {
		return Claims{}, errors.New("id не найден в токене")
	}

	claims := Claims{ID: int(idFloat)}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	return claims, nil
}
