package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"assistant-booking/models"
	"assistant-booking/store"
	"assistant-booking/utils"
)

type AuthController struct{}

const tokenLifetime = time.Hour

func teacherPasscode() string {
	code := os.Getenv("TEACHER_PASSCODE")
	if code == "" {
		code = "PASSWORD"
	}
	return code
}

// registerErrorMessage переводит ошибки валидатора в сообщения формы регистрации.
func registerErrorMessage(errs validator.ValidationErrors) string {
	for _, e := range errs {
		if e.Tag() == "required" {
			return "Все поля обязательны"
		}
	}
	for _, e := range errs {
		switch {
		case e.Field() == "Email":
			return "Неверный формат почты"
		case e.Field() == "Password":
			return "Пароль должен быть не менее 6 символов"
		case e.Field() == "Role":
			return "Указана недопустимая роль"
		}
	}
	return "Некорректные данные"
}

func (c AuthController) Register(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверное тело запроса"})
			return
		}

		if err := utils.Validate.Struct(req); err != nil {
			message := "Некорректные данные"
			if errs, ok := err.(validator.ValidationErrors); ok {
				message = registerErrorMessage(errs)
			}
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: message})
			return
		}

		// Преподавателем можно стать только по кодовому слову.
		if req.Role == "teacher" && req.TeacherCode != teacherPasscode() {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный код преподавателя"})
			return
		}

		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			logrus.WithError(err).Error("Ошибка хэширования пароля")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при регистрации. Попробуйте снова."})
			return
		}

		user, err := s.CreateUser(req, hash)
		if err == store.ErrDuplicateEmail {
			utils.RespondWithError(w, http.StatusConflict, models.Error{Message: "Пользователь с этой почтой уже существует"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Ошибка регистрации")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при регистрации. Попробуйте снова."})
			return
		}

		token, err := utils.GenerateToken(user, tokenLifetime)
		if err != nil {
			logrus.WithError(err).Error("Ошибка выпуска токена")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при регистрации. Попробуйте снова."})
			return
		}

		utils.ResponseJSONStatus(w, http.StatusCreated, map[string]interface{}{
			"success":    true,
			"id":         user.ID,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       user.Role,
			"token":      token,
		})
	}
}

func (c AuthController) Login(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверное тело запроса"})
			return
		}

		if req.Email == "" || req.Password == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Электронная почта и пароль обязательны"})
			return
		}

		user, err := s.GetUserByEmail(req.Email)
		if err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Пользователь не найден"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Ошибка при входе")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при входе. Попробуйте снова."})
			return
		}

		if !utils.ComparePasswords(user.Password, []byte(req.Password)) {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Неверный логин или пароль"})
			return
		}

		token, err := utils.GenerateToken(user, tokenLifetime)
		if err != nil {
			logrus.WithError(err).Error("Ошибка выпуска токена")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при входе. Попробуйте снова."})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{
			"success":    true,
			"id":         user.ID,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       user.Role,
			"token":      token,
		})
	}
}

// ValidateSession проверяет, что bearer-токен ещё действителен.
func (c AuthController) ValidateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := utils.VerifyToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Недействительный или истёкший токен"})
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{
			"success": true,
			"message": "Сессия действительна",
			"user": map[string]interface{}{
				"id":    claims.ID,
				"email": claims.Email,
				"role":  claims.Role,
			},
		})
	}
}
