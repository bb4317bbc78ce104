package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"assistant-booking/models"
	"assistant-booking/store"
	"assistant-booking/utils"
)

type UserController struct{}

func (c UserController) GetUser(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["userId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор пользователя"})
			return
		}

		user, err := s.GetUserByID(userID)
		if err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Пользователь не найден"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Ошибка получения профиля пользователя")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при получении профиля пользователя"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"success": true, "user": user})
	}
}

// UpdateUser — частичное обновление настроек аккаунта одной транзакцией.
func (c UserController) UpdateUser(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["userId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор пользователя"})
			return
		}

		var upd models.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверное тело запроса"})
			return
		}

		if err := utils.Validate.Struct(upd); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Некорректные данные"})
			return
		}

		var passwordHash string
		if upd.Password != "" {
			passwordHash, err = utils.HashPassword(upd.Password)
			if err != nil {
				logrus.WithError(err).Error("Ошибка хэширования пароля")
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при обновлении профиля пользователя"})
				return
			}
		}

		user, err := s.UpdateUser(userID, upd, passwordHash)
		switch {
		case err == store.ErrNoFields:
			utils.ResponseJSONStatus(w, http.StatusBadRequest, map[string]string{"message": "No fields to update"})
			return
		case err == store.ErrNotFound:
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Пользователь не найден"})
			return
		case err == store.ErrDuplicateEmail:
			utils.RespondWithError(w, http.StatusConflict, models.Error{Message: "Пользователь с этой почтой уже существует"})
			return
		case err != nil:
			logrus.WithError(err).Error("Ошибка обновления профиля пользователя")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при обновлении профиля пользователя"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"success": true, "user": user})
	}
}
