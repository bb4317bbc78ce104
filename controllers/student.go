package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"assistant-booking/booking"
	"assistant-booking/models"
	"assistant-booking/store"
	"assistant-booking/utils"
)

type StudentController struct{}

// QuestionnaireStatus — флаг заполненности анкеты; без анкеты студент
// не попадает на дашборд.
func (sc StudentController) QuestionnaireStatus(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, err := strconv.Atoi(mux.Vars(r)["studentId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор студента"})
			return
		}

		completed, err := s.QuestionnaireStatus(studentID)
		if err != nil {
			logrus.WithError(err).Error("Ошибка получения статуса анкеты")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при получении статуса анкеты"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"success": true, "questionnaire_completed": completed})
	}
}

func (sc StudentController) SubmitQuestionnaire(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, err := strconv.Atoi(mux.Vars(r)["studentId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор студента"})
			return
		}

		var q models.QuestionnaireRequest
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверное тело запроса"})
			return
		}

		if err := utils.Validate.Struct(q); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Некорректные данные анкеты"})
			return
		}

		err = s.SubmitQuestionnaire(studentID, q)
		if err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Профиль студента не найден"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Ошибка сохранения данных анкеты")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при сохранении данных анкеты"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"success": true})
	}
}

func (sc StudentController) GetProfile(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, err := strconv.Atoi(mux.Vars(r)["studentId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор студента"})
			return
		}

		profile, err := s.GetProfile(studentID)
		if err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Профиль студента не найден"})
			return
		}
		if err != nil {
			logrus.WithError(err).Error("Ошибка получения профиля студента")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при получении профиля студента"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"success": true, "profile": profile})
	}
}

// UpdateProfile — обновление одной секции анкеты из настроек:
// тело вида {"section": "personal", ...поля секции}.
func (sc StudentController) UpdateProfile(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, err := strconv.Atoi(mux.Vars(r)["studentId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор студента"})
			return
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверное тело запроса"})
			return
		}

		section, _ := body["section"].(string)
		delete(body, "section")

		profile, err := s.UpdateProfileSection(studentID, section, body)
		switch {
		case err == store.ErrNoFields:
			utils.ResponseJSONStatus(w, http.StatusBadRequest, map[string]string{"message": "Обновлять нечего"})
			return
		case err == store.ErrNotFound:
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Профиль студента не найден"})
			return
		case err != nil:
			logrus.WithError(err).Error("Ошибка обновления профиля")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при обновлении профиля"})
			return
		}

		utils.ResponseJSON(w, profile)
	}
}

// Search — выдача доступных для бронирования студентов с фильтрами.
func (sc StudentController) Search(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := store.SearchFilter{
			Search:     r.URL.Query().Get("search"),
			Faculty:    r.URL.Query().Get("faculty"),
			Program:    r.URL.Query().Get("program"),
			Rating:     r.URL.Query().Get("rating"),
			Discipline: r.URL.Query().Get("discipline"),
		}

		students, err := s.SearchStudents(filter)
		if err != nil {
			logrus.WithError(err).Error("Ошибка получения списка студентов")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при получении списка студентов"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"success": true, "students": students})
	}
}

func (sc StudentController) Faculties(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		faculties, err := s.Faculties(r.URL.Query().Get("program"))
		if err != nil {
			logrus.WithError(err).Error("Ошибка получения факультетов")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при получении списка факультетов"})
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{"success": true, "faculties": faculties})
	}
}

func (sc StudentController) Programs(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		programs, err := s.Programs(r.URL.Query().Get("faculty"))
		if err != nil {
			logrus.WithError(err).Error("Ошибка получения программ")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при получении списка программ"})
			return
		}
		utils.ResponseJSON(w, map[string]interface{}{"success": true, "programs": programs})
	}
}

// Availability — точечная доступность студента для целевой программы:
// сколько групп ещё можно выбрать в окне бронирования и какие программы
// предложить взамен, если целевая уже недоступна.
func (sc StudentController) Availability(engine *booking.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, err := strconv.Atoi(mux.Vars(r)["studentId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор студента"})
			return
		}

		program := r.URL.Query().Get("program")
		if program == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Укажите образовательную программу"})
			return
		}

		load, err := engine.LoadFor(studentID)
		if err != nil {
			logrus.WithError(err).Error("Ошибка получения загрузки студента")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при получении доступности студента"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{
			"success":      true,
			"eligible":     booking.EligibleForSearch(load),
			"availability": booking.ProgramOptions(load, program),
		})
	}
}
