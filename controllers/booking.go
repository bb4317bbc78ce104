package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"assistant-booking/booking"
	"assistant-booking/models"
	"assistant-booking/store"
	"assistant-booking/utils"
)

type BookingController struct{}

const dateLayout = "2006-01-02"

// Create — создание брони: валидация дат и параметров до обращения к базе,
// затем транзакционная проверка вместимости и вставка движком.
func (bc BookingController) Create(s *store.Store, engine *booking.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверное тело запроса"})
			return
		}

		if req.StartDate == "" || req.EndDate == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Укажите даты начала и окончания"})
			return
		}
		if req.Program == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Укажите образовательную программу"})
			return
		}

		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный формат даты"})
			return
		}
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный формат даты"})
			return
		}
		if end.Before(start) {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Дата окончания не может быть раньше даты начала"})
			return
		}

		if err := utils.Validate.Struct(req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Некорректные параметры бронирования"})
			return
		}

		if _, err := s.GetUserByID(req.StudentID); err == store.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Студент не найден"})
			return
		} else if err != nil {
			logrus.WithError(err).Error("Ошибка бронирования ассистента")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при бронировании ассистента"})
			return
		}

		b, err := engine.Book(req, start, end)
		if err != nil {
			var capErr *booking.CapacityError
			if errors.As(err, &capErr) {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: capErr.Decision.Reason})
				return
			}
			logrus.WithError(err).Error("Ошибка бронирования ассистента")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при бронировании ассистента"})
			return
		}

		utils.ResponseJSONStatus(w, http.StatusCreated, map[string]interface{}{"success": true, "booking": b})
	}
}

// Delete — мягкое удаление брони; повторное удаление — no-op.
func (bc BookingController) Delete(engine *booking.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, err := strconv.Atoi(mux.Vars(r)["bookingId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор бронирования"})
			return
		}

		if err := engine.Cancel(bookingID); err != nil {
			logrus.WithError(err).Error("Ошибка удаления бронирования")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при удалении бронирования"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"success": true, "message": "Бронирование успешно удалено"})
	}
}

// TeacherStudents — забронированные студенты преподавателя.
func (bc BookingController) TeacherStudents(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teacherID, err := strconv.Atoi(mux.Vars(r)["teacherId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор преподавателя"})
			return
		}

		students, err := s.TeacherStudents(teacherID)
		if err != nil {
			logrus.WithError(err).Error("Ошибка получения студентов преподавателя")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при получении списка студентов"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"success": true, "students": students})
	}
}

// StudentDisciplines — активные брони студента с данными преподавателей.
func (bc BookingController) StudentDisciplines(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, err := strconv.Atoi(mux.Vars(r)["studentId"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Неверный идентификатор студента"})
			return
		}

		disciplines, err := s.StudentBookings(studentID)
		if err != nil {
			logrus.WithError(err).Error("Ошибка получения дисциплин студента")
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Ошибка при получении списка дисциплин"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"success": true, "disciplines": disciplines})
	}
}
