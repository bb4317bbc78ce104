package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-booking/models"
)

// Валидация брони отсекается до обращения к базе, поэтому стор и движок
// в этих сценариях не нужны.
func postBooking(t *testing.T, body string) (*httptest.ResponseRecorder, models.Error) {
	t.Helper()
	handler := BookingController{}.Create(nil, nil)
	r := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, r)

	var apiErr models.Error
	if w.Code >= 400 {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	}
	return w, apiErr
}

func TestCreateBookingRejectsMissingDates(t *testing.T) {
	w, apiErr := postBooking(t, `{
		"studentId": 1, "teacherId": 2,
		"discipline": "python_programming", "groupsCount": 1,
		"assistanceFormat": "money", "program": "X"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Укажите даты начала и окончания", apiErr.Message)
}

func TestCreateBookingRejectsMissingProgram(t *testing.T) {
	w, apiErr := postBooking(t, `{
		"studentId": 1, "teacherId": 2,
		"discipline": "python_programming", "groupsCount": 1,
		"assistanceFormat": "money",
		"startDate": "2026-02-01", "endDate": "2026-06-01"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Укажите образовательную программу", apiErr.Message)
}

func TestCreateBookingRejectsEndBeforeStart(t *testing.T) {
	w, apiErr := postBooking(t, `{
		"studentId": 1, "teacherId": 2,
		"discipline": "python_programming", "groupsCount": 1,
		"assistanceFormat": "money", "program": "X",
		"startDate": "2026-06-01", "endDate": "2026-02-01"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Дата окончания не может быть раньше даты начала", apiErr.Message)
}

func TestCreateBookingRejectsBadDateFormat(t *testing.T) {
	w, apiErr := postBooking(t, `{
		"studentId": 1, "teacherId": 2,
		"discipline": "python_programming", "groupsCount": 1,
		"assistanceFormat": "money", "program": "X",
		"startDate": "01.02.2026", "endDate": "2026-06-01"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Неверный формат даты", apiErr.Message)
}

func TestCreateBookingRejectsUnknownDiscipline(t *testing.T) {
	w, apiErr := postBooking(t, `{
		"studentId": 1, "teacherId": 2,
		"discipline": "astrology", "groupsCount": 1,
		"assistanceFormat": "money", "program": "X",
		"startDate": "2026-02-01", "endDate": "2026-06-01"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Некорректные параметры бронирования", apiErr.Message)
}

func TestCreateBookingRejectsBadGroupsCount(t *testing.T) {
	w, _ := postBooking(t, `{
		"studentId": 1, "teacherId": 2,
		"discipline": "python_programming", "groupsCount": 3,
		"assistanceFormat": "money", "program": "X",
		"startDate": "2026-02-01", "endDate": "2026-06-01"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsBadBody(t *testing.T) {
	w, _ := postBooking(t, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBookingRejectsBadID(t *testing.T) {
	handler := BookingController{}.Delete(nil)
	r := httptest.NewRequest("DELETE", "/api/bookings/abc", nil)
	w := httptest.NewRecorder()
	handler(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
