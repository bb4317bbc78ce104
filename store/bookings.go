package store

import (
	"fmt"

	"assistant-booking/models"
)

// TeacherStudents — активные брони преподавателя вместе с данными студентов.
func (s *Store) TeacherStudents(teacherID int) ([]models.BookedStudent, error) {
	rows := []models.BookedStudent{}
	err := s.DB.Select(&rows, `
		SELECT
			u.id AS id,
			b.discipline,
			b.program,
			b.groups_count,
			b.assistance_format,
			b.start_date,
			b.end_date,
			u.first_name, u.last_name,
			sp.email, sp.telegram, sp.birthday, sp.citizenship, sp.phone,
			sp.faculty, sp.program AS edu_program, sp.year, sp.debts, sp.edu_rating,
			sp.digitalliteracyscore,
			sp.pythonscore,
			sp.dataanalysisscore,
			sp.primary_discipline, sp.primary_group_size,
			sp.secondary_discipline, sp.secondary_group_size,
			sp.digital_literacy_answers, sp.data_analysis_answers, sp.python_programming_answers, sp.machine_learning_answers,
			sp.motivation_text, sp.achievements, sp.experience,
			sp.teacher_email,
			b.id AS booking_id
		FROM bookings b
		LEFT JOIN users u ON b.student_id = u.id
		LEFT JOIN student_profiles sp ON u.id = sp.user_id
		WHERE b.teacher_id = $1 AND b.active = true`,
		teacherID)
	if err != nil {
		return nil, fmt.Errorf("teacher students: %w", err)
	}
	return rows, nil
}

// StudentBookings — активные брони студента с данными преподавателей
// (раздел «мои дисциплины» в личном кабинете).
func (s *Store) StudentBookings(studentID int) ([]models.StudentBooking, error) {
	rows := []models.StudentBooking{}
	err := s.DB.Select(&rows, `
		SELECT
			b.id,
			t.first_name AS teacher_first_name,
			t.last_name AS teacher_last_name,
			t.email AS teacher_email,
			b.discipline,
			b.groups_count,
			b.assistance_format,
			b.start_date,
			b.end_date,
			b.program
		FROM bookings b
		JOIN users t ON b.teacher_id = t.id
		WHERE b.student_id = $1 AND b.active = true`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("student bookings: %w", err)
	}
	return rows, nil
}
