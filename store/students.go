package store

import (
	"encoding/json"
	"fmt"

	"assistant-booking/models"
)

// SearchFilter — параметры поиска студентов для преподавателя.
type SearchFilter struct {
	Search     string
	Faculty    string
	Program    string
	Rating     string
	Discipline string
}

// searchStudentsQuery — выдача поиска: только студенты с заполненной
// анкетой, дополненные booked_programs из агрегата активных броней.
// Предикат program_count <= 2 AND total_groups < 4 скрывает студентов,
// исчерпавших вместимость (точная проверка по программе делается отдельно
// движком бронирования при создании брони).
const searchStudentsQuery = `
	WITH student_bookings AS (
		SELECT
			student_id,
			json_agg(
				json_build_object(
					'program', program,
					'groups', groups_count
				)
			) AS program_details,
			COUNT(DISTINCT program) AS program_count,
			SUM(groups_count) AS total_groups
		FROM (
			SELECT
				student_id,
				program,
				SUM(groups_count) AS groups_count
			FROM bookings
			WHERE active = true
			GROUP BY student_id, program
		) sub
		GROUP BY student_id
	)
	SELECT
		u.id AS id,
		u.first_name,
		u.last_name,
		sp.email,
		sp.telegram,
		sp.birthday,
		sp.citizenship,
		sp.phone,
		sp.faculty,
		sp.program AS edu_program,
		sp.year,
		sp.debts,
		sp.edu_rating,
		sp.digitalliteracyscore,
		sp.pythonscore,
		sp.dataanalysisscore,
		sp.primary_discipline,
		sp.primary_group_size,
		sp.secondary_discipline,
		sp.secondary_group_size,
		sp.digital_literacy_answers,
		sp.data_analysis_answers,
		sp.python_programming_answers,
		sp.machine_learning_answers,
		sp.motivation_text,
		sp.achievements,
		sp.experience,
		sp.teacher_email,
		COALESCE(sb.program_details, '[]'::json) AS booked_programs
	FROM users u
	JOIN student_profiles sp ON u.id = sp.user_id
	LEFT JOIN student_bookings sb ON u.id = sb.student_id
	WHERE u.role = 'student'
	AND sp.questionnaire_completed = true
	AND (
		sb.student_id IS NULL
		OR (sb.program_count <= 2 AND sb.total_groups < 4)
	)`

// SearchStudents возвращает доступных для бронирования студентов
// с учётом фильтров поиска.
func (s *Store) SearchStudents(filter SearchFilter) ([]models.StudentSearchRow, error) {
	query := searchStudentsQuery
	var params []interface{}

	if filter.Search != "" {
		params = append(params, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (u.first_name ILIKE $%d OR u.last_name ILIKE $%d)", len(params), len(params))
	}
	if filter.Faculty != "" {
		params = append(params, filter.Faculty)
		query += fmt.Sprintf(" AND sp.faculty = $%d", len(params))
	}
	if filter.Program != "" {
		params = append(params, filter.Program)
		query += fmt.Sprintf(" AND sp.program = $%d", len(params))
	}
	if filter.Rating != "" {
		params = append(params, filter.Rating)
		query += fmt.Sprintf(" AND sp.edu_rating >= $%d", len(params))
	}
	if filter.Discipline != "" {
		params = append(params, filter.Discipline)
		query += fmt.Sprintf(" AND ($%d = sp.primary_discipline OR $%d = sp.secondary_discipline OR sp.secondary_discipline IS NULL)", len(params), len(params))
	}

	var rows []models.StudentSearchRow
	if err := s.DB.Select(&rows, query, params...); err != nil {
		return nil, fmt.Errorf("search students: %w", err)
	}
	for i := range rows {
		rows[i].BookedPrograms = []models.ProgramLoad{}
		if len(rows[i].BookedProgramsRaw) > 0 {
			if err := json.Unmarshal(rows[i].BookedProgramsRaw, &rows[i].BookedPrograms); err != nil {
				return nil, fmt.Errorf("decode booked_programs: %w", err)
			}
		}
	}
	return rows, nil
}

// Faculties — значения для выпадающего фильтра; опционально сужаются
// до факультетов выбранной программы.
func (s *Store) Faculties(program string) ([]string, error) {
	query := `SELECT DISTINCT faculty FROM student_profiles WHERE faculty IS NOT NULL ORDER BY faculty`
	var params []interface{}
	if program != "" {
		query = `SELECT DISTINCT faculty FROM student_profiles WHERE faculty IS NOT NULL AND program = $1 ORDER BY faculty`
		params = append(params, program)
	}
	faculties := []string{}
	if err := s.DB.Select(&faculties, query, params...); err != nil {
		return nil, fmt.Errorf("list faculties: %w", err)
	}
	return faculties, nil
}

func (s *Store) Programs(faculty string) ([]string, error) {
	query := `SELECT DISTINCT program FROM student_profiles WHERE program IS NOT NULL ORDER BY program`
	var params []interface{}
	if faculty != "" {
		query = `SELECT DISTINCT program FROM student_profiles WHERE program IS NOT NULL AND faculty = $1 ORDER BY program`
		params = append(params, faculty)
	}
	programs := []string{}
	if err := s.DB.Select(&programs, query, params...); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}
