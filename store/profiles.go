package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"assistant-booking/models"
)

// QuestionnaireStatus — отправлена ли анкета. Отсутствующий профиль
// трактуется как незаполненная анкета, а не как ошибка.
func (s *Store) QuestionnaireStatus(studentID int) (bool, error) {
	var completed bool
	err := s.DB.Get(&completed, `
		SELECT questionnaire_completed FROM student_profiles WHERE user_id = $1`, studentID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("questionnaire status: %w", err)
	}
	return completed, nil
}

// SubmitQuestionnaire — разовая полная запись анкеты одной транзакцией,
// выставляет questionnaire_completed = true.
func (s *Store) SubmitQuestionnaire(studentID int, q models.QuestionnaireRequest) error {
	return s.WithTx(func(tx *sqlx.Tx) error {
		res, err := tx.Exec(`
			UPDATE student_profiles
			SET email = $1,
			    telegram = $2,
			    birthday = $3,
			    citizenship = $4,
			    phone = $5,
			    faculty = $6,
			    program = $7,
			    year = $8,
			    debts = $9,
			    edu_rating = $10,
			    primary_discipline = $11,
			    primary_group_size = $12,
			    secondary_discipline = $13,
			    secondary_group_size = $14,
			    motivation_text = $15,
			    achievements = $16,
			    experience = $17,
			    recommendation_available = CASE WHEN $18 = 'yes' THEN true WHEN $18 = 'no' THEN false ELSE recommendation_available END,
			    teacher_email = $19,
			    questionnaire_completed = true,
			    data_analysis_answers = $20,
			    python_programming_answers = $21,
			    machine_learning_answers = $22,
			    digital_literacy_answers = $23,
			    digitalliteracyscore = $24,
			    pythonscore = $25,
			    dataanalysisscore = $26
			WHERE user_id = $27`,
			q.Email, q.Telegram, q.Birthday, q.Citizenship, q.Phone,
			q.Faculty, q.Program, q.Year, q.Debts, q.EduRating,
			q.PrimaryDiscipline, q.PrimaryGroupSize, q.SecondaryDiscipline, q.SecondaryGroupSize,
			q.MotivationText, q.Achievements, q.Experience,
			q.RecommendationAvailable, q.TeacherEmail,
			pq.Array(q.DataAnalysisAnswers), pq.Array(q.PythonAnswers),
			pq.Array(q.MachineLearningAnswers), pq.Array(q.DigitalLiteracyAnswers),
			scoreString(q.DigitalLiteracyScore), scoreString(q.PythonScore), scoreString(q.DataAnalysisScore),
			studentID)
		if err != nil {
			return fmt.Errorf("save questionnaire: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("save questionnaire: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// scoreString: баллы приходят то числом, то строкой — в базе храним текстом.
func scoreString(v interface{}) *string {
	switch value := v.(type) {
	case nil:
		return nil
	case string:
		return &value
	case float64:
		s := strconv.FormatFloat(value, 'f', -1, 64)
		return &s
	default:
		s := fmt.Sprint(value)
		return &s
	}
}

func (s *Store) GetProfile(studentID int) (models.StudentProfile, error) {
	var profile models.StudentProfile
	err := s.DB.Get(&profile, `
		SELECT * FROM student_profiles WHERE user_id = $1`, studentID)
	if err == sql.ErrNoRows {
		return profile, ErrNotFound
	}
	if err != nil {
		return profile, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Белые списки полей по секциям настроек — всё прочее из тела игнорируется.
var profileSections = map[string][]string{
	"personal":       {"email", "telegram", "birthday", "citizenship", "phone"},
	"education":      {"faculty", "program", "year", "debts", "edu_rating"},
	"disciplines":    {"primary_discipline", "primary_group_size", "secondary_discipline", "secondary_group_size"},
	"motivation":     {"motivation_text", "achievements", "experience"},
	"recommendation": {"recommendation_available", "teacher_email"},
}

// UpdateProfileSection — частичное обновление одной секции анкеты,
// всё или ничего в одной транзакции.
func (s *Store) UpdateProfileSection(studentID int, section string, data map[string]interface{}) (models.StudentProfile, error) {
	var setClauses []string
	var values []interface{}
	for _, field := range profileSections[section] {
		value, ok := data[field]
		if !ok {
			continue
		}
		values = append(values, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field, len(values)))
	}
	if len(setClauses) == 0 {
		return models.StudentProfile{}, ErrNoFields
	}

	var profile models.StudentProfile
	err := s.WithTx(func(tx *sqlx.Tx) error {
		values = append(values, studentID)
		query := fmt.Sprintf(`
			UPDATE student_profiles SET %s
			WHERE user_id = $%d
			RETURNING *`,
			strings.Join(setClauses, ", "), len(values))
		err := tx.Get(&profile, query, values...)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("update profile section %s: %w", section, err)
		}
		return nil
	})
	return profile, err
}
