package models

import (
	"time"

	"github.com/lib/pq"
)

// StudentProfile — анкета студента, 1:1 с пользователем роли student.
// Создаётся пустой при регистрации, заполняется через анкету или настройки.
type StudentProfile struct {
	ID                      int            `json:"id" db:"id"`
	UserID                  int            `json:"user_id" db:"user_id"`
	Email                   *string        `json:"email" db:"email"`
	Telegram                *string        `json:"telegram" db:"telegram"`
	Birthday                *time.Time     `json:"birthday" db:"birthday"`
	Citizenship             *string        `json:"citizenship" db:"citizenship"`
	Phone                   *string        `json:"phone" db:"phone"`
	Faculty                 *string        `json:"faculty" db:"faculty"`
	Program                 *string        `json:"program" db:"program"`
	Year                    *int           `json:"year" db:"year"`
	Debts                   *string        `json:"debts" db:"debts"`
	EduRating               *string        `json:"edu_rating" db:"edu_rating"`
	DigitalLiteracyScore    *string        `json:"digitalliteracyscore" db:"digitalliteracyscore"`
	PythonScore             *string        `json:"pythonscore" db:"pythonscore"`
	DataAnalysisScore       *string        `json:"dataanalysisscore" db:"dataanalysisscore"`
	PrimaryDiscipline       *string        `json:"primary_discipline" db:"primary_discipline"`
	PrimaryGroupSize        *int           `json:"primary_group_size" db:"primary_group_size"`
	SecondaryDiscipline     *string        `json:"secondary_discipline" db:"secondary_discipline"`
	SecondaryGroupSize      *int           `json:"secondary_group_size" db:"secondary_group_size"`
	DataAnalysisAnswers     pq.StringArray `json:"data_analysis_answers" db:"data_analysis_answers"`
	PythonAnswers           pq.StringArray `json:"python_programming_answers" db:"python_programming_answers"`
	MachineLearningAnswers  pq.StringArray `json:"machine_learning_answers" db:"machine_learning_answers"`
	DigitalLiteracyAnswers  pq.StringArray `json:"digital_literacy_answers" db:"digital_literacy_answers"`
	MotivationText          *string        `json:"motivation_text" db:"motivation_text"`
	Achievements            *string        `json:"achievements" db:"achievements"`
	Experience              *string        `json:"experience" db:"experience"`
	RecommendationAvailable bool           `json:"recommendation_available" db:"recommendation_available"`
	TeacherEmail            *string        `json:"teacher_email" db:"teacher_email"`
	QuestionnaireCompleted  bool           `json:"questionnaire_completed" db:"questionnaire_completed"`
	CreatedAt               time.Time      `json:"created_at" db:"created_at"`
}

// QuestionnaireRequest — разовая полная запись анкеты.
// Ключи тела повторяют формат фронтенда (camelCase вперемешку со snake_case).
type QuestionnaireRequest struct {
	Email                   *string     `json:"email" validate:"omitempty,email"`
	Telegram                *string     `json:"telegram"`
	Birthday                *string     `json:"birthday"`
	Citizenship             *string     `json:"citizenship"`
	Phone                   *string     `json:"phone"`
	Faculty                 *string     `json:"faculty"`
	Program                 *string     `json:"program"`
	Year                    *int        `json:"year" validate:"omitempty,min=1,max=6"`
	Debts                   *string     `json:"debts"`
	EduRating               *string     `json:"edu_rating"`
	PrimaryDiscipline       *string     `json:"primaryDiscipline" validate:"omitempty,oneof=data_analysis python_programming machine_learning digital_literacy"`
	PrimaryGroupSize        *int        `json:"primaryGroupSize" validate:"omitempty,oneof=1 2"`
	SecondaryDiscipline     *string     `json:"secondaryDiscipline" validate:"omitempty,oneof=data_analysis python_programming machine_learning digital_literacy"`
	SecondaryGroupSize      *int        `json:"secondaryGroupSize" validate:"omitempty,oneof=1 2"`
	MotivationText          *string     `json:"motivationText"`
	Achievements            *string     `json:"achievements"`
	Experience              *string     `json:"experience"`
	RecommendationAvailable *string     `json:"recommendationAvailable" validate:"omitempty,oneof=yes no"`
	TeacherEmail            *string     `json:"teacherEmail"`
	DataAnalysisAnswers     []string    `json:"dataAnalysisAnswers"`
	PythonAnswers           []string    `json:"pythonProgrammingAnswers"`
	MachineLearningAnswers  []string    `json:"machineLearningAnswers"`
	DigitalLiteracyAnswers  []string    `json:"digitalLiteracyAnswers"`
	DigitalLiteracyScore    interface{} `json:"digitalliteracyscore"`
	PythonScore             interface{} `json:"pythonscore"`
	DataAnalysisScore       interface{} `json:"dataanalysisscore"`
}

// StudentSearchRow — строка выдачи поиска студентов: пользователь + анкета +
// агрегированные брони (booked_programs).
type StudentSearchRow struct {
	ID                     int            `json:"id" db:"id"`
	FirstName              string         `json:"first_name" db:"first_name"`
	LastName               string         `json:"last_name" db:"last_name"`
	Email                  *string        `json:"email" db:"email"`
	Telegram               *string        `json:"telegram" db:"telegram"`
	Birthday               *time.Time     `json:"birthday" db:"birthday"`
	Citizenship            *string        `json:"citizenship" db:"citizenship"`
	Phone                  *string        `json:"phone" db:"phone"`
	Faculty                *string        `json:"faculty" db:"faculty"`
	EduProgram             *string        `json:"edu_program" db:"edu_program"`
	Year                   *int           `json:"year" db:"year"`
	Debts                  *string        `json:"debts" db:"debts"`
	EduRating              *string        `json:"edu_rating" db:"edu_rating"`
	DigitalLiteracyScore   *string        `json:"digitalliteracyscore" db:"digitalliteracyscore"`
	PythonScore            *string        `json:"pythonscore" db:"pythonscore"`
	DataAnalysisScore      *string        `json:"dataanalysisscore" db:"dataanalysisscore"`
	PrimaryDiscipline      *string        `json:"primary_discipline" db:"primary_discipline"`
	PrimaryGroupSize       *int           `json:"primary_group_size" db:"primary_group_size"`
	SecondaryDiscipline    *string        `json:"secondary_discipline" db:"secondary_discipline"`
	SecondaryGroupSize     *int           `json:"secondary_group_size" db:"secondary_group_size"`
	DigitalLiteracyAnswers pq.StringArray `json:"digital_literacy_answers" db:"digital_literacy_answers"`
	DataAnalysisAnswers    pq.StringArray `json:"data_analysis_answers" db:"data_analysis_answers"`
	PythonAnswers          pq.StringArray `json:"python_programming_answers" db:"python_programming_answers"`
	MachineLearningAnswers pq.StringArray `json:"machine_learning_answers" db:"machine_learning_answers"`
	MotivationText         *string        `json:"motivation_text" db:"motivation_text"`
	Achievements           *string        `json:"achievements" db:"achievements"`
	Experience             *string        `json:"experience" db:"experience"`
	TeacherEmail           *string        `json:"teacher_email" db:"teacher_email"`
	BookedProgramsRaw      []byte         `json:"-" db:"booked_programs"`
	BookedPrograms         []ProgramLoad  `json:"booked_programs" db:"-"`
}

// BookedStudent — строка списка "мои студенты" преподавателя:
// активная бронь + данные студента (LEFT JOIN, поэтому профиль может отсутствовать).
type BookedStudent struct {
	ID                     *int           `json:"id" db:"id"`
	Discipline             string         `json:"discipline" db:"discipline"`
	Program                string         `json:"program" db:"program"`
	GroupsCount            int            `json:"groups_count" db:"groups_count"`
	AssistanceFormat       string         `json:"assistance_format" db:"assistance_format"`
	StartDate              time.Time      `json:"start_date" db:"start_date"`
	EndDate                time.Time      `json:"end_date" db:"end_date"`
	FirstName              *string        `json:"first_name" db:"first_name"`
	LastName               *string        `json:"last_name" db:"last_name"`
	Email                  *string        `json:"email" db:"email"`
	Telegram               *string        `json:"telegram" db:"telegram"`
	Birthday               *time.Time     `json:"birthday" db:"birthday"`
	Citizenship            *string        `json:"citizenship" db:"citizenship"`
	Phone                  *string        `json:"phone" db:"phone"`
	Faculty                *string        `json:"faculty" db:"faculty"`
	EduProgram             *string        `json:"edu_program" db:"edu_program"`
	Year                   *int           `json:"year" db:"year"`
	Debts                  *string        `json:"debts" db:"debts"`
	EduRating              *string        `json:"edu_rating" db:"edu_rating"`
	DigitalLiteracyScore   *string        `json:"digitalliteracyscore" db:"digitalliteracyscore"`
	PythonScore            *string        `json:"pythonscore" db:"pythonscore"`
	DataAnalysisScore      *string        `json:"dataanalysisscore" db:"dataanalysisscore"`
	PrimaryDiscipline      *string        `json:"primary_discipline" db:"primary_discipline"`
	PrimaryGroupSize       *int           `json:"primary_group_size" db:"primary_group_size"`
	SecondaryDiscipline    *string        `json:"secondary_discipline" db:"secondary_discipline"`
	SecondaryGroupSize     *int           `json:"secondary_group_size" db:"secondary_group_size"`
	DigitalLiteracyAnswers pq.StringArray `json:"digital_literacy_answers" db:"digital_literacy_answers"`
	DataAnalysisAnswers    pq.StringArray `json:"data_analysis_answers" db:"data_analysis_answers"`
	PythonAnswers          pq.StringArray `json:"python_programming_answers" db:"python_programming_answers"`
	MachineLearningAnswers pq.StringArray `json:"machine_learning_answers" db:"machine_learning_answers"`
	MotivationText         *string        `json:"motivation_text" db:"motivation_text"`
	Achievements           *string        `json:"achievements" db:"achievements"`
	Experience             *string        `json:"experience" db:"experience"`
	TeacherEmail           *string        `json:"teacher_email" db:"teacher_email"`
	BookingID              int            `json:"booking_id" db:"booking_id"`
}
