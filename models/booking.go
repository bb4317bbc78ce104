package models

import "time"

// Допустимые значения дисциплин и форматов — совпадают с CHECK-ограничениями в схеме.
const (
	DisciplineDataAnalysis      = "data_analysis"
	DisciplinePythonProgramming = "python_programming"
	DisciplineMachineLearning   = "machine_learning"
	DisciplineDigitalLiteracy   = "digital_literacy"
)

type Booking struct {
	ID               int       `json:"id" db:"id"`
	StudentID        int       `json:"student_id" db:"student_id"`
	TeacherID        int       `json:"teacher_id" db:"teacher_id"`
	Discipline       string    `json:"discipline" db:"discipline"`
	GroupsCount      int       `json:"groups_count" db:"groups_count"`
	AssistanceFormat string    `json:"assistance_format" db:"assistance_format"`
	StartDate        time.Time `json:"start_date" db:"start_date"`
	EndDate          time.Time `json:"end_date" db:"end_date"`
	Program          string    `json:"program" db:"program"`
	Active           bool      `json:"active" db:"active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

type BookingRequest struct {
	StudentID        int    `json:"studentId" validate:"required"`
	TeacherID        int    `json:"teacherId" validate:"required"`
	Discipline       string `json:"discipline" validate:"required,oneof=data_analysis python_programming machine_learning digital_literacy"`
	GroupsCount      int    `json:"groupsCount" validate:"required,oneof=1 2"`
	AssistanceFormat string `json:"assistanceFormat" validate:"required,oneof=money credits"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Program          string `json:"program"`
}

// ProgramLoad — сколько групп уже занято у студента в рамках одной программы.
type ProgramLoad struct {
	Program string `json:"program" db:"program"`
	Groups  int    `json:"groups" db:"groups"`
}

// StudentBooking — активное бронирование глазами студента (с данными преподавателя).
type StudentBooking struct {
	ID               int       `json:"id" db:"id"`
	TeacherFirstName string    `json:"teacher_first_name" db:"teacher_first_name"`
	TeacherLastName  string    `json:"teacher_last_name" db:"teacher_last_name"`
	TeacherEmail     string    `json:"teacher_email" db:"teacher_email"`
	Discipline       string    `json:"discipline" db:"discipline"`
	GroupsCount      int       `json:"groups_count" db:"groups_count"`
	AssistanceFormat string    `json:"assistance_format" db:"assistance_format"`
	StartDate        time.Time `json:"start_date" db:"start_date"`
	EndDate          time.Time `json:"end_date" db:"end_date"`
	Program          string    `json:"program" db:"program"`
}
