package booking

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"assistant-booking/models"
)

// Engine создаёт и отменяет брони, соблюдая правило вместимости.
type Engine struct {
	db *sqlx.DB
}

func NewEngine(db *sqlx.DB) *Engine {
	return &Engine{db: db}
}

// Book атомарно проверяет вместимость и вставляет бронь. Конкурирующие
// запросы на одну и ту же тройку (студент, дисциплина, программа)
// сериализуются advisory-блокировкой: блокировка по строкам здесь не
// работает — у студента без броней блокировать нечего, и обе проверки
// прошли бы одновременно.
func (e *Engine) Book(req models.BookingRequest, start, end time.Time) (*models.Booking, error) {
	tx, err := e.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback()

	lockKey := fmt.Sprintf("%d:%s:%s", req.StudentID, req.Discipline, req.Program)
	if _, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, lockKey); err != nil {
		return nil, fmt.Errorf("acquire booking lock: %w", err)
	}

	var currentGroups int
	err = tx.Get(&currentGroups, `
		SELECT COALESCE(SUM(groups_count), 0)
		FROM bookings
		WHERE student_id = $1
		  AND discipline = $2
		  AND program = $3
		  AND active = true`,
		req.StudentID, req.Discipline, req.Program)
	if err != nil {
		return nil, fmt.Errorf("sum current groups: %w", err)
	}

	decision := Evaluate(currentGroups, req.GroupsCount)
	if !decision.Allowed {
		return nil, &CapacityError{Decision: decision}
	}

	var b models.Booking
	err = tx.Get(&b, `
		INSERT INTO bookings (student_id, teacher_id, discipline, groups_count, assistance_format, start_date, end_date, program)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, student_id, teacher_id, discipline, groups_count, assistance_format, start_date, end_date, program, active, created_at`,
		req.StudentID, req.TeacherID, req.Discipline, req.GroupsCount, req.AssistanceFormat, start, end, req.Program)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}
	return &b, nil
}

// Cancel — мягкое удаление: active=false, строка остаётся ради истории.
// Повторная отмена — no-op, не ошибка.
func (e *Engine) Cancel(bookingID int) error {
	_, err := e.db.Exec(`UPDATE bookings SET active = false WHERE id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("cancel booking %d: %w", bookingID, err)
	}
	return nil
}

// LoadFor возвращает текущую загрузку студента (nil — броней нет).
func (e *Engine) LoadFor(studentID int) (*StudentLoad, error) {
	var rows []ActiveRow
	err := e.db.Select(&rows, `
		SELECT student_id, program, groups_count
		FROM bookings
		WHERE student_id = $1 AND active = true`,
		studentID)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load bookings for student %d: %w", studentID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return Aggregate(rows)[studentID], nil
}
