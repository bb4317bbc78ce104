package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"assistant-booking/models"
)

const uniqueViolation = "23505"

// CreateUser регистрирует пользователя; студенту в той же транзакции
// заводится пустая анкета (questionnaire_completed = false).
func (s *Store) CreateUser(req models.RegisterRequest, passwordHash string) (models.User, error) {
	var user models.User
	err := s.WithTx(func(tx *sqlx.Tx) error {
		err := tx.Get(&user, `
			INSERT INTO users (email, password, first_name, last_name, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, email, first_name, last_name, role, created_at`,
			req.Email, passwordHash, req.FirstName, req.LastName, req.Role)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("insert user: %w", err)
		}

		if req.Role != "teacher" {
			if _, err := tx.Exec(`
				INSERT INTO student_profiles (user_id, questionnaire_completed)
				VALUES ($1, false)`, user.ID); err != nil {
				return fmt.Errorf("insert empty profile: %w", err)
			}
		}
		return nil
	})
	return user, err
}

// GetUserByEmail возвращает пользователя вместе с хэшем пароля (для входа).
func (s *Store) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := s.DB.Get(&user, `
		SELECT id, email, password, first_name, last_name, role, created_at
		FROM users WHERE email = $1`, email)
	if err == sql.ErrNoRows {
		return user, ErrNotFound
	}
	if err != nil {
		return user, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (s *Store) GetUserByID(id int) (models.User, error) {
	var user models.User
	err := s.DB.Get(&user, `
		SELECT id, email, first_name, last_name, role, created_at
		FROM users WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return user, ErrNotFound
	}
	if err != nil {
		return user, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// UpdateUser — частичное обновление базовых данных; passwordHash уже
// захэширован вызывающей стороной. Пустой набор полей — ErrNoFields.
func (s *Store) UpdateUser(id int, upd models.UserUpdate, passwordHash string) (models.User, error) {
	var setClauses []string
	var values []interface{}

	add := func(column, value string) {
		if value == "" {
			return
		}
		values = append(values, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(values)))
	}
	add("email", upd.Email)
	add("password", passwordHash)
	add("first_name", upd.FirstName)
	add("last_name", upd.LastName)

	if len(setClauses) == 0 {
		return models.User{}, ErrNoFields
	}

	var user models.User
	err := s.WithTx(func(tx *sqlx.Tx) error {
		values = append(values, id)
		query := fmt.Sprintf(`
			UPDATE users SET %s
			WHERE id = $%d
			RETURNING id, email, first_name, last_name, role, created_at`,
			strings.Join(setClauses, ", "), len(values))
		err := tx.Get(&user, query, values...)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	return user, err
}
