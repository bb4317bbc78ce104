// Package store — типизированный слой запросов к PostgreSQL: именованные
// параметризованные операции над таблицами users, student_profiles, bookings.
package store

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound       = errors.New("запись не найдена")
	ErrNoFields       = errors.New("нет полей для обновления")
	ErrDuplicateEmail = errors.New("пользователь с этой почтой уже существует")
)

type Store struct {
	DB *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{DB: db}
}

// WithTx выполняет fn в транзакции: любая ошибка откатывает всё целиком,
// частичные записи снаружи не видны.
func (s *Store) WithTx(fn func(tx *sqlx.Tx) error) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
