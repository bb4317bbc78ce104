package driver

import (
	"embed"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// ConnectDB открывает подключение к PostgreSQL по переменным окружения.
func ConnectDB() *sqlx.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "user"),
		getenv("DB_PASSWORD", "password"),
		getenv("DB_NAME", "my_db"),
		getenv("DB_SSLMODE", "disable"),
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("Ошибка подключения к базе данных")
	}
	return db
}

// Migrate накатывает встроенные миграции; уже актуальная схема — не ошибка.
func Migrate(db *sqlx.DB) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		logrus.WithError(err).Fatal("Ошибка чтения миграций")
	}
	target, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("Ошибка подготовки миграций")
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", target)
	if err != nil {
		logrus.WithError(err).Fatal("Ошибка инициализации миграций")
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logrus.WithError(err).Fatal("Ошибка применения миграций")
	}
}
