// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями, задачами и адресами. Предоставляет методы
// создания, чтения, обновления и удаления записей.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"database/sql"
)

// Типизированные ошибки хранилища. Обработчики проверяют их через errors.Is
// и превращают в соответствующие HTTP статусы.
var (
	// ErrNotFound — запись отсутствует либо не принадлежит вызывающему.
	ErrNotFound = errors.New("not found")
	// ErrUniqueViolation — нарушение уникальности (дубликат username или email).
	// Гонка двух одинаковых регистраций разрешается ограничением БД, не приложением.
	ErrUniqueViolation = errors.New("unique constraint violation")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями, задачами и адресами.
type Storage struct {
	DB *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS address (
    id SERIAL PRIMARY KEY,
    address1 TEXT NOT NULL,
    address2 TEXT,
    city TEXT NOT NULL,
    state TEXT NOT NULL,
    country TEXT NOT NULL,
    postal_code TEXT NOT NULL,
    apart_num INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    username TEXT NOT NULL UNIQUE,
    first_name TEXT NOT NULL DEFAULT '',
    second_name TEXT NOT NULL DEFAULT '',
    hashed_password TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    phone_number TEXT NOT NULL DEFAULT '',
    role TEXT NOT NULL DEFAULT 'user',
    address_id INTEGER REFERENCES address(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS todos (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    priority INTEGER NOT NULL,
    complete BOOLEAN NOT NULL DEFAULT FALSE,
    owner_id INTEGER NOT NULL REFERENCES users(id)
);`

// New создаёт подключение к PostgreSQL и инициализирует необходимые таблицы.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err = db.ExecContext(context.Background(), schema); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'todos'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table todos missing or query error: %w", err)
	}
	return nil
}

// wrapRowError приводит ошибки уровня БД к типизированным ошибкам хранилища.
func wrapRowError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
	}
	return fmt.Errorf("%s: %w", op, err)
}
