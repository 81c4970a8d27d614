package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dosada05/hackathon-registration/config"
	_ "github.com/lib/pq"           // Import postgres driver
	_ "github.com/mattn/go-sqlite3" // Import sqlite driver
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS registrations (
	id SERIAL PRIMARY KEY,
	full_name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	phone TEXT,
	participation_type TEXT NOT NULL,
	team_members TEXT,
	skill_level TEXT NOT NULL,
	project_idea TEXT NOT NULL,
	wants_free_license BOOLEAN NOT NULL,
	availability_confirmed BOOLEAN NOT NULL,
	share_recordings BOOLEAN NOT NULL,
	social_handle TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS registrations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	phone TEXT,
	participation_type TEXT NOT NULL,
	team_members TEXT,
	skill_level TEXT NOT NULL,
	project_idea TEXT NOT NULL,
	wants_free_license INTEGER NOT NULL,
	availability_confirmed INTEGER NOT NULL,
	share_recordings INTEGER NOT NULL,
	social_handle TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// Connect открывает хранилище выбранного бэкенда, проверяет соединение и применяет схему.
func Connect(cfg config.Database, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	// Configure connection pool
	switch cfg.Driver {
	case config.DriverSQLite:
		// Файловая БД: один писатель.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	if err = Migrate(ctx, db, cfg.Driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate создаёт таблицу registrations, если её ещё нет.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	schema, err := schemaFor(driver)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

func schemaFor(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return postgresSchema, nil
	case config.DriverSQLite:
		return sqliteSchema, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
