package app

import (
	"context"
	"fmt"
	"log"

	"github.com/IT-Nick/quantum-quiz/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    telegram_id BIGINT NOT NULL UNIQUE,
    telegram_username TEXT NOT NULL DEFAULT '',
    telegram_first_name TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// InitDatabase устанавливает подключение к базе данных и создает таблицу пользователей
func InitDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	const op = "app.InitDatabase"

	connConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	if _, err := db.Exec(ctx, usersSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ensure users table: %w", op, err)
	}

	log.Println("Database connected successfully!")
	return db, nil
}
