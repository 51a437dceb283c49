package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository реализация хранилища пользователей на PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает новый экземпляр UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByTelegramID ищет пользователя по ID telegram. Если пользователя нет, возвращает nil.
func (r *UserRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	query := `
        SELECT id, telegram_id, telegram_username, telegram_first_name, created_at
        FROM users
        WHERE telegram_id = $1
    `
	var user model.User
	err := r.db.QueryRow(ctx, query, telegramID).Scan(
		&user.ID, &user.TelegramID, &user.TelegramUsername, &user.TelegramFirstName, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by telegram ID: %w", err)
	}
	return &user, nil
}

// CreateUser создает нового пользователя. Повторный вызов для того же telegram_id обновляет имя.
func (r *UserRepository) CreateUser(ctx context.Context, telegramID int64, username, firstName string) (int, error) {
	var userID int
	err := r.db.QueryRow(ctx, `
        INSERT INTO users (telegram_id, telegram_username, telegram_first_name)
        VALUES ($1, $2, $3)
        ON CONFLICT (telegram_id) DO UPDATE
            SET telegram_username = EXCLUDED.telegram_username,
                telegram_first_name = EXCLUDED.telegram_first_name
        RETURNING id`, telegramID, username, firstName).
		Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return userID, nil
}
