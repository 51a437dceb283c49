package model

import "time"

// User пользователь Telegram, открывший бота
type User struct {
	ID                int       `json:"id"`
	TelegramID        int64     `json:"telegram_id"`
	TelegramUsername  string    `json:"telegram_username"`
	TelegramFirstName string    `json:"telegram_first_name"`
	CreatedAt         time.Time `json:"created_at"`
}
