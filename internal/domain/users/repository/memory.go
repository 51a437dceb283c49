package repository

import (
	"context"
	"sync"
	"time"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
)

// MemoryUserRepository хранит пользователей в памяти, когда база данных не настроена
type MemoryUserRepository struct {
	mu     sync.Mutex
	byTgID map[int64]*model.User
	nextID int
}

// NewMemoryUserRepository создает пустое хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byTgID: make(map[int64]*model.User), nextID: 1}
}

func (r *MemoryUserRepository) GetUserByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byTgID[telegramID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryUserRepository) CreateUser(_ context.Context, telegramID int64, username, firstName string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byTgID[telegramID]; ok {
		u.TelegramUsername = username
		u.TelegramFirstName = firstName
		return u.ID, nil
	}
	u := &model.User{
		ID:                r.nextID,
		TelegramID:        telegramID,
		TelegramUsername:  username,
		TelegramFirstName: firstName,
		CreatedAt:         time.Now(),
	}
	r.nextID++
	r.byTgID[telegramID] = u
	return u.ID, nil
}
