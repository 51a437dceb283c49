package service

import (
	"context"
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
)

// UserStore хранилище пользователей
type UserStore interface {
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	CreateUser(ctx context.Context, telegramID int64, username, firstName string) (int, error)
}

// UserService содержит логику бизнес-операций для пользователей
type UserService struct {
	userRepo UserStore
}

// NewUserService создает новый экземпляр UserService
func NewUserService(userRepo UserStore) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetOrCreateUser возвращает ID пользователя, если он существует, или создает нового
func (s *UserService) GetOrCreateUser(ctx context.Context, telegramID int64, username, firstName string) (int, error) {
	user, err := s.userRepo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	if user != nil {
		return user.ID, nil
	}

	userID, err := s.userRepo.CreateUser(ctx, telegramID, username, firstName)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return userID, nil
}

// GetUserByTelegramID получает пользователя по ID telegram
func (s *UserService) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.userRepo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by telegram ID: %w", err)
	}
	return user, nil
}
