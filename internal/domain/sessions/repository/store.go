package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
)

// ErrNotFound сессия с таким ключом не сохранена
var ErrNotFound = errors.New("session not found")

// Store хранилище сессий
type Store interface {
	Get(ctx context.Context, key string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func encode(s *model.Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", s.Key, err)
	}
	return data, nil
}

func decode(key string, data []byte) (*model.Session, error) {
	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", key, err)
	}
	return &s, nil
}
