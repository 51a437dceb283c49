package session_handler

import (
	"context"
	"net/http"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/respond"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
)

type action func(ctx context.Context, key string) (*dto.ScreenView, error)

// SessionHandler выполняет действие без параметров над сессией гостя и возвращает экран
type SessionHandler struct {
	do action
}

// NewOpenHandler GET /api/session
func NewOpenHandler(s *sessionService.SessionService) *SessionHandler {
	return &SessionHandler{do: s.Open}
}

// NewResetHandler POST /api/session/reset
func NewResetHandler(s *sessionService.SessionService) *SessionHandler {
	return &SessionHandler{do: s.Reset}
}

// NewBackHandler POST /api/session/back
func NewBackHandler(s *sessionService.SessionService) *SessionHandler {
	return &SessionHandler{do: s.Back}
}

// ServeHTTP метод для обработки запроса
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v, err := h.do(r.Context(), respond.SessionKey(r))
	respond.View(w, v, err)
}
