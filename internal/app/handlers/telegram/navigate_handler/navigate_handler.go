package navigate_handler

import (
	"context"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quantum-quiz/internal/app/view"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"gopkg.in/telebot.v4"
)

// NavigateHandler обрабатывает кнопки перехода nav|<экран>
type NavigateHandler struct {
	sessionService *sessionService.SessionService
	renderer       *view.Renderer
}

func NewNavigateHandler(sessionService *sessionService.SessionService, renderer *view.Renderer) *NavigateHandler {
	return &NavigateHandler{sessionService: sessionService, renderer: renderer}
}

func (h *NavigateHandler) Handle(c telebot.Context) error {
	dest := model.Screen(c.Data())
	return reply.Action(c, h.sessionService, h.renderer, func(ctx context.Context, key string) (*dto.ScreenView, error) {
		return h.sessionService.Navigate(ctx, key, dest)
	})
}

func (h *NavigateHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}

// BackHandler кнопка «назад»
type BackHandler struct {
	sessionService *sessionService.SessionService
	renderer       *view.Renderer
}

func NewBackHandler(sessionService *sessionService.SessionService, renderer *view.Renderer) *BackHandler {
	return &BackHandler{sessionService: sessionService, renderer: renderer}
}

func (h *BackHandler) Handle(c telebot.Context) error {
	return reply.Action(c, h.sessionService, h.renderer, h.sessionService.Back)
}

func (h *BackHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
