package restart_handler

import (
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quantum-quiz/internal/app/view"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"gopkg.in/telebot.v4"
)

// RestartHandler начинает викторину заново
type RestartHandler struct {
	sessionService *sessionService.SessionService
	renderer       *view.Renderer
}

func NewRestartHandler(sessionService *sessionService.SessionService, renderer *view.Renderer) *RestartHandler {
	return &RestartHandler{sessionService: sessionService, renderer: renderer}
}

func (h *RestartHandler) Handle(c telebot.Context) error {
	return reply.Action(c, h.sessionService, h.renderer, h.sessionService.Restart)
}

func (h *RestartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
