package submit_handler

import (
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quantum-quiz/internal/app/view"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"gopkg.in/telebot.v4"
)

// SubmitHandler фиксирует выбранный ответ и показывает пояснение
type SubmitHandler struct {
	sessionService *sessionService.SessionService
	renderer       *view.Renderer
}

func NewSubmitHandler(sessionService *sessionService.SessionService, renderer *view.Renderer) *SubmitHandler {
	return &SubmitHandler{sessionService: sessionService, renderer: renderer}
}

func (h *SubmitHandler) Handle(c telebot.Context) error {
	return reply.Action(c, h.sessionService, h.renderer, h.sessionService.SubmitAnswer)
}

func (h *SubmitHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
