package next_handler

import (
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quantum-quiz/internal/app/view"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"gopkg.in/telebot.v4"
)

// NextHandler переходит к следующему вопросу или к результату
type NextHandler struct {
	sessionService *sessionService.SessionService
	renderer       *view.Renderer
}

func NewNextHandler(sessionService *sessionService.SessionService, renderer *view.Renderer) *NextHandler {
	return &NextHandler{sessionService: sessionService, renderer: renderer}
}

func (h *NextHandler) Handle(c telebot.Context) error {
	return reply.Action(c, h.sessionService, h.renderer, h.sessionService.Advance)
}

func (h *NextHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
