package section_handler

import (
	"context"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quantum-quiz/internal/app/view"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"gopkg.in/telebot.v4"
)

// SectionHandler раскрывает и сворачивает разделы учебного материала (section|<id>)
type SectionHandler struct {
	sessionService *sessionService.SessionService
	renderer       *view.Renderer
}

func NewSectionHandler(sessionService *sessionService.SessionService, renderer *view.Renderer) *SectionHandler {
	return &SectionHandler{sessionService: sessionService, renderer: renderer}
}

func (h *SectionHandler) Handle(c telebot.Context) error {
	sectionID := c.Data()
	return reply.Action(c, h.sessionService, h.renderer, func(ctx context.Context, key string) (*dto.ScreenView, error) {
		return h.sessionService.ToggleSection(ctx, key, sectionID)
	})
}

func (h *SectionHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
