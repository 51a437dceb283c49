package toggle_section_handler

import (
	"net/http"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/respond"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"github.com/go-chi/chi/v5"
)

// ToggleSectionHandler POST /api/content/sections/{sectionID}/toggle
type ToggleSectionHandler struct {
	sessionService *sessionService.SessionService
}

func NewToggleSectionHandler(s *sessionService.SessionService) *ToggleSectionHandler {
	return &ToggleSectionHandler{sessionService: s}
}

// ServeHTTP метод для обработки запроса
func (h *ToggleSectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")
	v, err := h.sessionService.ToggleSection(r.Context(), respond.SessionKey(r), sectionID)
	respond.View(w, v, err)
}
