package session_navigate_handler

import (
	"encoding/json"
	"net/http"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/respond"
	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	httpError "github.com/IT-Nick/quantum-quiz/pkg/http"
)

// NavigateRequest структура запроса
type NavigateRequest struct {
	Screen model.Screen `json:"screen"`
}

// NavigateHandler POST /api/session/navigate
type NavigateHandler struct {
	sessionService *sessionService.SessionService
}

func NewNavigateHandler(s *sessionService.SessionService) *NavigateHandler {
	return &NavigateHandler{sessionService: s}
}

// ServeHTTP метод для обработки запроса
func (h *NavigateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.sessionService.Navigate(r.Context(), respond.SessionKey(r), req.Screen)
	respond.View(w, v, err)
}
