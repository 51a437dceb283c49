package quiz_action_handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/respond"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	httpError "github.com/IT-Nick/quantum-quiz/pkg/http"
)

// SelectRequest структура запроса выбора варианта
type SelectRequest struct {
	Index *int `json:"index"`
}

// SelectHandler POST /api/quiz/select
type SelectHandler struct {
	sessionService *sessionService.SessionService
}

func NewSelectHandler(s *sessionService.SessionService) *SelectHandler {
	return &SelectHandler{sessionService: s}
}

// ServeHTTP метод для обработки запроса
func (h *SelectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Index == nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Missing index")
		return
	}

	v, err := h.sessionService.SelectAnswer(r.Context(), respond.SessionKey(r), *req.Index)
	respond.View(w, v, err)
}

// ActionHandler действия викторины без параметров: submit, advance, restart
type ActionHandler struct {
	do func(ctx context.Context, key string) (*dto.ScreenView, error)
}

func NewSubmitHandler(s *sessionService.SessionService) *ActionHandler {
	return &ActionHandler{do: s.SubmitAnswer}
}

func NewAdvanceHandler(s *sessionService.SessionService) *ActionHandler {
	return &ActionHandler{do: s.Advance}
}

func NewRestartHandler(s *sessionService.SessionService) *ActionHandler {
	return &ActionHandler{do: s.Restart}
}

// ServeHTTP метод для обработки запроса
func (h *ActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v, err := h.do(r.Context(), respond.SessionKey(r))
	respond.View(w, v, err)
}
