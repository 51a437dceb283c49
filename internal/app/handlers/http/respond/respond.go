package respond

import (
	"errors"
	"log"
	"net/http"

	"github.com/IT-Nick/quantum-quiz/internal/domain/content"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	"github.com/IT-Nick/quantum-quiz/internal/domain/navigation"
	"github.com/IT-Nick/quantum-quiz/internal/domain/quiz"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"github.com/IT-Nick/quantum-quiz/internal/infra/auth"
	httpError "github.com/IT-Nick/quantum-quiz/pkg/http"
)

// SessionKey ключ сессии веб-клиента по субъекту токена
func SessionKey(r *http.Request) string {
	return "web:" + auth.SubjectFromContext(r.Context())
}

// View отправляет экран или ошибку операции
func View(w http.ResponseWriter, v *dto.ScreenView, err error) {
	if err != nil {
		Error(w, err)
		return
	}
	httpError.JSONResponse(w, http.StatusOK, v)
}

// Error сопоставляет доменную ошибку коду HTTP
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrOptionOutOfRange), errors.Is(err, navigation.ErrUnknownScreen):
		httpError.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, content.ErrUnknownSection):
		httpError.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sessionService.ErrWrongScreen):
		httpError.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		httpError.ErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}
