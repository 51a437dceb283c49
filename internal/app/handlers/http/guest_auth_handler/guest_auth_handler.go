package guest_auth_handler

import (
	"net/http"

	"github.com/IT-Nick/quantum-quiz/internal/infra/auth"
	httpError "github.com/IT-Nick/quantum-quiz/pkg/http"
)

// GuestAuthResponse структура для ответа
type GuestAuthResponse struct {
	AccessToken string `json:"access_token"`
	Subject     string `json:"subject"`
}

// GuestAuthHandler выдает токен новому гостю
type GuestAuthHandler struct {
	authService *auth.AuthService
}

// NewGuestAuthHandler создает новый экземпляр обработчика
func NewGuestAuthHandler(authService *auth.AuthService) *GuestAuthHandler {
	return &GuestAuthHandler{authService: authService}
}

// ServeHTTP метод для обработки запроса
func (h *GuestAuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sub, tok, err := h.authService.IssueGuest()
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	httpError.JSONResponse(w, http.StatusOK, GuestAuthResponse{AccessToken: tok, Subject: sub})
}
