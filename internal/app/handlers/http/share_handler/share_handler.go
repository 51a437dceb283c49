package share_handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/start_handler"
	httpError "github.com/IT-Nick/quantum-quiz/pkg/http"
	"github.com/skip2/go-qrcode"
)

// ShareHandler отдает ссылку на бота, открывающую викторину, и URL QR-кода для нее
type ShareHandler struct {
	botUsername string
	baseURL     string
}

// NewShareHandler создает новый экземпляр обработчика
func NewShareHandler(botUsername, baseURL string) *ShareHandler {
	return &ShareHandler{botUsername: botUsername, baseURL: strings.TrimRight(baseURL, "/")}
}

// Link ссылка с параметром запуска викторины
func (h *ShareHandler) Link() string {
	return fmt.Sprintf("https://t.me/%s?start=%s", h.botUsername, start_handler.QuizPayload)
}

// ServeHTTP GET /api/share
func (h *ShareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.botUsername == "" {
		httpError.ErrorResponse(w, http.StatusNotFound, "Telegram bot is not configured")
		return
	}
	httpError.JSONResponse(w, http.StatusOK, ShareLinkResponse{
		Link:      h.Link(),
		QRCodeURL: h.baseURL + "/api/share/qr.png",
	})
}

// QRCode GET /api/share/qr.png
func (h *ShareHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	if h.botUsername == "" {
		httpError.ErrorResponse(w, http.StatusNotFound, "Telegram bot is not configured")
		return
	}
	png, err := qrcode.Encode(h.Link(), qrcode.Medium, 256)
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate QR code: %v", err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
