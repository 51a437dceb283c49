package app

import (
	"net/http"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/guest_auth_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/quiz_action_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/sections_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/session_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/session_navigate_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/share_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/http/toggle_section_handler"
	"github.com/IT-Nick/quantum-quiz/internal/infra/auth"
	httpError "github.com/IT-Nick/quantum-quiz/pkg/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router собирает HTTP API веб-клиента
func (app *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: app.httpLog, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(app.config.Server.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpError.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	share := share_handler.NewShareHandler(app.config.TelegramBot.Username, app.config.Server.PublicURL)

	r.Route("/api", func(api chi.Router) {
		api.Method(http.MethodPost, "/auth/guest", guest_auth_handler.NewGuestAuthHandler(app.authService))
		api.Method(http.MethodGet, "/content/sections", sections_handler.NewSectionsHandler(app.catalog))
		api.Method(http.MethodGet, "/share", share)
		api.Get("/share/qr.png", share.QRCode)

		api.Group(func(pr chi.Router) {
			pr.Use(auth.JWTMiddleware(app.authService))

			pr.Method(http.MethodGet, "/session", session_handler.NewOpenHandler(app.sessionService))
			pr.Method(http.MethodPost, "/session/reset", session_handler.NewResetHandler(app.sessionService))
			pr.Method(http.MethodPost, "/session/back", session_handler.NewBackHandler(app.sessionService))
			pr.Method(http.MethodPost, "/session/navigate", session_navigate_handler.NewNavigateHandler(app.sessionService))

			pr.Method(http.MethodPost, "/content/sections/{sectionID}/toggle", toggle_section_handler.NewToggleSectionHandler(app.sessionService))

			pr.Route("/quiz", func(qr chi.Router) {
				qr.Method(http.MethodPost, "/select", quiz_action_handler.NewSelectHandler(app.sessionService))
				qr.Method(http.MethodPost, "/submit", quiz_action_handler.NewSubmitHandler(app.sessionService))
				qr.Method(http.MethodPost, "/advance", quiz_action_handler.NewAdvanceHandler(app.sessionService))
				qr.Method(http.MethodPost, "/restart", quiz_action_handler.NewRestartHandler(app.sessionService))
			})
		})
	})

	return r
}
