package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/answer_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/navigate_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/next_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/restart_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/section_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/submit_handler"
	"github.com/IT-Nick/quantum-quiz/internal/app/middleware"
	"github.com/IT-Nick/quantum-quiz/internal/app/poller"
	"github.com/IT-Nick/quantum-quiz/internal/app/view"
	"github.com/IT-Nick/quantum-quiz/internal/domain/catalog"
	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	sessionsRepo "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/repository"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"github.com/IT-Nick/quantum-quiz/internal/domain/users/repository"
	"github.com/IT-Nick/quantum-quiz/internal/domain/users/service"
	"github.com/IT-Nick/quantum-quiz/internal/infra/auth"
	"github.com/IT-Nick/quantum-quiz/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/telebot.v4"
)

type Services struct {
	userService    *service.UserService
	sessionService *sessionService.SessionService
	authService    *auth.AuthService
}

type App struct {
	config   *config.Config
	catalog  *catalog.Catalog
	bot      *telebot.Bot
	running  bool
	db       *pgxpool.Pool
	store    sessionsRepo.Store
	server   *http.Server
	renderer *view.Renderer

	botLog  *log.Logger
	httpLog *log.Logger

	Services
}

// NewApp загружает конфигурацию из файла и собирает приложение
func NewApp(ctx context.Context, configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}
	return NewAppWithConfig(ctx, configImpl)
}

// NewAppWithConfig собирает приложение: каталог, хранилища и сервисы
func NewAppWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}

	app := &App{
		config:   cfg,
		catalog:  c,
		renderer: view.NewRenderer(c.Labels),
		botLog:   log.New(os.Stderr, "[bot] ", log.LstdFlags),
		httpLog:  log.New(os.Stderr, "[http] ", log.LstdFlags),
	}

	if cfg.DatabaseEnabled() {
		app.db, err = InitDatabase(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	app.store, err = NewSessionStore(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	app.initServices()

	return app, nil
}

// Функция для инициализации сервисов и репозиториев
func (app *App) initServices() {
	var userRepo service.UserStore
	if app.db != nil {
		userRepo = repository.NewUserRepository(app.db)
	} else {
		userRepo = repository.NewMemoryUserRepository()
	}

	app.userService = service.NewUserService(userRepo)
	app.sessionService = sessionService.NewSessionService(app.store, app.catalog)
	app.authService = auth.NewAuthService(app.config.Auth.HMACSecret, app.config.Auth.Issuer, app.config.Auth.TokenTTL)
}

// InitTelegram создает бота с переданными настройками и регистрирует обработчики
func (app *App) InitTelegram(settings telebot.Settings) error {
	if settings.OnError == nil {
		settings.OnError = func(err error, c telebot.Context) {
			app.botLog.Printf("handler error: %v", err)
		}
	}
	bot, err := telebot.NewBot(settings)
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.bootstrapHandlersTelegram()
	return nil
}

// ListenAndServeTelegram запускает Telegram бота
func (app *App) ListenAndServeTelegram() error {
	err := app.InitTelegram(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: poller.NewPoller(app.config),
	})
	if err != nil {
		return err
	}

	app.running = true
	go app.bot.Start()

	return nil
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	app.bot.Use(middleware.Recover(app.botLog, func(_ error, c telebot.Context) {
		if c.Callback() != nil {
			_ = c.Respond(&telebot.CallbackResponse{Text: "エラーが発生しました"})
		}
	}))
	app.bot.Use(middleware.LogActions(app.botLog))
	if app.config.TelegramBot.Debug {
		app.bot.Use(middleware.Logger(app.botLog))
	}

	app.bot.Handle("/start", start_handler.NewStartHandler(app.userService, app.sessionService, app.renderer).GetHandlerFunc())

	// Кнопки экранов. Уникальные ключи совпадают с model.*Key, данные кнопки - параметр действия.
	app.bot.Handle(&telebot.InlineButton{Unique: model.NavigateKey}, navigate_handler.NewNavigateHandler(app.sessionService, app.renderer).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.BackKey}, navigate_handler.NewBackHandler(app.sessionService, app.renderer).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.SectionKey}, section_handler.NewSectionHandler(app.sessionService, app.renderer).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.AnswerKey}, answer_handler.NewAnswerHandler(app.sessionService, app.renderer).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.SubmitKey}, submit_handler.NewSubmitHandler(app.sessionService, app.renderer).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.NextKey}, next_handler.NewNextHandler(app.sessionService, app.renderer).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.RestartKey}, restart_handler.NewRestartHandler(app.sessionService, app.renderer).GetHandlerFunc())
}

// ListenAndServeHTTP запускает HTTP сервер и блокируется до его остановки
func (app *App) ListenAndServeHTTP() error {
	app.server = app.newHTTPServer()
	return app.serveHTTP()
}

func (app *App) newHTTPServer() *http.Server {
	return &http.Server{
		Addr:              app.config.HTTPAddr(),
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (app *App) serveHTTP() error {
	app.httpLog.Printf("listening on %s", app.server.Addr)
	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe запускает включенные в конфигурации серверы и работает до отмены ctx
func (app *App) ListenAndServe(ctx context.Context) error {
	if app.config.TelegramEnabled() {
		if err := app.ListenAndServeTelegram(); err != nil {
			return fmt.Errorf("failed to start Telegram bot: %w", err)
		}
		app.botLog.Printf("bot started in %s mode", app.config.TelegramBot.Mode)
	}

	errCh := make(chan error, 1)
	if app.config.Server.Enabled {
		app.server = app.newHTTPServer()
		go func() {
			if err := app.serveHTTP(); err != nil {
				errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	app.Shutdown(context.Background())
	return err
}

// Shutdown останавливает бота и HTTP сервер и закрывает хранилища
func (app *App) Shutdown(ctx context.Context) {
	var wg sync.WaitGroup
	if app.bot != nil && app.running {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.bot.Stop()
		}()
	}
	if app.server != nil {
		if err := app.server.Shutdown(ctx); err != nil {
			app.httpLog.Printf("shutdown: %v", err)
		}
	}
	wg.Wait()
	app.Close()
}

// Close закрывает хранилище сессий и пул базы данных
func (app *App) Close() {
	if app.store != nil {
		if err := app.store.Close(); err != nil {
			log.Printf("session store close: %v", err)
		}
	}
	if app.db != nil {
		app.db.Close()
	}
}
