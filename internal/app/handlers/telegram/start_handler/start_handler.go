/*
MIT License

Copyright (c) 2025 Первый Бит

Данная лицензия разрешает использование, копирование, изменение, слияние, публикацию, распространение,
лицензирование и/или продажу копий программного обеспечения при соблюдении следующих условий:

В вышеуказанном уведомлении об авторских правах и данном уведомлении о разрешении должны быть включены все копии
или значимые части программного обеспечения.

ПРОГРАММНОЕ ОБЕСПЕЧЕНИЕ ПРЕДОСТАВЛЯЕТСЯ "КАК ЕСТЬ", БЕЗ ГАРАНТИЙ ЛЮБОГО РОДА, ЯВНЫХ ИЛИ ПОДРАЗУМЕВАЕМЫХ,
ВКЛЮЧАЯ, НО НЕ ОГРАНИЧИВАЯСЬ, ГАРАНТИЯМИ КОММЕРЧЕСКОЙ ПРИГОДНОСТИ, СООТВЕТСТВИЯ ДЛЯ ОПРЕДЕЛЕННОЙ ЦЕЛИ И
НЕНАРУШЕНИЯ ПРАВ. НИ В КОЕМ СЛУЧАЕ АВТОРЫ ИЛИ ПРАВООБЛАДАТЕЛИ НЕ НЕСУТ ОТВЕТСТВЕННОСТИ ПО ИСКАМ,
УСЛОВИЯМ, ДАМГЕ или другим обязательствам, возникающим из, или в связи с использованием, или иным образом
связанным с данным программным обеспечением.
*/

package start_handler

import (
	"context"
	"log"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quantum-quiz/internal/app/view"
	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	usersService "github.com/IT-Nick/quantum-quiz/internal/domain/users/service"
	"gopkg.in/telebot.v4"
)

// QuizPayload параметр ссылки t.me/<bot>?start=quiz, открывающий викторину сразу
const QuizPayload = "quiz"

// StartHandler структура для обработки команды /start
type StartHandler struct {
	userService    *usersService.UserService
	sessionService *sessionService.SessionService
	renderer       *view.Renderer
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(
	userService *usersService.UserService,
	sessionService *sessionService.SessionService,
	renderer *view.Renderer,
) *StartHandler {
	return &StartHandler{
		userService:    userService,
		sessionService: sessionService,
		renderer:       renderer,
	}
}

// Handle регистрирует пользователя и начинает сессию с главного экрана
func (h *StartHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	// Реестр пользователей не должен мешать учебе
	if sender := c.Sender(); sender != nil {
		if _, err := h.userService.GetOrCreateUser(ctx, sender.ID, sender.Username, sender.FirstName); err != nil {
			log.Printf("start: failed to register user %d: %v", sender.ID, err)
		}
	}

	key := reply.SessionKey(c)
	v, err := h.sessionService.Reset(ctx, key)
	if err != nil {
		return err
	}

	if msg := c.Message(); msg != nil && msg.Payload == QuizPayload {
		v, err = h.sessionService.Navigate(ctx, key, model.ScreenQuiz)
		if err != nil {
			return err
		}
	}

	return reply.Screen(c, h.renderer, v)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
