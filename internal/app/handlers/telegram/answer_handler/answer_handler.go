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

package answer_handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/IT-Nick/quantum-quiz/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quantum-quiz/internal/app/view"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"gopkg.in/telebot.v4"
)

// AnswerHandler выбирает вариант ответа (answer|<индекс>). Ответ фиксируется отдельной кнопкой.
type AnswerHandler struct {
	sessionService *sessionService.SessionService
	renderer       *view.Renderer
}

func NewAnswerHandler(sessionService *sessionService.SessionService, renderer *view.Renderer) *AnswerHandler {
	return &AnswerHandler{sessionService: sessionService, renderer: renderer}
}

func (h *AnswerHandler) Handle(c telebot.Context) error {
	optionIndex, err := strconv.Atoi(c.Data())
	if err != nil {
		_ = c.Respond(&telebot.CallbackResponse{})
		return fmt.Errorf("invalid option index %q: %w", c.Data(), err)
	}

	return reply.Action(c, h.sessionService, h.renderer, func(ctx context.Context, key string) (*dto.ScreenView, error) {
		return h.sessionService.SelectAnswer(ctx, key, optionIndex)
	})
}

func (h *AnswerHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
