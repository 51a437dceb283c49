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

package reply

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/IT-Nick/quantum-quiz/internal/app/view"
	"github.com/IT-Nick/quantum-quiz/internal/domain/content"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	"github.com/IT-Nick/quantum-quiz/internal/domain/navigation"
	"github.com/IT-Nick/quantum-quiz/internal/domain/quiz"
	sessionService "github.com/IT-Nick/quantum-quiz/internal/domain/sessions/service"
	"gopkg.in/telebot.v4"
)

// Текст всплывающего уведомления, если кнопка устарела
const staleButton = "この操作は現在利用できません"

// SessionKey ключ сессии чата
func SessionKey(c telebot.Context) string {
	if chat := c.Chat(); chat != nil {
		return fmt.Sprintf("tg:%d", chat.ID)
	}
	return fmt.Sprintf("tg:%d", c.Sender().ID)
}

// Screen показывает экран: редактирует сообщение с кнопкой или отправляет новое
func Screen(c telebot.Context, r *view.Renderer, v *dto.ScreenView) error {
	text, markup := r.Render(v)
	opts := &telebot.SendOptions{ParseMode: telebot.ModeHTML, ReplyMarkup: markup}

	if c.Callback() == nil {
		return c.Send(text, opts)
	}

	if err := c.Edit(text, opts); err != nil && !notModified(err) {
		return fmt.Errorf("edit screen: %w", err)
	}
	return c.Respond(&telebot.CallbackResponse{})
}

// Action выполняет действие над сессией и показывает результат.
// Если действие неприменимо к текущему экрану, пользователь видит уведомление и актуальный экран.
func Action(c telebot.Context, sessions *sessionService.SessionService, r *view.Renderer,
	do func(ctx context.Context, key string) (*dto.ScreenView, error)) error {
	ctx := context.Background()
	key := SessionKey(c)

	v, err := do(ctx, key)
	if err == nil {
		return Screen(c, r, v)
	}
	if !isStale(err) {
		_ = c.Respond(&telebot.CallbackResponse{})
		return err
	}

	log.Printf("stale button in %s: %v", key, err)
	current, openErr := sessions.Open(ctx, key)
	if openErr != nil {
		return openErr
	}
	text, markup := r.Render(current)
	if err := c.Edit(text, &telebot.SendOptions{ParseMode: telebot.ModeHTML, ReplyMarkup: markup}); err != nil && !notModified(err) {
		return fmt.Errorf("edit screen: %w", err)
	}
	return c.Respond(&telebot.CallbackResponse{Text: staleButton})
}

func isStale(err error) bool {
	return errors.Is(err, sessionService.ErrWrongScreen) ||
		errors.Is(err, quiz.ErrOptionOutOfRange) ||
		errors.Is(err, content.ErrUnknownSection) ||
		errors.Is(err, navigation.ErrUnknownScreen)
}

func notModified(err error) bool {
	return errors.Is(err, telebot.ErrSameMessageContent) ||
		strings.Contains(err.Error(), "message is not modified")
}
