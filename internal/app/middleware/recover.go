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

package middleware

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	tele "gopkg.in/telebot.v4"
)

// ErrPanic оборачивает панику, пойманную в обработчике
var ErrPanic = errors.New("handler panic")

// Recover перехватывает панику обработчика: пишет ее в лог вместе со стеком и действием пользователя,
// затем вызывает onPanic. Обработчик в этом случае возвращает ошибку, обернутую в ErrPanic.
func Recover(logger *log.Logger, onPanic ...func(error, tele.Context)) tele.MiddlewareFunc {
	l := pick([]*log.Logger{logger})
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				err = panicError(r)
				l.Printf("panic on %s: %v\n%s", action(c), r, debug.Stack())
				for _, f := range onPanic {
					if f != nil {
						f(err, c)
					}
				}
			}()
			return next(c)
		}
	}
}

func panicError(r any) error {
	if e, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, e)
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}
