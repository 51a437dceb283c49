package middleware

import (
	"fmt"
	"log"
	"time"

	tele "gopkg.in/telebot.v4"
)

// LogActions пишет одну строку на каждое действие пользователя: кто, что нажал, сколько заняло и чем закончилось
func LogActions(logger ...*log.Logger) tele.MiddlewareFunc {
	l := pick(logger)
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			var who string
			if user := c.Sender(); user != nil {
				who = fmt.Sprintf("%s (ID: %d)", user.FirstName, user.ID)
			} else {
				who = "unknown"
			}
			status := "ok"
			if err != nil {
				status = "error: " + err.Error()
			}
			l.Printf("user %s, action %s, took %s, %s", who, action(c), time.Since(start).Round(time.Millisecond), status)
			return err
		}
	}
}

func action(c tele.Context) string {
	if cb := c.Callback(); cb != nil {
		if cb.Unique != "" {
			return fmt.Sprintf("callback %s|%s", cb.Unique, cb.Data)
		}
		return "callback " + cb.Data
	}
	if msg := c.Message(); msg != nil {
		return "message " + msg.Text
	}
	return "unknown"
}
