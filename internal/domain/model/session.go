package model

import "time"

// Session состояние одного собеседника: стек экранов, раскрытые разделы и прогресс викторины.
// Key имеет вид "tg:<chat id>" для Telegram и "web:<subject>" для HTTP-клиента.
type Session struct {
	Key       string          `json:"key"`
	Stack     []Screen        `json:"stack"`
	Quiz      QuizState       `json:"quiz"`
	Expanded  map[string]bool `json:"expanded"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Clone возвращает глубокую копию сессии
func (s *Session) Clone() *Session {
	out := *s
	out.Stack = append([]Screen(nil), s.Stack...)
	if s.Expanded != nil {
		out.Expanded = make(map[string]bool, len(s.Expanded))
		for k, v := range s.Expanded {
			out.Expanded[k] = v
		}
	}
	return &out
}
