package model

// Константы для кнопок. Привязаны к названиям обработчиков.
// Не следует добавлять/изменять константы без изменения регистрации в app.bootstrapHandlersTelegram
const (
	NavigateKey = "nav"
	BackKey     = "back"
	SectionKey  = "section"
	AnswerKey   = "answer"
	SubmitKey   = "submit"
	NextKey     = "next"
	RestartKey  = "restart"
)
