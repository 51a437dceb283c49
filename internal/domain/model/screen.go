package model

// Screen название экрана приложения
type Screen string

const (
	ScreenHome    Screen = "home"
	ScreenContent Screen = "content"
	ScreenQuiz    Screen = "quiz"
)

// Valid сообщает, известен ли экран
func (s Screen) Valid() bool {
	switch s {
	case ScreenHome, ScreenContent, ScreenQuiz:
		return true
	}
	return false
}
