package model

// NoAnswer обозначает отсутствие выбранного варианта ответа.
const NoAnswer = -1

// Question представляет вопрос викторины с фиксированным набором вариантов
type Question struct {
	ID           int      `json:"id" yaml:"id"`
	Prompt       string   `json:"prompt" yaml:"prompt"`
	Options      []string `json:"options" yaml:"options"`
	CorrectIndex int      `json:"correct_index" yaml:"correct_index"`
	Explanation  string   `json:"explanation" yaml:"explanation"`
}

// QuizState хранит прогресс одной попытки прохождения викторины.
// Изменяется только через quiz.Engine.
type QuizState struct {
	CurrentIndex   int  `json:"current_index"`
	SelectedAnswer int  `json:"selected_answer"`
	Answered       bool `json:"answered"`
	Score          int  `json:"score"`
	Finished       bool `json:"finished"`
}

// NewQuizState возвращает состояние новой попытки
func NewQuizState() QuizState {
	return QuizState{SelectedAnswer: NoAnswer}
}

// HasSelection сообщает, выбран ли вариант для текущего вопроса
func (s QuizState) HasSelection() bool {
	return s.SelectedAnswer != NoAnswer
}
