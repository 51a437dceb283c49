package quiz

import "errors"

var (
	// ErrInvalidQuestionSet набор вопросов нарушает ограничения модели
	ErrInvalidQuestionSet = errors.New("invalid question set")
	// ErrOptionOutOfRange индекс варианта вне диапазона текущего вопроса
	ErrOptionOutOfRange = errors.New("option index out of range")
	// ErrQuizFinished викторина завершена, текущего вопроса нет
	ErrQuizFinished = errors.New("quiz is finished")
	// ErrQuizNotFinished результат запрошен до завершения викторины
	ErrQuizNotFinished = errors.New("quiz is not finished")
	// ErrInvalidState сохраненное состояние нарушает инварианты
	ErrInvalidState = errors.New("invalid quiz state")
)
