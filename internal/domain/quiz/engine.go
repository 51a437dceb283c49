package quiz

import (
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
)

// Result итог завершенной попытки
type Result struct {
	Score      int `json:"score"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Engine конечный автомат викторины: выбор → ответ → пояснение → следующий вопрос → результат.
//
// Нарушение предусловий изменяющих операций не является ошибкой и ничего не меняет.
// Индекс варианта вне диапазона и обращение к аксессорам в неверном состоянии
// возвращают ошибку: это рассинхронизация интерфейса и движка.
//
// Engine не потокобезопасен, синхронизацию обеспечивает владелец.
type Engine struct {
	set   QuestionSet
	state model.QuizState
}

// NewEngine создает движок с новой попыткой
func NewEngine(set QuestionSet) *Engine {
	return &Engine{set: set, state: model.NewQuizState()}
}

// RestoreEngine восстанавливает движок из сохраненного состояния
func RestoreEngine(set QuestionSet, state model.QuizState) (*Engine, error) {
	if err := validateState(set, state); err != nil {
		return nil, err
	}
	return &Engine{set: set, state: state}, nil
}

func validateState(set QuestionSet, st model.QuizState) error {
	switch {
	case st.CurrentIndex < 0 || st.CurrentIndex >= set.Len():
		return fmt.Errorf("%w: current index %d, total %d", ErrInvalidState, st.CurrentIndex, set.Len())
	case st.SelectedAnswer != model.NoAnswer &&
		(st.SelectedAnswer < 0 || st.SelectedAnswer >= len(set.questions[st.CurrentIndex].Options)):
		return fmt.Errorf("%w: selected answer %d", ErrInvalidState, st.SelectedAnswer)
	case st.Answered && st.SelectedAnswer == model.NoAnswer:
		return fmt.Errorf("%w: answered without selection", ErrInvalidState)
	case st.Score < 0 || st.Score > set.Len():
		return fmt.Errorf("%w: score %d", ErrInvalidState, st.Score)
	case st.Score > answeredCount(st):
		// за каждый отвеченный вопрос начисляется не больше одного балла
		return fmt.Errorf("%w: score %d after %d answers", ErrInvalidState, st.Score, answeredCount(st))
	case st.Finished && (!st.Answered || st.CurrentIndex != set.Len()-1):
		return fmt.Errorf("%w: finished before the last answer", ErrInvalidState)
	}
	return nil
}

func answeredCount(st model.QuizState) int {
	if st.Answered {
		return st.CurrentIndex + 1
	}
	return st.CurrentIndex
}

// State возвращает копию текущего состояния
func (e *Engine) State() model.QuizState { return e.state }

// Progress возвращает номер текущего вопроса (с единицы) и общее количество
func (e *Engine) Progress() (int, int) {
	return e.state.CurrentIndex + 1, e.set.Len()
}

// IsLast сообщает, является ли текущий вопрос последним
func (e *Engine) IsLast() bool {
	return e.state.CurrentIndex == e.set.Len()-1
}

// SelectAnswer запоминает предварительный выбор варианта.
// После ответа на вопрос выбор заблокирован и вызов ничего не делает.
func (e *Engine) SelectAnswer(index int) error {
	q := e.set.questions[e.state.CurrentIndex]
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOptionOutOfRange, index, len(q.Options))
	}
	if e.state.Answered {
		return nil
	}
	e.state.SelectedAnswer = index
	return nil
}

// SubmitAnswer фиксирует выбранный вариант и начисляет балл за верный ответ.
// Возвращает false, если ответ не выбран или уже зафиксирован.
func (e *Engine) SubmitAnswer() bool {
	if !e.state.HasSelection() || e.state.Answered {
		return false
	}
	e.state.Answered = true
	if e.state.SelectedAnswer == e.set.questions[e.state.CurrentIndex].CorrectIndex {
		e.state.Score++
	}
	return true
}

// Advance переходит к следующему вопросу или завершает викторину после последнего.
// Возвращает false, если текущий вопрос еще без ответа или викторина уже завершена.
func (e *Engine) Advance() bool {
	if !e.state.Answered || e.state.Finished {
		return false
	}
	if e.IsLast() {
		e.state.Finished = true
		return true
	}
	e.state.CurrentIndex++
	e.state.SelectedAnswer = model.NoAnswer
	e.state.Answered = false
	return true
}

// Restart начинает новую попытку
func (e *Engine) Restart() {
	e.state = model.NewQuizState()
}

// CurrentQuestion возвращает вопрос, который сейчас показан пользователю
func (e *Engine) CurrentQuestion() (model.Question, error) {
	if e.state.Finished {
		return model.Question{}, ErrQuizFinished
	}
	return e.set.At(e.state.CurrentIndex), nil
}

// Result возвращает итог попытки. Процент округляется до целого, половина вверх.
func (e *Engine) Result() (Result, error) {
	if !e.state.Finished {
		return Result{}, ErrQuizNotFinished
	}
	total := e.set.Len()
	return Result{
		Score:      e.state.Score,
		Total:      total,
		Percentage: (200*e.state.Score + total) / (2 * total),
	}, nil
}
