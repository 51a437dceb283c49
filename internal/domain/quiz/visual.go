package quiz

import "github.com/IT-Nick/quantum-quiz/internal/domain/model"

// VisualState как отображать вариант ответа
type VisualState string

const (
	VisualNeutral   VisualState = "neutral"
	VisualSelected  VisualState = "selected"
	VisualCorrect   VisualState = "correct"
	VisualIncorrect VisualState = "incorrect"
)

// OptionVisualState вычисляет подсветку варианта index для вопроса q в состоянии st.
// До ответа подсвечен только выбранный вариант, после ответа верный и ошибочно выбранный.
func OptionVisualState(index int, st model.QuizState, q model.Question) VisualState {
	if !st.Answered {
		if st.SelectedAnswer == index {
			return VisualSelected
		}
		return VisualNeutral
	}
	if index == q.CorrectIndex {
		return VisualCorrect
	}
	if index == st.SelectedAnswer {
		return VisualIncorrect
	}
	return VisualNeutral
}
