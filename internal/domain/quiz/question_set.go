package quiz

import (
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
)

// QuestionSet неизменяемый упорядоченный набор вопросов
type QuestionSet struct {
	questions []model.Question
}

// NewQuestionSet проверяет вопросы и возвращает набор.
// Вопросы копируются, поэтому изменение исходного среза не влияет на набор.
func NewQuestionSet(questions ...model.Question) (QuestionSet, error) {
	if len(questions) == 0 {
		return QuestionSet{}, fmt.Errorf("%w: no questions", ErrInvalidQuestionSet)
	}

	seen := make(map[int]bool, len(questions))
	out := make([]model.Question, 0, len(questions))
	for i, q := range questions {
		if q.ID <= 0 {
			return QuestionSet{}, fmt.Errorf("%w: question #%d has non-positive id %d", ErrInvalidQuestionSet, i, q.ID)
		}
		if seen[q.ID] {
			return QuestionSet{}, fmt.Errorf("%w: duplicate question id %d", ErrInvalidQuestionSet, q.ID)
		}
		seen[q.ID] = true
		if len(q.Options) < 2 {
			return QuestionSet{}, fmt.Errorf("%w: question %d has %d options", ErrInvalidQuestionSet, q.ID, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return QuestionSet{}, fmt.Errorf("%w: question %d correct index %d out of range", ErrInvalidQuestionSet, q.ID, q.CorrectIndex)
		}

		q.Options = append([]string(nil), q.Options...)
		out = append(out, q)
	}

	return QuestionSet{questions: out}, nil
}

// Len количество вопросов
func (s QuestionSet) Len() int { return len(s.questions) }

// At возвращает копию вопроса по индексу
func (s QuestionSet) At(i int) model.Question {
	q := s.questions[i]
	q.Options = append([]string(nil), q.Options...)
	return q
}
