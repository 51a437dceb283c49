package service

import (
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/content"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	"github.com/IT-Nick/quantum-quiz/internal/domain/quiz"
)

func (s *SessionService) buildView(sess *model.Session) (*dto.ScreenView, error) {
	current := sess.Stack[len(sess.Stack)-1]
	view := &dto.ScreenView{
		Screen:    current,
		CanGoBack: len(sess.Stack) > 1,
	}

	switch current {
	case model.ScreenHome:
		view.Home = &dto.HomeView{Home: s.catalog.Home}
	case model.ScreenContent:
		view.Content = s.contentView(sess)
	case model.ScreenQuiz:
		qv, err := s.quizView(sess)
		if err != nil {
			return nil, err
		}
		view.Quiz = qv
	}
	return view, nil
}

func (s *SessionService) contentView(sess *model.Session) *dto.ContentView {
	viewer := content.RestoreViewer(s.catalog.Sections, sess.Expanded)
	out := &dto.ContentView{Sections: make([]dto.SectionView, 0, len(s.catalog.Sections))}
	for _, sec := range viewer.Sections() {
		sv := dto.SectionView{
			ID:       sec.ID,
			Title:    sec.Title,
			Glyph:    sec.Glyph,
			Expanded: viewer.IsExpanded(sec.ID),
		}
		if sv.Expanded {
			sv.Body = sec.Body
		}
		out.Sections = append(out.Sections, sv)
	}
	return out
}

func (s *SessionService) quizView(sess *model.Session) (*dto.QuizView, error) {
	engine, err := quiz.RestoreEngine(s.catalog.Questions, sess.Quiz)
	if err != nil {
		return nil, fmt.Errorf("quizView: %w", err)
	}
	st := engine.State()
	current, total := engine.Progress()

	qv := &dto.QuizView{
		Current:    current,
		Total:      total,
		Selected:   st.SelectedAnswer,
		Answered:   st.Answered,
		CanSubmit:  st.HasSelection() && !st.Answered,
		CanAdvance: st.Answered && !st.Finished,
		IsLast:     engine.IsLast(),
	}

	if st.Finished {
		res, err := engine.Result()
		if err != nil {
			return nil, fmt.Errorf("quizView: %w", err)
		}
		tier := quiz.ResultMessage(res.Percentage)
		qv.Result = &dto.ResultView{
			Score:      res.Score,
			Total:      res.Total,
			Percentage: res.Percentage,
			Tier:       string(tier),
			Message:    tier.Message(),
		}
		return qv, nil
	}

	q, err := engine.CurrentQuestion()
	if err != nil {
		return nil, fmt.Errorf("quizView: %w", err)
	}
	qv.QuestionID = q.ID
	qv.Prompt = q.Prompt
	qv.Options = make([]dto.OptionView, 0, len(q.Options))
	for i, text := range q.Options {
		qv.Options = append(qv.Options, dto.OptionView{
			Index: i,
			Text:  text,
			State: string(quiz.OptionVisualState(i, st, q)),
		})
	}
	if st.Answered {
		qv.Explanation = q.Explanation
	}
	return qv, nil
}
