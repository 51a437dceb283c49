package dto

import "github.com/IT-Nick/quantum-quiz/internal/domain/model"

// ScreenView модель экрана для отрисовки. Заполнено ровно одно из полей Home, Content, Quiz.
type ScreenView struct {
	Screen    model.Screen `json:"screen"`
	CanGoBack bool         `json:"can_go_back"`
	Home      *HomeView    `json:"home,omitempty"`
	Content   *ContentView `json:"content,omitempty"`
	Quiz      *QuizView    `json:"quiz,omitempty"`
}

// HomeView главный экран
type HomeView struct {
	model.Home
}

// ContentView экран учебного материала
type ContentView struct {
	Sections []SectionView `json:"sections"`
}

// SectionView раздел; Body заполнен только у раскрытых
type SectionView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Glyph    string `json:"glyph"`
	Expanded bool   `json:"expanded"`
	Body     string `json:"body,omitempty"`
}

// QuizView экран викторины: текущий вопрос либо результат
type QuizView struct {
	Current     int          `json:"current"`
	Total       int          `json:"total"`
	QuestionID  int          `json:"question_id,omitempty"`
	Prompt      string       `json:"prompt,omitempty"`
	Options     []OptionView `json:"options,omitempty"`
	Selected    int          `json:"selected"`
	Answered    bool         `json:"answered"`
	Explanation string       `json:"explanation,omitempty"`
	CanSubmit   bool         `json:"can_submit"`
	CanAdvance  bool         `json:"can_advance"`
	IsLast      bool         `json:"is_last"`
	Result      *ResultView  `json:"result,omitempty"`
}

// OptionView вариант ответа с подсветкой
type OptionView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	State string `json:"state"`
}

// ResultView итог викторины
type ResultView struct {
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Tier       string `json:"tier"`
	Message    string `json:"message"`
}
