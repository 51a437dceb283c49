package view

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/IT-Nick/quantum-quiz/internal/domain/catalog"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	"github.com/IT-Nick/quantum-quiz/internal/domain/quiz"
	"gopkg.in/telebot.v4"
)

var optionGlyphs = map[string]string{
	string(quiz.VisualNeutral):   "⚪",
	string(quiz.VisualSelected):  "🔘",
	string(quiz.VisualCorrect):   "✅",
	string(quiz.VisualIncorrect): "❌",
}

// Renderer превращает модель экрана в HTML-сообщение с инлайн-клавиатурой
type Renderer struct {
	labels catalog.Labels
}

func NewRenderer(labels catalog.Labels) *Renderer {
	return &Renderer{labels: labels}
}

// Render возвращает текст сообщения и клавиатуру
func (r *Renderer) Render(v *dto.ScreenView) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	var (
		text string
		rows []telebot.Row
	)

	switch {
	case v.Home != nil:
		text, rows = r.home(markup, v.Home)
	case v.Content != nil:
		text, rows = r.content(markup, v.Content)
	case v.Quiz != nil && v.Quiz.Result != nil:
		text, rows = r.result(markup, v.Quiz.Result)
	case v.Quiz != nil:
		text, rows = r.question(markup, v.Quiz)
	}

	if v.CanGoBack && (v.Quiz == nil || v.Quiz.Result == nil) {
		rows = append(rows, markup.Row(markup.Data(r.labels.Back, model.BackKey)))
	}
	markup.Inline(rows...)
	return text, markup
}

func (r *Renderer) home(m *telebot.ReplyMarkup, h *dto.HomeView) (string, []telebot.Row) {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n<i>%s</i>\n\n", esc(h.Title), esc(h.Subtitle))
	fmt.Fprintf(&b, "%s %s\n%s\n\n", h.HeroGlyph, esc(h.HeroText), esc(h.HeroSub))
	fmt.Fprintf(&b, "<b>%s</b>\n", esc(r.labels.FeaturesTitle))
	for _, f := range h.Features {
		fmt.Fprintf(&b, "\n%s <b>%s</b>\n%s\n", f.Glyph, esc(f.Title), esc(f.Description))
	}

	return b.String(), []telebot.Row{
		m.Row(m.Data(h.ContentCTA, model.NavigateKey, string(model.ScreenContent))),
		m.Row(m.Data(h.QuizCTA, model.NavigateKey, string(model.ScreenQuiz))),
	}
}

func (r *Renderer) content(m *telebot.ReplyMarkup, c *dto.ContentView) (string, []telebot.Row) {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", esc(r.labels.ContentTitle))

	rows := make([]telebot.Row, 0, len(c.Sections)+2)
	for _, s := range c.Sections {
		sign := "+"
		if s.Expanded {
			sign = "−"
			fmt.Fprintf(&b, "\n%s <b>%s</b>\n%s\n", s.Glyph, esc(s.Title), esc(s.Body))
		}
		rows = append(rows, m.Row(m.Data(fmt.Sprintf("%s %s %s", sign, s.Glyph, s.Title), model.SectionKey, s.ID)))
	}

	fmt.Fprintf(&b, "\n<b>%s</b>\n%s", esc(r.labels.ContentFooterTitle), esc(r.labels.ContentFooterText))
	rows = append(rows, m.Row(m.Data(r.labels.ContentFooterCTA, model.NavigateKey, string(model.ScreenQuiz))))
	return b.String(), rows
}

func (r *Renderer) question(m *telebot.ReplyMarkup, q *dto.QuizView) (string, []telebot.Row) {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>  %d / %d\n\n", esc(r.labels.QuizTitle), q.Current, q.Total)
	fmt.Fprintf(&b, "<b>%s</b>\n%s\n", esc(fmt.Sprintf(r.labels.QuestionNumber, q.QuestionID)), esc(q.Prompt))

	rows := make([]telebot.Row, 0, len(q.Options)+2)
	for _, o := range q.Options {
		label := fmt.Sprintf("%s %s", optionGlyphs[o.State], o.Text)
		rows = append(rows, m.Row(m.Data(label, model.AnswerKey, strconv.Itoa(o.Index))))
	}

	if q.Answered {
		fmt.Fprintf(&b, "\n<b>%s</b>\n%s\n", esc(r.labels.Explanation), esc(q.Explanation))
	}
	if q.CanSubmit {
		rows = append(rows, m.Row(m.Data(r.labels.Submit, model.SubmitKey)))
	}
	if q.CanAdvance {
		caption := r.labels.Next
		if q.IsLast {
			caption = r.labels.SeeResult
		}
		rows = append(rows, m.Row(m.Data(caption, model.NextKey)))
	}
	return b.String(), rows
}

func (r *Renderer) result(m *telebot.ReplyMarkup, res *dto.ResultView) (string, []telebot.Row) {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n\n", esc(r.labels.ResultTitle))
	fmt.Fprintf(&b, "%s\n<b>%d%%</b>\n\n%s", esc(fmt.Sprintf(r.labels.Score, res.Score, res.Total)), res.Percentage, esc(res.Message))

	return b.String(), []telebot.Row{
		m.Row(m.Data(r.labels.Retry, model.RestartKey)),
		m.Row(m.Data(r.labels.ReviewContent, model.NavigateKey, string(model.ScreenContent))),
		m.Row(m.Data(r.labels.GoHome, model.NavigateKey, string(model.ScreenHome))),
	}
}

func esc(s string) string { return html.EscapeString(s) }
