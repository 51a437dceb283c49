package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	"github.com/IT-Nick/quantum-quiz/internal/domain/quiz"
	"gopkg.in/yaml.v3"
)

//go:embed quantum_entanglement.yaml
var embedded []byte

// ErrInvalidCatalog учебные данные не прошли проверку
var ErrInvalidCatalog = errors.New("invalid catalog")

// Labels подписи кнопок и заголовков
type Labels struct {
	Back               string `yaml:"back" json:"back"`
	FeaturesTitle      string `yaml:"features_title" json:"features_title"`
	ContentTitle       string `yaml:"content_title" json:"content_title"`
	ContentFooterTitle string `yaml:"content_footer_title" json:"content_footer_title"`
	ContentFooterText  string `yaml:"content_footer_text" json:"content_footer_text"`
	ContentFooterCTA   string `yaml:"content_footer_cta" json:"content_footer_cta"`
	QuizTitle          string `yaml:"quiz_title" json:"quiz_title"`
	QuestionNumber     string `yaml:"question_number" json:"question_number"`
	Submit             string `yaml:"submit" json:"submit"`
	Next               string `yaml:"next" json:"next"`
	SeeResult          string `yaml:"see_result" json:"see_result"`
	Explanation        string `yaml:"explanation" json:"explanation"`
	ResultTitle        string `yaml:"result_title" json:"result_title"`
	Score              string `yaml:"score" json:"score"`
	Retry              string `yaml:"retry" json:"retry"`
	ReviewContent      string `yaml:"review_content" json:"review_content"`
	GoHome             string `yaml:"go_home" json:"go_home"`
}

type document struct {
	InitialSection string           `yaml:"initial_section"`
	Home           model.Home       `yaml:"home"`
	Labels         Labels           `yaml:"labels"`
	Sections       []model.Section  `yaml:"sections"`
	Questions      []model.Question `yaml:"questions"`
}

// Catalog неизменяемый набор учебных данных: главный экран, разделы и вопросы
type Catalog struct {
	Home           model.Home
	Labels         Labels
	Sections       []model.Section
	InitialSection string
	Questions      quiz.QuestionSet
}

// Load разбирает встроенный документ
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse разбирает YAML-документ каталога и проверяет его
func Parse(data []byte) (*Catalog, error) {
	const op = "catalog.Parse"

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	set, err := quiz.NewQuestionSet(doc.Questions...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("%s: %w: no sections", op, ErrInvalidCatalog)
	}
	ids := make(map[string]bool, len(doc.Sections))
	for _, s := range doc.Sections {
		if s.ID == "" {
			return nil, fmt.Errorf("%s: %w: section without id", op, ErrInvalidCatalog)
		}
		if ids[s.ID] {
			return nil, fmt.Errorf("%s: %w: duplicate section %q", op, ErrInvalidCatalog, s.ID)
		}
		ids[s.ID] = true
	}
	if !ids[doc.InitialSection] {
		return nil, fmt.Errorf("%s: %w: initial section %q not found", op, ErrInvalidCatalog, doc.InitialSection)
	}

	return &Catalog{
		Home:           doc.Home,
		Labels:         doc.Labels,
		Sections:       doc.Sections,
		InitialSection: doc.InitialSection,
		Questions:      set,
	}, nil
}

// Default возвращает встроенный каталог и паникует, если он поврежден
func Default() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}
