package model

// Section представляет раздел учебного материала
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Glyph string `json:"glyph" yaml:"glyph"`
	Body  string `json:"body" yaml:"body"`
}

// Feature карточка на главном экране
type Feature struct {
	Glyph       string `json:"glyph" yaml:"glyph"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Home тексты главного экрана
type Home struct {
	Title      string    `json:"title" yaml:"title"`
	Subtitle   string    `json:"subtitle" yaml:"subtitle"`
	HeroGlyph  string    `json:"hero_glyph" yaml:"hero_glyph"`
	HeroText   string    `json:"hero_text" yaml:"hero_text"`
	HeroSub    string    `json:"hero_subtext" yaml:"hero_subtext"`
	Features   []Feature `json:"features" yaml:"features"`
	ContentCTA string    `json:"content_cta" yaml:"content_cta"`
	QuizCTA    string    `json:"quiz_cta" yaml:"quiz_cta"`
}
