package content

import (
	"errors"
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
)

// ErrUnknownSection раздел с таким ID отсутствует
var ErrUnknownSection = errors.New("unknown section")

// Viewer хранит флаг раскрытия для каждого раздела. Флаги не зависят друг от друга.
type Viewer struct {
	sections []model.Section
	expanded map[string]bool
}

// NewViewer создает просмотрщик, в котором раскрыт только раздел initial
func NewViewer(sections []model.Section, initial string) *Viewer {
	v := &Viewer{sections: sections, expanded: make(map[string]bool, len(sections))}
	if v.has(initial) {
		v.expanded[initial] = true
	}
	return v
}

// RestoreViewer восстанавливает флаги раскрытия; флаги неизвестных разделов отбрасываются
func RestoreViewer(sections []model.Section, flags map[string]bool) *Viewer {
	v := &Viewer{sections: sections, expanded: make(map[string]bool, len(sections))}
	for id, on := range flags {
		if on && v.has(id) {
			v.expanded[id] = true
		}
	}
	return v
}

func (v *Viewer) has(id string) bool {
	for _, s := range v.sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Toggle раскрывает или сворачивает раздел
func (v *Viewer) Toggle(id string) error {
	if !v.has(id) {
		return fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	if v.expanded[id] {
		delete(v.expanded, id)
	} else {
		v.expanded[id] = true
	}
	return nil
}

// IsExpanded сообщает, раскрыт ли раздел
func (v *Viewer) IsExpanded(id string) bool { return v.expanded[id] }

// Sections разделы в порядке показа
func (v *Viewer) Sections() []model.Section { return v.sections }

// Expanded возвращает копию флагов раскрытия
func (v *Viewer) Expanded() map[string]bool {
	out := make(map[string]bool, len(v.expanded))
	for id := range v.expanded {
		out[id] = true
	}
	return out
}
