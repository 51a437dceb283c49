package navigation

import (
	"errors"
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
)

// ErrUnknownScreen экран не зарегистрирован или стек поврежден
var ErrUnknownScreen = errors.New("unknown screen")

// Router линейный стек экранов с корнем на главном экране.
// Navigate к экрану, который уже есть в стеке, возвращает к нему и снимает верхние экраны.
type Router struct {
	stack []model.Screen
}

// NewRouter создает стек с главным экраном
func NewRouter() *Router {
	return &Router{stack: []model.Screen{model.ScreenHome}}
}

// Restore восстанавливает стек из сессии
func Restore(stack []model.Screen) (*Router, error) {
	if len(stack) == 0 || stack[0] != model.ScreenHome {
		return nil, fmt.Errorf("%w: stack must start at %s", ErrUnknownScreen, model.ScreenHome)
	}
	seen := make(map[model.Screen]bool, len(stack))
	for _, s := range stack {
		if !s.Valid() || seen[s] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, s)
		}
		seen[s] = true
	}
	return &Router{stack: append([]model.Screen(nil), stack...)}, nil
}

// Navigate переходит к экрану dest. Возвращает снятые экраны и признак того, что dest добавлен заново.
func (r *Router) Navigate(dest model.Screen) (popped []model.Screen, pushed bool, err error) {
	if !dest.Valid() {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownScreen, dest)
	}
	for i, s := range r.stack {
		if s == dest {
			popped = append(popped, r.stack[i+1:]...)
			r.stack = r.stack[:i+1]
			return popped, false, nil
		}
	}
	r.stack = append(r.stack, dest)
	return nil, true, nil
}

// Back снимает верхний экран. На главном экране ничего не делает.
func (r *Router) Back() (model.Screen, bool) {
	if len(r.stack) <= 1 {
		return "", false
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return top, true
}

// Current верхний экран
func (r *Router) Current() model.Screen { return r.stack[len(r.stack)-1] }

// CanGoBack есть ли куда возвращаться
func (r *Router) CanGoBack() bool { return len(r.stack) > 1 }

// Stack копия стека
func (r *Router) Stack() []model.Screen { return append([]model.Screen(nil), r.stack...) }
