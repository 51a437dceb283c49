package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/IT-Nick/quantum-quiz/internal/domain/catalog"
	"github.com/IT-Nick/quantum-quiz/internal/domain/content"
	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	"github.com/IT-Nick/quantum-quiz/internal/domain/navigation"
	"github.com/IT-Nick/quantum-quiz/internal/domain/quiz"
	"github.com/IT-Nick/quantum-quiz/internal/domain/sessions/repository"
)

// ErrWrongScreen операция недоступна на текущем экране
var ErrWrongScreen = errors.New("operation is not available on the current screen")

// SessionService применяет действия пользователя к его сессии и возвращает новый экран.
// Вызовы для одного ключа выполняются строго по очереди, для разных ключей параллельно.
type SessionService struct {
	store   repository.Store
	catalog *catalog.Catalog
	locks   *keyedMutex
	now     func() time.Time
}

// NewSessionService создает новый экземпляр SessionService
func NewSessionService(store repository.Store, c *catalog.Catalog) *SessionService {
	return &SessionService{
		store:   store,
		catalog: c,
		locks:   newKeyedMutex(),
		now:     time.Now,
	}
}

// Open возвращает текущий экран, создавая сессию при первом обращении
func (s *SessionService) Open(ctx context.Context, key string) (*dto.ScreenView, error) {
	return s.apply(ctx, key, "Open", func(*model.Session) error { return nil })
}

// Reset удаляет сохраненную сессию и начинает новую с главного экрана
func (s *SessionService) Reset(ctx context.Context, key string) (*dto.ScreenView, error) {
	unlock, err := s.locks.Lock(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("Reset: %w", err)
	}
	defer unlock()

	if err := s.store.Delete(ctx, key); err != nil {
		return nil, fmt.Errorf("Reset: %w", err)
	}
	return s.commit(ctx, "Reset", s.newSession(key))
}

// Navigate переходит к экрану. Если экран уже в стеке, экраны над ним закрываются.
func (s *SessionService) Navigate(ctx context.Context, key string, dest model.Screen) (*dto.ScreenView, error) {
	return s.apply(ctx, key, "Navigate", func(sess *model.Session) error {
		router, err := navigation.Restore(sess.Stack)
		if err != nil {
			return err
		}
		popped, pushed, err := router.Navigate(dest)
		if err != nil {
			return err
		}
		for _, screen := range popped {
			s.unmount(sess, screen)
		}
		if pushed {
			s.unmount(sess, dest)
		}
		sess.Stack = router.Stack()
		return nil
	})
}

// Back закрывает текущий экран. На главном экране ничего не делает.
func (s *SessionService) Back(ctx context.Context, key string) (*dto.ScreenView, error) {
	return s.apply(ctx, key, "Back", func(sess *model.Session) error {
		router, err := navigation.Restore(sess.Stack)
		if err != nil {
			return err
		}
		if top, ok := router.Back(); ok {
			s.unmount(sess, top)
		}
		sess.Stack = router.Stack()
		return nil
	})
}

// ToggleSection раскрывает или сворачивает раздел учебного материала
func (s *SessionService) ToggleSection(ctx context.Context, key, sectionID string) (*dto.ScreenView, error) {
	return s.apply(ctx, key, "ToggleSection", func(sess *model.Session) error {
		if err := requireScreen(sess, model.ScreenContent); err != nil {
			return err
		}
		viewer := content.RestoreViewer(s.catalog.Sections, sess.Expanded)
		if err := viewer.Toggle(sectionID); err != nil {
			return err
		}
		sess.Expanded = viewer.Expanded()
		return nil
	})
}

// SelectAnswer выбирает вариант ответа текущего вопроса
func (s *SessionService) SelectAnswer(ctx context.Context, key string, index int) (*dto.ScreenView, error) {
	return s.withEngine(ctx, key, "SelectAnswer", func(e *quiz.Engine) error {
		return e.SelectAnswer(index)
	})
}

// SubmitAnswer фиксирует выбранный вариант
func (s *SessionService) SubmitAnswer(ctx context.Context, key string) (*dto.ScreenView, error) {
	return s.withEngine(ctx, key, "SubmitAnswer", func(e *quiz.Engine) error {
		e.SubmitAnswer()
		return nil
	})
}

// Advance переходит к следующему вопросу или к результату
func (s *SessionService) Advance(ctx context.Context, key string) (*dto.ScreenView, error) {
	return s.withEngine(ctx, key, "Advance", func(e *quiz.Engine) error {
		e.Advance()
		return nil
	})
}

// Restart начинает викторину заново
func (s *SessionService) Restart(ctx context.Context, key string) (*dto.ScreenView, error) {
	return s.withEngine(ctx, key, "Restart", func(e *quiz.Engine) error {
		e.Restart()
		return nil
	})
}

func (s *SessionService) withEngine(ctx context.Context, key, op string, fn func(*quiz.Engine) error) (*dto.ScreenView, error) {
	return s.apply(ctx, key, op, func(sess *model.Session) error {
		if err := requireScreen(sess, model.ScreenQuiz); err != nil {
			return err
		}
		engine, err := quiz.RestoreEngine(s.catalog.Questions, sess.Quiz)
		if err != nil {
			return err
		}
		if err := fn(engine); err != nil {
			return err
		}
		sess.Quiz = engine.State()
		return nil
	})
}

// apply загружает сессию под блокировкой ключа, применяет fn, сохраняет и строит экран
func (s *SessionService) apply(ctx context.Context, key, op string, fn func(*model.Session) error) (*dto.ScreenView, error) {
	unlock, err := s.locks.Lock(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer unlock()

	sess, err := s.load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := fn(sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.commit(ctx, op, sess)
}

// commit сохраняет сессию и строит ее экран. Вызывается под блокировкой ключа.
func (s *SessionService) commit(ctx context.Context, op string, sess *model.Session) (*dto.ScreenView, error) {
	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	view, err := s.buildView(sess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return view, nil
}

func (s *SessionService) load(ctx context.Context, key string) (*model.Session, error) {
	sess, err := s.store.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return s.newSession(key), nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.validate(sess); err != nil {
		log.Printf("session %s is corrupted, starting over: %v", key, err)
		return s.newSession(key), nil
	}
	return sess, nil
}

func (s *SessionService) validate(sess *model.Session) error {
	if _, err := navigation.Restore(sess.Stack); err != nil {
		return err
	}
	if _, err := quiz.RestoreEngine(s.catalog.Questions, sess.Quiz); err != nil {
		return err
	}
	return nil
}

func (s *SessionService) newSession(key string) *model.Session {
	now := s.now()
	return &model.Session{
		Key:       key,
		Stack:     navigation.NewRouter().Stack(),
		Quiz:      model.NewQuizState(),
		Expanded:  content.NewViewer(s.catalog.Sections, s.catalog.InitialSection).Expanded(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// unmount сбрасывает состояние экрана, который закрыт или открыт заново
func (s *SessionService) unmount(sess *model.Session, screen model.Screen) {
	switch screen {
	case model.ScreenQuiz:
		sess.Quiz = model.NewQuizState()
	case model.ScreenContent:
		sess.Expanded = content.NewViewer(s.catalog.Sections, s.catalog.InitialSection).Expanded()
	}
}

func requireScreen(sess *model.Session, want model.Screen) error {
	if current := sess.Stack[len(sess.Stack)-1]; current != want {
		return fmt.Errorf("%w: on %s, need %s", ErrWrongScreen, current, want)
	}
	return nil
}
