package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/IT-Nick/quantum-quiz/internal/domain/catalog"
	"github.com/IT-Nick/quantum-quiz/internal/domain/content"
	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	"github.com/IT-Nick/quantum-quiz/internal/domain/navigation"
	"github.com/IT-Nick/quantum-quiz/internal/domain/quiz"
	"github.com/IT-Nick/quantum-quiz/internal/domain/sessions/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const key = "tg:42"

func newTestService(t *testing.T) (*SessionService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewSessionService(store, catalog.Default()), store
}

func TestOpen_FreshSessionIsHome(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	view, err := svc.Open(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenHome, view.Screen)
	assert.False(t, view.CanGoBack)
	require.NotNil(t, view.Home)
	assert.Equal(t, "量子もつれ", view.Home.Title)

	sess, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []model.Screen{model.ScreenHome}, sess.Stack)
	assert.Equal(t, map[string]bool{"basics": true}, sess.Expanded)
}

func TestQuizOperations_RequireQuizScreen(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SelectAnswer(ctx, key, 0)
	assert.ErrorIs(t, err, ErrWrongScreen)
	_, err = svc.SubmitAnswer(ctx, key)
	assert.ErrorIs(t, err, ErrWrongScreen)
	_, err = svc.Advance(ctx, key)
	assert.ErrorIs(t, err, ErrWrongScreen)
	_, err = svc.Restart(ctx, key)
	assert.ErrorIs(t, err, ErrWrongScreen)
	_, err = svc.ToggleSection(ctx, key, "history")
	assert.ErrorIs(t, err, ErrWrongScreen)
}

func TestQuiz_FullRunThreeOfFive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	require.NotNil(t, view.Quiz)
	assert.Equal(t, 1, view.Quiz.Current)
	assert.Equal(t, 5, view.Quiz.Total)
	assert.Equal(t, 1, view.Quiz.QuestionID)
	assert.False(t, view.Quiz.CanSubmit)

	answers := []int{1, 1, 3, 0, 1}
	for i, a := range answers {
		view, err = svc.SelectAnswer(ctx, key, a)
		require.NoError(t, err)
		assert.True(t, view.Quiz.CanSubmit)
		assert.Equal(t, string(quiz.VisualSelected), view.Quiz.Options[a].State)

		view, err = svc.SubmitAnswer(ctx, key)
		require.NoError(t, err)
		assert.True(t, view.Quiz.Answered)
		assert.True(t, view.Quiz.CanAdvance)
		assert.NotEmpty(t, view.Quiz.Explanation)
		assert.Equal(t, i == len(answers)-1, view.Quiz.IsLast)

		view, err = svc.Advance(ctx, key)
		require.NoError(t, err)
	}

	require.NotNil(t, view.Quiz.Result)
	assert.Equal(t, 3, view.Quiz.Result.Score)
	assert.Equal(t, 5, view.Quiz.Result.Total)
	assert.Equal(t, 60, view.Quiz.Result.Percentage)
	assert.Equal(t, string(quiz.TierGood), view.Quiz.Result.Tier)
	assert.Equal(t, quiz.TierGood.Message(), view.Quiz.Result.Message)

	view, err = svc.Restart(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, view.Quiz.Result)
	assert.Equal(t, 1, view.Quiz.Current)
}

func TestQuiz_WrongAnswerVisualStates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	_, err = svc.SelectAnswer(ctx, key, 0)
	require.NoError(t, err)
	view, err := svc.SubmitAnswer(ctx, key)
	require.NoError(t, err)

	states := make([]string, 0, len(view.Quiz.Options))
	for _, o := range view.Quiz.Options {
		states = append(states, o.State)
	}
	assert.Equal(t, []string{"incorrect", "correct", "neutral", "neutral"}, states)

	view, err = svc.SelectAnswer(ctx, key, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Quiz.Selected)
}

func TestQuiz_OutOfRangeSelection(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	_, err = svc.SelectAnswer(ctx, key, 4)
	assert.ErrorIs(t, err, quiz.ErrOptionOutOfRange)
}

func TestBack_DiscardsQuizAttempt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	_, err = svc.SelectAnswer(ctx, key, 1)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, key)
	require.NoError(t, err)

	view, err := svc.Back(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenHome, view.Screen)

	view, err = svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	assert.False(t, view.Quiz.Answered)
	assert.Equal(t, model.NoAnswer, view.Quiz.Selected)
}

func TestBack_AtHomeIsNoop(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.Back(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenHome, view.Screen)
}

func TestNavigate_ToContentBelowPopsQuiz(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Navigate(ctx, key, model.ScreenContent)
	require.NoError(t, err)
	_, err = svc.ToggleSection(ctx, key, "history")
	require.NoError(t, err)
	_, err = svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	_, err = svc.SelectAnswer(ctx, key, 2)
	require.NoError(t, err)

	view, err := svc.Navigate(ctx, key, model.ScreenContent)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenContent, view.Screen)
	assert.True(t, view.Content.Sections[2].Expanded)

	sess, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []model.Screen{model.ScreenHome, model.ScreenContent}, sess.Stack)
	assert.Equal(t, model.NewQuizState(), sess.Quiz)
}

func TestNavigate_UnknownScreen(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Navigate(context.Background(), key, "settings")
	assert.ErrorIs(t, err, navigation.ErrUnknownScreen)
}

func TestToggleSection(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.Navigate(ctx, key, model.ScreenContent)
	require.NoError(t, err)
	require.NotNil(t, view.Content)
	assert.True(t, view.Content.Sections[0].Expanded)
	assert.NotEmpty(t, view.Content.Sections[0].Body)
	assert.Empty(t, view.Content.Sections[1].Body)

	view, err = svc.ToggleSection(ctx, key, "example")
	require.NoError(t, err)
	assert.True(t, view.Content.Sections[0].Expanded)
	assert.True(t, view.Content.Sections[1].Expanded)

	_, err = svc.ToggleSection(ctx, key, "nope")
	assert.ErrorIs(t, err, content.ErrUnknownSection)

	_, err = svc.Back(ctx, key)
	require.NoError(t, err)
	view, err = svc.Navigate(ctx, key, model.ScreenContent)
	require.NoError(t, err)
	assert.False(t, view.Content.Sections[1].Expanded)
}

func TestReset(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	view, err := svc.Reset(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenHome, view.Screen)
	assert.False(t, view.CanGoBack)
}

// deleteRecorder запоминает удаленные ключи
type deleteRecorder struct {
	repository.Store
	deleted []string
}

func (d *deleteRecorder) Delete(ctx context.Context, key string) error {
	d.deleted = append(d.deleted, key)
	return d.Store.Delete(ctx, key)
}

func TestReset_DeletesStoredSession(t *testing.T) {
	store := &deleteRecorder{Store: repository.NewMemoryStore()}
	svc := NewSessionService(store, catalog.Default())
	ctx := context.Background()

	_, err := svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	_, err = svc.SelectAnswer(ctx, key, 1)
	require.NoError(t, err)

	_, err = svc.Reset(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []string{key}, store.deleted)

	sess, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []model.Screen{model.ScreenHome}, sess.Stack)
	assert.Equal(t, model.NewQuizState(), sess.Quiz)
}

func TestOpen_ImpossibleScoreStartsOver(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	sess, err := store.Get(ctx, key)
	require.NoError(t, err)
	sess.Quiz.Score = 5
	require.NoError(t, store.Save(ctx, sess))

	view, err := svc.Open(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenHome, view.Screen)

	sess, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 0, sess.Quiz.Score)
}

func TestApply_GivesUpWhenKeyIsBusy(t *testing.T) {
	svc, _ := newTestService(t)

	unlock, err := svc.locks.Lock(context.Background(), key)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = svc.Open(ctx, key)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = svc.Open(context.Background(), "tg:other")
	require.NoError(t, err)

	unlock()
	_, err = svc.Open(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 0, svc.locks.size())
}

func TestOpen_CorruptedSessionStartsOver(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	bad := &model.Session{
		Key:   key,
		Stack: []model.Screen{model.ScreenHome, model.ScreenQuiz},
		Quiz:  model.QuizState{CurrentIndex: 9, SelectedAnswer: model.NoAnswer},
	}
	require.NoError(t, store.Save(ctx, bad))

	view, err := svc.Open(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenHome, view.Screen)
}

func TestSubmit_ConcurrentCallsScoreOnce(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Navigate(ctx, key, model.ScreenQuiz)
	require.NoError(t, err)
	_, err = svc.SelectAnswer(ctx, key, 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.SubmitAnswer(ctx, key)
			_, _ = svc.Open(ctx, "tg:other")
		}()
	}
	wg.Wait()

	sess, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Quiz.Score)
	assert.Equal(t, 0, svc.locks.size())
}
