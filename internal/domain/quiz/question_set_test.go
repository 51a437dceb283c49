package quiz

import (
	"testing"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestionSet_Validation(t *testing.T) {
	ok := model.Question{ID: 1, Options: []string{"a", "b"}, CorrectIndex: 1}

	cases := map[string][]model.Question{
		"пустой набор":          nil,
		"нулевой id":            {{ID: 0, Options: []string{"a", "b"}}},
		"повтор id":             {ok, ok},
		"один вариант":          {{ID: 2, Options: []string{"a"}}},
		"верный ответ за краем": {{ID: 3, Options: []string{"a", "b"}, CorrectIndex: 2}},
		"отрицательный ответ":   {{ID: 4, Options: []string{"a", "b"}, CorrectIndex: -1}},
	}
	for name, qs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewQuestionSet(qs...)
			assert.ErrorIs(t, err, ErrInvalidQuestionSet)
		})
	}

	set, err := NewQuestionSet(ok)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestQuestionSet_Immutable(t *testing.T) {
	src := []model.Question{{ID: 1, Options: []string{"a", "b"}, CorrectIndex: 0}}
	set, err := NewQuestionSet(src...)
	require.NoError(t, err)

	src[0].Options[0] = "changed"
	got := set.At(0)
	assert.Equal(t, "a", got.Options[0])

	got.Options[1] = "changed"
	assert.Equal(t, "b", set.At(0).Options[1])
	assert.Equal(t, 1, set.Len())
}
