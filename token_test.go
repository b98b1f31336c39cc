package devdocs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitSnippets(t *testing.T) {
	t.Parallel()

	docs := []*devdocs.Document{
		{ID: "a", Content: "one"},
		{ID: "b", Content: "two"},
		{ID: "c", Content: "three"},
	}
	counter := &mock.TokenCounter{
		CountTokensFn: func(_ context.Context, text string) (int, error) {
			return 10, nil
		},
	}

	t.Run("keeps the prefix that fits", func(t *testing.T) {
		t.Parallel()

		got, err := devdocs.FitSnippets(context.Background(), counter, docs, 25)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids(got))
	})

	t.Run("keeps everything without a budget", func(t *testing.T) {
		t.Parallel()

		got, err := devdocs.FitSnippets(context.Background(), nil, docs, 0)

		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("returns counter errors", func(t *testing.T) {
		t.Parallel()

		failing := &mock.TokenCounter{
			CountTokensFn: func(context.Context, string) (int, error) {
				return 0, errors.New("tokenizer failed")
			},
		}

		_, err := devdocs.FitSnippets(context.Background(), failing, docs, 100)

		assert.EqualError(t, err, "tokenizer failed")
	})
}
