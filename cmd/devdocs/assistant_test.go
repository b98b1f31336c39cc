package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/devdocs"
	main "github.com/fwojciec/devdocs/cmd/devdocs"
	"github.com/fwojciec/devdocs/goquery"
	"github.com/fwojciec/devdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("answers with relevant documents and saves history", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()

		var saved *devdocs.QAItem
		deps.History = &mock.HistoryService{
			CreateQAItemFn: func(_ context.Context, item *devdocs.QAItem) error {
				saved = item
				return nil
			},
		}
		deps.Assistant = &mock.Assistant{
			AnswerFn: func(_ context.Context, question, relevantDocs string) (string, error) {
				assert.Equal(t, "How long do tokens last?", question)
				assert.Contains(t, relevantDocs, "Tokens expire after an hour.")
				return "One hour. See [Guide](doc://guide).", nil
			},
		}

		err := (&main.AskCmd{Question: "How long do tokens last?"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "One hour. See [Guide](doc://guide).")
		assert.Contains(t, stdout.String(), "Sources:\n  Guide (doc://guide)\n")
		require.NotNil(t, saved)
		assert.Equal(t, "One hour. See [Guide](doc://guide).", saved.Answer)
	})

	t.Run("lists cited documents", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Citations = goquery.NewCitationExtractor()
		deps.Assistant = &mock.Assistant{
			AnswerFn: func(context.Context, string, string) (string, error) {
				return "See [Setup](doc://setup) and [Old](doc://removed).", nil
			},
		}

		err := (&main.AskCmd{Question: "install"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Cited:\n  Setup (doc://setup)\n")
		assert.NotContains(t, stdout.String(), "  Old (doc://removed)")
	})

	t.Run("drops context beyond the token budget", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.ContextTokens = 10
		deps.Tokens = &mock.TokenCounter{
			CountTokensFn: func(context.Context, string) (int, error) { return 50, nil },
		}
		deps.Assistant = &mock.Assistant{
			AnswerFn: func(_ context.Context, _, relevantDocs string) (string, error) {
				assert.Empty(t, relevantDocs)
				return "I don't know.", nil
			},
		}

		err := (&main.AskCmd{Question: "tokens"}).Run(deps)

		require.NoError(t, err)
		assert.NotContains(t, stdout.String(), "Sources:")
	})

	t.Run("rejects blank questions", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		deps.Assistant = &mock.Assistant{}

		err := (&main.AskCmd{Question: "  "}).Run(deps)

		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})
}

func TestExplainCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	deps.Assistant = &mock.Assistant{
		ExplainFn: func(_ context.Context, text string) (string, error) {
			return "It means " + text + ".", nil
		},
	}

	err := (&main.ExplainCmd{Text: "idempotent"}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "It means idempotent.\n", stdout.String())
}

func TestCodeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints generated code", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Assistant = &mock.Assistant{
			GenerateCodeFn: func(_ context.Context, text, existing string) (string, error) {
				assert.Empty(t, existing)
				return "fmt.Println(\"hi\")", nil
			},
		}

		err := (&main.CodeCmd{Text: "print hi"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "fmt.Println(\"hi\")\n", stdout.String())
	})

	t.Run("saves regenerated blocks of a document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "old.go")
		require.NoError(t, os.WriteFile(path, []byte("token := auth.New()\n"), 0o644))

		deps, _, _ := testDeps()
		deps.Assistant = &mock.Assistant{
			GenerateCodeFn: func(_ context.Context, _, existing string) (string, error) {
				assert.Equal(t, "token := auth.New()", existing)
				return "token := auth.Refresh()", nil
			},
		}
		var saved *devdocs.RegeneratedCode
		deps.Code = &mock.CodeService{
			SaveRegeneratedCodeFn: func(_ context.Context, code *devdocs.RegeneratedCode) error {
				saved = code
				return nil
			},
		}

		err := (&main.CodeCmd{Text: "tokens", Existing: path, Document: "guide"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, devdocs.CodeKey("guide", "token := auth.New()"), saved.Key)
		assert.Equal(t, "guide", saved.DocumentID)
		assert.Equal(t, "token := auth.Refresh()", saved.Code)
	})

	t.Run("rejects unknown documents before generating", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "old.go")
		require.NoError(t, os.WriteFile(path, []byte("y()\n"), 0o644))

		deps, _, _ := testDeps()
		deps.Assistant = &mock.Assistant{
			GenerateCodeFn: func(context.Context, string, string) (string, error) {
				t.Error("GenerateCode should not be called")
				return "", nil
			},
		}
		deps.Code = &mock.CodeService{}

		err := (&main.CodeCmd{Text: "t", Existing: path, Document: "no-such-doc"}).Run(deps)

		assert.Equal(t, devdocs.ENOTFOUND, devdocs.ErrorCode(err))
	})

	t.Run("requires existing code with a document", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps()
		deps.Assistant = &mock.Assistant{}

		err := (&main.CodeCmd{Text: "x", Document: "guide"}).Run(deps)

		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})
}

func TestRestoreCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	var deleted string
	deps.Code = &mock.CodeService{
		DeleteRegeneratedCodeFn: func(_ context.Context, documentID string) error {
			deleted = documentID
			return nil
		},
	}

	err := (&main.RestoreCmd{ID: "guide"}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "guide", deleted)
	assert.Equal(t, "Restored code blocks of \"Guide\"\n", stdout.String())
}

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints questions oldest first", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.History = &mock.HistoryService{
			FindQAItemsFn: func(context.Context, devdocs.QAFilter) ([]*devdocs.QAItem, error) {
				return []*devdocs.QAItem{
					{Question: "First?", Answer: "Yes.", CreatedAt: time.Now()},
					{Question: "Second?", Answer: "No.", CreatedAt: time.Now()},
				}, nil
			},
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Q: First?\nA: Yes.\n\nQ: Second?\nA: No.\n", stdout.String())
	})

	t.Run("clears history", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		cleared := false
		deps.History = &mock.HistoryService{
			ClearQAItemsFn: func(context.Context) error {
				cleared = true
				return nil
			},
		}

		err := (&main.HistoryCmd{Clear: true}).Run(deps)

		require.NoError(t, err)
		assert.True(t, cleared)
		assert.Equal(t, "Cleared history.\n", stdout.String())
	})
}
