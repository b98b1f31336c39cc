package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeService_SaveRegeneratedCode(t *testing.T) {
	t.Parallel()

	t.Run("stores and overwrites by key", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCodeService(setupTestDB(t))
		ctx := context.Background()
		key := devdocs.CodeKey("intro", "fmt.Println(1)")

		code := &devdocs.RegeneratedCode{Key: key, DocumentID: "intro", Code: "fmt.Println(2)"}
		require.NoError(t, svc.SaveRegeneratedCode(ctx, code))
		assert.False(t, code.UpdatedAt.IsZero())

		require.NoError(t, svc.SaveRegeneratedCode(ctx, &devdocs.RegeneratedCode{
			Key: key, DocumentID: "intro", Code: "fmt.Println(3)",
		}))

		codes, err := svc.FindRegeneratedCode(ctx, "intro")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{key: "fmt.Println(3)"}, codes)
	})

	t.Run("returns error for invalid replacement", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCodeService(setupTestDB(t))

		err := svc.SaveRegeneratedCode(context.Background(), &devdocs.RegeneratedCode{Key: "k", DocumentID: "intro"})

		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})
}

func TestCodeService_FindRegeneratedCode(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewCodeService(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, svc.SaveRegeneratedCode(ctx, &devdocs.RegeneratedCode{Key: "a", DocumentID: "intro", Code: "x"}))
	require.NoError(t, svc.SaveRegeneratedCode(ctx, &devdocs.RegeneratedCode{Key: "b", DocumentID: "setup", Code: "y"}))

	codes, err := svc.FindRegeneratedCode(ctx, "intro")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "x"}, codes)

	codes, err = svc.FindRegeneratedCode(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestCodeService_DeleteRegeneratedCode(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewCodeService(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, svc.SaveRegeneratedCode(ctx, &devdocs.RegeneratedCode{Key: "a", DocumentID: "intro", Code: "x"}))

	require.NoError(t, svc.DeleteRegeneratedCode(ctx, "intro"))

	codes, err := svc.FindRegeneratedCode(ctx, "intro")
	require.NoError(t, err)
	assert.Empty(t, codes)
}
