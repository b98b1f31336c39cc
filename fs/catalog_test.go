package fs_test

import (
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	t.Parallel()

	t.Run("parses nested entries", func(t *testing.T) {
		t.Parallel()

		m, err := fs.ParseManifest([]byte(testManifest))

		require.NoError(t, err)
		require.Len(t, m.Topics, 2)
		assert.Equal(t, "book", m.Topics[0].Icon)
		require.Len(t, m.Topics[1].Subtopics, 1)
		assert.Equal(t, "setup-linux", m.Topics[1].Subtopics[0].ID)
		require.Len(t, m.Prompts, 1)
		assert.Equal(t, "Code Review", m.Prompts[0].Title)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ParseManifest([]byte("topics: [unclosed"))

		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})

	t.Run("rejects entries without id", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ParseManifest([]byte("topics:\n  - title: Nameless\n"))

		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})

	t.Run("rejects ids that escape the directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ParseManifest([]byte("topics:\n  - id: ../secret\n"))

		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})

	t.Run("rejects duplicate ids across trees", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ParseManifest([]byte("topics:\n  - id: a\nprompts:\n  - id: a\n"))

		assert.Equal(t, devdocs.ECONFLICT, devdocs.ErrorCode(err))
	})
}

func TestReadManifest_Missing(t *testing.T) {
	t.Parallel()

	_, err := fs.ReadManifest(t.TempDir())

	assert.Equal(t, devdocs.ENOTFOUND, devdocs.ErrorCode(err))
}
