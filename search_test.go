package devdocs_test

import (
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/stretchr/testify/assert"
)

func searchDocs() []*devdocs.Document {
	return []*devdocs.Document{
		{ID: "install", Title: "Installing", Content: "Run the installer."},
		{ID: "auth", Title: "Auth", Content: "Tokens expire."},
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"install"}, ids(devdocs.Search(searchDocs(), "INSTALL")))
	})

	t.Run("matches content", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"auth"}, ids(devdocs.Search(searchDocs(), "expire")))
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, devdocs.Search(searchDocs(), ""))
	})
}

func TestRelevantDocuments(t *testing.T) {
	t.Parallel()

	t.Run("falls back to individual words", func(t *testing.T) {
		t.Parallel()

		got := devdocs.RelevantDocuments(searchDocs(), "How do tokens expire?", 0)

		assert.Equal(t, []string{"auth"}, ids(got))
	})

	t.Run("caps results at limit", func(t *testing.T) {
		t.Parallel()

		got := devdocs.RelevantDocuments(searchDocs(), "e", 1)

		assert.Equal(t, []string{"install"}, ids(got))
	})

	t.Run("returns nothing without matches", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, devdocs.RelevantDocuments(searchDocs(), "zebra", 5))
	})
}
