package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeContent creates a content directory with the given files.
func writeContent(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

const testManifest = `topics:
  - id: intro
    title: Introduction
    icon: book
  - id: setup
    title: Setup
    subtopics:
      - id: setup-linux
        title: Linux
prompts:
  - id: review
    title: Code Review
`
