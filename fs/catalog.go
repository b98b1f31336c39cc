// Package fs loads documentation content from a directory of markdown files.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/devdocs"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the name of the catalog inside a content directory.
const CatalogFile = "catalog.yaml"

// Entry is one item of the catalog. Its content lives in "<id>.md" next to
// the catalog.
type Entry struct {
	ID        string  `yaml:"id"`
	Title     string  `yaml:"title"`
	Icon      string  `yaml:"icon,omitempty"`
	Subtopics []Entry `yaml:"subtopics,omitempty"`
}

// Manifest is the parsed catalog file.
type Manifest struct {
	Topics  []Entry `yaml:"topics"`
	Prompts []Entry `yaml:"prompts"`
}

// ReadManifest reads and validates the catalog of dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, CatalogFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, devdocs.Errorf(devdocs.ENOTFOUND, "catalog not found in %s", dir)
	} else if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses catalog YAML. Every entry needs an ID usable as a file
// name and IDs must be unique across both trees.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, devdocs.Errorf(devdocs.EINVALID, "invalid catalog: %s", err)
	}

	seen := make(map[string]bool)
	var check func(entries []Entry) error
	check = func(entries []Entry) error {
		for _, e := range entries {
			if err := validateID(e.ID); err != nil {
				return err
			}
			if seen[e.ID] {
				return devdocs.Errorf(devdocs.ECONFLICT, "duplicate document id %q", e.ID)
			}
			seen[e.ID] = true
			if err := check(e.Subtopics); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(m.Topics); err != nil {
		return nil, err
	}
	if err := check(m.Prompts); err != nil {
		return nil, err
	}
	return &m, nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return devdocs.Errorf(devdocs.EINVALID, "catalog entry without id")
	}
	if id != filepath.Base(id) || id == "." || id == ".." {
		return devdocs.Errorf(devdocs.EINVALID, "invalid document id %q", id)
	}
	return nil
}
