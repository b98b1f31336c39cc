package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/devdocs"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files read in parallel when the
// loader's Concurrency is not set.
const DefaultConcurrency = 8

// Loader reads a content directory: the catalog plus one markdown file per
// entry.
type Loader struct {
	Dir         string
	Concurrency int
}

// NewLoader creates a Loader for dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// slot is a document waiting for its file to be read.
type slot struct {
	doc   *devdocs.Document
	entry Entry
}

// Load reads the catalog and every document file. Files are read
// concurrently but the catalog keeps manifest order. A missing markdown file
// yields a document with empty content.
func (l *Loader) Load(ctx context.Context) (*devdocs.Catalog, error) {
	m, err := ReadManifest(l.Dir)
	if err != nil {
		return nil, err
	}

	var slots []slot
	c := &devdocs.Catalog{
		Topics:  buildTree(m.Topics, &slots),
		Prompts: buildTree(m.Prompts, &slots),
	}

	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, s := range slots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := l.readContent(s.entry.ID)
			if err != nil {
				return err
			}
			fill(s.doc, s.entry, content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

func (l *Loader) readContent(id string) (string, error) {
	data, err := os.ReadFile(filepath.Join(l.Dir, id+".md"))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("read document %s: %w", id, err)
	}
	return string(data), nil
}

// buildTree creates placeholder documents for entries and records a slot for
// each of them, depth-first.
func buildTree(entries []Entry, slots *[]slot) []*devdocs.Document {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]*devdocs.Document, 0, len(entries))
	for _, e := range entries {
		doc := &devdocs.Document{ID: e.ID}
		*slots = append(*slots, slot{doc: doc, entry: e})
		doc.Subtopics = buildTree(e.Subtopics, slots)
		docs = append(docs, doc)
	}
	return docs
}

// fill completes a placeholder document from its entry and file content.
// The catalog title wins over a frontmatter title; the ID is the last
// resort.
func fill(doc *devdocs.Document, e Entry, content string) {
	title := e.Title
	if title == "" {
		title = devdocs.ParseFrontmatter(content).Title
	}
	if title == "" {
		title = e.ID
	}

	loaded := devdocs.NewDocument(e.ID, title, e.Icon, content)
	loaded.Subtopics = doc.Subtopics
	*doc = *loaded
}
