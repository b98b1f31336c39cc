package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/devdocs"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	doc, err := findDocument(deps, c.ID)
	if err != nil {
		return err
	}

	if c.Chat {
		fmt.Fprintln(deps.Stdout, devdocs.Render(devdocs.StripFrontmatter(doc.Content), devdocs.RenderOptions{Mode: devdocs.ModeChat}))
		return nil
	}

	regenerated, err := findRegenerated(deps, doc.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, devdocs.RenderDocument(doc, regenerated))
	return nil
}

// Run executes the section command.
func (c *SectionCmd) Run(deps *Dependencies) error {
	doc, err := findDocument(deps, c.ID)
	if err != nil {
		return err
	}

	title := c.Heading
	if h, ok := devdocs.FindHeading(doc, c.Heading); ok {
		title = h.Title
	}

	body := devdocs.ExtractSection(doc.Content, title)
	if body == "" {
		fmt.Fprintln(deps.Stdout, devdocs.NoSectionContent)
		return nil
	}

	regenerated, err := findRegenerated(deps, doc.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, devdocs.Render(body, devdocs.RenderOptions{
		Mode:        devdocs.ModePlain,
		DocumentID:  doc.ID,
		Regenerated: regenerated,
	}))
	return nil
}

// Run executes the headings command.
func (c *HeadingsCmd) Run(deps *Dependencies) error {
	doc, err := findDocument(deps, c.ID)
	if err != nil {
		return err
	}

	if len(doc.Headings) == 0 {
		fmt.Fprintf(deps.Stdout, "%s has no heading menu.\n", doc.Title)
		return nil
	}
	for _, h := range doc.Headings {
		fmt.Fprintf(deps.Stdout, "  %s (#%s)", h.Title, h.ID)
		if len(h.Tags) > 0 {
			fmt.Fprintf(deps.Stdout, " [%s]", strings.Join(h.Tags, ", "))
		}
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	doc, err := findDocument(deps, c.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, devdocs.Summarize(doc.Content))
	return nil
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, devdocs.DocumentFilter{
		Query: &c.Query,
		Limit: c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Results for %q (%d total):\n\n", c.Query, len(docs))
	for i, doc := range docs {
		excerpt := strings.Join(strings.Fields(devdocs.Excerpt(doc.Content)), " ")
		fmt.Fprintf(deps.Stdout, "  %d. %s (%s)\n     %s\n", i+1, doc.Title, doc.ID, excerpt)
	}
	return nil
}

// findDocument looks up id and reports failures on stderr.
func findDocument(deps *Dependencies, id string) (*devdocs.Document, error) {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, id)
	if devdocs.ErrorCode(err) == devdocs.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'devdocs search' to find documents.\n", id)
		return nil, err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return nil, err
	}
	return doc, nil
}

// findRegenerated returns the regenerated code blocks of a document, or nil
// when no code service is configured.
func findRegenerated(deps *Dependencies, documentID string) (map[string]string, error) {
	if deps.Code == nil {
		return nil, nil
	}
	regenerated, err := deps.Code.FindRegeneratedCode(deps.Ctx, documentID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return nil, err
	}
	return regenerated, nil
}
