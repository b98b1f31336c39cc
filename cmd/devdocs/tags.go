package main

import (
	"fmt"

	"github.com/fwojciec/devdocs"
)

// Run executes the tags command.
func (c *TagsCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Documents.Catalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}
	all := catalog.All()

	fmt.Fprintln(deps.Stdout, "Types:")
	byType := devdocs.DocumentsByType(all)
	for _, f := range devdocs.TypeFilters {
		fmt.Fprintf(deps.Stdout, "  %s (%s): %d\n", f.Label, f.Tag, len(byType[f.Tag]))
	}

	fmt.Fprintln(deps.Stdout, "\nSubjects:")
	subjects := devdocs.FacetTags(all, c.Type)
	if len(subjects) == 0 {
		fmt.Fprintln(deps.Stdout, "  (none)")
	}
	for _, tag := range subjects {
		fmt.Fprintf(deps.Stdout, "  %s\n", devdocs.TagLabel(tag))
	}
	return nil
}

// Run executes the filter command.
func (c *FilterCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Documents.Catalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}
	typeTags, subjectTags := devdocs.PartitionTags(devdocs.UniqueTags(c.Tags))

	if c.Sections {
		matches := devdocs.FilterSections(catalog.All(), typeTags, subjectTags)
		if len(matches) == 0 {
			fmt.Fprintln(deps.Stdout, "No matching sections.")
			return nil
		}
		for _, m := range matches {
			fmt.Fprintf(deps.Stdout, "  %s > %s (%s#%s)\n", m.Document.Title, m.Heading.Title, m.Document.ID, m.Heading.ID)
		}
		return nil
	}

	docs := devdocs.FilterDocuments(catalog.All(), typeTags, subjectTags)
	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching documents.")
		return nil
	}
	for _, doc := range docs {
		fmt.Fprintf(deps.Stdout, "  %s (%s)\n", doc.Title, doc.ID)
	}
	return nil
}
