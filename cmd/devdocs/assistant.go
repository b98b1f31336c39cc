package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/devdocs"
	devhttp "github.com/fwojciec/devdocs/http"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	question := strings.TrimSpace(c.Question)
	if question == "" {
		fmt.Fprintln(deps.Stderr, "error: question required")
		return devdocs.Errorf(devdocs.EINVALID, "question required")
	}

	catalog, err := deps.Documents.Catalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	relevant := devdocs.RelevantDocuments(catalog.All(), question, devhttp.DefaultRelevantLimit)
	relevant, err = devdocs.FitSnippets(deps.Ctx, deps.Tokens, relevant, deps.ContextTokens)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	answer, err := deps.Assistant.Answer(deps.Ctx, question, devdocs.FormatSnippets(relevant))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	if deps.History != nil {
		if err := deps.History.CreateQAItem(deps.Ctx, &devdocs.QAItem{Question: question, Answer: answer}); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, answer)
	if len(relevant) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSources:")
		for _, doc := range relevant {
			fmt.Fprintf(deps.Stdout, "  %s (%s%s)\n", doc.Title, devdocs.DocLinkScheme, doc.ID)
		}
	}
	return printCitations(deps, catalog, answer)
}

// printCitations lists the known documents linked from answer.
func printCitations(deps *Dependencies, catalog *devdocs.Catalog, answer string) error {
	if deps.Citations == nil {
		return nil
	}
	citations, err := deps.Citations.ExtractCitations(devdocs.Render(answer, devdocs.RenderOptions{Mode: devdocs.ModeChat}))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	var cited []*devdocs.Document
	for _, cite := range citations {
		if doc := catalog.Find(cite.DocumentID); doc != nil {
			cited = append(cited, doc)
		}
	}
	if len(cited) == 0 {
		return nil
	}
	fmt.Fprintln(deps.Stdout, "\nCited:")
	for _, doc := range cited {
		fmt.Fprintf(deps.Stdout, "  %s (%s%s)\n", doc.Title, devdocs.DocLinkScheme, doc.ID)
	}
	return nil
}

// Run executes the explain command.
func (c *ExplainCmd) Run(deps *Dependencies) error {
	explanation, err := deps.Assistant.Explain(deps.Ctx, c.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, explanation)
	return nil
}

// Run executes the code command. With --existing and --document the result
// replaces that code block when the document is rendered.
func (c *CodeCmd) Run(deps *Dependencies) error {
	if c.Document != "" && c.Existing == "" {
		fmt.Fprintln(deps.Stderr, "error: --document requires --existing")
		return devdocs.Errorf(devdocs.EINVALID, "--document requires --existing")
	}

	if c.Document != "" {
		if _, err := findDocument(deps, c.Document); err != nil {
			return err
		}
	}

	var existing string
	if c.Existing != "" {
		data, err := os.ReadFile(c.Existing)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return fmt.Errorf("read existing code: %w", err)
		}
		existing = strings.TrimSuffix(string(data), "\n")
	}

	code, err := deps.Assistant.GenerateCode(deps.Ctx, c.Text, existing)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}

	if c.Document != "" && deps.Code != nil {
		if err := deps.Code.SaveRegeneratedCode(deps.Ctx, &devdocs.RegeneratedCode{
			Key:        devdocs.CodeKey(c.Document, existing),
			DocumentID: c.Document,
			Code:       code,
		}); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, code)
	return nil
}

// Run executes the restore command.
func (c *RestoreCmd) Run(deps *Dependencies) error {
	doc, err := findDocument(deps, c.ID)
	if err != nil {
		return err
	}
	if err := deps.Code.DeleteRegeneratedCode(deps.Ctx, doc.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Restored code blocks of %q\n", doc.Title)
	return nil
}

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Clear {
		if err := deps.History.ClearQAItems(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "Cleared history.")
		return nil
	}

	items, err := deps.History.FindQAItems(deps.Ctx, devdocs.QAFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", devdocs.ErrorMessage(err))
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No questions asked yet.")
		return nil
	}
	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "Q: %s\nA: %s\n", item.Question, item.Answer)
	}
	return nil
}
