package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/devdocs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Documents devdocs.DocumentService
	History   devdocs.HistoryService
	Code      devdocs.CodeService
	Assistant devdocs.Assistant
	Citations devdocs.CitationExtractor

	// Tokens and ContextTokens bound the documentation sent with a question.
	Tokens        devdocs.TokenCounter
	ContextTokens int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Content       string `default:"./content" env:"DEVDOCS_CONTENT" help:"Directory holding catalog.yaml and the markdown topics"`
	DB            string `name:"db" default:":memory:" env:"DEVDOCS_DB" help:"SQLite database for history and regenerated code"`
	Model         string `default:"gemini-2.5-flash" env:"DEVDOCS_MODEL" help:"Gemini model used by the assistant"`
	ContextTokens int    `default:"0" help:"Token budget for documentation sent with a question (0 disables)"`
	Debug         bool   `help:"Enable debug logging"`

	Render   RenderCmd   `cmd:"" help:"Render a document to HTML"`
	Section  SectionCmd  `cmd:"" help:"Render one section of a document"`
	Headings HeadingsCmd `cmd:"" help:"List the headings of a document"`
	Summary  SummaryCmd  `cmd:"" help:"Print the one-line summary of a document"`
	Search   SearchCmd   `cmd:"" help:"Search document titles and content"`
	Tags     TagsCmd     `cmd:"" help:"List type filters and subject tags"`
	Filter   FilterCmd   `cmd:"" help:"List documents or sections matching tags"`
	Ask      AskCmd      `cmd:"" help:"Ask a question about the documentation"`
	Explain  ExplainCmd  `cmd:"" help:"Explain a piece of text"`
	Code     CodeCmd     `cmd:"" help:"Generate a code sample"`
	Restore  RestoreCmd  `cmd:"" help:"Restore the original code blocks of a document"`
	History  HistoryCmd  `cmd:"" help:"Show or clear the question history"`
	Serve    ServeCmd    `cmd:"" help:"Serve the browser API over HTTP"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	ID   string `arg:"" help:"Document ID"`
	Chat bool   `help:"Use chat rules (no headings)"`
}

// SectionCmd is the "section" subcommand.
type SectionCmd struct {
	ID      string `arg:"" help:"Document ID"`
	Heading string `arg:"" help:"Heading ID or title"`
}

// HeadingsCmd is the "headings" subcommand.
type HeadingsCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to search for"`
	Limit int    `short:"n" default:"0" help:"Maximum number of results (0 for all)"`
}

// TagsCmd is the "tags" subcommand.
type TagsCmd struct {
	Type []string `short:"t" help:"Restrict subject tags to documents with these type tags (repeatable)"`
}

// FilterCmd is the "filter" subcommand.
type FilterCmd struct {
	Tags     []string `arg:"" help:"Type and subject tags"`
	Sections bool     `short:"s" help:"Match sections instead of documents"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the documentation"`
}

// ExplainCmd is the "explain" subcommand.
type ExplainCmd struct {
	Text string `arg:"" help:"Text to explain"`
}

// CodeCmd is the "code" subcommand.
type CodeCmd struct {
	Text     string `arg:"" help:"Text to illustrate with code"`
	Existing string `type:"existingfile" help:"File with the code block to replace"`
	Document string `help:"Document the replaced code block belongs to"`
}

// RestoreCmd is the "restore" subcommand.
type RestoreCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Clear bool `help:"Delete every question and answer"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string  `default:":8080" env:"DEVDOCS_ADDR" help:"Listen address"`
	LLMRPS float64 `name:"llm-rps" default:"1" help:"Assistant requests per second per client"`
	Burst  int     `default:"3" help:"Assistant request burst per client"`
}
