package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/fs"
	"github.com/fwojciec/devdocs/gemini"
	"github.com/fwojciec/devdocs/goquery"
	devslog "github.com/fwojciec/devdocs/slog"
	"github.com/fwojciec/devdocs/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Assistant replaces the Gemini assistant when set. Used by end-to-end
	// tests.
	Assistant devdocs.Assistant

	// TokenCounter replaces the local Gemini tokenizer when set.
	TokenCounter devdocs.TokenCounter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("devdocs"),
		kong.Description("Browse, filter and query markdown documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'devdocs --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := commandName(kongCtx.Command())

	deps.Logger = newLogger(stderr, cmd, cli.Debug)
	deps.ContextTokens = cli.ContextTokens

	docs, err := fs.Open(ctx, cli.Content)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set DEVDOCS_CONTENT to the directory holding catalog.yaml")
		return fmt.Errorf("failed to load documentation from %q: %w", cli.Content, err)
	}
	deps.Documents = docs

	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set DEVDOCS_DB to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	deps.History = devslog.NewLoggingHistoryService(sqlite.NewHistoryService(m.DB), deps.Logger)
	deps.Code = sqlite.NewCodeService(m.DB)
	deps.Citations = goquery.NewCitationExtractor()

	switch cmd {
	case "ask", "explain", "code", "serve":
		assistant, err := m.assistant(ctx, cli.Model, stderr)
		if err != nil && cmd != "serve" {
			return err
		}
		if err != nil {
			deps.Logger.Warn("assistant disabled", "error", err)
		} else {
			deps.Assistant = devslog.NewLoggingAssistant(assistant, deps.Logger)
		}
	}

	if (cmd == "ask" || cmd == "serve") && cli.ContextTokens > 0 {
		deps.Tokens = m.TokenCounter
		if deps.Tokens == nil {
			tc, err := gemini.NewTokenCounter(gemini.TokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			deps.Tokens = tc
		}
	}

	return kongCtx.Run(deps)
}

// assistant returns m.Assistant or a Gemini assistant built from
// GEMINI_API_KEY.
func (m *Main) assistant(ctx context.Context, model string, stderr io.Writer) (devdocs.Assistant, error) {
	if m.Assistant != nil {
		return m.Assistant, nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return gemini.NewAssistant(client, model), nil
}

// commandName returns the first word of a kong command path such as
// "render <id>".
func commandName(path string) string {
	if fields := strings.Fields(path); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// newLogger logs to stderr. Only serve reports routine events; the other
// commands log warnings and errors unless debug is set.
func newLogger(w io.Writer, cmd string, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if cmd == "serve" {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
