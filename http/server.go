// Package http serves the documentation browser API over HTTP.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/devdocs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Timeouts of the underlying http.Server. Writes allow for slow model calls.
const (
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 120 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// DefaultRelevantLimit caps the documents sent to the model per question.
const DefaultRelevantLimit = 5

// Server is the HTTP API of the documentation browser.
type Server struct {
	router chi.Router

	docs      devdocs.DocumentService
	assistant devdocs.Assistant
	history   devdocs.HistoryService
	code      devdocs.CodeService
	tokens    devdocs.TokenCounter
	citations devdocs.CitationExtractor
	limiter   *ClientLimiter
	logger    *slog.Logger

	maxContextTokens int
	relevantLimit    int

	// Browser state shared by every client of this server.
	mu    sync.Mutex
	state *devdocs.BrowserState
}

// Option configures a Server.
type Option func(*Server)

// WithAssistant enables the ask, explain and code endpoints.
func WithAssistant(a devdocs.Assistant) Option {
	return func(s *Server) { s.assistant = a }
}

// WithHistory stores answered questions.
func WithHistory(h devdocs.HistoryService) Option {
	return func(s *Server) { s.history = h }
}

// WithCodeService stores regenerated code blocks and shows them in rendered
// documents.
func WithCodeService(c devdocs.CodeService) Option {
	return func(s *Server) { s.code = c }
}

// WithTokenBudget trims the context of each question to maxTokens as counted
// by counter.
func WithTokenBudget(counter devdocs.TokenCounter, maxTokens int) Option {
	return func(s *Server) {
		s.tokens = counter
		s.maxContextTokens = maxTokens
	}
}

// WithCitationExtractor lists the documents cited by each answer.
func WithCitationExtractor(e devdocs.CitationExtractor) Option {
	return func(s *Server) { s.citations = e }
}

// WithLimiter rate limits the assistant endpoints per client.
func WithLimiter(l *ClientLimiter) Option {
	return func(s *Server) { s.limiter = l }
}

// WithLogger sets the request and error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithRelevantLimit sets how many documents are sent to the model per
// question.
func WithRelevantLimit(n int) Option {
	return func(s *Server) { s.relevantLimit = n }
}

// NewServer creates a server over docs.
func NewServer(docs devdocs.DocumentService, opts ...Option) *Server {
	s := &Server{
		docs:          docs,
		logger:        slog.Default(),
		relevantLimit: DefaultRelevantLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.logger))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/docs/{id}", s.handleDocument)
		r.Get("/docs/{id}/sections/{headingID}", s.handleSection)
		r.Delete("/docs/{id}/code", s.handleRestoreCode)
		r.Get("/tags", s.handleTags)
		r.Get("/filter", s.handleFilter)
		r.Get("/search", s.handleSearch)

		r.Get("/history", s.handleHistory)
		r.Delete("/history", s.handleClearHistory)

		r.Get("/state", s.handleState)
		r.Post("/state", s.handleAction)

		r.Group(func(r chi.Router) {
			if s.limiter != nil {
				r.Use(s.limiter.Middleware)
			}
			r.Post("/ask", s.handleAsk)
			r.Post("/explain", s.handleExplain)
			r.Post("/code", s.handleCode)
		})
	})

	s.router = r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
