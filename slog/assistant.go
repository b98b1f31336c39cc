// Package slog provides logging decorators for devdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/devdocs"
)

// Ensure LoggingAssistant implements devdocs.Assistant.
var _ devdocs.Assistant = (*LoggingAssistant)(nil)

// LoggingAssistant wraps an Assistant with logging of every model call.
type LoggingAssistant struct {
	next   devdocs.Assistant
	logger *slog.Logger
}

// NewLoggingAssistant creates a new LoggingAssistant.
func NewLoggingAssistant(next devdocs.Assistant, logger *slog.Logger) *LoggingAssistant {
	return &LoggingAssistant{next: next, logger: logger}
}

// Answer delegates to the wrapped assistant and logs the call.
func (a *LoggingAssistant) Answer(ctx context.Context, question, relevantDocs string) (answer string, err error) {
	defer func(begin time.Time) {
		a.log(ctx, "answer", begin, err,
			"question_len", len(question),
			"context_len", len(relevantDocs),
			"answer_len", len(answer),
		)
	}(time.Now())
	return a.next.Answer(ctx, question, relevantDocs)
}

// Explain delegates to the wrapped assistant and logs the call.
func (a *LoggingAssistant) Explain(ctx context.Context, text string) (explanation string, err error) {
	defer func(begin time.Time) {
		a.log(ctx, "explain", begin, err,
			"text_len", len(text),
			"explanation_len", len(explanation),
		)
	}(time.Now())
	return a.next.Explain(ctx, text)
}

// GenerateCode delegates to the wrapped assistant and logs the call.
func (a *LoggingAssistant) GenerateCode(ctx context.Context, text, existingCode string) (code string, err error) {
	defer func(begin time.Time) {
		a.log(ctx, "generate code", begin, err,
			"text_len", len(text),
			"regenerate", existingCode != "",
			"code_len", len(code),
		)
	}(time.Now())
	return a.next.GenerateCode(ctx, text, existingCode)
}

// log writes one record per call: errors at error level, the rest at info.
func (a *LoggingAssistant) log(ctx context.Context, op string, begin time.Time, err error, attrs ...any) {
	attrs = append(attrs, "duration", time.Since(begin))
	if err != nil {
		attrs = append(attrs, "code", devdocs.ErrorCode(err), "err", err)
		a.logger.ErrorContext(ctx, "assistant "+op, attrs...)
		return
	}
	a.logger.InfoContext(ctx, "assistant "+op, attrs...)
}
