package mock

import (
	"context"

	"github.com/fwojciec/devdocs"
)

var _ devdocs.Assistant = (*Assistant)(nil)

// Assistant is a mock implementation of devdocs.Assistant.
type Assistant struct {
	AnswerFn       func(ctx context.Context, question, relevantDocs string) (string, error)
	ExplainFn      func(ctx context.Context, text string) (string, error)
	GenerateCodeFn func(ctx context.Context, text, existingCode string) (string, error)
}

func (a *Assistant) Answer(ctx context.Context, question, relevantDocs string) (string, error) {
	return a.AnswerFn(ctx, question, relevantDocs)
}

func (a *Assistant) Explain(ctx context.Context, text string) (string, error) {
	return a.ExplainFn(ctx, text)
}

func (a *Assistant) GenerateCode(ctx context.Context, text, existingCode string) (string, error) {
	return a.GenerateCodeFn(ctx, text, existingCode)
}
