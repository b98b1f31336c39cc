package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/devdocs"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// TokenizerModel is the model whose vocabulary is used for local counting.
// The local tokenizer supports fewer models than the API; counts are close
// enough for budgeting answer context.
const TokenizerModel = "gemini-2.0-flash"

// Ensure TokenCounter implements devdocs.TokenCounter at compile time.
var _ devdocs.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally with the Gemini tokenizer, so context
// budgets can be checked without an API call.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model. The
// tokenizer vocabulary is downloaded and cached on first use.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, fmt.Errorf("count tokens: %w", err)
	}
	return int(result.TotalTokens), nil
}
