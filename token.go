package devdocs

import "context"

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// FitSnippets returns the longest prefix of docs whose formatted snippets
// fit in maxTokens. A nil counter or non-positive budget keeps every
// document.
func FitSnippets(ctx context.Context, counter TokenCounter, docs []*Document, maxTokens int) ([]*Document, error) {
	if counter == nil || maxTokens <= 0 {
		return docs, nil
	}

	total := 0
	for i, doc := range docs {
		n, err := counter.CountTokens(ctx, FormatSnippets([]*Document{doc}))
		if err != nil {
			return nil, err
		}
		if total+n > maxTokens {
			return docs[:i], nil
		}
		total += n
	}
	return docs, nil
}
