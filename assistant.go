package devdocs

import "context"

// Assistant answers questions about the documentation, explains text and
// generates code samples using a hosted language model. Calls are single
// request/response round trips with no retries.
type Assistant interface {
	// Answer answers question using relevantDocs as context. The answer is
	// markdown and cites documents as [Title](doc://<id>) links.
	// Returns EINVALID if question is empty.
	Answer(ctx context.Context, question, relevantDocs string) (string, error)

	// Explain returns a plain-language explanation of text.
	// Returns EINVALID if text is empty.
	Explain(ctx context.Context, text string) (string, error)

	// GenerateCode returns a code sample illustrating text. When
	// existingCode is set the sample must differ from it.
	// Returns EINVALID if text is empty.
	GenerateCode(ctx context.Context, text, existingCode string) (string, error)
}
