package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestAssistant_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	a := gemini.NewAssistant(nil, "") // nil client ok, validation runs first
	ctx := context.Background()

	t.Run("answer", func(t *testing.T) {
		t.Parallel()

		_, err := a.Answer(ctx, "  ", "docs")

		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
		assert.Equal(t, "question required", devdocs.ErrorMessage(err))
	})

	t.Run("explain", func(t *testing.T) {
		t.Parallel()

		_, err := a.Explain(ctx, "")

		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})

	t.Run("generate code", func(t *testing.T) {
		t.Parallel()

		_, err := a.GenerateCode(ctx, "", "x := 1")

		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})
}

func response(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

func TestParseResponse(t *testing.T) {
	t.Parallel()

	t.Run("returns the requested field", func(t *testing.T) {
		t.Parallel()

		got, err := gemini.ParseResponse(response(`{"answer": "Use **tokens**."}`), gemini.FieldAnswer)

		require.NoError(t, err)
		assert.Equal(t, "Use **tokens**.", got)
	})

	t.Run("nil result is internal", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseResponse(nil, gemini.FieldAnswer)

		assert.Equal(t, devdocs.EINTERNAL, devdocs.ErrorCode(err))
	})

	t.Run("invalid json is internal", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseResponse(response("not json"), gemini.FieldCode)

		assert.Equal(t, devdocs.EINTERNAL, devdocs.ErrorCode(err))
	})

	t.Run("empty field is internal", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseResponse(response(`{"code": ""}`), gemini.FieldCode)

		assert.Equal(t, devdocs.EINTERNAL, devdocs.ErrorCode(err))
		assert.Contains(t, devdocs.ErrorMessage(err), "code")
	})

	t.Run("missing field is internal", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseResponse(response(`{"answer": "hi"}`), gemini.FieldExplanation)

		assert.Equal(t, devdocs.EINTERNAL, devdocs.ErrorCode(err))
	})
}

func TestBuildConfigs_RequestStructuredOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config *genai.GenerateContentConfig
		field  string
	}{
		{name: "answer", config: gemini.BuildAnswerConfig(), field: gemini.FieldAnswer},
		{name: "explain", config: gemini.BuildExplainConfig(), field: gemini.FieldExplanation},
		{name: "code", config: gemini.BuildCodeConfig(), field: gemini.FieldCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "application/json", tt.config.ResponseMIMEType)
			require.NotNil(t, tt.config.ResponseSchema)
			assert.Equal(t, genai.TypeObject, tt.config.ResponseSchema.Type)
			assert.Contains(t, tt.config.ResponseSchema.Properties, tt.field)
			assert.Equal(t, []string{tt.field}, tt.config.ResponseSchema.Required)
			require.NotNil(t, tt.config.SystemInstruction)
			require.Len(t, tt.config.SystemInstruction.Parts, 1)
			require.NotNil(t, tt.config.Temperature)
		})
	}
}

func TestBuildAnswerPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildAnswerPrompt("How do I log in?", "## Document: Auth (doc://auth)\nUse tokens.")

	assert.Contains(t, prompt, "<documentation>")
	assert.Contains(t, prompt, "## Document: Auth (doc://auth)")
	assert.Contains(t, prompt, "doc://<document-id>")
	assert.Contains(t, prompt, "Question: How do I log in?")
	assert.NotContains(t, prompt, "You are a helpful AI assistant")
}

func TestBuildExplainPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildExplainPrompt("Idempotent requests can be retried.")

	assert.Contains(t, prompt, "<text>\nIdempotent requests can be retried.\n</text>")
}

func TestBuildCodePrompt(t *testing.T) {
	t.Parallel()

	t.Run("without existing code", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildCodePrompt("Open a connection.", "")

		assert.Contains(t, prompt, "80 characters")
		assert.Contains(t, prompt, "Open a connection.")
		assert.NotContains(t, prompt, "NEW and DIFFERENT")
	})

	t.Run("with existing code", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildCodePrompt("Open a connection.", "db.Open()")

		assert.Contains(t, prompt, "NEW and DIFFERENT")
		assert.Contains(t, prompt, "```\ndb.Open()\n```")
	})
}
