// Package gemini implements the documentation assistant on Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/devdocs"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Response fields of the structured outputs.
const (
	FieldAnswer      = "answer"
	FieldExplanation = "explanation"
	FieldCode        = "code"
)

// Ensure Assistant implements devdocs.Assistant at compile time.
var _ devdocs.Assistant = (*Assistant)(nil)

// Assistant implements devdocs.Assistant using Google Gemini.
type Assistant struct {
	client *genai.Client
	model  string
}

// NewAssistant creates a new Assistant. An empty model selects DefaultModel.
func NewAssistant(client *genai.Client, model string) *Assistant {
	if model == "" {
		model = DefaultModel
	}
	return &Assistant{client: client, model: model}
}

// Answer answers question using relevantDocs as context.
func (a *Assistant) Answer(ctx context.Context, question, relevantDocs string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", devdocs.Errorf(devdocs.EINVALID, "question required")
	}
	return a.generate(ctx, BuildAnswerPrompt(question, relevantDocs), BuildAnswerConfig(), FieldAnswer)
}

// Explain returns a plain-language explanation of text.
func (a *Assistant) Explain(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", devdocs.Errorf(devdocs.EINVALID, "text required")
	}
	return a.generate(ctx, BuildExplainPrompt(text), BuildExplainConfig(), FieldExplanation)
}

// GenerateCode returns a code sample illustrating text.
func (a *Assistant) GenerateCode(ctx context.Context, text, existingCode string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", devdocs.Errorf(devdocs.EINVALID, "text required")
	}
	return a.generate(ctx, BuildCodePrompt(text, existingCode), BuildCodeConfig(), FieldCode)
}

func (a *Assistant) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig, field string) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	return ParseResponse(result, field)
}

// ParseResponse decodes the JSON object returned for a structured request and
// returns the named field. A missing result or empty field is EINTERNAL.
func ParseResponse(result *genai.GenerateContentResponse, field string) (string, error) {
	if result == nil {
		return "", devdocs.Errorf(devdocs.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", devdocs.Errorf(devdocs.EINTERNAL, "gemini returned an empty response")
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return "", devdocs.Errorf(devdocs.EINTERNAL, "decode gemini response: %s", err)
	}
	value := fields[field]
	if strings.TrimSpace(value) == "" {
		return "", devdocs.Errorf(devdocs.EINTERNAL, "gemini response has no %s", field)
	}
	return value, nil
}

// BuildAnswerConfig returns the config for question answering.
func BuildAnswerConfig() *genai.GenerateContentConfig {
	return buildConfig(
		"You are a helpful AI assistant that answers questions about technical documentation. Provide a direct answer based on the documentation snippets you are given.",
		FieldAnswer, "The answer to the question, formatted in Markdown.",
		0.4,
	)
}

// BuildExplainConfig returns the config for explanations.
func BuildExplainConfig() *genai.GenerateContentConfig {
	return buildConfig(
		"You are a patient technical writer who explains documentation excerpts to developers in plain language.",
		FieldExplanation, "A plain-language explanation of the text.",
		0.4,
	)
}

// BuildCodeConfig returns the config for code generation.
func BuildCodeConfig() *genai.GenerateContentConfig {
	return buildConfig(
		"You are an expert software developer specializing in generating code snippets based on documentation.",
		FieldCode, "The generated code, without markdown fences.",
		0.7,
	)
}

func buildConfig(instruction, field, description string, temperature float32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				field: {Type: genai.TypeString, Description: description},
			},
			Required: []string{field},
		},
	}
}

// BuildAnswerPrompt builds the user prompt for a question.
func BuildAnswerPrompt(question, relevantDocs string) string {
	var sb strings.Builder
	sb.WriteString("You MUST use the documentation snippets below to formulate your answer.\n")
	sb.WriteString("Do not tell the user to go read the documentation. Extract the relevant information and answer the question clearly and concisely.\n")
	sb.WriteString("Format the answer in Markdown.\n")
	sb.WriteString("Link the source documents you used as [Document Title](doc://<document-id>), for example [Authentication](doc://authentication).\n\n")
	sb.WriteString("<documentation>\n")
	sb.WriteString(relevantDocs)
	sb.WriteString("\n</documentation>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

// BuildExplainPrompt builds the user prompt for explaining text.
func BuildExplainPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Explain the following documentation text. Keep it short and avoid jargon where possible.\n\n")
	sb.WriteString("<text>\n")
	sb.WriteString(text)
	sb.WriteString("\n</text>")
	return sb.String()
}

// BuildCodePrompt builds the user prompt for code generation. A non-empty
// existingCode asks for a different sample of the same concept.
func BuildCodePrompt(text, existingCode string) string {
	var sb strings.Builder
	sb.WriteString("Generate a code sample from the documentation below.\n")
	sb.WriteString("Keep lines at 80 characters or fewer unless absolutely necessary.\n")
	if strings.TrimSpace(existingCode) != "" {
		sb.WriteString("You must generate a NEW and DIFFERENT code sample from the one provided below, but it should illustrate the same concept.\n")
		sb.WriteString("Existing code:\n```\n")
		sb.WriteString(existingCode)
		sb.WriteString("\n```\n")
	}
	sb.WriteString("\n<documentation>\n")
	sb.WriteString(text)
	sb.WriteString("\n</documentation>")
	return sb.String()
}
