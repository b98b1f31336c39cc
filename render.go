package devdocs

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Mode selects the rule set used by Render.
type Mode int

const (
	// ModePlain renders documentation pages, including headings.
	ModePlain Mode = iota

	// ModeChat renders LLM answers. Heading syntax is left as text.
	ModeChat
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeChat {
		return "chat"
	}
	return "plain"
}

// ParseMode parses "plain" or "chat".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "plain":
		return ModePlain, nil
	case "chat":
		return ModeChat, nil
	}
	return ModePlain, Errorf(EINVALID, "unknown render mode %q", s)
}

// RenderOptions configures Render.
type RenderOptions struct {
	Mode Mode

	// DocumentID enables the "regenerate" affordance on code blocks. Each
	// block is keyed by CodeKey(DocumentID, originalCode).
	DocumentID string

	// Regenerated maps code keys to replacement code shown instead of the
	// original payload.
	Regenerated map[string]string
}

// DocLinkScheme prefixes cross-document links ("doc://<document-id>").
const DocLinkScheme = "doc://"

var (
	fenceRe      = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]+?`")

	boldRe         = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe       = regexp.MustCompile(`\*(.*?)\*`)
	blockquoteRe   = regexp.MustCompile(`(?m)^> (.*)$`)
	docLinkRe      = regexp.MustCompile(`\[([^\]]+)\]\((doc://[^)\s]+)\)`)
	h1Re           = regexp.MustCompile(`(?m)^# (.*)$`)
	h2Re           = regexp.MustCompile(`(?m)^## (.*)$`)
	h3Re           = regexp.MustCompile(`(?m)^### (.*)$`)
	headingBreakRe = regexp.MustCompile(`(?i)(</h[1-3]>)<br />`)
)

const (
	inlineCodeOpen  = `<code class="bg-muted text-muted-foreground px-1 py-0.5 rounded-sm font-mono text-sm">`
	blockquoteOpen  = `<blockquote class="mt-6 border-l-2 pl-6 italic">`
	h1Open          = `<h1 class="text-4xl font-extrabold mt-8 mb-4 tracking-tight">`
	h2Class         = `text-2xl font-bold mt-6 mb-3 border-b pb-2`
	h3Open          = `<h3 class="text-xl font-bold mt-4 mb-2">`
	docLinkClass    = `font-medium text-primary underline underline-offset-4`
	codeBlockOpen   = `<div class="my-4 relative">`
	codePreClass    = `bg-gray-800 text-white p-4 pt-8 rounded-md overflow-x-auto font-mono`
	codeBadgeOpen   = `<div class="absolute top-2 right-2 text-xs text-gray-400 bg-gray-700 px-2 py-1 rounded">`
	regenerateClass = `absolute bottom-2 right-2 text-xs text-gray-300 hover:text-white`
)

// Render converts a frontmatter-free markdown subset into HTML.
//
// Fenced code blocks are split out first, then inline code spans; only the
// remaining text receives emphasis, blockquote, link, heading and line-break
// rules. Prose is trusted author content and is not escaped; code block
// payloads are.
func Render(text string, opts RenderOptions) string {
	var b strings.Builder
	for _, tok := range lexFences(text) {
		switch tok.kind {
		case tokenCodeBlock:
			renderCodeBlock(&b, tok.text, opts)
		default:
			if strings.TrimSpace(tok.text) == "" {
				continue
			}
			renderProse(&b, tok.text, opts.Mode)
		}
	}
	return b.String()
}

// RenderDocument renders doc's content in plain mode with the regenerate
// affordance keyed by the document ID.
func RenderDocument(doc *Document, regenerated map[string]string) string {
	return Render(StripFrontmatter(doc.Content), RenderOptions{
		Mode:        ModePlain,
		DocumentID:  doc.ID,
		Regenerated: regenerated,
	})
}

// CodeKey identifies one code block of one document. The same snippet in two
// documents gets two keys.
func CodeKey(documentID, code string) string {
	d := xxhash.New()
	_, _ = d.WriteString(documentID)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(code)
	return fmt.Sprintf("%016x", d.Sum64())
}

// ResolveLink returns the document ID of a "doc://" href.
func ResolveLink(href string) (string, bool) {
	if !strings.HasPrefix(href, DocLinkScheme) {
		return "", false
	}
	id := strings.TrimPrefix(href, DocLinkScheme)
	return id, id != ""
}

// CodeBlock is a fenced code block found in markdown.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// CodeBlocks returns the fenced code blocks of text in order.
func CodeBlocks(text string) []CodeBlock {
	var blocks []CodeBlock
	for _, tok := range lexFences(text) {
		if tok.kind == tokenCodeBlock {
			lang, code := parseCodeBlock(tok.text)
			blocks = append(blocks, CodeBlock{Language: lang, Code: code})
		}
	}
	return blocks
}

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenCodeBlock
	tokenInlineCode
)

type token struct {
	kind tokenKind
	text string
}

// lexFences splits text into text and fenced code block tokens.
func lexFences(text string) []token {
	return lex(text, fenceRe, tokenCodeBlock)
}

// lexInlineCode splits text into text and inline code tokens.
func lexInlineCode(text string) []token {
	return lex(text, inlineCodeRe, tokenInlineCode)
}

func lex(text string, re *regexp.Regexp, kind tokenKind) []token {
	var tokens []token
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			tokens = append(tokens, token{kind: tokenText, text: text[last:loc[0]]})
		}
		tokens = append(tokens, token{kind: kind, text: text[loc[0]:loc[1]]})
		last = loc[1]
	}
	if last < len(text) {
		tokens = append(tokens, token{kind: tokenText, text: text[last:]})
	}
	return tokens
}

// parseCodeBlock returns the language tag and payload of a fenced block.
// The first line minus its backticks is the language; the last line is the
// closing fence.
func parseCodeBlock(raw string) (lang, code string) {
	lines := strings.Split(raw, "\n")
	lang = strings.TrimSpace(strings.TrimPrefix(lines[0], "```"))
	lines = lines[1:]
	if len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}
	return lang, strings.Join(lines, "\n")
}

func renderCodeBlock(b *strings.Builder, raw string, opts RenderOptions) {
	lang, code := parseCodeBlock(raw)
	key := CodeKey(opts.DocumentID, code)
	if replacement, ok := opts.Regenerated[key]; ok {
		code = replacement
	}

	b.WriteString(codeBlockOpen)
	fmt.Fprintf(b, `<pre class="%s language-%s"`, codePreClass, html.EscapeString(lang))
	if opts.DocumentID != "" {
		fmt.Fprintf(b, ` data-code-key="%s"`, key)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(code))
	b.WriteString("</pre>")
	if lang != "" {
		b.WriteString(codeBadgeOpen)
		b.WriteString(html.EscapeString(lang))
		b.WriteString("</div>")
	}
	if opts.DocumentID != "" {
		fmt.Fprintf(b, `<button type="button" class="%s" data-action="regenerate-code" data-document-id="%s" data-code-key="%s">Regenerate</button>`,
			regenerateClass, html.EscapeString(opts.DocumentID), key)
	}
	b.WriteString("</div>")
}

func renderProse(b *strings.Builder, text string, mode Mode) {
	for _, tok := range lexInlineCode(text) {
		if tok.kind == tokenInlineCode {
			b.WriteString(inlineCodeOpen)
			b.WriteString(tok.text[1 : len(tok.text)-1])
			b.WriteString("</code>")
			continue
		}
		b.WriteString(renderInline(tok.text, mode))
	}
}

// renderInline applies the text rules in their fixed order. Line-anchored
// rules run before newlines become <br />.
func renderInline(s string, mode Mode) string {
	if s == "" {
		return ""
	}
	s = boldRe.ReplaceAllString(s, "<strong>${1}</strong>")
	s = italicRe.ReplaceAllString(s, "<em>${1}</em>")
	s = blockquoteRe.ReplaceAllString(s, blockquoteOpen+"${1}</blockquote>")
	s = docLinkRe.ReplaceAllString(s, `<a href="${2}" class="`+docLinkClass+`">${1}</a>`)
	if mode == ModePlain {
		s = h1Re.ReplaceAllString(s, h1Open+"${1}</h1>")
		s = h2Re.ReplaceAllStringFunc(s, func(m string) string {
			title := h2Re.FindStringSubmatch(m)[1]
			return fmt.Sprintf(`<h2 id="%s" class="%s">%s</h2>`, Slugify(title), h2Class, title)
		})
		s = h3Re.ReplaceAllString(s, h3Open+"${1}</h3>")
	}
	s = strings.ReplaceAll(s, "\n", "<br />")
	if mode == ModePlain {
		s = headingBreakRe.ReplaceAllString(s, "${1}")
	}
	return s
}
