package http

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/devdocs"
	"github.com/go-chi/chi/v5"
)

// documentSummary is a document without its content, as listed in the
// sidebar.
type documentSummary struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Icon      string            `json:"icon,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	Headings  []devdocs.Heading `json:"headings,omitempty"`
	Subtopics []documentSummary `json:"subtopics,omitempty"`
}

func newDocumentSummary(doc *devdocs.Document) documentSummary {
	sum := documentSummary{
		ID:       doc.ID,
		Title:    doc.Title,
		Icon:     doc.Icon,
		Tags:     doc.Tags,
		Headings: doc.Headings,
	}
	for _, sub := range doc.Subtopics {
		sum.Subtopics = append(sum.Subtopics, newDocumentSummary(sub))
	}
	return sum
}

func newDocumentSummaries(docs []*devdocs.Document) []documentSummary {
	out := make([]documentSummary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, newDocumentSummary(doc))
	}
	return out
}

type catalogResponse struct {
	Topics      []documentSummary    `json:"topics"`
	Prompts     []documentSummary    `json:"prompts"`
	TypeFilters []devdocs.TypeFilter `json:"typeFilters"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	c, err := s.docs.Catalog(r.Context())
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, catalogResponse{
		Topics:      newDocumentSummaries(c.Topics),
		Prompts:     newDocumentSummaries(c.Prompts),
		TypeFilters: devdocs.TypeFilters,
	})
}

type documentResponse struct {
	Document   documentSummary     `json:"document"`
	Markdown   string              `json:"markdown"`
	HTML       string              `json:"html"`
	Summary    string              `json:"summary"`
	CodeBlocks []devdocs.CodeBlock `json:"codeBlocks"`
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	var regenerated map[string]string
	if s.code != nil {
		if regenerated, err = s.code.FindRegeneratedCode(r.Context(), doc.ID); err != nil {
			Error(w, r, s.logger, err)
			return
		}
	}

	markdown := devdocs.StripFrontmatter(doc.Content)
	writeJSON(w, http.StatusOK, documentResponse{
		Document:   newDocumentSummary(doc),
		Markdown:   markdown,
		HTML:       devdocs.RenderDocument(doc, regenerated),
		Summary:    devdocs.Summarize(doc.Content),
		CodeBlocks: devdocs.CodeBlocks(markdown),
	})
}

type sectionResponse struct {
	DocumentID string   `json:"documentId"`
	HeadingID  string   `json:"headingId"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags,omitempty"`
	Markdown   string   `json:"markdown"`
	HTML       string   `json:"html"`
	Empty      bool     `json:"empty"`
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	h, ok := devdocs.FindHeading(doc, chi.URLParam(r, "headingID"))
	if !ok {
		Error(w, r, s.logger, devdocs.Errorf(devdocs.ENOTFOUND, "Section not found."))
		return
	}

	resp := sectionResponse{
		DocumentID: doc.ID,
		HeadingID:  h.ID,
		Title:      h.Title,
		Tags:       h.Tags,
		Markdown:   devdocs.ExtractSection(doc.Content, h.Title),
	}
	if resp.Markdown == "" {
		resp.Empty = true
		resp.Markdown = devdocs.NoSectionContent
	}
	resp.HTML = devdocs.Render(resp.Markdown, devdocs.RenderOptions{Mode: devdocs.ModePlain, DocumentID: doc.ID})
	writeJSON(w, http.StatusOK, resp)
}

type documentRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type typeGroup struct {
	Label     string        `json:"label"`
	Tag       string        `json:"tag"`
	Documents []documentRef `json:"documents"`
}

type subjectTag struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

type tagsResponse struct {
	Types    []typeGroup  `json:"types"`
	Subjects []subjectTag `json:"subjects"`
}

// handleTags returns the type groups and the subject facet for the type
// tags given as repeated "type" parameters.
func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	c, err := s.docs.Catalog(r.Context())
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	all := c.All()

	byType := devdocs.DocumentsByType(all)
	resp := tagsResponse{Types: make([]typeGroup, 0, len(devdocs.TypeFilters))}
	for _, f := range devdocs.TypeFilters {
		g := typeGroup{Label: f.Label, Tag: f.Tag, Documents: []documentRef{}}
		for _, doc := range byType[f.Tag] {
			g.Documents = append(g.Documents, documentRef{ID: doc.ID, Title: doc.Title})
		}
		resp.Types = append(resp.Types, g)
	}

	resp.Subjects = []subjectTag{}
	for _, tag := range devdocs.FacetTags(all, r.URL.Query()["type"]) {
		resp.Subjects = append(resp.Subjects, subjectTag{Tag: tag, Label: devdocs.TagLabel(tag)})
	}
	writeJSON(w, http.StatusOK, resp)
}

type resultCard struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags,omitempty"`
}

func newResultCards(docs []*devdocs.Document) []resultCard {
	out := make([]resultCard, 0, len(docs))
	for _, doc := range docs {
		out = append(out, resultCard{
			ID:      doc.ID,
			Title:   doc.Title,
			Excerpt: devdocs.Excerpt(doc.Content),
			Tags:    doc.Tags,
		})
	}
	return out
}

type sectionCard struct {
	DocumentID    string   `json:"documentId"`
	DocumentTitle string   `json:"documentTitle"`
	HeadingID     string   `json:"headingId"`
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Tags          []string `json:"tags,omitempty"`
}

type filterResponse struct {
	TypeTags    []string      `json:"typeTags"`
	SubjectTags []string      `json:"subjectTags"`
	Documents   []resultCard  `json:"documents,omitempty"`
	Sections    []sectionCard `json:"sections,omitempty"`
}

// handleFilter filters by the repeated "tag" parameters. With
// "sections=true" it returns matching sections instead of documents.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	c, err := s.docs.Catalog(r.Context())
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	q := r.URL.Query()
	sections := false
	if v := q.Get("sections"); v != "" {
		if sections, err = strconv.ParseBool(v); err != nil {
			Error(w, r, s.logger, devdocs.Errorf(devdocs.EINVALID, "Invalid sections parameter."))
			return
		}
	}

	typeTags, subjectTags := devdocs.PartitionTags(q["tag"])
	resp := filterResponse{TypeTags: nonNil(typeTags), SubjectTags: nonNil(subjectTags)}
	if sections {
		resp.Sections = []sectionCard{}
		for _, m := range devdocs.FilterSections(c.All(), typeTags, subjectTags) {
			resp.Sections = append(resp.Sections, sectionCard{
				DocumentID:    m.Document.ID,
				DocumentTitle: m.Document.Title,
				HeadingID:     m.Heading.ID,
				Title:         m.Heading.Title,
				Excerpt:       devdocs.Excerpt(devdocs.ExtractSection(m.Document.Content, m.Heading.Title)),
				Tags:          m.Heading.Tags,
			})
		}
	} else {
		resp.Documents = newResultCards(devdocs.FilterDocuments(c.All(), typeTags, subjectTags))
	}
	writeJSON(w, http.StatusOK, resp)
}

type searchResponse struct {
	Query   string       `json:"query"`
	Results []resultCard `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	resp := searchResponse{Query: query, Results: []resultCard{}}
	if query == "" {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	docs, err := s.docs.FindDocuments(r.Context(), devdocs.DocumentFilter{Query: &query})
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	resp.Results = newResultCards(docs)
	writeJSON(w, http.StatusOK, resp)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
