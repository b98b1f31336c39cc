package devdocs

import "context"

// Document represents a documentation topic or prompt loaded from markdown.
// Documents are immutable once loaded.
type Document struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Icon      string      `json:"icon,omitempty"`
	Tags      []string    `json:"tags,omitempty"`
	Subtopics []*Document `json:"subtopics,omitempty"`
	Headings  []Heading   `json:"headings,omitempty"`
}

// HasTag reports whether the document's own tag list contains tag.
func (d *Document) HasTag(tag string) bool {
	return containsTag(d.Tags, tag)
}

// AllTags returns the document's own tags followed by the tags of all of
// its headings.
func (d *Document) AllTags() []string {
	tags := append([]string(nil), d.Tags...)
	for _, h := range d.Headings {
		tags = append(tags, h.Tags...)
	}
	return tags
}

// Heading represents a level-2 heading of a document.
type Heading struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
}

// Catalog holds the two document trees shown by the browser.
type Catalog struct {
	Topics  []*Document `json:"topics"`
	Prompts []*Document `json:"prompts"`
}

// All returns every document of the catalog, depth-first, topics before
// prompts.
func (c *Catalog) All() []*Document {
	if c == nil {
		return nil
	}
	var docs []*Document
	docs = Flatten(docs, c.Topics)
	docs = Flatten(docs, c.Prompts)
	return docs
}

// Find returns the document with the given ID, or nil.
func (c *Catalog) Find(id string) *Document {
	for _, doc := range c.All() {
		if doc.ID == id {
			return doc
		}
	}
	return nil
}

// IsPrompt reports whether id belongs to the prompts tree.
func (c *Catalog) IsPrompt(id string) bool {
	if c == nil {
		return false
	}
	for _, doc := range Flatten(nil, c.Prompts) {
		if doc.ID == id {
			return true
		}
	}
	return false
}

// Flatten appends docs and all of their subtopics to dst in depth-first
// order and returns the extended slice.
func Flatten(dst []*Document, docs []*Document) []*Document {
	for _, doc := range docs {
		dst = append(dst, doc)
		dst = Flatten(dst, doc.Subtopics)
	}
	return dst
}

// DocumentService represents a service for reading loaded documents.
type DocumentService interface {
	// Catalog returns the topic and prompt trees.
	Catalog(ctx context.Context) (*Catalog, error)

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter in catalog order.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID *string `json:"id"`

	// Prompts restricts results to the topics tree (false) or the prompts
	// tree (true). Nil returns both.
	Prompts *bool `json:"prompts"`

	// Query restricts results to a case-insensitive substring match over
	// title and content.
	Query *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
