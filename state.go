package devdocs

import (
	"slices"
	"strings"
)

// Tab is a sidebar tab of the browser.
type Tab string

// Tab constants.
const (
	TabTopics  Tab = "topics"
	TabPrompts Tab = "prompts"
	TabFilters Tab = "filters"
)

func (t Tab) valid() bool {
	return t == TabTopics || t == TabPrompts || t == TabFilters
}

// BrowserState is the complete selection state of the browser. It changes
// only through Reduce.
type BrowserState struct {
	Tab                   Tab      `json:"tab"`
	ActiveDocID           string   `json:"activeDocId"`
	SearchQuery           string   `json:"searchQuery"`
	SelectedTags          []string `json:"selectedTags"`
	ToggledDocID          string   `json:"toggledDocId"`
	ShowDocWhileFiltering bool     `json:"showDocWhileFiltering"`
	ActiveFilterType      string   `json:"activeFilterType"`
	IncludeSections       bool     `json:"includeSections"`
	OpenTopics            []string `json:"openTopics"`
	OpenFilterTypes       []string `json:"openFilterTypes"`

	// ScrollTo is a heading ID the viewer should scroll to once.
	ScrollTo string `json:"scrollTo"`
}

// NewBrowserState returns the initial state: the topics tab with the first
// topic active.
func NewBrowserState(c *Catalog) BrowserState {
	s := BrowserState{Tab: TabTopics}
	if c != nil && len(c.Topics) > 0 {
		s.ActiveDocID = c.Topics[0].ID
	}
	return s
}

// ActionType identifies a user action.
type ActionType string

// ActionType constants.
const (
	ActionChangeTab            ActionType = "change_tab"
	ActionSearch               ActionType = "search"
	ActionToggleTag            ActionType = "toggle_tag"
	ActionSelectDocument       ActionType = "select_document"
	ActionSelectFilterDocument ActionType = "select_filter_document"
	ActionToggleTopic          ActionType = "toggle_topic"
	ActionToggleFilterType     ActionType = "toggle_filter_type"
	ActionSetIncludeSections   ActionType = "set_include_sections"
	ActionReturnToFilters      ActionType = "return_to_filters"
	ActionFollowLink           ActionType = "follow_link"
	ActionClearScroll          ActionType = "clear_scroll"
)

// Action is a user action. Only the fields used by its Type are read.
type Action struct {
	Type       ActionType `json:"type"`
	Tab        Tab        `json:"tab,omitempty"`
	Query      string     `json:"query,omitempty"`
	Tag        string     `json:"tag,omitempty"`
	DocumentID string     `json:"documentId,omitempty"`
	HeadingID  string     `json:"headingId,omitempty"`
	Enabled    bool       `json:"enabled,omitempty"`
	Href       string     `json:"href,omitempty"`
}

// Reduce applies a to s and returns the new state. s is not modified.
// Returns EINVALID for malformed actions and ENOTFOUND for unknown documents.
func Reduce(s BrowserState, a Action, c *Catalog) (BrowserState, error) {
	s = s.clone()

	switch a.Type {
	case ActionChangeTab:
		if !a.Tab.valid() {
			return s, Errorf(EINVALID, "unknown tab %q", a.Tab)
		}
		if a.Tab != TabFilters {
			s.SelectedTags = nil
			s.ToggledDocID = ""
		}
		s.ShowDocWhileFiltering = false
		s.Tab = a.Tab
		s.ActiveFilterType = ""

	case ActionSearch:
		s.SearchQuery = a.Query

	case ActionToggleTag:
		if strings.TrimSpace(a.Tag) == "" {
			return s, Errorf(EINVALID, "tag required")
		}
		s.ShowDocWhileFiltering = false
		s.SelectedTags = ToggleTag(s.SelectedTags, a.Tag)

	case ActionSelectDocument:
		return selectDocument(s, a.DocumentID, a.HeadingID, c)

	case ActionFollowLink:
		id, ok := ResolveLink(a.Href)
		if !ok {
			return s, Errorf(EINVALID, "not a document link: %q", a.Href)
		}
		return selectDocument(s, id, "", c)

	case ActionSelectFilterDocument:
		doc := c.Find(a.DocumentID)
		if doc == nil {
			return s, Errorf(ENOTFOUND, "document %q not found", a.DocumentID)
		}
		s.ActiveDocID = doc.ID
		s.ToggledDocID = toggledAfterSelect(s.ToggledDocID, doc)
		s.ActiveFilterType = a.Tag
		s.ShowDocWhileFiltering = true

	case ActionToggleTopic:
		s.OpenTopics = toggleID(s.OpenTopics, a.DocumentID)

	case ActionToggleFilterType:
		s.OpenFilterTypes = toggleID(s.OpenFilterTypes, a.Tag)

	case ActionSetIncludeSections:
		s.IncludeSections = a.Enabled

	case ActionReturnToFilters:
		s.ShowDocWhileFiltering = false
		s.ActiveFilterType = ""
		s.ToggledDocID = ""

	case ActionClearScroll:
		s.ScrollTo = ""

	default:
		return s, Errorf(EINVALID, "unknown action %q", a.Type)
	}
	return s, nil
}

func selectDocument(s BrowserState, id, headingID string, c *Catalog) (BrowserState, error) {
	doc := c.Find(id)
	if doc == nil {
		return s, Errorf(ENOTFOUND, "document %q not found", id)
	}

	filtering := s.Tab == TabFilters
	if filtering {
		s.ShowDocWhileFiltering = true
	} else {
		s.ShowDocWhileFiltering = false
		s.SelectedTags = nil
		if c.IsPrompt(doc.ID) {
			s.Tab = TabPrompts
		} else {
			s.Tab = TabTopics
		}
	}

	s.SearchQuery = ""
	s.ActiveDocID = doc.ID
	if headingID != "" {
		s.ScrollTo = headingID
	}
	if !filtering {
		s.ToggledDocID = toggledAfterSelect(s.ToggledDocID, doc)
	}
	return s, nil
}

// toggledAfterSelect returns the document whose heading sub-menu is open
// after doc is selected: selecting the open document closes it.
func toggledAfterSelect(toggled string, doc *Document) string {
	if doc.ID == toggled {
		return ""
	}
	if len(doc.Headings) >= MinHeadings {
		return doc.ID
	}
	return ""
}

func toggleID(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return append(ids, id)
}

func (s BrowserState) clone() BrowserState {
	s.SelectedTags = slices.Clone(s.SelectedTags)
	s.OpenTopics = slices.Clone(s.OpenTopics)
	s.OpenFilterTypes = slices.Clone(s.OpenFilterTypes)
	return s
}

// Panel is the main content area shown for a state.
type Panel string

// Panel constants.
const (
	PanelSearch   Panel = "search"
	PanelDocument Panel = "document"
	PanelFiltered Panel = "filtered"
)

// View is what the browser displays for a state.
type View struct {
	Panel      Panel    `json:"panel"`
	Breadcrumb []string `json:"breadcrumb"`
}

// ViewOf derives the displayed panel and breadcrumb from s.
func ViewOf(s BrowserState, c *Catalog) View {
	var v View
	switch {
	case s.SearchQuery != "":
		v.Panel = PanelSearch
	case s.ShowDocWhileFiltering:
		v.Panel = PanelDocument
	case s.Tab == TabFilters || len(s.SelectedTags) > 0:
		v.Panel = PanelFiltered
	default:
		v.Panel = PanelDocument
	}

	v.Breadcrumb = []string{tabLabel(s.Tab)}
	doc := c.Find(s.ActiveDocID)
	if doc == nil {
		return v
	}
	if s.Tab == TabFilters && s.ShowDocWhileFiltering {
		typeTag := s.ActiveFilterType
		if typeTag == "" {
			for _, tag := range doc.Tags {
				if IsTypeTag(tag) {
					typeTag = tag
					break
				}
			}
		}
		if label := TypeLabel(typeTag); label != "" {
			v.Breadcrumb = append(v.Breadcrumb, label)
		}
		v.Breadcrumb = append(v.Breadcrumb, doc.Title)
	} else if s.Tab != TabFilters {
		v.Breadcrumb = append(v.Breadcrumb, doc.Title)
	}
	return v
}

func tabLabel(t Tab) string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}
