package devdocs

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Type tags denote a document's genre. They drive the "Types" facet and are
// excluded from the subject facet.
const (
	TypeGetStarted = "get-started"
	TypeHowTo      = "how-to"
	TypeReference  = "reference"
	TypeConcept    = "concept"
	TypeOther      = "other"
)

// TypeFilter is a type tag together with its display label.
type TypeFilter struct {
	Label string `json:"label"`
	Tag   string `json:"tag"`
}

// TypeFilters lists the closed set of type tags in display order.
var TypeFilters = []TypeFilter{
	{Label: "Get Started", Tag: TypeGetStarted},
	{Label: "How to", Tag: TypeHowTo},
	{Label: "Reference", Tag: TypeReference},
	{Label: "Concept", Tag: TypeConcept},
	{Label: "Other", Tag: TypeOther},
}

// CanonicalTag returns the form used whenever tags are compared or indexed.
func CanonicalTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// IsTypeTag reports whether tag is one of the type tags.
func IsTypeTag(tag string) bool {
	c := CanonicalTag(tag)
	for _, f := range TypeFilters {
		if f.Tag == c {
			return true
		}
	}
	return false
}

// TypeLabel returns the display label of a type tag, or "" when tag is not
// a type tag.
func TypeLabel(tag string) string {
	c := CanonicalTag(tag)
	for _, f := range TypeFilters {
		if f.Tag == c {
			return f.Label
		}
	}
	return ""
}

// TagLabel returns the display form of a subject tag ("error-handling" →
// "error handling").
func TagLabel(tag string) string {
	return strings.ReplaceAll(tag, "-", " ")
}

// PartitionTags splits a selection into type tags and subject tags,
// preserving selection order.
func PartitionTags(selected []string) (typeTags, subjectTags []string) {
	for _, tag := range selected {
		if IsTypeTag(tag) {
			typeTags = append(typeTags, tag)
		} else {
			subjectTags = append(subjectTags, tag)
		}
	}
	return typeTags, subjectTags
}

// SortTags sorts tags in place using a locale-aware, case-insensitive
// collation. Ties fall back to byte order so the result is deterministic.
func SortTags(tags []string) {
	c := collate.New(language.Und, collate.IgnoreCase)
	slices.SortStableFunc(tags, func(a, b string) int {
		if n := c.CompareString(a, b); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
}

// UniqueTags returns tags without case-insensitive duplicates, keeping the
// first spelling seen. Blank tags are dropped.
func UniqueTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		c := CanonicalTag(tag)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, strings.TrimSpace(tag))
	}
	return out
}

// ToggleTag adds tag to selected if absent, or removes it otherwise.
// Returns a new slice.
func ToggleTag(selected []string, tag string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, t := range selected {
		if CanonicalTag(t) == CanonicalTag(tag) {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		out = append(out, tag)
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	c := CanonicalTag(tag)
	for _, t := range tags {
		if CanonicalTag(t) == c {
			return true
		}
	}
	return false
}

// intersects reports whether any tag of a is in b.
func intersects(a, b []string) bool {
	for _, tag := range a {
		if containsTag(b, tag) {
			return true
		}
	}
	return false
}
