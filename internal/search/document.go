package search

import (
	"errors"
	"fmt"
	"strings"
)

// DocumentType classifies a searchable page.
type DocumentType string

const (
	TypeLesson   DocumentType = "Lesson"
	TypeGuide    DocumentType = "Guide"
	TypeResource DocumentType = "Resource"
	TypeConcept  DocumentType = "Concept"
)

// validTypes is the set of recognized document types.
var validTypes = map[DocumentType]bool{
	TypeLesson:   true,
	TypeGuide:    true,
	TypeResource: true,
	TypeConcept:  true,
}

// ErrInvalidDocument is returned by Validate for documents that break the
// index invariants.
var ErrInvalidDocument = errors.New("invalid search document")

// Document is a single entry of the site search index.
type Document struct {
	Title       string       `json:"title"`
	Type        DocumentType `json:"type"`
	URL         string       `json:"url"`
	Keywords    []string     `json:"keywords"`
	Description string       `json:"description"`
}

// Validate checks that title, url and keywords are present and the type is known.
func (d Document) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidDocument)
	}
	if strings.TrimSpace(d.URL) == "" {
		return fmt.Errorf("%w: url is required for %q", ErrInvalidDocument, d.Title)
	}
	if len(d.Keywords) == 0 {
		return fmt.Errorf("%w: %q has no keywords", ErrInvalidDocument, d.Title)
	}
	if !validTypes[d.Type] {
		return fmt.Errorf("%w: %q has unknown type %q", ErrInvalidDocument, d.Title, d.Type)
	}
	return nil
}

// searchText is the case-folded text a query is matched against.
func (d Document) searchText() string {
	return strings.ToLower(d.Title + " " + strings.Join(d.Keywords, " ") + " " + d.Description)
}
