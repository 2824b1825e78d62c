package docindex

import "context"

// Document is a single indexable text record produced from an HTML page.
// A page yields one whole-page Document followed by one Document per
// section, whose Path carries a "#id" suffix.
type Document struct {
	Path     string  `json:"path"`
	Title    *string `json:"title"`
	Text     string  `json:"text"`
	Priority int     `json:"priority"`
}

// TitleString returns the title, or an empty string when it is absent.
func (d *Document) TitleString() string {
	if d.Title == nil {
		return ""
	}
	return *d.Title
}

// DocumentWriter hands processed documents to a downstream indexer.
type DocumentWriter interface {
	WriteDocuments(ctx context.Context, docs []*Document) error
}
