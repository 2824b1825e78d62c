package docindex

import "io"

// Processor turns HTML pages into documents.
type Processor interface {
	// ProcessDocument parses markup from r and returns the whole-page
	// document followed by its section documents.
	// Returns EMALFORMED if the page has no <head>.
	ProcessDocument(r io.Reader, path string) ([]*Document, error)
}
