package docindex

// IndexProgress reports progress while a content tree is indexed.
type IndexProgress struct {
	Path      string
	Documents int
	Completed int
	Total     int
	Error     error
}

// IndexProgressFunc is called as each page of a content tree is processed.
type IndexProgressFunc func(IndexProgress)

// IndexResult summarizes an indexing run over a content tree.
type IndexResult struct {
	Files     int
	Documents int
	Failed    int
}
