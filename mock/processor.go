package mock

import (
	"context"
	"io"

	"github.com/fwojciec/docindex"
)

// Compile-time interface verification.
var (
	_ docindex.Processor         = (*Processor)(nil)
	_ docindex.DocumentWriter    = (*DocumentWriter)(nil)
	_ docindex.FrameworkDetector = (*FrameworkDetector)(nil)
)

// Processor is a mock implementation of docindex.Processor.
type Processor struct {
	ProcessDocumentFn func(r io.Reader, path string) ([]*docindex.Document, error)
}

func (p *Processor) ProcessDocument(r io.Reader, path string) ([]*docindex.Document, error) {
	return p.ProcessDocumentFn(r, path)
}

// DocumentWriter is a mock implementation of docindex.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentsFn func(ctx context.Context, docs []*docindex.Document) error
}

func (w *DocumentWriter) WriteDocuments(ctx context.Context, docs []*docindex.Document) error {
	return w.WriteDocumentsFn(ctx, docs)
}

// FrameworkDetector is a mock implementation of docindex.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) docindex.Framework
}

func (d *FrameworkDetector) Detect(html string) docindex.Framework {
	return d.DetectFn(html)
}
