package main

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/fwojciec/docindex"
)

// Ensure JSONLinesWriter implements docindex.DocumentWriter at compile time.
var _ docindex.DocumentWriter = (*JSONLinesWriter)(nil)

// JSONLinesWriter writes each document as one JSON object per line.
type JSONLinesWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONLinesWriter creates a JSONLinesWriter writing to w.
func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLinesWriter{enc: enc}
}

// WriteDocuments encodes docs in order.
func (w *JSONLinesWriter) WriteDocuments(ctx context.Context, docs []*docindex.Document) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.enc.Encode(doc); err != nil {
			return err
		}
	}
	return nil
}

// Ensure TextWriter implements docindex.DocumentWriter at compile time.
var _ docindex.DocumentWriter = (*TextWriter)(nil)

// TextWriter writes documents in the human-readable form of
// docindex.FormatDocuments.
type TextWriter struct {
	mu      sync.Mutex
	w       io.Writer
	written bool
}

// NewTextWriter creates a TextWriter writing to w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteDocuments formats docs, separating batches with a blank line.
func (w *TextWriter) WriteDocuments(ctx context.Context, docs []*docindex.Document) error {
	if len(docs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	sep := ""
	if w.written {
		sep = "\n"
	}
	if _, err := io.WriteString(w.w, sep+docindex.FormatDocuments(docs)+"\n"); err != nil {
		return err
	}
	w.written = true
	return nil
}
