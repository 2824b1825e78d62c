// Package fs indexes content trees of rendered HTML pages stored on disk.
package fs

import (
	"context"
	iofs "io/fs"
	"path"
	"strings"

	"github.com/fwojciec/docindex"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages processed in parallel when
// Indexer.Concurrency is unset.
const DefaultConcurrency = 4

// Indexer processes every HTML page of a content tree and hands the
// resulting documents to a writer. A page's logical path is its
// slash-separated path relative to the tree root.
type Indexer struct {
	Processor   docindex.Processor
	Writer      docindex.DocumentWriter
	Concurrency int
}

type pageResult struct {
	position int
	path     string
	docs     []*docindex.Document
	err      error
}

// Index walks fsys in lexical order and processes every page in parallel.
// Documents are written in walk order regardless of completion order.
// A page that fails to process is reported through progress and counted in
// the result; it does not stop the run. Write errors and context
// cancellation do.
func (ix *Indexer) Index(ctx context.Context, fsys iofs.FS, progress docindex.IndexProgressFunc) (*docindex.IndexResult, error) {
	paths, err := Pages(fsys)
	if err != nil {
		return nil, err
	}

	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, p := range paths {
			i, p := i, p
			g.Go(func() error {
				resultCh <- ix.processPage(gctx, fsys, i, p)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed int
	results := make([]pageResult, len(paths))
	for r := range resultCh {
		completed++
		results[r.position] = r
		if progress != nil {
			progress(docindex.IndexProgress{
				Path:      r.path,
				Documents: len(r.docs),
				Completed: completed,
				Total:     len(paths),
				Error:     r.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &docindex.IndexResult{Files: len(paths)}
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		if err := ix.Writer.WriteDocuments(ctx, r.docs); err != nil {
			return nil, err
		}
		result.Documents += len(r.docs)
	}

	return result, nil
}

func (ix *Indexer) processPage(ctx context.Context, fsys iofs.FS, position int, name string) pageResult {
	result := pageResult{position: position, path: name}
	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	f, err := fsys.Open(name)
	if err != nil {
		result.err = err
		return result
	}
	defer f.Close()

	result.docs, result.err = ix.Processor.ProcessDocument(f, name)
	return result
}

// Pages returns the slash-separated paths of the HTML pages in fsys in
// lexical order.
func Pages(fsys iofs.FS) ([]string, error) {
	var paths []string
	err := iofs.WalkDir(fsys, ".", func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsPage(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// IsPage reports whether name has an HTML file extension.
func IsPage(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}
