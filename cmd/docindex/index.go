package main

import (
	"fmt"
	iofs "io/fs"
	"os"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	fsys := os.DirFS(c.Dir)

	proc, err := deps.NewProcessor(func() (string, error) { return samplePage(fsys) })
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	ix := &fs.Indexer{
		Processor:   proc,
		Writer:      deps.Writer,
		Concurrency: c.Concurrency,
	}

	result, err := ix.Index(deps.Ctx, fsys, func(p docindex.IndexProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "skipped %s: %s\n", p.Path, errorText(p.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "Indexed %d pages: %d documents, %d failed\n", result.Files, result.Documents, result.Failed)
	return nil
}

// samplePage returns the markup used for framework detection: the root
// index.html when present, otherwise the first page of the tree.
// Returns ENOTFOUND if the tree has no pages.
func samplePage(fsys iofs.FS) (string, error) {
	if data, err := iofs.ReadFile(fsys, "index.html"); err == nil {
		return string(data), nil
	}

	pages, err := fs.Pages(fsys)
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", docindex.Errorf(docindex.ENOTFOUND, "no HTML pages found")
	}

	data, err := iofs.ReadFile(fsys, pages[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
