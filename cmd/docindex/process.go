package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docindex"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	path := c.Path
	if path == "" {
		if c.File == "-" {
			fmt.Fprintln(deps.Stderr, "error: --path is required when reading standard input")
			return docindex.Errorf(docindex.EINVALID, "path required for standard input")
		}
		path = filepath.ToSlash(filepath.Base(c.File))
	}

	data, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s\n", c.File)
		return err
	}

	proc, err := deps.NewProcessor(func() (string, error) { return string(data), nil })
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	docs, err := proc.ProcessDocument(bytes.NewReader(data), path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, errorText(err))
		return err
	}

	return deps.Writer.WriteDocuments(deps.Ctx, docs)
}

func (c *ProcessCmd) read(stdin io.Reader) ([]byte, error) {
	if c.File == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(c.File)
}

// errorText returns the message of application errors and the full text of
// any other error.
func errorText(err error) string {
	if docindex.ErrorCode(err) == docindex.EINTERNAL {
		return err.Error()
	}
	return docindex.ErrorMessage(err)
}
