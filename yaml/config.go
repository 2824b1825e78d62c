// Package yaml reads processor configuration from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/docindex"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the keys of a processor configuration mapping.
type fileConfig struct {
	TitleCleanupRegex string         `yaml:"title_cleanup_regex"`
	ContentSelectors  []string       `yaml:"content_selectors"`
	ContentSections   []string       `yaml:"content_sections"`
	ContentScoring    map[string]int `yaml:"content_scoring"`
	Ignore            []string       `yaml:"ignore"`
	NoDefaultIgnores  bool           `yaml:"no_default_ignores"`
}

// LoadConfig decodes a configuration mapping from r. Missing keys are left
// unset so that the processor defaults apply. An empty document yields an
// empty Config.
// Returns EINVALID if the document is not a valid configuration mapping.
func LoadConfig(r io.Reader) (docindex.Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return docindex.Config{}, docindex.Errorf(docindex.EINVALID, "failed to parse config: %v", err)
	}

	return docindex.Config{
		TitleCleanupRegex: fc.TitleCleanupRegex,
		ContentSelectors:  fc.ContentSelectors,
		ContentSections:   fc.ContentSections,
		ContentScoring:    fc.ContentScoring,
		Ignore:            fc.Ignore,
		NoDefaultIgnores:  fc.NoDefaultIgnores,
	}, nil
}

// ReadConfigFile loads the configuration stored at path.
// Returns ENOTFOUND if the file does not exist.
func ReadConfigFile(path string) (docindex.Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return docindex.Config{}, docindex.Errorf(docindex.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return docindex.Config{}, err
	}
	defer f.Close()

	return LoadConfig(f)
}
