package docindex

import "strings"

// DefaultSelector is used for content and section selection when no
// selectors are configured.
const DefaultSelector = "body"

// DefaultIgnores returns the ignore selectors applied when a Config names
// none and NoDefaultIgnores is unset.
func DefaultIgnores() []string {
	return []string{"script", "noscript", "style", ".nocontent"}
}

// Config describes how pages are split into documents. It is built once and
// shared read-only across processing calls.
type Config struct {
	// TitleCleanupRegex is searched against the page title. When it matches,
	// its first capture group becomes the title.
	TitleCleanupRegex string `json:"titleCleanupRegex,omitempty"`

	// ContentSelectors select the containers whose text forms the
	// whole-page document, in declared order.
	ContentSelectors []string `json:"contentSelectors,omitempty"`

	// ContentSections select sub-trees emitted as separate documents.
	ContentSections []string `json:"contentSections,omitempty"`

	// ContentScoring maps a top-level path segment to a priority.
	ContentScoring map[string]int `json:"contentScoring,omitempty"`

	// Ignore selects nodes whose text is excluded from extraction.
	Ignore []string `json:"ignore,omitempty"`

	// NoDefaultIgnores disables DefaultIgnores when Ignore is empty.
	NoDefaultIgnores bool `json:"noDefaultIgnores,omitempty"`
}

// WithDefaults returns a copy of c with unset selector lists replaced by
// their defaults.
func (c Config) WithDefaults() Config {
	if len(c.ContentSelectors) == 0 {
		c.ContentSelectors = []string{DefaultSelector}
	}
	if len(c.ContentSections) == 0 {
		c.ContentSections = []string{DefaultSelector}
	}
	if len(c.Ignore) == 0 && !c.NoDefaultIgnores {
		c.Ignore = DefaultIgnores()
	}
	return c
}

// Priority returns the priority for a page path: the score of its first
// "/"-separated segment, or 0 when the segment is not scored.
func (c Config) Priority(path string) int {
	segment, _, _ := strings.Cut(path, "/")
	if segment == "" {
		return 0
	}
	return c.ContentScoring[segment]
}
