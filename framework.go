package docindex

import (
	"slices"
	"sort"
)

// Framework identifies the documentation generator that rendered a page.
type Framework string

// Recognized documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// FrameworkDetector identifies documentation frameworks from HTML.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}

// presets holds the selectors that locate content in pages rendered by each
// framework. Only Sphinx wraps sections in identifiable containers; the
// others keep the default section selector. Entries are never modified;
// Preset returns copies.
var presets = map[Framework]Config{
	FrameworkDocusaurus: {
		ContentSelectors: []string{"article .markdown"},
		Ignore:           []string{"script", "noscript", "style", ".nocontent", ".hash-link"},
	},
	FrameworkMkDocs: {
		ContentSelectors: []string{"article.md-content__inner"},
		Ignore:           []string{"script", "noscript", "style", ".nocontent", ".headerlink"},
	},
	FrameworkSphinx: {
		ContentSelectors: []string{"div[role=main]"},
		ContentSections:  []string{"div[role=main] section[id]", "div[role=main] div.section[id]"},
		Ignore:           []string{"script", "noscript", "style", ".nocontent", ".headerlink"},
	},
	FrameworkVuePress: {
		ContentSelectors: []string{".theme-default-content"},
		Ignore:           []string{"script", "noscript", "style", ".nocontent", ".header-anchor"},
	},
	FrameworkVitePress: {
		ContentSelectors: []string{".vp-doc"},
		Ignore:           []string{"script", "noscript", "style", ".nocontent", ".header-anchor"},
	},
	FrameworkGitBook: {
		ContentSelectors: []string{"main"},
	},
	FrameworkNextra: {
		ContentSelectors: []string{"article"},
		Ignore:           []string{"script", "noscript", "style", ".nocontent", ".subheading-anchor"},
	},
}

// Preset returns the selector configuration for a framework.
// Returns ENOTFOUND if no preset exists for the framework.
func Preset(framework Framework) (Config, error) {
	cfg, ok := presets[framework]
	if !ok {
		return Config{}, Errorf(ENOTFOUND, "no preset for framework %q", framework)
	}
	cfg.ContentSelectors = slices.Clone(cfg.ContentSelectors)
	cfg.ContentSections = slices.Clone(cfg.ContentSections)
	cfg.Ignore = slices.Clone(cfg.Ignore)
	return cfg, nil
}

// PresetFrameworks returns the frameworks with a preset, sorted by name.
func PresetFrameworks() []Framework {
	frameworks := make([]Framework, 0, len(presets))
	for f := range presets {
		frameworks = append(frameworks, f)
	}
	sort.Slice(frameworks, func(i, j int) bool { return frameworks[i] < frameworks[j] })
	return frameworks
}

// Merge returns c with every unset field taken from base. Fields set in c
// always win.
func (c Config) Merge(base Config) Config {
	if c.TitleCleanupRegex == "" {
		c.TitleCleanupRegex = base.TitleCleanupRegex
	}
	if len(c.ContentSelectors) == 0 {
		c.ContentSelectors = slices.Clone(base.ContentSelectors)
	}
	if len(c.ContentSections) == 0 {
		c.ContentSections = slices.Clone(base.ContentSections)
	}
	if len(c.ContentScoring) == 0 {
		c.ContentScoring = base.ContentScoring
	}
	if len(c.Ignore) == 0 && !c.NoDefaultIgnores {
		c.Ignore = slices.Clone(base.Ignore)
	}
	return c
}
