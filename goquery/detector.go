package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docindex"
)

// Ensure Detector implements docindex.FrameworkDetector at compile time.
var _ docindex.FrameworkDetector = (*Detector)(nil)

// marker associates structural selectors with the framework that renders
// them. Any one matching selector identifies the framework.
type marker struct {
	framework docindex.Framework
	selectors []string
}

// markers are checked in order. VitePress precedes VuePress since it reuses
// some VuePress markup.
var markers = []marker{
	{docindex.FrameworkDocusaurus, []string{
		"#__docusaurus_skipToContent_fallback",
		".theme-doc-sidebar-container",
		"html[data-rh][data-theme]",
	}},
	{docindex.FrameworkMkDocs, []string{
		"[data-md-color-scheme]",
		"[data-md-component]",
		".md-nav--primary",
	}},
	{docindex.FrameworkSphinx, []string{
		".toctree-wrapper",
		".wy-nav-side",
		".wy-menu-vertical",
		".sphinxsidebar",
	}},
	{docindex.FrameworkVitePress, []string{
		"#VPContent",
		".VPDoc",
		".vp-doc",
	}},
	{docindex.FrameworkVuePress, []string{
		".theme-default-content",
		".sidebar-links",
	}},
	{docindex.FrameworkGitBook, []string{
		"[data-testid='space.sidebar']",
		"[data-testid='page.desktopTableOfContents']",
	}},
	{docindex.FrameworkNextra, []string{
		".nextra-navbar",
		".nextra-sidebar",
		".nextra-toc",
	}},
}

// generators maps a substring of the lowercased <meta name="generator">
// value to its framework.
var generators = []struct {
	needle    string
	framework docindex.Framework
}{
	{"sphinx", docindex.FrameworkSphinx},
	{"gitbook", docindex.FrameworkGitBook},
	{"docusaurus", docindex.FrameworkDocusaurus},
	{"mkdocs", docindex.FrameworkMkDocs},
	{"vitepress", docindex.FrameworkVitePress},
	{"vuepress", docindex.FrameworkVuePress},
	{"nextra", docindex.FrameworkNextra},
}

// Detector identifies documentation frameworks from HTML content so that a
// matching selector preset can be chosen.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) docindex.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docindex.FrameworkUnknown
	}

	// The generator tag is the most reliable signal when present.
	if generator, ok := doc.Find("meta[name='generator']").Last().Attr("content"); ok {
		generator = strings.ToLower(generator)
		for _, g := range generators {
			if strings.Contains(generator, g.needle) {
				return g.framework
			}
		}
	}

	for _, m := range markers {
		for _, sel := range m.selectors {
			if doc.Find(sel).Length() > 0 {
				return m.framework
			}
		}
	}

	return docindex.FrameworkUnknown
}
