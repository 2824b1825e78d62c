package goquery

import (
	"io"
	"maps"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/dlclark/regexp2"
	"github.com/fwojciec/docindex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Ensure Processor implements docindex.Processor at compile time.
var _ docindex.Processor = (*Processor)(nil)

// Processor splits HTML pages into a whole-page document and section
// documents using compiled CSS selectors. It is immutable after
// construction and safe for concurrent use.
type Processor struct {
	cfg          docindex.Config
	content      []cascadia.Selector
	sections     []cascadia.Selector
	ignore       []cascadia.Selector
	titleCleanup *regexp2.Regexp
}

// titleMatchTimeout bounds a single title cleanup match.
const titleMatchTimeout = time.Second

// NewProcessor compiles the selectors and title pattern of cfg.
// Unset selector lists fall back to the defaults of docindex.Config.
// Returns EINVALID if a selector or the title pattern does not compile.
func NewProcessor(cfg docindex.Config) (*Processor, error) {
	cfg = cfg.WithDefaults()
	cfg.ContentScoring = maps.Clone(cfg.ContentScoring)

	p := &Processor{cfg: cfg}

	var err error
	if p.content, err = compileSelectors(cfg.ContentSelectors); err != nil {
		return nil, err
	}
	if p.sections, err = compileSelectors(cfg.ContentSections); err != nil {
		return nil, err
	}
	if p.ignore, err = compileSelectors(cfg.Ignore); err != nil {
		return nil, err
	}

	if cfg.TitleCleanupRegex != "" {
		re, err := regexp2.Compile(cfg.TitleCleanupRegex, regexp2.None)
		if err != nil {
			return nil, docindex.Errorf(docindex.EINVALID, "invalid title cleanup regex: %v", err)
		}
		// Group 0 is the whole match.
		if len(re.GetGroupNumbers()) < 2 {
			return nil, docindex.Errorf(docindex.EINVALID, "title cleanup regex %q has no capture group", cfg.TitleCleanupRegex)
		}
		re.MatchTimeout = titleMatchTimeout
		p.titleCleanup = re
	}

	return p, nil
}

func compileSelectors(selectors []string) ([]cascadia.Selector, error) {
	compiled := make([]cascadia.Selector, 0, len(selectors))
	for _, s := range selectors {
		sel, err := cascadia.Compile(s)
		if err != nil {
			return nil, docindex.Errorf(docindex.EINVALID, "invalid selector %q: %v", s, err)
		}
		compiled = append(compiled, sel)
	}
	return compiled, nil
}

// Config returns the effective configuration, defaults applied.
func (p *Processor) Config() docindex.Config {
	cfg := p.cfg
	cfg.ContentScoring = maps.Clone(p.cfg.ContentScoring)
	return cfg
}

// ProcessDocument decodes r to UTF-8, sniffing the charset from a BOM or
// <meta> declaration, parses it as HTML5 and returns its documents.
func (p *Processor) ProcessDocument(r io.Reader, path string) ([]*docindex.Document, error) {
	decoded, err := charset.NewReader(r, "")
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "failed to decode HTML: %v", err)
	}
	root, err := html.Parse(decoded)
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "failed to parse HTML: %v", err)
	}
	return p.ProcessTree(root, path)
}

// ProcessString parses already decoded markup and returns its documents.
func (p *Processor) ProcessString(markup string, path string) ([]*docindex.Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "failed to parse HTML: %v", err)
	}
	return p.ProcessTree(root, path)
}

// ProcessTree returns the whole-page document for root followed by one
// document per qualifying section, in selector order and then document
// order. root is either a document node or the <html> element; selectors
// may match root itself.
// Returns EMALFORMED if the tree has no <head>.
func (p *Processor) ProcessTree(root *html.Node, path string) ([]*docindex.Document, error) {
	head := childElement(documentElement(root), "head")
	if head == nil {
		return nil, docindex.Errorf(docindex.EMALFORMED, "document does not parse correctly")
	}

	doc := goquery.NewDocumentFromNode(root)
	priority := p.cfg.Priority(path)

	var buf strings.Builder
	for _, sel := range p.content {
		for _, n := range selectAll(doc, sel).Nodes {
			p.writeContent(&buf, n)
		}
	}

	docs := []*docindex.Document{{
		Path:     path,
		Title:    p.title(head),
		Text:     strings.TrimRightFunc(buf.String(), unicode.IsSpace),
		Priority: priority,
	}}

	for _, sel := range p.sections {
		selectAll(doc, sel).Each(func(_ int, s *goquery.Selection) {
			id, _ := s.Attr("id")
			// Skip sections the path is already scoped to.
			if id == "" || strings.Contains(path, id) {
				return
			}
			title := sectionTitle(id)
			docs = append(docs, &docindex.Document{
				Path:     path + "#" + id,
				Title:    &title,
				Text:     p.ContentText(s.Get(0)),
				Priority: priority + 1,
			})
		})
	}

	return docs, nil
}

// title returns the direct text of the <title> child of head, cleaned up by
// the configured pattern. Returns nil when head has no <title>.
func (p *Processor) title(head *html.Node) *string {
	t := childElement(head, "title")
	if t == nil {
		return nil
	}

	text := directText(t)
	if p.titleCleanup != nil {
		// A match error is a timeout; the title is kept as is.
		if m, err := p.titleCleanup.FindStringMatch(text); err == nil && m != nil {
			text = m.GroupByNumber(1).String()
		}
	}
	return &text
}

// selectAll returns the nodes matching sel among the root of doc and its
// descendants, in document order.
func selectAll(doc *goquery.Document, sel cascadia.Selector) *goquery.Selection {
	return doc.FilterMatcher(sel).AddSelection(doc.FindMatcher(sel))
}

// IsIgnored reports whether n itself matches one of the ignore selectors.
// Ancestors are not considered.
func (p *Processor) IsIgnored(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, sel := range p.ignore {
		if sel.Match(n) {
			return true
		}
	}
	return false
}
