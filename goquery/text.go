package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentText returns the text of n and its descendants in document order,
// followed by the tail text that trails n. Ignored elements contribute only
// their tail. The result is not trimmed. Returns "" for a nil node.
func (p *Processor) ContentText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf strings.Builder
	p.writeContent(&buf, n)
	return buf.String()
}

// step is a pending unit of the content walk. A tail step emits only the
// tail text of node; otherwise node is entered.
type step struct {
	node *html.Node
	tail bool
}

// writeContent walks the subtree rooted at n with an explicit stack so that
// deeply nested markup cannot exhaust the goroutine stack.
func (p *Processor) writeContent(buf *strings.Builder, n *html.Node) {
	stack := []step{{node: n}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.tail || p.IsIgnored(s.node) {
			buf.WriteString(tailText(s.node))
			continue
		}

		buf.WriteString(directText(s.node))
		stack = append(stack, step{node: s.node, tail: true})
		// Push in reverse so children pop in document order.
		for c := s.node.LastChild; c != nil; c = c.PrevSibling {
			if c.Type == html.ElementNode || c.Type == html.CommentNode {
				stack = append(stack, step{node: c})
			}
		}
	}
}

// directText returns the text an element holds before its first non-text
// child. Comments have no direct text.
func directText(n *html.Node) string {
	if n.Type != html.ElementNode {
		return ""
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil && c.Type == html.TextNode; c = c.NextSibling {
		b.WriteString(c.Data)
	}
	return b.String()
}

// tailText returns the text that follows n up to its next non-text sibling.
func tailText(n *html.Node) string {
	var b strings.Builder
	for c := n.NextSibling; c != nil && c.Type == html.TextNode; c = c.NextSibling {
		b.WriteString(c.Data)
	}
	return b.String()
}

// documentElement returns the root element of a parsed document, or n
// itself when n is already an element.
func documentElement(n *html.Node) *html.Node {
	if n == nil || n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// childElement returns the first direct child element of n named tag.
func childElement(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

// sectionTitle derives a display title from a section id:
// "getting-started" becomes "Getting Started".
func sectionTitle(id string) string {
	// Casers are stateful and must not be shared between goroutines.
	caser := cases.Title(language.Und)
	words := strings.Split(id, "-")
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
