// Package markdown provides Goldmark-based analysis helpers over tutorial
// bodies (frontmatter already removed). This is an analysis API; it never
// re-renders Markdown.
package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Parse parses a Markdown body into a Goldmark AST.
func Parse(body []byte) gmast.Node {
	md := goldmark.New()
	return md.Parser().Parse(text.NewReader(body))
}

// FirstHeading returns the plain text of the first level-1 heading, or "".
func FirstHeading(body []byte) string {
	root := Parse(body)
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			return nodeText(h, body)
		}
	}
	return ""
}

// FirstQuote returns the plain text of the first top-level blockquote, or "".
func FirstQuote(body []byte) string {
	root := Parse(body)
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if q, ok := n.(*gmast.Blockquote); ok {
			return nodeText(q, body)
		}
	}
	return ""
}

// FirstParagraph returns the plain text of the first top-level paragraph.
//
// Headings, blockquotes, lists, tables, code fences and HTML blocks are not
// paragraphs in the AST, so they are skipped for free. Paragraphs whose text
// collapses to nothing (image-only lines) are skipped too.
func FirstParagraph(body []byte) string {
	root := Parse(body)
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		p, ok := n.(*gmast.Paragraph)
		if !ok {
			continue
		}
		if txt := nodeText(p, body); txt != "" {
			return txt
		}
	}
	return ""
}

// nodeText extracts plain text from a node subtree: link text survives, image
// alt text and raw HTML do not, code span contents survive without backticks.
func nodeText(root gmast.Node, source []byte) string {
	var b strings.Builder
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Image:
			return gmast.WalkSkipChildren, nil
		case *gmast.RawHTML, *gmast.HTMLBlock:
			return gmast.WalkSkipChildren, nil
		case *gmast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(node.Value)
		}
		return gmast.WalkContinue, nil
	})
	return NormalizeWhitespace(b.String())
}

// NormalizeWhitespace collapses runs of whitespace to single spaces and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
