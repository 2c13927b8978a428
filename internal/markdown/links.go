package markdown

import (
	"regexp"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// LinkKind distinguishes link constructs for analysis.
type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindAuto                LinkKind = "auto"
	LinkKindImage               LinkKind = "image"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

// Link is a link-like construct found in a Markdown body.
type Link struct {
	Kind        LinkKind
	Destination string
}

var githubRepoRE = regexp.MustCompile(`^https?://github\.com/([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)`)

// ExtractLinks parses a Markdown body and extracts link-like constructs in
// document order. Links inside code fences never reach the AST, so no
// fence-awareness is needed here.
func ExtractLinks(body []byte) []Link {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			// Goldmark resolves reference-style links to a Link node with a Destination.
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})

	return links
}

// FirstRepoLink returns the first github.com/<org>/<repo> destination in the
// body, normalized to the repository root URL, or "" when no repository link
// is present.
func FirstRepoLink(body []byte) string {
	for _, link := range ExtractLinks(body) {
		m := githubRepoRE.FindStringSubmatch(link.Destination)
		if m == nil {
			continue
		}
		return "https://github.com/" + m[1] + "/" + m[2]
	}
	return ""
}
