package catalog

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/johnxie/doccatalog/internal/config"
	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/markdown"
)

// Extractor turns raw documents into canonical records. Extraction fails
// softly per document: a single missing field degrades to empty/default
// rather than aborting the batch.
type Extractor struct {
	tax   config.Taxonomy
	site  config.SiteConfig
	caser cases.Caser
}

// NewExtractor creates an extractor bound to one taxonomy and site identity.
func NewExtractor(cfg config.Config) *Extractor {
	return &Extractor{
		tax:   cfg.Taxonomy,
		site:  cfg.Site,
		caser: cases.Title(language.English),
	}
}

// Extract derives a TutorialRecord from one raw document. ok is false when no
// usable title could be derived; the caller logs and excludes the record.
func (e *Extractor) Extract(doc RawDocument) (TutorialRecord, bool) {
	title := doc.Fields.Title
	if title == "" {
		title = markdown.FirstHeading(doc.Body)
	}
	if title == "" {
		title = e.slugTitle(doc.Slug)
	}
	if title == "" {
		slog.Warn("Excluding tutorial with no derivable title", logfields.Slug(doc.Slug))
		return TutorialRecord{}, false
	}

	summary := e.summary(doc.Body)
	if summary == "" {
		summary = "Deep technical walkthrough of " + title + "."
	}

	return TutorialRecord{
		Slug:          doc.Slug,
		Title:         title,
		Summary:       summary,
		Path:          doc.Dir,
		IndexPath:     doc.Path,
		RepoURL:       e.site.TreeURL(doc.Dir),
		FileURL:       e.site.BlobURL(doc.Path),
		SourceRepoURL: markdown.FirstRepoLink(doc.Body),
		Keywords:      extractKeywords(e.tax, doc.Slug, title, summary),
		NavOrder:      doc.Fields.NavOrder,
	}, true
}

// summary prefers the first blockquote (the corpus convention for one-line
// abstracts), then the first paragraph, filtering noise lines either way.
func (e *Extractor) summary(body []byte) string {
	if quote := e.cleanSummary(markdown.FirstQuote(body)); quote != "" {
		return quote
	}
	return e.cleanSummary(markdown.FirstParagraph(body))
}

func (e *Extractor) cleanSummary(text string) string {
	text = markdown.NormalizeWhitespace(text)
	if strings.HasPrefix(strings.ToLower(text), "project:") {
		text = strings.TrimSpace(text[len("project:"):])
	}
	text = strings.TrimSpace(strings.TrimRight(text, ":"))
	lowered := strings.ToLower(text)

	if text == "" || strings.HasPrefix(lowered, "http") {
		return ""
	}
	for _, pattern := range e.tax.SummaryNoise {
		if strings.Contains(lowered, pattern) {
			return ""
		}
	}
	return truncateAtWord(text, e.tax.SummaryMaxLen)
}

// slugTitle derives a human title from a directory name, e.g.
// "mcp-inspector-tutorial" -> "Mcp Inspector Tutorial". Unicode-correct
// casing matters for the A-Z directory grouping downstream.
func (e *Extractor) slugTitle(slug string) string {
	words := strings.ReplaceAll(slug, "-", " ")
	return e.caser.String(strings.TrimSpace(words))
}

func truncateAtWord(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	// Back up to a rune boundary so the byte cut cannot split a multi-byte
	// character.
	for maxLen > 0 && !utf8.RuneStart(s[maxLen]) {
		maxLen--
	}
	cut := s[:maxLen]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,;") + "…"
}
