package catalog

import (
	"regexp"
	"strings"

	"github.com/johnxie/doccatalog/internal/config"
	"github.com/johnxie/doccatalog/internal/util/sets"
)

var tokenRE = regexp.MustCompile(`[a-z0-9]+`)

// extractKeywords tokenizes slug+title+summary into a compact, deterministic
// keyword list: lowercased, short/numeric/stopword/noise tokens removed,
// first occurrence order preserved, capped at tax.MaxKeywords.
func extractKeywords(tax config.Taxonomy, slug, title, summary string) []string {
	blob := strings.ToLower(slug + " " + title + " " + summary)
	tokens := tokenRE.FindAllString(blob, -1)

	stop := sets.New(tax.Stopwords...)
	noise := sets.New(tax.NoiseTokens...)
	seen := sets.New[string]()

	keywords := make([]string, 0, tax.MaxKeywords)
	for _, t := range tokens {
		if len(t) < 3 {
			continue
		}
		if isDigits(t) {
			continue
		}
		if stop.Has(t) || noise.Has(t) {
			continue
		}
		if strings.HasPrefix(t, "http") || strings.HasPrefix(t, "www") {
			continue
		}
		if seen.Has(t) {
			continue
		}
		seen.Add(t)
		keywords = append(keywords, t)
		if len(keywords) == tax.MaxKeywords {
			break
		}
	}
	return keywords
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
