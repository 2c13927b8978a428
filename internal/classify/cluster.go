// Package classify assigns topical clusters and intent tags to tutorial
// records using the keyword taxonomy from config. Matching is substring
// based and case-insensitive; no scoring, no ML, so every assignment is
// auditable and reproducible.
package classify

import (
	"strings"

	"github.com/johnxie/doccatalog/internal/config"
)

// AssignCluster returns the id of the first cluster rule with any term
// contained in text, or the fallback cluster when nothing matches. Rule order
// is the deterministic tie-break: a "RAG database" tutorial lands in whichever
// of rag-and-retrieval / data-and-storage comes first in the taxonomy.
//
// Callers pass pre-lowered searchable text (slug, title, summary, keywords).
func AssignCluster(tax config.Taxonomy, text string) string {
	text = strings.ToLower(text)
	for _, rule := range tax.ClusterRules {
		for _, term := range rule.Terms {
			if strings.Contains(text, term) {
				return rule.ID
			}
		}
	}
	return tax.FallbackCluster.ID
}
