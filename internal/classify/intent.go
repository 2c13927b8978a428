package classify

import (
	"strings"

	"github.com/johnxie/doccatalog/internal/config"
)

// Intents returns the intent tags for a record. Intents are non-exclusive:
// every matching rule applies (union), then the cluster-implied intent, then
// the fallback when nothing matched. Order follows rule declaration order and
// is capped at tax.MaxIntents, keeping output deterministic.
func Intents(tax config.Taxonomy, text string, clusterID string) []string {
	text = strings.ToLower(text)

	intents := make([]string, 0, tax.MaxIntents)
	for _, rule := range tax.IntentRules {
		for _, term := range rule.Terms {
			if strings.Contains(text, term) {
				intents = append(intents, rule.Tag)
				break
			}
		}
	}

	if implied, ok := tax.ClusterIntents[clusterID]; ok {
		intents = appendUnique(intents, implied)
	}
	if len(intents) == 0 {
		intents = append(intents, tax.FallbackIntent)
	}
	if len(intents) > tax.MaxIntents {
		intents = intents[:tax.MaxIntents]
	}
	return intents
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
