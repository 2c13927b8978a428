package catalog

import (
	"sort"
	"strings"

	"github.com/johnxie/doccatalog/internal/config"
	"github.com/johnxie/doccatalog/internal/util/sets"
)

const defaultHubLimit = 12

// selectHubs computes the recommended record list for every configured query
// hub. Hub membership is many-to-many: a record keeps its single cluster but
// may appear in any number of hubs.
func selectHubs(tax config.Taxonomy, records []TutorialRecord) []HubSelection {
	selections := make([]HubSelection, 0, len(tax.QueryHubs))
	for _, hub := range tax.QueryHubs {
		selections = append(selections, HubSelection{
			ID:      hub.ID,
			Title:   hub.Title,
			Cluster: hub.Cluster,
			Queries: hub.Queries,
			Why:     hub.Why,
			Slugs:   selectHubSlugs(hub, records),
		})
	}
	return selections
}

// selectHubSlugs filters records to the hub's cluster, narrows by must-have
// terms when that leaves anything, ranks by query/intent hits with a stable
// title tie-break, then pins preferred slugs to the front.
func selectHubSlugs(hub config.QueryHub, records []TutorialRecord) []string {
	limit := hub.Limit
	if limit <= 0 {
		limit = defaultHubLimit
	}

	filtered := make([]TutorialRecord, 0)
	for _, r := range records {
		if r.Cluster == hub.Cluster {
			filtered = append(filtered, r)
		}
	}

	if len(hub.MustHaveTerms) > 0 {
		strict := make([]TutorialRecord, 0, len(filtered))
		for _, r := range filtered {
			text := strings.ToLower(r.Title + " " + r.Summary)
			for _, term := range hub.MustHaveTerms {
				if strings.Contains(text, strings.ToLower(term)) {
					strict = append(strict, r)
					break
				}
			}
		}
		if len(strict) > 0 {
			filtered = strict
		}
	}

	ranked := make([]TutorialRecord, len(filtered))
	copy(ranked, filtered)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := hubScore(hub, ranked[i]), hubScore(hub, ranked[j])
		if si != sj {
			return si > sj
		}
		return strings.ToLower(ranked[i].Title) < strings.ToLower(ranked[j].Title)
	})

	bySlug := make(map[string]bool, len(ranked))
	for _, r := range ranked {
		bySlug[r.Slug] = true
	}

	seen := sets.New[string]()
	ordered := make([]string, 0, limit)
	for _, slug := range hub.PreferSlugs {
		if bySlug[slug] && !seen.Has(slug) {
			seen.Add(slug)
			ordered = append(ordered, slug)
		}
	}
	for _, r := range ranked {
		if seen.Has(r.Slug) {
			continue
		}
		seen.Add(r.Slug)
		ordered = append(ordered, r.Slug)
	}

	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}

func hubScore(hub config.QueryHub, r TutorialRecord) int {
	score := 0
	text := strings.ToLower(r.Title + " " + r.Summary)
	for _, q := range hub.Queries {
		if strings.Contains(text, strings.ToLower(q)) {
			score += 2
		}
	}
	intents := sets.New(r.Intents...)
	for _, intent := range hub.Intents {
		if intents.Has(intent) {
			score += 2
		}
	}
	if intents.Has("production-operations") {
		score++
	}
	return score
}
