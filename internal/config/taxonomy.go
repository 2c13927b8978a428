package config

import "fmt"

// ClusterRule maps match terms to a topical cluster. Rules are evaluated in
// slice order and the first rule with any matching term wins; ordering is the
// deterministic tie-break for records that would satisfy several rules.
type ClusterRule struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Terms []string `yaml:"terms"`
}

// IntentRule maps match terms to a non-exclusive intent tag. All matching
// rules apply; there is no precedence between intents.
type IntentRule struct {
	Tag   string   `yaml:"tag"`
	Terms []string `yaml:"terms"`
}

// QueryHub is a curated, cluster-independent grouping of tutorials under a
// high-intent search query family.
type QueryHub struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Cluster       string   `yaml:"cluster"`
	Intents       []string `yaml:"intents"`
	MustHaveTerms []string `yaml:"must_have_terms"`
	PreferSlugs   []string `yaml:"prefer_slugs"`
	Queries       []string `yaml:"queries"`
	Why           string   `yaml:"why"`
	Limit         int      `yaml:"limit"`
}

// Taxonomy is the full classification configuration. Treat values as
// immutable once loaded; stages receive the taxonomy by value.
type Taxonomy struct {
	Stopwords    []string `yaml:"stopwords"`
	NoiseTokens  []string `yaml:"noise_tokens"`
	SummaryNoise []string `yaml:"summary_noise"`

	ClusterRules    []ClusterRule `yaml:"cluster_rules"`
	FallbackCluster ClusterRule   `yaml:"fallback_cluster"`

	IntentRules    []IntentRule      `yaml:"intent_rules"`
	ClusterIntents map[string]string `yaml:"cluster_intents"`
	FallbackIntent string            `yaml:"fallback_intent"`

	QueryHubs []QueryHub `yaml:"query_hubs"`

	MaxKeywords   int `yaml:"max_keywords"`
	MaxIntents    int `yaml:"max_intents"`
	SummaryMaxLen int `yaml:"summary_max_len"`
}

// Validate checks structural invariants: a guaranteed-match fallback cluster,
// unique cluster ids, and hubs that reference known clusters.
func (t Taxonomy) Validate() error {
	if t.FallbackCluster.ID == "" {
		return fmt.Errorf("taxonomy.fallback_cluster.id is required")
	}
	if len(t.FallbackCluster.Terms) != 0 {
		return fmt.Errorf("taxonomy.fallback_cluster must be term-free (it matches everything)")
	}

	known := map[string]bool{t.FallbackCluster.ID: true}
	for _, rule := range t.ClusterRules {
		if rule.ID == "" {
			return fmt.Errorf("taxonomy.cluster_rules entry with empty id")
		}
		if len(rule.Terms) == 0 {
			return fmt.Errorf("taxonomy cluster rule %q has no terms", rule.ID)
		}
		if known[rule.ID] {
			return fmt.Errorf("taxonomy cluster rule %q is duplicated", rule.ID)
		}
		known[rule.ID] = true
	}

	for _, hub := range t.QueryHubs {
		if hub.ID == "" || hub.Cluster == "" {
			return fmt.Errorf("query hub %q needs id and cluster", hub.ID)
		}
		if !known[hub.Cluster] {
			return fmt.Errorf("query hub %q references unknown cluster %q", hub.ID, hub.Cluster)
		}
	}

	if t.MaxKeywords <= 0 || t.MaxIntents <= 0 || t.SummaryMaxLen <= 0 {
		return fmt.Errorf("taxonomy caps must be positive")
	}
	return nil
}

// ClusterName returns the display name for a cluster id, falling back to the
// id itself for unnamed clusters.
func (t Taxonomy) ClusterName(id string) string {
	if id == t.FallbackCluster.ID && t.FallbackCluster.Name != "" {
		return t.FallbackCluster.Name
	}
	for _, rule := range t.ClusterRules {
		if rule.ID == id && rule.Name != "" {
			return rule.Name
		}
	}
	return id
}
