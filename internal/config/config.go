// Package config defines the pipeline configuration: site identity, output
// paths, audit thresholds, and the classification taxonomy.
//
// The taxonomy is an explicit immutable value passed into each stage rather
// than module-level state, so the pipeline can be unit-tested with alternate
// taxonomies.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for all doccatalog commands.
type Config struct {
	Site     SiteConfig   `yaml:"site"`
	Output   OutputConfig `yaml:"output"`
	Audit    AuditConfig  `yaml:"audit"`
	Taxonomy Taxonomy     `yaml:"taxonomy"`
}

// SiteConfig identifies the catalog being indexed; emitted artifacts link
// back into this repository.
type SiteConfig struct {
	Project     string `yaml:"project"`
	Description string `yaml:"description"`
	RepoURL     string `yaml:"repo_url"`
	Branch      string `yaml:"branch"`
}

// TreeURL returns the browse URL for a path inside the catalog repository.
func (s SiteConfig) TreeURL(relPath string) string {
	return fmt.Sprintf("%s/tree/%s/%s", s.RepoURL, s.Branch, relPath)
}

// BlobURL returns the file URL for a path inside the catalog repository.
func (s SiteConfig) BlobURL(relPath string) string {
	return fmt.Sprintf("%s/blob/%s/%s", s.RepoURL, s.Branch, relPath)
}

// OutputConfig holds artifact paths relative to the corpus root.
type OutputConfig struct {
	IndexJSON     string `yaml:"index_json"`
	DirectoryMD   string `yaml:"directory_md"`
	IntentMapMD   string `yaml:"intent_map_md"`
	QueryHubMD    string `yaml:"query_hub_md"`
	QueryCoverage string `yaml:"query_coverage_json"`
	ItemListJSON  string `yaml:"itemlist_json"`
	LLMs          string `yaml:"llms_txt"`
	LLMsFull      string `yaml:"llms_full_txt"`
	RunManifest   string `yaml:"run_manifest_json"`
}

// AuditConfig holds dated-claim audit thresholds and scan targets.
type AuditConfig struct {
	// FreshMaxAgeDays is the inclusive upper bound for "fresh" findings.
	FreshMaxAgeDays int `yaml:"fresh_max_age_days"`
	// StaleAfterDays is the exclusive lower bound for "stale" findings;
	// ages in between classify as "aging".
	StaleAfterDays int `yaml:"stale_after_days"`

	StalenessTargets    []string `yaml:"staleness_targets"`
	ReleaseClaimTargets []string `yaml:"release_claim_targets"`
	FreshnessHints      []string `yaml:"freshness_hints"`
	ReleaseClaimHints   []string `yaml:"release_claim_hints"`
}

// Load reads a YAML config file over compiled defaults. An empty path, or a
// path that does not exist, yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run deterministically on.
func (c Config) Validate() error {
	if c.Site.RepoURL == "" {
		return fmt.Errorf("site.repo_url is required")
	}
	if c.Audit.FreshMaxAgeDays < 0 || c.Audit.StaleAfterDays <= c.Audit.FreshMaxAgeDays {
		return fmt.Errorf("audit thresholds must satisfy 0 <= fresh_max_age_days < stale_after_days")
	}
	return c.Taxonomy.Validate()
}
