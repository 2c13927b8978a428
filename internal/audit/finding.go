// Package audit scans rendered tutorial text for dated claims. A hard-coded
// absolute date cannot self-refresh, so every literal date claim is treated
// as inherently decaying and classified by age; hinted claims without a
// parseable date are flagged as unparseable rather than silently dropped.
package audit

// Severity classifies a dated claim by age at audit time.
type Severity string

const (
	SeverityFresh       Severity = "fresh"
	SeverityAging       Severity = "aging"
	SeverityStale       Severity = "stale"
	SeverityUnparseable Severity = "unparseable"
)

// Finding is one dated claim located in the corpus.
type Finding struct {
	File       string   `json:"file"`
	LineNumber int      `json:"line_number"`
	ClaimText  string   `json:"claim_text"`
	ParsedDate string   `json:"parsed_date,omitempty"` // ISO date, empty when unparseable
	AgeDays    *int     `json:"age_days,omitempty"`    // nil when unparseable
	Severity   Severity `json:"severity"`
}

// Report is the flat JSON output of one audit pass.
type Report struct {
	Kind            string           `json:"kind"`
	FreshMaxAgeDays int              `json:"fresh_max_age_days"`
	StaleAfterDays  int              `json:"stale_after_days"`
	Targets         []string         `json:"targets"`
	SeverityCounts  map[Severity]int `json:"severity_counts"`
	FindingCount    int              `json:"finding_count"`
	Findings        []Finding        `json:"findings"`
}

// HasStale reports whether any finding gates CI.
func (r Report) HasStale() bool {
	return r.SeverityCounts[SeverityStale] > 0
}
