// Package catalog builds the canonical in-memory snapshot of the tutorial
// corpus: one immutable record set per invocation that every emitter reads
// from, so no two artifacts can disagree about what the corpus contains.
package catalog

import (
	"fmt"
	"time"

	cerrors "github.com/johnxie/doccatalog/internal/errors"
)

// TutorialRecord is the canonical extracted form of one tutorial track.
// Immutable for the duration of a run; identity across runs is the slug only.
type TutorialRecord struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Path      string `json:"path"`
	IndexPath string `json:"index_path"`

	// RepoURL/FileURL point into the catalog repository itself;
	// SourceRepoURL points at the upstream project the tutorial covers.
	RepoURL       string `json:"repo_url"`
	FileURL       string `json:"file_url"`
	SourceRepoURL string `json:"source_repo_url,omitempty"`

	Keywords []string `json:"keywords"`
	Cluster  string   `json:"cluster"`
	Intents  []string `json:"intent_signals"`

	NavOrder int `json:"-"`
}

// Cluster is a mutually-exclusive topical bucket with its member slugs in
// emission order.
type Cluster struct {
	ID          string
	DisplayName string
	Members     []string
}

// HubSelection pairs a configured query hub with the slugs selected for it.
// Hub membership is many-to-many and independent of cluster assignment.
type HubSelection struct {
	ID      string
	Title   string
	Cluster string
	Queries []string
	Why     string
	Slugs   []string
}

// Snapshot is the single source of truth for one generator invocation. All
// artifacts must be fully reconstructible from it; nothing downstream may
// re-scan the corpus.
type Snapshot struct {
	RunID       string
	GeneratedAt time.Time

	Records  []TutorialRecord // sorted by slug
	Clusters []Cluster        // sorted by id
	Hubs     []HubSelection   // config declaration order
}

// Record looks up a record by slug.
func (s *Snapshot) Record(slug string) (TutorialRecord, bool) {
	for _, r := range s.Records {
		if r.Slug == slug {
			return r, true
		}
	}
	return TutorialRecord{}, false
}

// Verify asserts the snapshot invariants:
//   - every record belongs to exactly one cluster,
//   - cluster members reference existing records,
//   - sum of cluster sizes equals the record count,
//   - every hub slug references an existing record.
//
// A violation is a fatal consistency error, not a warning; it means two
// artifacts rendered from this snapshot could disagree on totals.
func (s *Snapshot) Verify() error {
	assigned := make(map[string]string, len(s.Records))
	total := 0
	for _, c := range s.Clusters {
		for _, slug := range c.Members {
			if _, ok := s.Record(slug); !ok {
				return cerrors.ConsistencyError(fmt.Sprintf("cluster %s references unknown record %s", c.ID, slug))
			}
			if prev, dup := assigned[slug]; dup {
				return cerrors.ConsistencyError(fmt.Sprintf("record %s assigned to clusters %s and %s", slug, prev, c.ID))
			}
			assigned[slug] = c.ID
			total++
		}
	}

	for _, r := range s.Records {
		if assigned[r.Slug] == "" {
			return cerrors.ConsistencyError(fmt.Sprintf("record %s has no cluster", r.Slug))
		}
		if assigned[r.Slug] != r.Cluster {
			return cerrors.ConsistencyError(fmt.Sprintf("record %s carries cluster %s but is member of %s", r.Slug, r.Cluster, assigned[r.Slug]))
		}
	}

	if total != len(s.Records) {
		return cerrors.ConsistencyError(fmt.Sprintf("cluster members sum to %d, want %d records", total, len(s.Records)))
	}

	for _, hub := range s.Hubs {
		for _, slug := range hub.Slugs {
			if _, ok := s.Record(slug); !ok {
				return cerrors.ConsistencyError(fmt.Sprintf("query hub %s references unknown record %s", hub.ID, slug))
			}
		}
	}
	return nil
}
