package catalog

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/johnxie/doccatalog/internal/classify"
	"github.com/johnxie/doccatalog/internal/config"
	"github.com/johnxie/doccatalog/internal/logfields"
)

// BuildSnapshot runs extraction and classification over the raw documents and
// assembles the single immutable snapshot every artifact renders from.
//
// The snapshot is verified before being returned; a consistency violation
// here is a bug in assembly, and surfacing it as a fatal error is exactly the
// build-time assertion the artifacts rely on.
func BuildSnapshot(cfg config.Config, docs []RawDocument, now time.Time) (*Snapshot, error) {
	extractor := NewExtractor(cfg)

	records := make([]TutorialRecord, 0, len(docs))
	for _, doc := range docs {
		record, ok := extractor.Extract(doc)
		if !ok {
			continue
		}

		searchable := strings.ToLower(strings.Join([]string{
			record.Slug, record.Title, record.Summary, strings.Join(record.Keywords, " "),
		}, " "))
		record.Cluster = classify.AssignCluster(cfg.Taxonomy, searchable)
		record.Intents = classify.Intents(cfg.Taxonomy, record.Title+" "+record.Summary, record.Cluster)

		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Slug < records[j].Slug })

	snap := &Snapshot{
		RunID:       uuid.NewString(),
		GeneratedAt: now.UTC(),
		Records:     records,
		Clusters:    buildClusters(cfg.Taxonomy, records),
	}
	snap.Hubs = selectHubs(cfg.Taxonomy, snap.Records)

	if err := snap.Verify(); err != nil {
		return nil, err
	}

	slog.Info("Snapshot built",
		logfields.RunID(snap.RunID),
		logfields.Count(len(snap.Records)),
		slog.Int("clusters", len(snap.Clusters)),
		slog.Int("hubs", len(snap.Hubs)))
	return snap, nil
}

// buildClusters groups records by assigned cluster. Only non-empty clusters
// appear, sorted by id; members keep record order (slug-sorted).
func buildClusters(tax config.Taxonomy, records []TutorialRecord) []Cluster {
	members := make(map[string][]string)
	for _, r := range records {
		members[r.Cluster] = append(members[r.Cluster], r.Slug)
	}

	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	clusters := make([]Cluster, 0, len(ids))
	for _, id := range ids {
		clusters = append(clusters, Cluster{
			ID:          id,
			DisplayName: tax.ClusterName(id),
			Members:     members[id],
		})
	}
	return clusters
}
