package emit

import (
	"encoding/json"

	"github.com/johnxie/doccatalog/internal/catalog"
)

// marshal renders indented JSON with a trailing newline. Struct field order
// is declaration order and map keys marshal sorted, so output is stable.
func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type indexPayload struct {
	Project       string                   `json:"project"`
	TutorialCount int                      `json:"tutorial_count"`
	Tutorials     []catalog.TutorialRecord `json:"tutorials"`
}

func (e *Emitter) renderIndexJSON(snap *catalog.Snapshot) ([]byte, int, error) {
	payload := indexPayload{
		Project:       e.site.Project,
		TutorialCount: len(snap.Records),
		Tutorials:     snap.Records,
	}
	data, err := marshal(payload)
	return data, payload.TutorialCount, err
}

type itemListEntry struct {
	Type        string `json:"@type"`
	Position    int    `json:"position"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type itemListPayload struct {
	Context       string          `json:"@context"`
	Type          string          `json:"@type"`
	Name          string          `json:"name"`
	URL           string          `json:"url"`
	NumberOfItems int             `json:"numberOfItems"`
	ItemList      []itemListEntry `json:"itemListElement"`
}

// renderItemListJSON emits a schema.org ItemList with stable, slug-sorted
// ordering and 1-based positions.
func (e *Emitter) renderItemListJSON(snap *catalog.Snapshot) ([]byte, int, error) {
	entries := make([]itemListEntry, 0, len(snap.Records))
	for i, r := range snap.Records {
		entries = append(entries, itemListEntry{
			Type:        "ListItem",
			Position:    i + 1,
			Name:        r.Title,
			URL:         r.FileURL,
			Description: r.Summary,
		})
	}
	payload := itemListPayload{
		Context:       "https://schema.org",
		Type:          "ItemList",
		Name:          e.site.Project + " Tutorial Catalog",
		URL:           e.site.RepoURL,
		NumberOfItems: len(entries),
		ItemList:      entries,
	}
	data, err := marshal(payload)
	return data, payload.NumberOfItems, err
}

type coverageTutorial struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	FileURL string   `json:"file_url"`
	Intents []string `json:"intent_signals"`
}

type coverageHub struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Cluster   string             `json:"cluster"`
	Queries   []string           `json:"queries"`
	Tutorials []coverageTutorial `json:"tutorials"`
}

type coveragePayload struct {
	Project       string        `json:"project"`
	TutorialCount int           `json:"tutorial_count"`
	HubCount      int           `json:"hub_count"`
	Hubs          []coverageHub `json:"hubs"`
}

func (e *Emitter) renderQueryCoverageJSON(snap *catalog.Snapshot) ([]byte, int, error) {
	hubs := make([]coverageHub, 0, len(snap.Hubs))
	for _, hub := range snap.Hubs {
		tutorials := make([]coverageTutorial, 0, len(hub.Slugs))
		for _, slug := range hub.Slugs {
			r, ok := snap.Record(slug)
			if !ok {
				// Verify() already guarantees this cannot happen.
				continue
			}
			tutorials = append(tutorials, coverageTutorial{
				Slug:    r.Slug,
				Title:   r.Title,
				FileURL: r.FileURL,
				Intents: r.Intents,
			})
		}
		hubs = append(hubs, coverageHub{
			ID:        hub.ID,
			Title:     hub.Title,
			Cluster:   hub.Cluster,
			Queries:   hub.Queries,
			Tutorials: tutorials,
		})
	}
	payload := coveragePayload{
		Project:       e.site.Project,
		TutorialCount: len(snap.Records),
		HubCount:      len(hubs),
		Hubs:          hubs,
	}
	data, err := marshal(payload)
	return data, payload.TutorialCount, err
}

type manifestPayload struct {
	Project       string            `json:"project"`
	TutorialCount int               `json:"tutorial_count"`
	ClusterCount  int               `json:"cluster_count"`
	HubCount      int               `json:"hub_count"`
	Artifacts     map[string]string `json:"artifacts"`
}

// renderRunManifest records sha256 hashes of every rendered artifact. The
// manifest carries no run id or timestamp: it must be byte-identical across
// runs over an unchanged snapshot like everything else (run identity lives
// in logs).
func (e *Emitter) renderRunManifest(snap *catalog.Snapshot, artifacts []artifact) ([]byte, error) {
	hashes := make(map[string]string, len(artifacts))
	for _, a := range artifacts {
		hashes[a.relPath] = contentHash(a.data)
	}
	return marshal(manifestPayload{
		Project:       e.site.Project,
		TutorialCount: len(snap.Records),
		ClusterCount:  len(snap.Clusters),
		HubCount:      len(snap.Hubs),
		Artifacts:     hashes,
	})
}
