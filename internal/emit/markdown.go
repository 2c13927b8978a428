package emit

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/johnxie/doccatalog/internal/catalog"
)

// clusterPreviewCap bounds the per-cluster listing in the intent map; larger
// clusters get an overflow line instead of an unbounded list.
const clusterPreviewCap = 25

type mdBuilder struct {
	lines []string
}

func (b *mdBuilder) add(lines ...string) { b.lines = append(b.lines, lines...) }
func (b *mdBuilder) addf(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// bytes renders the accumulated lines, trimming trailing blanks and ending
// with exactly one newline so repeated runs are byte-identical.
func (b *mdBuilder) bytes() []byte {
	out := strings.TrimRight(strings.Join(b.lines, "\n"), "\n")
	return []byte(out + "\n")
}

// sortTitle is the A-Z sort key: lowercased title with a leading article
// ("a", "an", "the") removed.
func sortTitle(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	for _, article := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(lowered, article) {
			return strings.TrimSpace(lowered[len(article):])
		}
	}
	return lowered
}

// groupLetter buckets a title under its first letter, or "#" for titles that
// do not start with a letter.
func groupLetter(title string) string {
	key := sortTitle(title)
	for _, r := range key {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
		return "#"
	}
	return "#"
}

func (e *Emitter) renderDirectoryMD(snap *catalog.Snapshot) ([]byte, int, error) {
	b := &mdBuilder{}
	b.add(
		"# Tutorial Directory (A-Z)",
		"",
		"This page is auto-generated from the tutorial index and is intended as a fast browse surface for contributors and search crawlers.",
		"",
	)
	b.addf("- Total tutorials: **%d**", len(snap.Records))
	b.add("- Source: `doccatalog generate`", "")

	grouped := make(map[string][]catalog.TutorialRecord)
	for _, r := range snap.Records {
		key := groupLetter(r.Title)
		grouped[key] = append(grouped[key], r)
	}

	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rows := grouped[key]
		sort.SliceStable(rows, func(i, j int) bool {
			ti, tj := sortTitle(rows[i].Title), sortTitle(rows[j].Title)
			if ti != tj {
				return ti < tj
			}
			if rows[i].NavOrder != rows[j].NavOrder {
				return rows[i].NavOrder < rows[j].NavOrder
			}
			return rows[i].Slug < rows[j].Slug
		})

		b.addf("## %s", key)
		b.add("")
		for _, r := range rows {
			b.addf("- [%s](%s)", r.Title, r.FileURL)
			b.addf("  - %s", r.Summary)
		}
		b.add("")
	}

	return b.bytes(), len(snap.Records), nil
}

func (e *Emitter) renderIntentMapMD(snap *catalog.Snapshot) ([]byte, int, error) {
	b := &mdBuilder{}
	b.add(
		"# Search Intent Map",
		"",
		"Auto-generated topical clusters to strengthen internal linking and query-to-tutorial mapping.",
		"",
	)
	b.addf("- Total tutorials: **%d**", len(snap.Records))
	b.addf("- Total clusters: **%d**", len(snap.Clusters))
	b.add("- Source: `doccatalog generate`", "")

	for _, cluster := range snap.Clusters {
		rows := make([]catalog.TutorialRecord, 0, len(cluster.Members))
		for _, slug := range cluster.Members {
			if r, ok := snap.Record(slug); ok {
				rows = append(rows, r)
			}
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return sortTitle(rows[i].Title) < sortTitle(rows[j].Title)
		})

		b.addf("## %s", cluster.ID)
		b.add("")
		b.addf("- tutorial_count: **%d**", len(rows))
		b.add("")
		preview := rows
		if len(preview) > clusterPreviewCap {
			preview = preview[:clusterPreviewCap]
		}
		for _, r := range preview {
			b.addf("- [%s](%s)", r.Title, r.FileURL)
			b.addf("  - intents: %s", strings.Join(r.Intents, ", "))
		}
		if overflow := len(rows) - clusterPreviewCap; overflow > 0 {
			b.addf("- ... plus %d more tutorials in this cluster", overflow)
		}
		b.add("")
	}

	return b.bytes(), len(snap.Records), nil
}

func (e *Emitter) renderQueryHubMD(snap *catalog.Snapshot) ([]byte, int, error) {
	b := &mdBuilder{}
	b.add(
		"# Query Hub",
		"",
		"Auto-generated high-intent query landing surface mapped to the most relevant tutorials.",
		"",
	)
	b.addf("- Total tutorials indexed: **%d**", len(snap.Records))
	b.addf("- Query hubs: **%d**", len(snap.Hubs))
	b.add("- Source: `doccatalog generate`", "")

	for _, hub := range snap.Hubs {
		b.addf("## %s", hub.Title)
		b.add("")
		b.addf("- Cluster: `%s`", hub.Cluster)
		b.addf("- Why this matters: %s", hub.Why)
		b.add("", "Primary search intents:")
		for _, q := range hub.Queries {
			b.addf("- `%s`", q)
		}
		b.add("", "Recommended tutorials:")
		if len(hub.Slugs) == 0 {
			b.add("- No matching tutorials found for this cluster.")
		}
		for _, slug := range hub.Slugs {
			if r, ok := snap.Record(slug); ok {
				b.addf("- [%s](%s)", r.Title, r.FileURL)
				b.addf("  - %s", r.Summary)
			}
		}
		b.add("")
	}

	return b.bytes(), len(snap.Records), nil
}

func (e *Emitter) renderLLMsTxt(snap *catalog.Snapshot) ([]byte, int, error) {
	b := &mdBuilder{}
	b.addf("# %s", e.site.Project)
	b.addf("> %s", e.site.Description)
	b.add("", "## Start Here")
	b.addf("- %s", e.site.RepoURL)
	b.addf("- %s", e.site.BlobURL("README.md"))
	b.addf("- %s", e.site.TreeURL("tutorials"))
	b.add("", "## Tutorial Directory")
	for _, r := range snap.Records {
		b.addf("- %s: %s", r.Title, r.RepoURL)
	}
	return b.bytes(), len(snap.Records), nil
}

func (e *Emitter) renderLLMsFullTxt(snap *catalog.Snapshot) ([]byte, int, error) {
	b := &mdBuilder{}
	b.addf("# %s (Full Tutorial Index)", e.site.Project)
	b.add("", "Main repository:")
	b.addf("- %s", e.site.RepoURL)
	b.add("")
	for _, r := range snap.Records {
		b.addf("## %s", r.Title)
		b.addf("- Path: %s", r.Path)
		b.addf("- Index: %s", r.FileURL)
		b.addf("- Summary: %s", orNA(r.Summary))
		b.addf("- Keywords: %s", orNA(strings.Join(r.Keywords, ", ")))
		b.add("")
	}
	return b.bytes(), len(snap.Records), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
