package emit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/johnxie/doccatalog/internal/catalog"
	"github.com/johnxie/doccatalog/internal/config"
	cerrors "github.com/johnxie/doccatalog/internal/errors"
	"github.com/johnxie/doccatalog/internal/frontmatter"
)

func mcpDoc(slug, title, summary string) catalog.RawDocument {
	return catalog.RawDocument{
		Slug:   slug,
		Dir:    catalog.TutorialsDir + "/" + slug,
		Path:   catalog.TutorialsDir + "/" + slug + "/index.md",
		Fields: frontmatter.Fields{Title: title},
		Body:   []byte("> " + summary + "\n"),
	}
}

func mcpSnapshot(t *testing.T, cfg config.Config) *catalog.Snapshot {
	t.Helper()
	docs := []catalog.RawDocument{
		mcpDoc("fastmcp-tutorial", "FastMCP Tutorial", "Build typed MCP servers in Python."),
		mcpDoc("mcp-inspector-tutorial", "MCP Inspector Tutorial", "Debug and test MCP servers interactively."),
		mcpDoc("mcp-python-sdk-tutorial", "MCP Python SDK Tutorial", "The official MCP SDK for Python."),
	}
	snap, err := catalog.BuildSnapshot(cfg, docs, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return snap
}

func readArtifact(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestEmitAll_ArtifactsAgreeOnTutorialCount(t *testing.T) {
	cfg := config.Default()
	root := t.TempDir()
	snap := mcpSnapshot(t, cfg)

	require.NoError(t, New(root, cfg, nil).EmitAll(snap))

	var index struct {
		TutorialCount int `json:"tutorial_count"`
		Tutorials     []struct {
			Slug    string `json:"slug"`
			Cluster string `json:"cluster"`
		} `json:"tutorials"`
	}
	require.NoError(t, json.Unmarshal([]byte(readArtifact(t, root, cfg.Output.IndexJSON)), &index))
	require.Equal(t, 3, index.TutorialCount)
	require.Len(t, index.Tutorials, 3)
	for _, tut := range index.Tutorials {
		require.Equal(t, "mcp-ecosystem", tut.Cluster)
	}

	directory := readArtifact(t, root, cfg.Output.DirectoryMD)
	require.Contains(t, directory, "Total tutorials: **3**")

	intentMap := readArtifact(t, root, cfg.Output.IntentMapMD)
	require.Contains(t, intentMap, "## mcp-ecosystem")
	require.Contains(t, intentMap, "tutorial_count: **3**")

	var itemList struct {
		NumberOfItems int `json:"numberOfItems"`
		ItemList      []struct {
			Position int `json:"position"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(readArtifact(t, root, cfg.Output.ItemListJSON)), &itemList))
	require.Equal(t, 3, itemList.NumberOfItems)
	require.Equal(t, 1, itemList.ItemList[0].Position)
	require.Equal(t, 3, itemList.ItemList[2].Position)

	var coverage struct {
		TutorialCount int `json:"tutorial_count"`
		HubCount      int `json:"hub_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(readArtifact(t, root, cfg.Output.QueryCoverage)), &coverage))
	require.Equal(t, 3, coverage.TutorialCount)
	require.Equal(t, len(cfg.Taxonomy.QueryHubs), coverage.HubCount)

	llms := readArtifact(t, root, cfg.Output.LLMs)
	require.Contains(t, llms, "# "+cfg.Site.Project)
	require.Equal(t, 3, strings.Count(llms, "- FastMCP Tutorial:")+
		strings.Count(llms, "- MCP Inspector Tutorial:")+
		strings.Count(llms, "- MCP Python SDK Tutorial:"))
}

func TestEmitAll_Idempotent(t *testing.T) {
	cfg := config.Default()
	root := t.TempDir()
	snap := mcpSnapshot(t, cfg)
	emitter := New(root, cfg, nil)

	require.NoError(t, emitter.EmitAll(snap))

	first := make(map[string]string)
	for _, rel := range []string{
		cfg.Output.IndexJSON, cfg.Output.DirectoryMD, cfg.Output.IntentMapMD,
		cfg.Output.QueryHubMD, cfg.Output.QueryCoverage, cfg.Output.ItemListJSON,
		cfg.Output.LLMs, cfg.Output.LLMsFull, cfg.Output.RunManifest,
	} {
		first[rel] = readArtifact(t, root, rel)
	}

	// A second run over the same snapshot must be byte-identical, run id
	// and wall clock notwithstanding.
	require.NoError(t, emitter.EmitAll(snap))
	for rel, before := range first {
		require.Equal(t, before, readArtifact(t, root, rel), "artifact %s drifted", rel)
	}
}

func TestEmitAll_RunManifestHashesEveryArtifact(t *testing.T) {
	cfg := config.Default()
	root := t.TempDir()
	snap := mcpSnapshot(t, cfg)

	require.NoError(t, New(root, cfg, nil).EmitAll(snap))

	var manifest struct {
		TutorialCount int               `json:"tutorial_count"`
		ClusterCount  int               `json:"cluster_count"`
		Artifacts     map[string]string `json:"artifacts"`
	}
	require.NoError(t, json.Unmarshal([]byte(readArtifact(t, root, cfg.Output.RunManifest)), &manifest))
	require.Equal(t, 3, manifest.TutorialCount)
	require.Equal(t, 1, manifest.ClusterCount)
	require.Len(t, manifest.Artifacts, 8)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(cfg.Output.IndexJSON)))
	require.NoError(t, err)
	require.Equal(t, contentHash(data), manifest.Artifacts[cfg.Output.IndexJSON])
}

func TestEmitAll_RejectsInconsistentSnapshot(t *testing.T) {
	cfg := config.Default()
	root := t.TempDir()
	snap := mcpSnapshot(t, cfg)
	snap.Clusters[0].Members = snap.Clusters[0].Members[:1]

	err := New(root, cfg, nil).EmitAll(snap)
	require.Error(t, err)
	require.True(t, cerrors.IsCategory(err, cerrors.CategoryConsistency))

	// Nothing may have been written.
	_, statErr := os.Stat(filepath.Join(root, filepath.FromSlash(cfg.Output.IndexJSON)))
	require.True(t, os.IsNotExist(statErr))
}

func TestRenderDirectoryMD_AlphabeticalGrouping(t *testing.T) {
	cfg := config.Default()
	snap := &catalog.Snapshot{
		Records: []catalog.TutorialRecord{
			{Slug: "b-tutorial", Title: "Beta Systems", Summary: "s", Cluster: "c"},
			{Slug: "a-tutorial", Title: "The Alpha Guide", Summary: "s", Cluster: "c"},
			{Slug: "n-tutorial", Title: "42 Shortcuts", Summary: "s", Cluster: "c"},
		},
		Clusters: []catalog.Cluster{{ID: "c", Members: []string{"b-tutorial", "a-tutorial", "n-tutorial"}}},
	}

	data, total, err := New(t.TempDir(), cfg, nil).renderDirectoryMD(snap)
	require.NoError(t, err)
	require.Equal(t, 3, total)

	out := string(data)
	// Leading article stripped for grouping: "The Alpha Guide" files under A.
	require.Contains(t, out, "## A")
	require.Contains(t, out, "## B")
	require.Contains(t, out, "## #")
	require.Less(t, strings.Index(out, "## #"), strings.Index(out, "## A"))
	require.Less(t, strings.Index(out, "## A"), strings.Index(out, "## B"))
}

func TestSortTitle_StripsLeadingArticles(t *testing.T) {
	require.Equal(t, "alpha guide", sortTitle("The Alpha Guide"))
	require.Equal(t, "owner manual", sortTitle("An Owner Manual"))
	require.Equal(t, "zebra", sortTitle("zebra"))
}

func TestGroupLetter(t *testing.T) {
	require.Equal(t, "A", groupLetter("The Alpha Guide"))
	require.Equal(t, "#", groupLetter("42 Shortcuts"))
	require.Equal(t, "#", groupLetter(""))
}

func TestRenderIntentMapMD_OverflowLine(t *testing.T) {
	cfg := config.Default()
	records := make([]catalog.TutorialRecord, 0, clusterPreviewCap+3)
	members := make([]string, 0, clusterPreviewCap+3)
	for i := 0; i < clusterPreviewCap+3; i++ {
		slug := "tut-" + string(rune('a'+i%26)) + "-" + string(rune('a'+i/26))
		records = append(records, catalog.TutorialRecord{
			Slug: slug, Title: slug, Summary: "s", Cluster: "c", Intents: []string{"general-learning"},
		})
		members = append(members, slug)
	}
	snap := &catalog.Snapshot{
		Records:  records,
		Clusters: []catalog.Cluster{{ID: "c", Members: members}},
	}

	data, _, err := New(t.TempDir(), cfg, nil).renderIntentMapMD(snap)
	require.NoError(t, err)
	require.Contains(t, string(data), "- ... plus 3 more tutorials in this cluster")
}

func TestRenderQueryHubMD_EmptyHubGetsPlaceholder(t *testing.T) {
	cfg := config.Default()
	snap := &catalog.Snapshot{
		Hubs: []catalog.HubSelection{{
			ID: "empty-hub", Title: "Empty Hub", Cluster: "c",
			Queries: []string{"some query"}, Why: "why",
		}},
	}

	data, _, err := New(t.TempDir(), cfg, nil).renderQueryHubMD(snap)
	require.NoError(t, err)
	require.Contains(t, string(data), "- No matching tutorials found for this cluster.")
}
