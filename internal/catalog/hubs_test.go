package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnxie/doccatalog/internal/config"
)

func hubRecord(slug, title, summary string, intents ...string) TutorialRecord {
	return TutorialRecord{
		Slug:    slug,
		Title:   title,
		Summary: summary,
		Cluster: "mcp-ecosystem",
		Intents: intents,
	}
}

func TestSelectHubSlugs_ClusterFiltered(t *testing.T) {
	hub := config.QueryHub{ID: "h", Cluster: "mcp-ecosystem"}
	records := []TutorialRecord{
		hubRecord("fastmcp-tutorial", "FastMCP", "MCP servers."),
		{Slug: "vllm-tutorial", Title: "vLLM", Cluster: "llm-infra-serving"},
	}

	got := selectHubSlugs(hub, records)
	require.Equal(t, []string{"fastmcp-tutorial"}, got)
}

func TestSelectHubSlugs_MustHaveNarrowsWhenNonEmpty(t *testing.T) {
	hub := config.QueryHub{
		ID:            "h",
		Cluster:       "mcp-ecosystem",
		MustHaveTerms: []string{"inspector"},
	}
	records := []TutorialRecord{
		hubRecord("fastmcp-tutorial", "FastMCP", "MCP servers."),
		hubRecord("mcp-inspector-tutorial", "MCP Inspector", "Debug MCP servers with the inspector."),
	}

	got := selectHubSlugs(hub, records)
	require.Equal(t, []string{"mcp-inspector-tutorial"}, got)
}

func TestSelectHubSlugs_MustHaveIgnoredWhenItEmptiesTheHub(t *testing.T) {
	hub := config.QueryHub{
		ID:            "h",
		Cluster:       "mcp-ecosystem",
		MustHaveTerms: []string{"term-nobody-has"},
	}
	records := []TutorialRecord{
		hubRecord("fastmcp-tutorial", "FastMCP", "MCP servers."),
	}

	got := selectHubSlugs(hub, records)
	require.Equal(t, []string{"fastmcp-tutorial"}, got)
}

func TestSelectHubSlugs_PreferSlugsPinnedFirst(t *testing.T) {
	hub := config.QueryHub{
		ID:          "h",
		Cluster:     "mcp-ecosystem",
		PreferSlugs: []string{"mcp-registry-tutorial", "not-in-corpus"},
	}
	records := []TutorialRecord{
		hubRecord("aaa-mcp-tutorial", "AAA MCP", "MCP intro."),
		hubRecord("mcp-registry-tutorial", "MCP Registry", "Publishing MCP servers."),
	}

	got := selectHubSlugs(hub, records)
	require.Equal(t, []string{"mcp-registry-tutorial", "aaa-mcp-tutorial"}, got)
}

func TestSelectHubSlugs_RankedByScoreThenTitle(t *testing.T) {
	hub := config.QueryHub{
		ID:      "h",
		Cluster: "mcp-ecosystem",
		Queries: []string{"best mcp servers"},
		Intents: []string{"mcp-integration"},
	}
	records := []TutorialRecord{
		// Query hit (+2) and intent hit (+2).
		hubRecord("zz-tutorial", "Best MCP Servers Guide", "Covers the best mcp servers.", "mcp-integration"),
		// Intent hit only (+2), plus production bonus (+1).
		hubRecord("ops-tutorial", "MCP Operations", "Running MCP.", "mcp-integration", "production-operations"),
		// No hits; title tie-break puts it last.
		hubRecord("plain-tutorial", "Plain MCP Notes", "Notes."),
	}

	got := selectHubSlugs(hub, records)
	require.Equal(t, []string{"zz-tutorial", "ops-tutorial", "plain-tutorial"}, got)
}

func TestSelectHubSlugs_LimitApplied(t *testing.T) {
	hub := config.QueryHub{ID: "h", Cluster: "mcp-ecosystem", Limit: 2}
	records := []TutorialRecord{
		hubRecord("a-tutorial", "A", "MCP."),
		hubRecord("b-tutorial", "B", "MCP."),
		hubRecord("c-tutorial", "C", "MCP."),
	}

	got := selectHubSlugs(hub, records)
	require.Len(t, got, 2)
}

func TestSelectHubs_OneSelectionPerConfiguredHub(t *testing.T) {
	tax := config.Default().Taxonomy
	records := []TutorialRecord{hubRecord("fastmcp-tutorial", "FastMCP", "MCP servers.")}

	selections := selectHubs(tax, records)
	require.Len(t, selections, len(tax.QueryHubs))
	for i, sel := range selections {
		require.Equal(t, tax.QueryHubs[i].ID, sel.ID)
	}
}
