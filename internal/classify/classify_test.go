package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnxie/doccatalog/internal/config"
)

func TestAssignCluster_FirstMatchingRuleWins(t *testing.T) {
	tax := config.Default().Taxonomy

	// Matches both rag-and-retrieval ("rag") and data-and-storage
	// ("database"); rag-and-retrieval is declared first.
	got := AssignCluster(tax, "building a rag pipeline on a vector database")
	require.Equal(t, "rag-and-retrieval", got)
}

func TestAssignCluster_OrderIsTheTieBreak(t *testing.T) {
	tax := config.Taxonomy{
		ClusterRules: []config.ClusterRule{
			{ID: "first", Terms: []string{"shared"}},
			{ID: "second", Terms: []string{"shared", "unique"}},
		},
		FallbackCluster: config.ClusterRule{ID: "fallback"},
		FallbackIntent:  "general-learning",
		MaxKeywords:     18,
		MaxIntents:      5,
		SummaryMaxLen:   280,
	}

	require.Equal(t, "first", AssignCluster(tax, "text with shared and unique terms"))
	require.Equal(t, "second", AssignCluster(tax, "text with unique only"))
}

func TestAssignCluster_Fallback(t *testing.T) {
	tax := config.Default().Taxonomy
	require.Equal(t, tax.FallbackCluster.ID, AssignCluster(tax, "gardening weekend notes"))
}

func TestAssignCluster_CaseInsensitive(t *testing.T) {
	tax := config.Default().Taxonomy
	require.Equal(t, "mcp-ecosystem", AssignCluster(tax, "FastMCP Server Guide"))
}

func TestIntents_UnionOfMatchingRules(t *testing.T) {
	tax := config.Default().Taxonomy

	got := Intents(tax, "production deployment and architecture internals", "general-software")
	require.Equal(t, []string{"production-operations", "architecture-deep-dive"}, got)
}

func TestIntents_ClusterImpliedAppendedOnce(t *testing.T) {
	tax := config.Default().Taxonomy

	got := Intents(tax, "production mcp server setup", "mcp-ecosystem")
	require.Equal(t, []string{"production-operations", "mcp-integration"}, got)

	// Already present via a rule is not duplicated by the cluster mapping.
	tax.IntentRules = append(tax.IntentRules, config.IntentRule{
		Tag:   "mcp-integration",
		Terms: []string{"mcp"},
	})
	got = Intents(tax, "mcp server setup", "mcp-ecosystem")
	require.Equal(t, []string{"mcp-integration"}, got)
}

func TestIntents_FallbackWhenNothingMatches(t *testing.T) {
	tax := config.Default().Taxonomy
	require.Equal(t, []string{"general-learning"}, Intents(tax, "plain walkthrough", "general-software"))
}

func TestIntents_CappedAtMaxIntents(t *testing.T) {
	tax := config.Default().Taxonomy
	tax.MaxIntents = 1

	got := Intents(tax, "production architecture getting started catalog", "mcp-ecosystem")
	require.Len(t, got, 1)
	require.Equal(t, "beginner-onboarding", got[0])
}
