package health

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnxie/doccatalog/internal/util/sets"
)

func writeMarkdown(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func healthyCorpus(t *testing.T) string {
	root := t.TempDir()
	writeMarkdown(t, root, "tutorials/fastmcp-tutorial/index.md", "# FastMCP\n\nNo links here.\n")
	return root
}

func TestCheck_DetectsBrokenLocalLinks(t *testing.T) {
	root := healthyCorpus(t)
	writeMarkdown(t, root, "README.md",
		"[good](tutorials/fastmcp-tutorial/index.md)\n"+
			"[bad](tutorials/missing/index.md)\n"+
			"[external](https://example.com/page)\n"+
			"[anchor](#section)\n")

	report, err := Check(root, nil)
	require.NoError(t, err)
	require.Equal(t, 1, report.BrokenLinkCount)
	require.Equal(t, BrokenLink{Source: "README.md", Target: "tutorials/missing/index.md"}, report.BrokenLinks[0])
	require.Zero(t, report.MissingIndexCount)

	require.True(t, report.Failed(false))
}

func TestCheck_FragmentsAndQueriesStripped(t *testing.T) {
	root := healthyCorpus(t)
	writeMarkdown(t, root, "README.md",
		"[ok](tutorials/fastmcp-tutorial/index.md#setup)\n"+
			"[also ok](tutorials/fastmcp-tutorial/index.md?plain=1)\n")

	report, err := Check(root, nil)
	require.NoError(t, err)
	require.Zero(t, report.BrokenLinkCount)
	require.False(t, report.Failed(false))
}

func TestCheck_DirectoryLinksNeedTrailingSlash(t *testing.T) {
	root := healthyCorpus(t)
	writeMarkdown(t, root, "README.md",
		"[dir ok](tutorials/fastmcp-tutorial/)\n"+
			"[dir as file](tutorials/fastmcp-tutorial)\n")

	report, err := Check(root, nil)
	require.NoError(t, err)
	require.Equal(t, 1, report.BrokenLinkCount)
	require.Equal(t, "tutorials/fastmcp-tutorial", report.BrokenLinks[0].Target)
}

func TestCheck_MissingIndexFailsRegardlessOfBaseline(t *testing.T) {
	root := healthyCorpus(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tutorials", "no-index"), 0o755))

	report, err := Check(root, sets.New[BrokenLink]())
	require.NoError(t, err)
	require.Equal(t, 1, report.MissingIndexCount)
	require.Equal(t, []string{"tutorials/no-index"}, report.MissingIndex)
	require.True(t, report.Failed(true))
	require.True(t, report.Failed(false))
}

func TestCheck_BaselineSplitsNewAndResolved(t *testing.T) {
	root := healthyCorpus(t)
	writeMarkdown(t, root, "README.md", "[bad](gone.md)\n")

	// First entry is still broken; second has since been resolved.
	baseline := sets.New(
		BrokenLink{Source: "README.md", Target: "gone.md"},
		BrokenLink{Source: "old.md", Target: "was-broken.md"},
	)

	report, err := Check(root, baseline)
	require.NoError(t, err)
	require.Equal(t, 1, report.BrokenLinkCount)
	require.Zero(t, report.NewBrokenLinkCount)
	require.Equal(t, 1, report.ResolvedLinkCount)
	require.Equal(t, BrokenLink{Source: "old.md", Target: "was-broken.md"}, report.ResolvedLinks[0])

	// Known breakage with a baseline does not gate.
	require.False(t, report.Failed(true))
	// Without a baseline the same corpus does.
	require.True(t, report.Failed(false))
}

func TestBaselineRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "link-baseline.tsv")
	links := []BrokenLink{
		{Source: "README.md", Target: "gone.md"},
		{Source: "docs/a.md", Target: "../missing.md"},
	}

	require.NoError(t, WriteBaseline(path, links))

	got, err := ReadBaseline(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got.Has(links[0]))
	require.True(t, got.Has(links[1]))
}

func TestReadBaseline_MissingFileIsEmpty(t *testing.T) {
	got, err := ReadBaseline(filepath.Join(t.TempDir(), "absent.tsv"))
	require.NoError(t, err)
	require.Empty(t, got)
}
