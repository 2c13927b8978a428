package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	cerrors "github.com/johnxie/doccatalog/internal/errors"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644))
	}
}

func TestBuildInventory_MissingRootIsFatal(t *testing.T) {
	_, err := BuildInventory(t.TempDir())
	require.Error(t, err)
	require.True(t, cerrors.IsCategory(err, cerrors.CategoryCorpus))
}

func TestBuildInventory_ClassifiesStructures(t *testing.T) {
	root := t.TempDir()
	tutorials := filepath.Join(root, TutorialsDir)

	writeFiles(t, filepath.Join(tutorials, "root-style"), "index.md", "01-intro.md", "02-setup.md")
	writeFiles(t, filepath.Join(tutorials, "docs-style"), "index.md")
	writeFiles(t, filepath.Join(tutorials, "docs-style", "docs"), "01-intro.md")
	writeFiles(t, filepath.Join(tutorials, "index-style"), "index.md")
	writeFiles(t, filepath.Join(tutorials, "mixed-style"), "index.md", "01-intro.md")
	writeFiles(t, filepath.Join(tutorials, "mixed-style", "docs"), "02-deep.md")
	writeFiles(t, filepath.Join(tutorials, "no-index"), "01-intro.md")

	inv, err := BuildInventory(root)
	require.NoError(t, err)
	require.Equal(t, 5, inv.TutorialCount)

	byName := make(map[string]TutorialInventory, len(inv.Tutorials))
	for _, tut := range inv.Tutorials {
		byName[tut.Name] = tut
	}

	require.Equal(t, StructureRootOnly, byName["root-style"].Structure)
	require.Equal(t, StructureDocsOnly, byName["docs-style"].Structure)
	require.Equal(t, StructureIndexOnly, byName["index-style"].Structure)
	require.Equal(t, StructureMixed, byName["mixed-style"].Structure)
	require.Equal(t, StructureRootOnly, byName["no-index"].Structure)

	require.Equal(t, 2, byName["root-style"].TopLevelChapters)
	require.Equal(t, []string{"01", "02"}, byName["root-style"].ChapterNumbers)
	require.Equal(t, 1, byName["docs-style"].DocsChapters)
	require.Equal(t, 2, byName["mixed-style"].TotalChapters)

	require.True(t, byName["root-style"].HasIndex)
	require.False(t, byName["no-index"].HasIndex)
	require.Equal(t, []string{"tutorials/no-index"}, inv.MissingIndex())

	require.Equal(t, 2, inv.StructureCounts[StructureRootOnly])
	require.Equal(t, 1, inv.StructureCounts[StructureDocsOnly])
	require.Equal(t, 1, inv.StructureCounts[StructureIndexOnly])
	require.Equal(t, 1, inv.StructureCounts[StructureMixed])
}

func TestNumberedChapters_OnlyTwoDigitMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "01-intro.md", "99-end.md", "notes.md", "1-short.md", "02-image.png")

	got := numberedChapters(dir)
	require.Equal(t, []string{"01-intro.md", "99-end.md"}, got)
}
