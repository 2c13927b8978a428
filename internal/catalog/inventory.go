package catalog

import (
	"os"
	"path/filepath"
	"sort"

	cerrors "github.com/johnxie/doccatalog/internal/errors"
)

// StructureKind classifies where a tutorial keeps its numbered chapters.
type StructureKind string

const (
	StructureRootOnly  StructureKind = "root_only"
	StructureDocsOnly  StructureKind = "docs_only"
	StructureIndexOnly StructureKind = "index_only"
	StructureMixed     StructureKind = "mixed"
)

// TutorialInventory is a census entry for one tutorial directory, independent
// of record extraction (it counts files, not content).
type TutorialInventory struct {
	Name             string        `json:"name"`
	Path             string        `json:"path"`
	HasIndex         bool          `json:"has_index"`
	Structure        StructureKind `json:"structure"`
	TopLevelChapters int           `json:"top_level_chapter_count"`
	DocsChapters     int           `json:"docs_chapter_count"`
	TotalChapters    int           `json:"total_numbered_chapter_count"`
	ChapterNumbers   []string      `json:"chapter_numbers"`
}

// Inventory is the full corpus census.
type Inventory struct {
	TutorialCount   int                   `json:"tutorial_count"`
	StructureCounts map[StructureKind]int `json:"structure_counts"`
	Tutorials       []TutorialInventory   `json:"tutorials"`
}

// MissingIndex returns tutorial paths without an index.md.
func (inv Inventory) MissingIndex() []string {
	out := make([]string, 0)
	for _, t := range inv.Tutorials {
		if !t.HasIndex {
			out = append(out, t.Path)
		}
	}
	return out
}

// BuildInventory walks every tutorial directory and classifies its chapter
// layout. Chapters are the numbered markdown files ("01-*.md" style) at the
// tutorial root or under its docs/ subdirectory.
func BuildInventory(root string) (Inventory, error) {
	tutorialsRoot := filepath.Join(root, TutorialsDir)
	entries, err := os.ReadDir(tutorialsRoot)
	if err != nil {
		return Inventory{}, cerrors.CorpusError(err, "tutorials directory is missing or unreadable").
			WithContext("root", tutorialsRoot)
	}

	inv := Inventory{
		StructureCounts: map[StructureKind]int{
			StructureRootOnly:  0,
			StructureDocsOnly:  0,
			StructureIndexOnly: 0,
			StructureMixed:     0,
		},
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		dir := filepath.Join(tutorialsRoot, name)

		topLevel := numberedChapters(dir)
		docs := numberedChapters(filepath.Join(dir, "docs"))

		var structure StructureKind
		switch {
		case len(topLevel) > 0 && len(docs) == 0:
			structure = StructureRootOnly
		case len(topLevel) == 0 && len(docs) > 0:
			structure = StructureDocsOnly
		case len(topLevel) == 0 && len(docs) == 0:
			structure = StructureIndexOnly
		default:
			structure = StructureMixed
		}

		numbers := make([]string, 0, len(topLevel)+len(docs))
		for _, f := range append(append([]string{}, topLevel...), docs...) {
			if len(f) >= 2 {
				numbers = append(numbers, f[:2])
			}
		}
		sort.Strings(numbers)

		hasIndex := fileExists(filepath.Join(dir, "index.md"))
		inv.Tutorials = append(inv.Tutorials, TutorialInventory{
			Name:             name,
			Path:             TutorialsDir + "/" + name,
			HasIndex:         hasIndex,
			Structure:        structure,
			TopLevelChapters: len(topLevel),
			DocsChapters:     len(docs),
			TotalChapters:    len(topLevel) + len(docs),
			ChapterNumbers:   numbers,
		})
		inv.StructureCounts[structure]++
	}

	inv.TutorialCount = len(inv.Tutorials)
	return inv, nil
}

// numberedChapters lists base names of markdown files starting with two
// digits, sorted. A missing directory yields an empty list.
func numberedChapters(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	out := make([]string, 0)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || len(name) < 5 || filepath.Ext(name) != ".md" {
			continue
		}
		if name[0] >= '0' && name[0] <= '9' && name[1] >= '0' && name[1] <= '9' {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
