// Package health validates markdown link integrity and tutorial structure
// consistency across the corpus.
package health

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/johnxie/doccatalog/internal/catalog"
	cerrors "github.com/johnxie/doccatalog/internal/errors"
	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/markdown"
	"github.com/johnxie/doccatalog/internal/util/sets"
)

// BrokenLink is a local markdown link whose target does not exist.
type BrokenLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// TSV renders the baseline-file form of the link.
func (b BrokenLink) TSV() string { return b.Source + "\t" + b.Target }

// Report is the combined link-and-structure health result.
type Report struct {
	BrokenLinkCount    int               `json:"broken_link_count"`
	NewBrokenLinkCount int               `json:"new_broken_link_count"`
	ResolvedLinkCount  int               `json:"resolved_link_count"`
	MissingIndexCount  int               `json:"missing_index_count"`
	MissingIndex       []string          `json:"missing_index"`
	Structure          catalog.Inventory `json:"structure"`
	NewBrokenLinks     []BrokenLink      `json:"new_broken_links"`
	ResolvedLinks      []BrokenLink      `json:"resolved_links"`
	BrokenLinks        []BrokenLink      `json:"broken_links"`
}

// Check walks every markdown file under root, resolves local link targets,
// and combines the broken-link set with the tutorial structure census.
// baseline may be nil (no baseline comparison).
func Check(root string, baseline sets.Set[BrokenLink]) (Report, error) {
	broken, err := collectBrokenLinks(root)
	if err != nil {
		return Report{}, err
	}

	inv, err := catalog.BuildInventory(root)
	if err != nil {
		return Report{}, err
	}

	current := sets.New(broken...)
	newBroken := make([]BrokenLink, 0)
	for _, l := range broken {
		if !baseline.Has(l) {
			newBroken = append(newBroken, l)
		}
	}
	resolved := make([]BrokenLink, 0)
	for l := range baseline {
		if !current.Has(l) {
			resolved = append(resolved, l)
		}
	}
	sortLinks(newBroken)
	sortLinks(resolved)

	missing := inv.MissingIndex()
	return Report{
		BrokenLinkCount:    len(broken),
		NewBrokenLinkCount: len(newBroken),
		ResolvedLinkCount:  len(resolved),
		MissingIndexCount:  len(missing),
		MissingIndex:       missing,
		Structure:          inv,
		NewBrokenLinks:     newBroken,
		ResolvedLinks:      resolved,
		BrokenLinks:        broken,
	}, nil
}

// Failed reports whether this run should gate CI: missing indexes always
// fail; link failures compare against the baseline when one was provided.
func (r Report) Failed(hadBaseline bool) bool {
	if r.MissingIndexCount > 0 {
		return true
	}
	if hadBaseline {
		return r.NewBrokenLinkCount > 0
	}
	return r.BrokenLinkCount > 0
}

func collectBrokenLinks(root string) ([]BrokenLink, error) {
	seen := sets.New[BrokenLink]()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		content, rerr := os.ReadFile(path)
		if rerr != nil {
			slog.Warn("Skipping unreadable markdown file", logfields.Path(path), logfields.Error(rerr))
			return nil
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		for _, link := range markdown.ExtractLinks(content) {
			target := normalizeLocalLink(link.Destination)
			if target == "" {
				continue
			}
			if !targetExists(root, path, target) {
				seen.Add(BrokenLink{Source: rel, Target: target})
			}
		}
		return nil
	})
	if err != nil {
		return nil, cerrors.CorpusError(err, "walking markdown tree failed").WithContext("root", root)
	}

	out := make([]BrokenLink, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sortLinks(out)
	return out, nil
}

// normalizeLocalLink strips fragments and query strings and returns "" for
// links that are not local file references (absolute URLs, mailto, anchors).
func normalizeLocalLink(raw string) string {
	if raw == "" || isExternal(raw) {
		return ""
	}
	clean := raw
	if idx := strings.IndexByte(clean, '#'); idx >= 0 {
		clean = clean[:idx]
	}
	if idx := strings.IndexByte(clean, '?'); idx >= 0 {
		clean = clean[:idx]
	}
	clean = strings.TrimSpace(clean)
	if strings.HasPrefix(clean, "<") && strings.HasSuffix(clean, ">") {
		clean = strings.TrimSpace(clean[1 : len(clean)-1])
	}
	if clean == "" || isExternal(clean) {
		return ""
	}
	return clean
}

func isExternal(link string) bool {
	for _, prefix := range []string{"http://", "https://", "mailto:", "ftp://", "#"} {
		if strings.HasPrefix(link, prefix) {
			return true
		}
	}
	return false
}

func targetExists(root, sourceFile, target string) bool {
	var candidate string
	if strings.HasPrefix(target, "/") {
		candidate = filepath.Join(root, strings.TrimPrefix(target, "/"))
	} else {
		candidate = filepath.Join(filepath.Dir(sourceFile), filepath.FromSlash(target))
	}

	info, err := os.Stat(candidate)
	if err != nil {
		return false
	}
	if strings.HasSuffix(target, "/") {
		return info.IsDir()
	}
	return !info.IsDir()
}

func sortLinks(links []BrokenLink) {
	sort.Slice(links, func(i, j int) bool {
		if links[i].Source != links[j].Source {
			return links[i].Source < links[j].Source
		}
		return links[i].Target < links[j].Target
	})
}
