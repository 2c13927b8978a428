package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	cerrors "github.com/johnxie/doccatalog/internal/errors"
	"github.com/johnxie/doccatalog/internal/frontmatter"
	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/metrics"
)

// TutorialsDir is the corpus directory under the repository root.
const TutorialsDir = "tutorials"

// RawDocument is one tutorial index as read from disk: frontmatter parsed,
// body untouched.
type RawDocument struct {
	Slug   string
	Dir    string // relative to root, posix separators
	Path   string // relative index.md path
	Fields frontmatter.Fields
	Body   []byte
}

// Scanner walks <root>/tutorials/*/index.md.
type Scanner struct {
	root string
	rec  metrics.Recorder
}

// NewScanner creates a scanner rooted at the repository root.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root, rec: metrics.NoopRecorder{}}
}

// WithRecorder attaches a metrics recorder; skipped documents are counted on
// it so long-running watch mode can expose skip rates.
func (s *Scanner) WithRecorder(rec metrics.Recorder) *Scanner {
	if rec != nil {
		s.rec = rec
	}
	return s
}

// Scan returns raw documents in lexicographic directory order.
//
// A missing or unreadable corpus root is fatal. A single malformed tutorial
// is not: frontmatter parse failures log a warning and skip that document so
// one bad file never aborts the batch. Ordering here is traversal order only;
// final artifact ordering is re-derived by the emitter.
func (s *Scanner) Scan() ([]RawDocument, error) {
	tutorialsRoot := filepath.Join(s.root, TutorialsDir)
	entries, err := os.ReadDir(tutorialsRoot)
	if err != nil {
		return nil, cerrors.CorpusError(err, "tutorials directory is missing or unreadable").
			WithContext("root", tutorialsRoot)
	}

	dirs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	docs := make([]RawDocument, 0, len(dirs))
	for _, name := range dirs {
		indexPath := filepath.Join(tutorialsRoot, name, "index.md")
		content, err := os.ReadFile(indexPath)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("Skipping unreadable tutorial index", logfields.Slug(name), logfields.Error(err))
				s.rec.IncDocument(metrics.DocumentSkipped)
			}
			continue
		}

		fm, body, had, err := frontmatter.Split(content)
		if err != nil {
			slog.Warn("Skipping tutorial with malformed frontmatter", logfields.Slug(name), logfields.Error(err))
			s.rec.IncDocument(metrics.DocumentSkipped)
			continue
		}

		var fields frontmatter.Fields
		if had {
			fields, err = frontmatter.ParseFields(fm)
			if err != nil {
				slog.Warn("Skipping tutorial with invalid frontmatter YAML", logfields.Slug(name), logfields.Error(err))
				s.rec.IncDocument(metrics.DocumentSkipped)
				continue
			}
		}

		relDir := TutorialsDir + "/" + name
		docs = append(docs, RawDocument{
			Slug:   name,
			Dir:    relDir,
			Path:   relDir + "/index.md",
			Fields: fields,
			Body:   body,
		})
	}

	slog.Debug("Corpus scan complete", logfields.Root(tutorialsRoot), logfields.Count(len(docs)))
	return docs, nil
}
