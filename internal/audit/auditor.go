package audit

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/johnxie/doccatalog/internal/config"
	cerrors "github.com/johnxie/doccatalog/internal/errors"
	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/util/sets"
)

// Auditor scans glob targets for lines carrying dated claims. Stateless:
// one pass over the corpus per Run call, nothing persisted.
type Auditor struct {
	kind            string
	root            string
	targets         []string
	hints           []string
	freshMaxAgeDays int
	staleAfterDays  int
}

// NewStaleness audits freshness markers ("Last updated", "Verified", ...)
// across the high-impact docs surfaces.
func NewStaleness(root string, cfg config.Config) *Auditor {
	return &Auditor{
		kind:            "staleness",
		root:            root,
		targets:         cfg.Audit.StalenessTargets,
		hints:           cfg.Audit.FreshnessHints,
		freshMaxAgeDays: cfg.Audit.FreshMaxAgeDays,
		staleAfterDays:  cfg.Audit.StaleAfterDays,
	}
}

// NewReleaseClaims audits dated release/activity claims in tutorial indexes.
func NewReleaseClaims(root string, cfg config.Config) *Auditor {
	return &Auditor{
		kind:            "release_claims",
		root:            root,
		targets:         cfg.Audit.ReleaseClaimTargets,
		hints:           cfg.Audit.ReleaseClaimHints,
		freshMaxAgeDays: cfg.Audit.FreshMaxAgeDays,
		staleAfterDays:  cfg.Audit.StaleAfterDays,
	}
}

// Run collects findings as of now. Unreadable individual files are skipped
// with a warning; only an unusable root is fatal.
func (a *Auditor) Run(now time.Time) (Report, error) {
	files, err := a.candidateFiles()
	if err != nil {
		return Report{}, err
	}

	findings := make([]Finding, 0)
	for _, path := range files {
		rel, rerr := filepath.Rel(a.root, path)
		if rerr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		content, rerr := os.ReadFile(path)
		if rerr != nil {
			slog.Warn("Skipping unreadable audit target", logfields.Path(rel), logfields.Error(rerr))
			continue
		}

		for idx, line := range strings.Split(string(content), "\n") {
			if !a.hintMatch(line) {
				continue
			}
			findings = append(findings, a.classifyLine(rel, idx+1, line, now)...)
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].File != findings[j].File {
			return findings[i].File < findings[j].File
		}
		if findings[i].LineNumber != findings[j].LineNumber {
			return findings[i].LineNumber < findings[j].LineNumber
		}
		return findings[i].ParsedDate < findings[j].ParsedDate
	})

	counts := map[Severity]int{
		SeverityFresh:       0,
		SeverityAging:       0,
		SeverityStale:       0,
		SeverityUnparseable: 0,
	}
	for _, f := range findings {
		counts[f.Severity]++
	}

	return Report{
		Kind:            a.kind,
		FreshMaxAgeDays: a.freshMaxAgeDays,
		StaleAfterDays:  a.staleAfterDays,
		Targets:         a.targets,
		SeverityCounts:  counts,
		FindingCount:    len(findings),
		Findings:        findings,
	}, nil
}

// classifyLine emits one finding per parsed date on the line. A hint-matched
// line with no parseable date is never dropped: it yields a single
// unparseable finding ("Verified last week" style claims decay too, they are
// just impossible to age).
func (a *Auditor) classifyLine(file string, lineNumber int, line string, now time.Time) []Finding {
	claim := strings.TrimSpace(line)
	dates := extractDates(line)
	if len(dates) == 0 {
		return []Finding{{
			File:       file,
			LineNumber: lineNumber,
			ClaimText:  claim,
			Severity:   SeverityUnparseable,
		}}
	}

	findings := make([]Finding, 0, len(dates))
	for _, d := range dates {
		age := int(now.Sub(d).Hours() / 24)
		severity := SeverityFresh
		switch {
		case age > a.staleAfterDays:
			severity = SeverityStale
		case age > a.freshMaxAgeDays:
			severity = SeverityAging
		}
		ageCopy := age
		findings = append(findings, Finding{
			File:       file,
			LineNumber: lineNumber,
			ClaimText:  claim,
			ParsedDate: d.Format("2006-01-02"),
			AgeDays:    &ageCopy,
			Severity:   severity,
		})
	}
	return findings
}

func (a *Auditor) hintMatch(line string) bool {
	lowered := strings.ToLower(line)
	for _, hint := range a.hints {
		if strings.Contains(lowered, hint) {
			return true
		}
	}
	return false
}

// candidateFiles expands the target globs relative to the root, deduplicated
// and sorted. A missing root is fatal; globs matching nothing are not.
func (a *Auditor) candidateFiles() ([]string, error) {
	if _, err := os.Stat(a.root); err != nil {
		return nil, cerrors.CorpusError(err, "audit root is missing or unreadable").WithContext("root", a.root)
	}

	seen := sets.New[string]()
	for _, pattern := range a.targets {
		matches, err := filepath.Glob(filepath.Join(a.root, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, cerrors.Wrap(err, cerrors.CategoryAudit, cerrors.SeverityFatal, "bad target glob "+pattern)
		}
		for _, m := range matches {
			info, serr := os.Stat(m)
			if serr != nil || info.IsDir() {
				continue
			}
			seen.Add(m)
		}
	}
	return sets.SortedValues(seen), nil
}
