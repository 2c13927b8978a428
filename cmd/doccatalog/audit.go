package main

import (
	"time"

	"github.com/johnxie/doccatalog/internal/audit"
	"github.com/johnxie/doccatalog/internal/config"
)

type auditKind int

const (
	auditKindStaleness auditKind = iota
	auditKindReleaseClaims
)

// runAudit executes one audit pass and returns the process exit code:
// nonzero only when stale findings exist, so CI can gate on decay while
// aging/fresh/unparseable findings stay informational.
func runAudit(kind auditKind, root, configPath, jsonOutput string) (int, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return 1, err
	}

	var auditor *audit.Auditor
	switch kind {
	case auditKindReleaseClaims:
		auditor = audit.NewReleaseClaims(root, cfg)
	default:
		auditor = audit.NewStaleness(root, cfg)
	}

	report, err := auditor.Run(time.Now())
	if err != nil {
		return 1, err
	}
	report.Log()

	if jsonOutput != "" {
		if err := report.WriteJSON(jsonOutput); err != nil {
			return 1, err
		}
	}

	if report.HasStale() {
		return 1, nil
	}
	return 0, nil
}
