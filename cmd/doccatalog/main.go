package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/metrics"
	"github.com/johnxie/doccatalog/internal/watch"
)

var CLI struct {
	Root    string `short:"r" help:"Repository root containing the tutorials directory" default:"." env:"DOCCATALOG_ROOT"`
	Config  string `short:"c" help:"Optional configuration file path" default:"doccatalog.yaml" env:"DOCCATALOG_CONFIG"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate struct{} `cmd:"" help:"Regenerate all discoverability assets from the tutorial corpus"`

	StalenessAudit struct {
		JSONOutput string `help:"Write JSON report to this path"`
	} `cmd:"" name:"staleness-audit" help:"Audit freshness markers and dated claims in docs surfaces"`

	ReleaseClaimsAudit struct {
		JSONOutput string `help:"Write JSON report to this path"`
	} `cmd:"" name:"release-claims-audit" help:"Audit dated release/activity claims in tutorial indexes"`

	Manifest struct {
		Output string `help:"Manifest output path relative to root" default:"tutorials/tutorial-manifest.json"`
	} `cmd:"" help:"Generate a machine-readable tutorial inventory manifest"`

	Health struct {
		JSONOutput    string `help:"Write machine-readable report JSON"`
		BaselineFile  string `help:"Path to known broken-link baseline file"`
		WriteBaseline bool   `help:"Write current broken links to the baseline file"`
	} `cmd:"" help:"Validate markdown link health and tutorial structure consistency"`

	Watch struct {
		Interval time.Duration `help:"Periodic regeneration interval (0 disables)" default:"30m"`
		Listen   string        `help:"Prometheus metrics listen address (empty disables)"`
	} `cmd:"" help:"Regenerate assets continuously as the corpus changes"`
}

func main() {
	// Optional .env for local runs; absence is normal.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	switch ctx.Command() {
	case "generate":
		if err := runGenerate(context.Background(), CLI.Root, CLI.Config, metrics.NoopRecorder{}); err != nil {
			slog.Error("Generate failed", logfields.Error(err))
			os.Exit(1)
		}
	case "staleness-audit":
		exitCode, err := runAudit(auditKindStaleness, CLI.Root, CLI.Config, CLI.StalenessAudit.JSONOutput)
		if err != nil {
			slog.Error("Staleness audit failed", logfields.Error(err))
			os.Exit(1)
		}
		os.Exit(exitCode)
	case "release-claims-audit":
		exitCode, err := runAudit(auditKindReleaseClaims, CLI.Root, CLI.Config, CLI.ReleaseClaimsAudit.JSONOutput)
		if err != nil {
			slog.Error("Release claims audit failed", logfields.Error(err))
			os.Exit(1)
		}
		os.Exit(exitCode)
	case "manifest":
		if err := runManifest(CLI.Root, CLI.Manifest.Output); err != nil {
			slog.Error("Manifest generation failed", logfields.Error(err))
			os.Exit(1)
		}
	case "health":
		exitCode, err := runHealth(CLI.Root, CLI.Health.JSONOutput, CLI.Health.BaselineFile, CLI.Health.WriteBaseline)
		if err != nil {
			slog.Error("Health check failed", logfields.Error(err))
			os.Exit(1)
		}
		os.Exit(exitCode)
	case "watch":
		if err := runWatch(CLI.Root, CLI.Config, CLI.Watch.Interval, CLI.Watch.Listen); err != nil {
			slog.Error("Watch failed", logfields.Error(err))
			os.Exit(1)
		}
	}
}

func runWatch(root, configPath string, interval time.Duration, listen string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher := watch.New(watch.Options{
		Root:     root,
		Interval: interval,
		Listen:   listen,
	}, func(ctx context.Context, rec metrics.Recorder) error {
		return runGenerate(ctx, root, configPath, rec)
	})
	return watcher.Run(ctx)
}
